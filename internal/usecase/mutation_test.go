package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abelgk/crately/internal/domain/entity"
	"github.com/abelgk/crately/internal/usecase/mocks"
	"github.com/abelgk/crately/internal/utils"
)

func TestVote_ReplacesVoteSetAndClearsCache(t *testing.T) {
	ctx := context.Background()
	auth := mocks.NewMockAlbumAuthority()
	auth.MockPage = albumPage(1, entity.Album{
		ID:    "e1",
		Title: "Kind of Blue",
		Votes: []entity.Vote{{ID: "v1", AlbumID: "e1", UserID: "u1", Value: entity.VoteUp}},
	})
	auth.MockVotes = []entity.Vote{
		{ID: "v1", AlbumID: "e1", UserID: "u1", Value: entity.VoteUp},
		{ID: "v2", AlbumID: "e1", UserID: "u2", Value: entity.VoteDown},
	}
	sess, cache := newTestSession(auth)

	sess.Query(ctx)
	require.Equal(t, 1, cache.Len())

	require.NoError(t, sess.Vote(ctx, "e1", entity.VoteDown))

	albums := sess.Albums()
	require.Len(t, albums, 1)
	up, down := utils.TallyVotes(albums[0].Votes)
	assert.Equal(t, 1, up)
	assert.Equal(t, 1, down)
	assert.Equal(t, 0, utils.NetScore(albums[0].Votes))
	assert.Equal(t, 0, cache.Len(), "cache must be empty after a vote")
	assert.Empty(t, sess.Err())
}

func TestVote_SecondCallWhileInFlightIsNoOp(t *testing.T) {
	ctx := context.Background()
	auth := mocks.NewMockAlbumAuthority()
	auth.BlockFirstVote = make(chan struct{})
	auth.MockVotes = []entity.Vote{{ID: "v1", AlbumID: "e1", UserID: "u1", Value: entity.VoteUp}}
	sess, _ := newTestSession(auth)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, sess.Vote(ctx, "e1", entity.VoteUp))
	}()
	require.Eventually(t, func() bool { return auth.VoteCalls() == 1 }, time.Second, time.Millisecond)

	// Second vote for the same album while the first is unresolved.
	require.NoError(t, sess.Vote(ctx, "e1", entity.VoteDown))
	assert.Equal(t, 1, auth.VoteCalls(), "exactly one outstanding remote call per album")

	close(auth.BlockFirstVote)
	wg.Wait()
	assert.Equal(t, 1, auth.VoteCalls())
}

func TestVote_DifferentAlbumsMayOverlap(t *testing.T) {
	ctx := context.Background()
	auth := mocks.NewMockAlbumAuthority()
	auth.BlockFirstVote = make(chan struct{})
	sess, _ := newTestSession(auth)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = sess.Vote(ctx, "e1", entity.VoteUp)
	}()
	require.Eventually(t, func() bool { return auth.VoteCalls() == 1 }, time.Second, time.Millisecond)

	// A vote for another album is not gated by e1's in-flight call.
	require.NoError(t, sess.Vote(ctx, "e2", entity.VoteUp))
	assert.Equal(t, 2, auth.VoteCalls())

	close(auth.BlockFirstVote)
	wg.Wait()
}

func TestVote_FailureSetsErrorAndReleasesGate(t *testing.T) {
	ctx := context.Background()
	auth := mocks.NewMockAlbumAuthority()
	auth.MockPage = albumPage(1, entity.Album{
		ID:    "e1",
		Title: "Kind of Blue",
		Votes: []entity.Vote{{ID: "v1", AlbumID: "e1", UserID: "u1", Value: entity.VoteUp}},
	})
	sess, _ := newTestSession(auth)
	sess.Query(ctx)

	auth.ShouldFailVote = true
	err := sess.Vote(ctx, "e1", entity.VoteDown)

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrTransport)
	assert.NotEmpty(t, sess.Err())
	albums := sess.Albums()
	require.Len(t, albums, 1)
	up, down := utils.TallyVotes(albums[0].Votes)
	assert.Equal(t, 1, up, "vote set must be unchanged after a failed vote")
	assert.Equal(t, 0, down)

	// The gate is released, so a retry issues a fresh remote call.
	auth.ShouldFailVote = false
	auth.MockVotes = albums[0].Votes
	require.NoError(t, sess.Vote(ctx, "e1", entity.VoteDown))
	assert.Equal(t, 2, auth.VoteCalls())
}

func TestVote_InvalidValueRejectedWithoutRemoteCall(t *testing.T) {
	ctx := context.Background()
	auth := mocks.NewMockAlbumAuthority()
	sess, _ := newTestSession(auth)

	err := sess.Vote(ctx, "e1", entity.VoteValue("sideways"))

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrValidation)
	assert.Equal(t, 0, auth.VoteCalls())
}

func TestDelete_RemovesAlbumAndClearsCache(t *testing.T) {
	ctx := context.Background()
	auth := mocks.NewMockAlbumAuthority()
	auth.MockPage = albumPage(1,
		entity.Album{ID: "e1", Title: "Kind of Blue"},
		entity.Album{ID: "e2", Title: "Blue Train"},
	)
	sess, cache := newTestSession(auth)
	sess.Query(ctx)
	require.Equal(t, 1, cache.Len())

	require.NoError(t, sess.Delete(ctx, "e1"))

	albums := sess.Albums()
	require.Len(t, albums, 1)
	assert.Equal(t, "e2", albums[0].ID)
	assert.Equal(t, 0, cache.Len(), "cache must be empty after a delete")

	// The next identical query goes back to the authority.
	calls := auth.ListCalls()
	sess.Query(ctx)
	assert.Equal(t, calls+1, auth.ListCalls())
}

func TestDelete_FailureLeavesCollectionUntouched(t *testing.T) {
	ctx := context.Background()
	auth := mocks.NewMockAlbumAuthority()
	auth.MockPage = albumPage(1, entity.Album{ID: "e1", Title: "Kind of Blue"})
	sess, _ := newTestSession(auth)
	sess.Query(ctx)

	auth.ShouldFailDelete = true
	auth.FailWith = entity.ErrForbidden
	err := sess.Delete(ctx, "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrForbidden)
	assert.NotEmpty(t, sess.Err())
	require.Len(t, sess.Albums(), 1)
}
