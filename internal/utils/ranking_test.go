package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abelgk/crately/internal/domain/entity"
	"github.com/abelgk/crately/internal/utils"
)

func votes(values ...entity.VoteValue) []entity.Vote {
	out := make([]entity.Vote, len(values))
	for i, v := range values {
		out[i] = entity.Vote{ID: string(rune('a' + i)), Value: v, UserID: string(rune('A' + i))}
	}
	return out
}

func TestTallyVotes(t *testing.T) {
	up, down := utils.TallyVotes(votes(entity.VoteUp, entity.VoteDown, entity.VoteUp, entity.VoteUp))
	assert.Equal(t, 3, up)
	assert.Equal(t, 1, down)
}

func TestTallyVotes_Empty(t *testing.T) {
	up, down := utils.TallyVotes(nil)
	assert.Equal(t, 0, up)
	assert.Equal(t, 0, down)
	assert.Equal(t, 0, utils.NetScore(nil))
}

func TestNetScore_MatchesTally(t *testing.T) {
	vs := votes(entity.VoteUp, entity.VoteDown, entity.VoteDown)
	up, down := utils.TallyVotes(vs)
	assert.Equal(t, up-down, utils.NetScore(vs))
	assert.Equal(t, -1, utils.NetScore(vs))
}

func TestRankAlbums_OrdersByNetScoreDescending(t *testing.T) {
	albums := []entity.Album{
		{ID: "1", Title: "Harvest", Votes: votes(entity.VoteUp)},
		{ID: "2", Title: "Aja", Votes: votes(entity.VoteUp, entity.VoteUp, entity.VoteUp)},
		{ID: "3", Title: "Blue", Votes: votes(entity.VoteDown)},
	}

	ranked := utils.RankAlbums(albums)

	assert.Len(t, ranked, len(albums))
	assert.Equal(t, "2", ranked[0].ID)
	assert.Equal(t, "1", ranked[1].ID)
	assert.Equal(t, "3", ranked[2].ID)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, utils.NetScore(ranked[i-1].Votes), utils.NetScore(ranked[i].Votes))
	}
}

func TestRankAlbums_TiesBreakByTitleAscending(t *testing.T) {
	albums := []entity.Album{
		{ID: "1", Title: "Rumours"},
		{ID: "2", Title: "Illmatic"},
		{ID: "3", Title: "abbey road"},
	}

	ranked := utils.RankAlbums(albums)

	assert.Equal(t, "abbey road", ranked[0].Title)
	assert.Equal(t, "Illmatic", ranked[1].Title)
	assert.Equal(t, "Rumours", ranked[2].Title)
}

func TestRankAlbums_DoesNotMutateInput(t *testing.T) {
	albums := []entity.Album{
		{ID: "1", Title: "Harvest"},
		{ID: "2", Title: "Aja", Votes: votes(entity.VoteUp)},
	}

	_ = utils.RankAlbums(albums)

	assert.Equal(t, "1", albums[0].ID)
	assert.Equal(t, "2", albums[1].ID)
}

func TestRankAlbums_EmptyInput(t *testing.T) {
	assert.Empty(t, utils.RankAlbums(nil))
}
