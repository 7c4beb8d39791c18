package mocks

import (
	"context"
	"sync"

	"github.com/abelgk/crately/internal/domain/contract"
	"github.com/abelgk/crately/internal/domain/entity"
)

// MockAlbumAuthority is a mock implementation of the IAlbumAuthority interface.
type MockAlbumAuthority struct {
	// Control mock behavior
	ShouldFailList   bool
	ShouldFailVote   bool
	ShouldFailDelete bool
	FailWith         error

	// BlockFirstList/BlockFirstVote, when set, make the first call of that
	// kind wait until the channel is closed. Used to simulate a slow remote.
	BlockFirstList chan struct{}
	BlockFirstVote chan struct{}

	// Return values
	MockPage  *entity.Page
	ListQueue []*entity.Page
	MockVotes []entity.Vote

	mu          sync.Mutex
	listCalls   int
	voteCalls   int
	deleteCalls int
}

// Ensure MockAlbumAuthority implements the contract used by AlbumSession.
var _ contract.IAlbumAuthority = (*MockAlbumAuthority)(nil)

func NewMockAlbumAuthority() *MockAlbumAuthority {
	return &MockAlbumAuthority{
		FailWith: entity.ErrTransport,
		MockPage: &entity.Page{PageNumber: 1, LastPage: 1},
	}
}

func (m *MockAlbumAuthority) ListAlbums(ctx context.Context, page int, search string) (*entity.Page, error) {
	m.mu.Lock()
	m.listCalls++
	n := m.listCalls
	m.mu.Unlock()

	if n == 1 && m.BlockFirstList != nil {
		<-m.BlockFirstList
	}
	if m.ShouldFailList {
		return nil, m.FailWith
	}
	if len(m.ListQueue) >= n {
		return m.ListQueue[n-1], nil
	}
	return m.MockPage, nil
}

func (m *MockAlbumAuthority) CastVote(ctx context.Context, albumID string, value entity.VoteValue) ([]entity.Vote, error) {
	m.mu.Lock()
	m.voteCalls++
	n := m.voteCalls
	m.mu.Unlock()

	if n == 1 && m.BlockFirstVote != nil {
		<-m.BlockFirstVote
	}
	if m.ShouldFailVote {
		return nil, m.FailWith
	}
	return m.MockVotes, nil
}

func (m *MockAlbumAuthority) DeleteAlbum(ctx context.Context, albumID string) error {
	m.mu.Lock()
	m.deleteCalls++
	m.mu.Unlock()

	if m.ShouldFailDelete {
		return m.FailWith
	}
	return nil
}

// ListCalls reports how many list requests were issued.
func (m *MockAlbumAuthority) ListCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listCalls
}

// VoteCalls reports how many vote requests were issued.
func (m *MockAlbumAuthority) VoteCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.voteCalls
}

// DeleteCalls reports how many delete requests were issued.
func (m *MockAlbumAuthority) DeleteCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.deleteCalls
}
