package stubserver

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/abelgk/crately/internal/domain/contract"
	"github.com/abelgk/crately/internal/domain/entity"
)

// ErrAlbumNotFound is returned when the target album does not exist.
var ErrAlbumNotFound = errors.New("album not found")

// AlbumStore is the in-memory album collection behind the stub authority.
// It enforces the single-vote-per-user rule the real authority owns.
type AlbumStore struct {
	mu      sync.Mutex
	albums  map[string]*entity.Album
	uuidgen contract.IUUIDGenerator
}

// NewAlbumStore creates an empty store.
func NewAlbumStore(uuidgen contract.IUUIDGenerator) *AlbumStore {
	return &AlbumStore{
		albums:  make(map[string]*entity.Album),
		uuidgen: uuidgen,
	}
}

// Add inserts an album, assigning an id when missing.
func (s *AlbumStore) Add(album entity.Album) entity.Album {
	s.mu.Lock()
	defer s.mu.Unlock()
	if album.ID == "" {
		album.ID = s.uuidgen.NewUUID()
	}
	now := time.Now()
	if album.CreatedAt.IsZero() {
		album.CreatedAt = now
	}
	album.UpdatedAt = now
	stored := album
	s.albums[stored.ID] = &stored
	return stored
}

// List returns one page of albums whose title or artist contains the search
// text (case-insensitive), ordered by title for a stable pagination window.
func (s *AlbumStore) List(page, pageSize int, search string) *entity.Page {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	s.mu.Lock()
	matched := make([]entity.Album, 0, len(s.albums))
	needle := strings.ToLower(search)
	for _, a := range s.albums {
		if needle == "" ||
			strings.Contains(strings.ToLower(a.Title), needle) ||
			strings.Contains(strings.ToLower(a.ArtistName), needle) {
			matched = append(matched, copyAlbum(a))
		}
	}
	s.mu.Unlock()

	sort.Slice(matched, func(i, j int) bool { return matched[i].Title < matched[j].Title })

	total := len(matched)
	lastPage := (total + pageSize - 1) / pageSize
	if lastPage < 1 {
		lastPage = 1
	}
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return &entity.Page{
		Items:      matched[start:end],
		PageNumber: page,
		LastPage:   lastPage,
		TotalCount: total,
	}
}

// CastVote records a user's vote, replacing any previous vote the user held
// on the album, and returns the full vote set.
func (s *AlbumStore) CastVote(albumID, userID string, value entity.VoteValue) ([]entity.Vote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	album, ok := s.albums[albumID]
	if !ok {
		return nil, ErrAlbumNotFound
	}

	now := time.Now()
	updated := false
	for i := range album.Votes {
		if album.Votes[i].UserID == userID {
			album.Votes[i].Value = value
			album.Votes[i].UpdatedAt = now
			updated = true
			break
		}
	}
	if !updated {
		album.Votes = append(album.Votes, entity.Vote{
			ID:        s.uuidgen.NewUUID(),
			AlbumID:   albumID,
			UserID:    userID,
			Value:     value,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	album.UpdatedAt = now

	return append([]entity.Vote(nil), album.Votes...), nil
}

// Delete removes an album.
func (s *AlbumStore) Delete(albumID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.albums[albumID]; !ok {
		return ErrAlbumNotFound
	}
	delete(s.albums, albumID)
	return nil
}

func copyAlbum(a *entity.Album) entity.Album {
	out := *a
	out.Votes = append([]entity.Vote(nil), a.Votes...)
	return out
}
