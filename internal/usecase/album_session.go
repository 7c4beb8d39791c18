package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/abelgk/crately/internal/domain/contract"
	"github.com/abelgk/crately/internal/domain/entity"
	"github.com/abelgk/crately/internal/infrastructure/metrics"
	usecasecontract "github.com/abelgk/crately/internal/usecase/contract"
	"github.com/abelgk/crately/internal/utils"
)

// IAlbumSession defines the album-feed operations exposed to presentation code.
type IAlbumSession interface {
	Query(ctx context.Context)
	SetSearch(search string)
	SetPage(page int)
	NextPage(ctx context.Context)
	PrevPage(ctx context.Context)
	Vote(ctx context.Context, albumID string, value entity.VoteValue) error
	Delete(ctx context.Context, albumID string) error
	Albums() []entity.Album
	CurrentPage() int
	LastPage() int
	TotalCount() int
	Search() string
	Loading() bool
	Err() string
}

// AlbumSession holds the visible album collection for one user session and
// coordinates reads through the page cache and mutations against the remote
// authority. All collaborators are constructor-injected; there are no ambient
// globals.
//
// Concurrency: session state is guarded by a single mutex. Vote mutations are
// additionally gated per album by the in-flight set, so at most one vote call
// is outstanding per album at a time; votes on different albums may overlap.
// List queries are not gated, but each carries a sequence number and a
// response that is no longer the latest issued is discarded instead of
// overwriting newer visible state.
type AlbumSession struct {
	authority contract.IAlbumAuthority
	cache     contract.IPageCache
	logger    usecasecontract.IAppLogger
	validator usecasecontract.IValidator

	mu       sync.Mutex
	albums   []entity.Album
	page     int
	lastPage int
	total    int
	search   string
	loading  bool
	errMsg   string
	inFlight map[string]struct{}

	querySeq uint64
}

// check if AlbumSession implements IAlbumSession
var _ IAlbumSession = (*AlbumSession)(nil)

// NewAlbumSession creates a session starting at page 1 with no search text.
func NewAlbumSession(authority contract.IAlbumAuthority, cache contract.IPageCache, logger usecasecontract.IAppLogger, validator usecasecontract.IValidator) *AlbumSession {
	return &AlbumSession{
		authority: authority,
		cache:     cache,
		logger:    logger,
		validator: validator,
		page:      1,
		inFlight:  make(map[string]struct{}),
	}
}

// Query loads the page identified by the session's current page and search
// text. A cache hit is served without a network call. On a miss the page is
// fetched from the authority and stored in the cache. Failures are recorded
// as session error state and the previously visible collection is left
// untouched; the read path never returns an error to the caller.
func (s *AlbumSession) Query(ctx context.Context) {
	s.mu.Lock()
	filter := entity.Filter{Page: s.page, Search: s.search}
	s.mu.Unlock()

	if err := s.validator.ValidateFilter(filter); err != nil {
		s.setError(fmt.Sprintf("invalid filter: %v", err))
		return
	}

	cached, found, err := s.cache.Get(ctx, filter)
	if err != nil {
		s.logger.Warningf("cache error: albums list key=%s err=%v", filter.Key(), err)
	}
	if err == nil && found && cached != nil {
		metrics.IncListHit()
		s.logger.Infof("cache hit: albums list key=%s", filter.Key())
		s.mu.Lock()
		s.applyPage(cached)
		s.loading = false
		s.errMsg = ""
		s.mu.Unlock()
		return
	}
	metrics.IncListMiss()
	s.logger.Infof("cache miss: albums list key=%s", filter.Key())

	seq := atomic.AddUint64(&s.querySeq, 1)
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	page, err := s.authority.ListAlbums(ctx, filter.Page, filter.Search)

	s.mu.Lock()
	if seq != atomic.LoadUint64(&s.querySeq) {
		// A later Query was issued while this one was outstanding.
		s.mu.Unlock()
		s.logger.Infof("discarding superseded list response key=%s", filter.Key())
		return
	}
	s.loading = false
	if err != nil {
		s.errMsg = fmt.Sprintf("failed to load albums: %v", err)
		s.mu.Unlock()
		s.logger.Errorf("failed to load albums: %v", err)
		return
	}
	s.applyPage(page)
	s.mu.Unlock()

	if cerr := s.cache.Set(ctx, filter, page); cerr != nil {
		s.logger.Warningf("cache set failed: albums list key=%s err=%v", filter.Key(), cerr)
	}
}

// SetSearch replaces the search text for the next Query. A new search always
// starts from the first page.
func (s *AlbumSession) SetSearch(search string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = search
	s.page = 1
}

// SetPage sets the page number for the next Query.
func (s *AlbumSession) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 {
		page = 1
	}
	s.page = page
}

// NextPage advances one page, clamped to the last known page, and queries.
func (s *AlbumSession) NextPage(ctx context.Context) {
	s.mu.Lock()
	if s.lastPage > 0 && s.page >= s.lastPage {
		s.mu.Unlock()
		return
	}
	s.page++
	s.mu.Unlock()
	s.Query(ctx)
}

// PrevPage steps back one page, clamped to the first page, and queries.
func (s *AlbumSession) PrevPage(ctx context.Context) {
	s.mu.Lock()
	if s.page <= 1 {
		s.mu.Unlock()
		return
	}
	s.page--
	s.mu.Unlock()
	s.Query(ctx)
}

// Vote casts an up/down vote on the album. If a vote for the same album is
// already in flight the call is a silent no-op, preventing a rapid
// double-click from producing two outstanding requests whose responses could
// apply out of order. On success the album's vote set is wholesale replaced
// with the authoritative set from the response and the page cache is cleared;
// ranking on any cached page may now be stale, so the clear is unconditional.
func (s *AlbumSession) Vote(ctx context.Context, albumID string, value entity.VoteValue) error {
	if err := s.validator.ValidateVoteValue(value); err != nil {
		s.setError(err.Error())
		return err
	}

	s.mu.Lock()
	if _, busy := s.inFlight[albumID]; busy {
		s.mu.Unlock()
		metrics.IncVoteSuppressed()
		s.logger.Infof("vote already in flight for album %s, ignoring", albumID)
		return nil
	}
	s.inFlight[albumID] = struct{}{}
	s.errMsg = ""
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, albumID)
		s.mu.Unlock()
	}()

	votes, err := s.authority.CastVote(ctx, albumID, value)
	if err != nil {
		metrics.IncVoteFailed()
		s.setError(fmt.Sprintf("failed to cast vote: %v", err))
		s.logger.Errorf("failed to cast vote on album %s: %v", albumID, err)
		return err
	}

	s.mu.Lock()
	for i := range s.albums {
		if s.albums[i].ID == albumID {
			s.albums[i].Votes = votes
			break
		}
	}
	s.mu.Unlock()

	metrics.IncVoteSubmitted()
	s.clearCache(ctx)
	return nil
}

// Delete removes the album on the authority and, on success, drops it from
// the visible collection and clears the page cache. On failure the visible
// collection is left unchanged and the error is recorded and returned.
func (s *AlbumSession) Delete(ctx context.Context, albumID string) error {
	s.mu.Lock()
	s.errMsg = ""
	s.mu.Unlock()

	if err := s.authority.DeleteAlbum(ctx, albumID); err != nil {
		s.setError(fmt.Sprintf("failed to delete album: %v", err))
		s.logger.Errorf("failed to delete album %s: %v", albumID, err)
		return err
	}

	s.mu.Lock()
	kept := s.albums[:0]
	for _, a := range s.albums {
		if a.ID != albumID {
			kept = append(kept, a)
		}
	}
	s.albums = kept
	s.mu.Unlock()

	metrics.IncAlbumDeleted()
	s.clearCache(ctx)
	return nil
}

// Albums returns the visible collection ranked by net score descending, ties
// by title. The ranking is recomputed on every call; the returned slice is a
// copy and safe for the caller to hold.
func (s *AlbumSession) Albums() []entity.Album {
	s.mu.Lock()
	snapshot := append([]entity.Album(nil), s.albums...)
	s.mu.Unlock()
	return utils.RankAlbums(snapshot)
}

// CurrentPage returns the page number of the visible collection.
func (s *AlbumSession) CurrentPage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// LastPage returns the last page number reported by the authority.
func (s *AlbumSession) LastPage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastPage
}

// TotalCount returns the total number of albums matching the current search.
func (s *AlbumSession) TotalCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Search returns the current search text.
func (s *AlbumSession) Search() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search
}

// Loading reports whether a fetch is outstanding.
func (s *AlbumSession) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the session error message, or "" when the last operation succeeded.
func (s *AlbumSession) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// applyPage replaces the visible collection and pagination metadata from a
// page snapshot. Caller must hold s.mu.
func (s *AlbumSession) applyPage(page *entity.Page) {
	s.albums = append([]entity.Album(nil), page.Items...)
	s.page = page.PageNumber
	s.lastPage = page.LastPage
	s.total = page.TotalCount
}

func (s *AlbumSession) setError(msg string) {
	s.mu.Lock()
	s.errMsg = msg
	s.loading = false
	s.mu.Unlock()
}

func (s *AlbumSession) clearCache(ctx context.Context) {
	if err := s.cache.Clear(ctx); err != nil {
		s.logger.Warningf("cache clear failed: %v", err)
		return
	}
	metrics.IncCacheClear()
}
