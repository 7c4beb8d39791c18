package contract

import (
	"context"

	"github.com/abelgk/crately/internal/domain/entity"
)

// IPageCache defines caching operations for album list pages, keyed by the
// filter's canonical key. Lookups are exact-match only; staleness is
// controlled entirely by explicit Clear calls triggered by mutations, not by
// time or capacity.
type IPageCache interface {
	// Get returns the cached page for the filter, and whether it was present.
	Get(ctx context.Context, filter entity.Filter) (*entity.Page, bool, error)
	// Set stores or overwrites the entry for the filter's key.
	Set(ctx context.Context, filter entity.Filter, page *entity.Page) error
	// Clear removes all entries.
	Clear(ctx context.Context) error
}
