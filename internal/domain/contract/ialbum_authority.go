package contract

import (
	"context"

	"github.com/abelgk/crately/internal/domain/entity"
)

// IAlbumAuthority is the remote service that owns the album collection. The
// core only depends on this request/response contract; transport details live
// in the infrastructure implementation.
type IAlbumAuthority interface {
	// ListAlbums fetches one page of albums matching the search text.
	ListAlbums(ctx context.Context, page int, search string) (*entity.Page, error)
	// CastVote records the current user's vote and returns the authoritative
	// full vote set for the album.
	CastVote(ctx context.Context, albumID string, value entity.VoteValue) ([]entity.Vote, error)
	// DeleteAlbum removes the album on the authority side.
	DeleteAlbum(ctx context.Context, albumID string) error
}
