package stubserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abelgk/crately/internal/domain/entity"
	usecasecontract "github.com/abelgk/crately/internal/usecase/contract"
)

// VoteRequest is the body of a cast-vote call.
type VoteRequest struct {
	Value string `json:"value" binding:"required,oneof=up down"`
}

// VoteResponse carries the authoritative full vote set after a vote.
type VoteResponse struct {
	Votes []entity.Vote `json:"votes"`
}

// AlbumHandler serves the stub authority's album endpoints.
type AlbumHandler struct {
	store    *AlbumStore
	pageSize int
	logger   usecasecontract.IAppLogger
}

// NewAlbumHandler creates a handler over the in-memory store.
func NewAlbumHandler(store *AlbumStore, pageSize int, logger usecasecontract.IAppLogger) *AlbumHandler {
	return &AlbumHandler{
		store:    store,
		pageSize: pageSize,
		logger:   logger,
	}
}

// ListAlbums handles GET /api/v1/albums?page=&search=.
func (h *AlbumHandler) ListAlbums(c *gin.Context) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			ErrorHandler(c, http.StatusBadRequest, "Invalid page number")
			return
		}
		page = parsed
	}
	search := c.Query("search")

	result := h.store.List(page, h.pageSize, search)
	SuccessHandler(c, http.StatusOK, result)
}

// VoteAlbum handles POST /api/v1/albums/:albumID/votes.
func (h *AlbumHandler) VoteAlbum(c *gin.Context) {
	albumID := c.Param("albumID")
	userID := c.GetString("userID")

	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}

	votes, err := h.store.CastVote(albumID, userID, entity.VoteValue(req.Value))
	if err != nil {
		if errors.Is(err, ErrAlbumNotFound) {
			ErrorHandler(c, http.StatusNotFound, "Album not found")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.logger.Infof("vote recorded: album=%s user=%s value=%s", albumID, userID, req.Value)
	SuccessHandler(c, http.StatusOK, VoteResponse{Votes: votes})
}

// DeleteAlbum handles DELETE /api/v1/albums/:albumID.
func (h *AlbumHandler) DeleteAlbum(c *gin.Context) {
	albumID := c.Param("albumID")

	if err := h.store.Delete(albumID); err != nil {
		if errors.Is(err, ErrAlbumNotFound) {
			ErrorHandler(c, http.StatusNotFound, "Album not found")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.logger.Infof("album deleted: %s", albumID)
	c.Status(http.StatusNoContent)
}
