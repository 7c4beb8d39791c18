package stubserver

import (
	"net/http"
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/didip/tollbooth_gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abelgk/crately/internal/domain/contract"
	usecasecontract "github.com/abelgk/crately/internal/usecase/contract"
)

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// TokenResponse carries a freshly issued dev token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// TokenRequest asks for a dev token for the named user.
type TokenRequest struct {
	Username string `json:"username" binding:"required,min=1"`
}

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Router wires the stub authority's routes.
type Router struct {
	albumHandler *AlbumHandler
	uuidgen      contract.IUUIDGenerator
	jwtSecret    string
	csrfCookie   string
}

// NewRouter creates a router over the album store.
func NewRouter(store *AlbumStore, uuidgen contract.IUUIDGenerator, logger usecasecontract.IAppLogger, jwtSecret, csrfCookie string, pageSize int) *Router {
	return &Router{
		albumHandler: NewAlbumHandler(store, pageSize, logger),
		uuidgen:      uuidgen,
		jwtSecret:    jwtSecret,
		csrfCookie:   csrfCookie,
	}
}

// SetupRoutes registers middleware and routes on the engine.
func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-CSRF-Token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(tollbooth_gin.LimitHandler(lmt))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Dev-only token mint so the SDK and a frontend can authenticate locally.
	router.POST("/api/v1/auth/token", r.issueToken)

	api := router.Group("/api/v1")
	api.Use(CSRFMiddleware(r.csrfCookie, r.uuidgen))
	api.Use(AuthMiddleware(r.jwtSecret))
	{
		api.GET("/albums", r.albumHandler.ListAlbums)
		api.POST("/albums/:albumID/votes", r.albumHandler.VoteAlbum)
		api.DELETE("/albums/:albumID", r.albumHandler.DeleteAlbum)
	}
}

func (r *Router) issueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   req.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(r.jwtSecret))
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to sign token")
		return
	}
	SuccessHandler(c, http.StatusOK, TokenResponse{AccessToken: signed})
}
