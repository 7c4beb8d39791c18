package config

import (
	"os"
	"strconv"
	"time"

	usecasecontract "github.com/abelgk/crately/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	AuthorityBaseURL string
	AccessToken      string
	CSRFCookieName   string
	RedisURL         string
	PageSize         int
	RequestTimeout   time.Duration
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() usecasecontract.IConfigProvider {
	return &Config{
		AuthorityBaseURL: getEnv("CRATELY_AUTHORITY_URL", "http://localhost:8080"),
		AccessToken:      getEnv("CRATELY_ACCESS_TOKEN", ""),
		CSRFCookieName:   getEnv("CRATELY_CSRF_COOKIE", "csrftoken"),
		RedisURL:         getEnv("CRATELY_REDIS_URL", ""),
		PageSize:         getEnvAsInt("CRATELY_PAGE_SIZE", 10),
		RequestTimeout:   time.Second * time.Duration(getEnvAsInt("CRATELY_REQUEST_TIMEOUT_SECONDS", 15)),
	}
}

// GetAuthorityBaseURL returns the base URL of the remote authority.
func (c *Config) GetAuthorityBaseURL() string {
	return c.AuthorityBaseURL
}

// GetAccessToken returns the bearer credential for the session.
func (c *Config) GetAccessToken() string {
	return c.AccessToken
}

// GetCSRFCookieName returns the name of the cookie carrying the anti-forgery token.
func (c *Config) GetCSRFCookieName() string {
	return c.CSRFCookieName
}

// GetRedisURL returns the optional Redis URL for the shared page cache.
func (c *Config) GetRedisURL() string {
	return c.RedisURL
}

// GetPageSize returns the page size requested from the authority.
func (c *Config) GetPageSize() int {
	return c.PageSize
}

// GetRequestTimeout returns the per-request timeout for authority calls.
func (c *Config) GetRequestTimeout() time.Duration {
	return c.RequestTimeout
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
