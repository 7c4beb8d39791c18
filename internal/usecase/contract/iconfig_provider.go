package usecasecontract

import "time"

// IConfigProvider exposes the configuration values the application reads.
type IConfigProvider interface {
	GetAuthorityBaseURL() string
	GetAccessToken() string
	GetCSRFCookieName() string
	GetRedisURL() string
	GetPageSize() int
	GetRequestTimeout() time.Duration
}
