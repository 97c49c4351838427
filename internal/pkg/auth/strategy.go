package auth

import "time"

// Strategy issues and verifies bearer tokens for account sessions.
type Strategy interface {
	IssueToken(accountID int64) (string, error)
	ParseToken(token string) (int64, error)
	Name() string
}

// Options carries strategy tuning shared by implementations.
type Options struct {
	TTL time.Duration
}
