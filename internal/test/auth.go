package test

import (
	"fmt"
	"strconv"
	"strings"

	pkgAuth "github.com/chlagouGhassen/pizza-petes/internal/pkg/auth"
)

// HasherStub hashes by prefixing, keeping credentials readable in tests.
type HasherStub struct {
	HashErr error
}

// Hash returns a deterministic fake hash.
func (s *HasherStub) Hash(password string) (string, error) {
	if s.HashErr != nil {
		return "", s.HashErr
	}
	return "hashed:" + password, nil
}

// Compare accepts only hashes produced by Hash.
func (s *HasherStub) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

// StrategyStub issues tokens encoding the account id in clear text.
type StrategyStub struct {
	IssueErr error
	ParseErr error
}

// IssueToken returns "token-<id>".
func (s *StrategyStub) IssueToken(accountID int64) (string, error) {
	if s.IssueErr != nil {
		return "", s.IssueErr
	}
	return fmt.Sprintf("token-%d", accountID), nil
}

// ParseToken reverses IssueToken.
func (s *StrategyStub) ParseToken(token string) (int64, error) {
	if s.ParseErr != nil {
		return 0, s.ParseErr
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(token, "token-"), 10, 64)
	if err != nil {
		return 0, pkgAuth.ErrInvalidToken
	}
	return id, nil
}

// Name identifies the stub strategy.
func (s *StrategyStub) Name() string { return "stub" }
