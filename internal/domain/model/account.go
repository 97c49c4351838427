package model

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a registered buyer. FavoriteOrderID is the single
// source of truth for the favorite order relation: at most one order per
// account, always one owned by the account.
type Account struct {
	ID              int64
	Login           string
	PasswordHash    string
	IsAdmin         bool
	FavoriteOrderID *uuid.UUID
	CreatedAt       time.Time
}
