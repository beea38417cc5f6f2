package entity

import (
	"time"
)

// Base holds the columns every persisted record carries
type Base struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_date"`
	UpdatedAt time.Time `db:"updated_date"`
}
