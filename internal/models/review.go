// internal/models/review.go
package models

import (
	"github.com/google/uuid"
)

// Review records are immutable once created. User identity is an opaque
// id plus display name supplied by the client; there is no account system.
type Review struct {
	BaseModel
	BookID   uuid.UUID `json:"bookId" gorm:"type:uuid;not null;index"`
	UserID   string    `json:"userId" gorm:"size:64;not null"`
	UserName string    `json:"userName" gorm:"size:100;not null"`
	Rating   int       `json:"rating" gorm:"not null"`
	Title    string    `json:"title" gorm:"size:255;not null"`
	Content  string    `json:"content" gorm:"type:text;not null"`
}
