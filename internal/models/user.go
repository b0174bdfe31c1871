// internal/models/user.go
package models

import (
	"time"
)

// User records are created out of band (seeding); the API only reads them and
// applies partial profile updates. TotalReviews is a display counter and is
// not reconciled against review authorship.
type User struct {
	BaseModel
	Name         string    `json:"name" gorm:"size:100;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Avatar       string    `json:"avatar" gorm:"size:512"`
	Bio          string    `json:"bio" gorm:"type:text"`
	JoinedDate   time.Time `json:"joinedDate"`
	TotalReviews int64     `json:"totalReviews" gorm:"default:0"`
}
