// internal/models/book.go
package models

// DefaultCoverImage is used when a book is submitted without a cover reference.
const DefaultCoverImage = "/placeholder.svg?height=400&width=300"

type Book struct {
	BaseModel
	Title         string  `json:"title" gorm:"size:255;not null"`
	Author        string  `json:"author" gorm:"size:255;not null"`
	Description   string  `json:"description" gorm:"type:text;not null"`
	CoverImage    string  `json:"coverImage" gorm:"size:512"`
	Genre         string  `json:"genre" gorm:"size:100;not null;index"`
	PublishedDate string  `json:"publishedDate" gorm:"size:32"`
	ISBN          string  `json:"isbn" gorm:"size:32"`
	AverageRating float64 `json:"averageRating" gorm:"type:decimal(3,1);default:0"`
	TotalReviews  int64   `json:"totalReviews" gorm:"default:0"`
	Featured      bool    `json:"featured" gorm:"default:false;index"`

	// Relationships
	Reviews []Review `json:"reviews,omitempty" gorm:"foreignKey:BookID"`
}
