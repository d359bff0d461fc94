package ratings

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MinValue = 1
	MaxValue = 10
)

// Rating is one user's score for one aspect of a live publication. A repeat
// rating for the same (publication, user, category) replaces the old value.
type Rating struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	PublicationID string `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_pub_user_cat,priority:1" json:"publicationId"`
	UserID        string `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_pub_user_cat,priority:2" json:"userId"`
	Category      string `gorm:"not null;uniqueIndex:idx_ratings_pub_user_cat,priority:3" json:"category"`

	Rating int `gorm:"not null" json:"rating"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// Aggregate is the per-category summary returned with a publication.
type Aggregate struct {
	Category string  `json:"category"`
	Average  float64 `json:"average"`
	Count    int64   `json:"count"`
}
