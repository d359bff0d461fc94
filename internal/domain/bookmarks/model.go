package bookmarks

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bookmark is a weak reference: it points at a publication by id but is not
// owned by it. At most one bookmark may exist per (publication, user).
type Bookmark struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	PublicationID string `gorm:"type:uuid;not null;uniqueIndex:idx_bookmarks_pub_user,priority:1" json:"publicationId"`
	UserID        string `gorm:"type:uuid;not null;uniqueIndex:idx_bookmarks_pub_user,priority:2" json:"userId"`

	CreatedAt time.Time `json:"createdAt"`
}

func (b *Bookmark) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
