package links

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Link is a directed edge between two publications, used to build the
// research chain. Cycles are not prevented.
type Link struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	PublicationFromID string `gorm:"type:uuid;not null;uniqueIndex:idx_links_from_to,priority:1;index" json:"publicationFromId"`
	PublicationToID   string `gorm:"type:uuid;not null;uniqueIndex:idx_links_from_to,priority:2;index" json:"publicationToId"`

	CreatedAt time.Time `json:"createdAt"`
}

func (l *Link) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
