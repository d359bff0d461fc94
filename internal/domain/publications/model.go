package publications

import (
	"time"

	"publications-app/internal/domain/references"
	"publications-app/internal/domain/users"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Type string

const (
	TypeProblem              Type = "PROBLEM"
	TypeHypothesis           Type = "HYPOTHESIS"
	TypeProtocol             Type = "PROTOCOL"
	TypeData                 Type = "DATA"
	TypeAnalysis             Type = "ANALYSIS"
	TypeInterpretation       Type = "INTERPRETATION"
	TypeRealWorldApplication Type = "REAL_WORLD_APPLICATION"
	TypePeerReview           Type = "PEER_REVIEW"
)

// ChainTypes is the research chain in order. PEER_REVIEW sits outside the
// chain and can attach to any stage.
var ChainTypes = []Type{
	TypeProblem,
	TypeHypothesis,
	TypeProtocol,
	TypeData,
	TypeAnalysis,
	TypeInterpretation,
	TypeRealWorldApplication,
}

func ValidType(t Type) bool {
	switch t {
	case TypeProblem, TypeHypothesis, TypeProtocol, TypeData,
		TypeAnalysis, TypeInterpretation, TypeRealWorldApplication, TypePeerReview:
		return true
	}
	return false
}

type Status string

const (
	StatusDraft Status = "DRAFT"
	StatusLive  Status = "LIVE"
)

type Licence string

const (
	LicenceCCBY     Licence = "CC_BY"
	LicenceCCBYSA   Licence = "CC_BY_SA"
	LicenceCCBYND   Licence = "CC_BY_ND"
	LicenceCCBYNC   Licence = "CC_BY_NC"
	LicenceCCBYNCSA Licence = "CC_BY_NC_SA"
	LicenceCCBYNCND Licence = "CC_BY_NC_ND"
)

func ValidLicence(l Licence) bool {
	switch l {
	case LicenceCCBY, LicenceCCBYSA, LicenceCCBYND,
		LicenceCCBYNC, LicenceCCBYNCSA, LicenceCCBYNCND:
		return true
	}
	return false
}

const (
	MaxDescriptionLength = 160
	MaxKeywords          = 10
)

type Publication struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Type  Type   `gorm:"type:text;not null" json:"type"`
	Title string `gorm:"not null" json:"title"`

	Content     string   `json:"content,omitempty"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `gorm:"serializer:json" json:"keywords,omitempty"`
	Licence     Licence  `gorm:"type:text" json:"licence,omitempty"`

	ConflictOfInterestStatus bool   `json:"conflictOfInterestStatus"`
	ConflictOfInterestText   string `json:"conflictOfInterestText,omitempty"`

	// Cached copy of the newest status row.
	CurrentStatus Status `gorm:"type:text;not null;default:'DRAFT';index" json:"currentStatus"`

	UserID string      `gorm:"type:uuid;not null;index" json:"userId"`
	User   *users.User `json:"user,omitempty"`

	CoAuthors []users.User `gorm:"many2many:publication_coauthors;" json:"coAuthors,omitempty"`

	Statuses   []PublicationStatus    `gorm:"foreignKey:PublicationID;constraint:OnDelete:CASCADE;" json:"publicationStatus,omitempty"`
	References []references.Reference `gorm:"foreignKey:PublicationID;constraint:OnDelete:CASCADE;" json:"references,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Publication) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// PublicationStatus is an append-only history entry. Rows are never updated
// and LIVE rows are never deleted.
type PublicationStatus struct {
	ID            string `gorm:"type:uuid;primaryKey" json:"id"`
	PublicationID string `gorm:"type:uuid;not null;index" json:"-"`

	Status Status `gorm:"type:text;not null" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}

func (s *PublicationStatus) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
