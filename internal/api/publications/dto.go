package publications

import (
	"publications-app/internal/domain/publications"
	"publications-app/internal/domain/ratings"
)

// ---------- requests

type CreatePublicationRequest struct {
	Type  string `json:"type" binding:"required"`
	Title string `json:"title" binding:"required"`

	Content     string   `json:"content"`
	Licence     string   `json:"licence"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`

	ConflictOfInterestStatus bool   `json:"conflictOfInterestStatus"`
	ConflictOfInterestText   string `json:"conflictOfInterestText"`
}

type UpdatePublicationRequest struct {
	Title       *string  `json:"title"`
	Content     *string  `json:"content"`
	Licence     *string  `json:"licence"`
	Description *string  `json:"description"`
	Keywords    []string `json:"keywords"`

	ConflictOfInterestStatus *bool   `json:"conflictOfInterestStatus"`
	ConflictOfInterestText   *string `json:"conflictOfInterestText"`
}

type CreateLinkRequest struct {
	To string `json:"to" binding:"required"`
}

type CreateCoAuthorRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ---------- responses

// LinkedPublicationDTO is one edge of the chain graph plus enough of the
// neighbouring publication to render it.
type LinkedPublicationDTO struct {
	LinkID        string              `json:"linkId"`
	PublicationID string              `json:"publicationId"`
	Type          publications.Type   `json:"type"`
	Title         string              `json:"title"`
	CurrentStatus publications.Status `json:"currentStatus"`
}

type PublicationDetailDTO struct {
	publications.Publication

	Ratings    []ratings.Aggregate    `json:"ratings"`
	LinkedTo   []LinkedPublicationDTO `json:"linkedTo"`
	LinkedFrom []LinkedPublicationDTO `json:"linkedFrom"`
}

type PublicationSummaryDTO struct {
	ID            string              `json:"id"`
	Type          publications.Type   `json:"type"`
	Title         string              `json:"title"`
	Description   string              `json:"description,omitempty"`
	Keywords      []string            `json:"keywords,omitempty"`
	CurrentStatus publications.Status `json:"currentStatus"`
	AuthorID      string              `json:"authorId"`
	AuthorName    string              `json:"authorName,omitempty"`
	PublishedAt   string              `json:"publishedAt,omitempty"`
}

type PublicationListDTO struct {
	Publications []PublicationSummaryDTO `json:"publications"`
	Total        int64                   `json:"total"`
	Limit        int                     `json:"limit"`
	Offset       int                     `json:"offset"`
}
