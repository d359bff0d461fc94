package references

// ReferenceInput mirrors the wire shape of a reference. Ids are assigned by
// the client so a draft's reference list can be edited offline and replaced
// wholesale.
type ReferenceInput struct {
	ID            string  `json:"id" binding:"required"`
	PublicationID string  `json:"publicationId" binding:"required"`
	Type          string  `json:"type" binding:"required"`
	Text          string  `json:"text" binding:"required"`
	Location      *string `json:"location"`
}

type ParseRequest struct {
	Content string `json:"content" binding:"required"`
}
