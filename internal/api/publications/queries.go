package publications

import (
	"publications-app/internal/domain/links"
	"publications-app/internal/domain/publications"
	"publications-app/internal/domain/ratings"

	"gorm.io/gorm"
)

// getPublication loads a publication with its author, co-authors, ordered
// status history and ordered reference list.
func getPublication(db *gorm.DB, id string) (*publications.Publication, error) {
	var p publications.Publication
	err := db.
		Preload("User").
		Preload("CoAuthors").
		Preload("Statuses", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("References", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_index ASC")
		}).
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func ratingAggregates(db *gorm.DB, publicationID string) ([]ratings.Aggregate, error) {
	var aggs []ratings.Aggregate
	err := db.Model(&ratings.Rating{}).
		Select("category, AVG(rating) AS average, COUNT(*) AS count").
		Where("publication_id = ?", publicationID).
		Group("category").
		Order("category ASC").
		Scan(&aggs).Error
	return aggs, err
}

// linkedSummaries resolves the outbound or inbound edges of a publication
// into renderable neighbour summaries. Edges to publications that were
// deleted are skipped.
func linkedSummaries(db *gorm.DB, publicationID string, outbound bool) ([]LinkedPublicationDTO, error) {
	edgeColumn := "publication_from_id"
	if !outbound {
		edgeColumn = "publication_to_id"
	}

	var edges []links.Link
	if err := db.Where(edgeColumn+" = ?", publicationID).
		Order("created_at ASC").
		Find(&edges).Error; err != nil {
		return nil, err
	}

	out := make([]LinkedPublicationDTO, 0, len(edges))
	for _, edge := range edges {
		neighbourID := edge.PublicationToID
		if !outbound {
			neighbourID = edge.PublicationFromID
		}

		var p publications.Publication
		if err := db.Select("id, type, title, current_status").
			First(&p, "id = ?", neighbourID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				continue
			}
			return nil, err
		}

		out = append(out, LinkedPublicationDTO{
			LinkID:        edge.ID,
			PublicationID: p.ID,
			Type:          p.Type,
			Title:         p.Title,
			CurrentStatus: p.CurrentStatus,
		})
	}

	return out, nil
}

func livePublicationsQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&publications.Publication{}).
		Where("current_status = ?", publications.StatusLive)
}
