package publications

import (
	"net/http"
	"strconv"
	"strings"

	"publications-app/database"
	"publications-app/internal/api/httpx"
	"publications-app/internal/domain/bookmarks"
	"publications-app/internal/domain/links"
	"publications-app/internal/domain/publications"
	"publications-app/internal/domain/ratings"
	"publications-app/internal/domain/references"
	"publications-app/internal/infra/metrics"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func mustUserID(c *gin.Context) (string, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

// ------------------------------
// POST /publications
// ------------------------------
func CreatePublication(c *gin.Context) {
	var req CreatePublicationRequest
	if err := httpx.BindStrictJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if msg := validatePublicationFields(req.Type, req.Licence, req.Description, req.Keywords); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	p := publications.Publication{
		Type:                     publications.Type(req.Type),
		Title:                    req.Title,
		Content:                  req.Content,
		Licence:                  publications.Licence(req.Licence),
		Description:              req.Description,
		Keywords:                 req.Keywords,
		ConflictOfInterestStatus: req.ConflictOfInterestStatus,
		ConflictOfInterestText:   req.ConflictOfInterestText,
		CurrentStatus:            publications.StatusDraft,
		UserID:                   userID,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		// every publication starts its history as a draft
		return tx.Create(&publications.PublicationStatus{
			PublicationID: p.ID,
			Status:        publications.StatusDraft,
		}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create publication"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": p.ID})
}

func validatePublicationFields(pubType, licence, description string, keywords []string) string {
	if pubType != "" && !publications.ValidType(publications.Type(pubType)) {
		return "Unknown publication type"
	}
	if licence != "" && !publications.ValidLicence(publications.Licence(licence)) {
		return "Unknown licence"
	}
	if len(description) > publications.MaxDescriptionLength {
		return "Description must be 160 characters or fewer"
	}
	if len(keywords) > publications.MaxKeywords {
		return "A publication can have at most 10 keywords"
	}
	return ""
}

// ------------------------------
// GET /publications/:id
// ------------------------------
func GetPublication(c *gin.Context) {
	id := c.Param("id")
	userID := c.GetString("user_id") // empty for anonymous readers

	p, err := getPublication(database.DB, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "This publication does not exist."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load publication"})
		return
	}

	// drafts are hidden from everyone but the author and co-authors
	if !publications.CanView(p, userID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "This publication does not exist."})
		return
	}

	aggs, err := ratingAggregates(database.DB, p.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load ratings"})
		return
	}

	linkedTo, err := linkedSummaries(database.DB, p.ID, true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load links"})
		return
	}
	linkedFrom, err := linkedSummaries(database.DB, p.ID, false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load links"})
		return
	}

	c.JSON(http.StatusOK, PublicationDetailDTO{
		Publication: *p,
		Ratings:     aggs,
		LinkedTo:    linkedTo,
		LinkedFrom:  linkedFrom,
	})
}

// ------------------------------
// GET /publications  (browse/search, LIVE only)
// ------------------------------
func ListPublications(c *gin.Context) {
	search := strings.TrimSpace(c.Query("search"))
	typeFilter := strings.TrimSpace(c.Query("type"))

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}

	q := livePublicationsQuery(database.DB)

	if typeFilter != "" {
		types := []publications.Type{}
		for _, t := range strings.Split(typeFilter, ",") {
			pt := publications.Type(strings.TrimSpace(t))
			if !publications.ValidType(pt) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown publication type in filter"})
				return
			}
			types = append(types, pt)
		}
		q = q.Where("type IN ?", types)
	}

	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(keywords) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search publications"})
		return
	}

	var pubs []publications.Publication
	if err := q.Preload("User").
		Order("updated_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&pubs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search publications"})
		return
	}

	out := PublicationListDTO{
		Publications: make([]PublicationSummaryDTO, 0, len(pubs)),
		Total:        total,
		Limit:        limit,
		Offset:       offset,
	}
	for _, p := range pubs {
		summary := PublicationSummaryDTO{
			ID:            p.ID,
			Type:          p.Type,
			Title:         p.Title,
			Description:   p.Description,
			Keywords:      p.Keywords,
			CurrentStatus: p.CurrentStatus,
			AuthorID:      p.UserID,
		}
		if p.User != nil {
			summary.AuthorName = strings.TrimSpace(p.User.FirstName + " " + p.User.LastName)
		}
		out.Publications = append(out.Publications, summary)
	}

	c.JSON(http.StatusOK, out)
}

// ------------------------------
// PATCH /publications/:id  (author only, DRAFT only)
// ------------------------------
func UpdatePublication(c *gin.Context) {
	id := c.Param("id")

	var req UpdatePublicationRequest
	if err := httpx.BindStrictJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	licence := ""
	if req.Licence != nil {
		licence = *req.Licence
	}
	description := ""
	if req.Description != nil {
		description = *req.Description
	}
	if msg := validatePublicationFields("", licence, description, req.Keywords); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var p publications.Publication
		if err := tx.First(&p, "id = ?", id).Error; err != nil {
			return err
		}
		if err := publications.CanEdit(&p, userID); err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.Content != nil {
			updates["content"] = *req.Content
		}
		if req.Licence != nil {
			updates["licence"] = *req.Licence
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.Keywords != nil {
			p.Keywords = req.Keywords
			if err := tx.Model(&p).Update("keywords", p.Keywords).Error; err != nil {
				return err
			}
		}
		if req.ConflictOfInterestStatus != nil {
			updates["conflict_of_interest_status"] = *req.ConflictOfInterestStatus
		}
		if req.ConflictOfInterestText != nil {
			updates["conflict_of_interest_text"] = *req.ConflictOfInterestText
		}

		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&p).Updates(updates).Error
	})
	if err != nil {
		respondPublicationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ------------------------------
// DELETE /publications/:id  (author only, DRAFT only)
// ------------------------------
func DeletePublication(c *gin.Context) {
	id := c.Param("id")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var p publications.Publication
		if err := tx.First(&p, "id = ?", id).Error; err != nil {
			return err
		}
		if err := publications.CanEdit(&p, userID); err != nil {
			return err
		}

		// owned rows first, then the weak referers, then the row itself
		if err := tx.Where("publication_id = ?", id).Delete(&references.Reference{}).Error; err != nil {
			return err
		}
		if err := tx.Where("publication_id = ?", id).Delete(&publications.PublicationStatus{}).Error; err != nil {
			return err
		}
		if err := tx.Where("publication_id = ?", id).Delete(&ratings.Rating{}).Error; err != nil {
			return err
		}
		if err := tx.Where("publication_id = ?", id).Delete(&bookmarks.Bookmark{}).Error; err != nil {
			return err
		}
		if err := tx.Where("publication_from_id = ? OR publication_to_id = ?", id, id).Delete(&links.Link{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&p).Association("CoAuthors").Clear(); err != nil {
			return err
		}
		return tx.Delete(&p).Error
	})
	if err != nil {
		respondPublicationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ------------------------------
// PUT /publications/:id/status/:status   (DRAFT -> LIVE only)
// ------------------------------
func UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	target := publications.Status(c.Param("status"))

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if target != publications.StatusLive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A publication can only move to LIVE"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var p publications.Publication
		if err := tx.First(&p, "id = ?", id).Error; err != nil {
			return err
		}
		if !publications.IsAuthor(&p, userID) {
			return publications.ErrNotAuthor
		}
		if p.CurrentStatus == publications.StatusLive {
			return publications.ErrAlreadyLive
		}
		if err := publications.ReadyToPublish(&p); err != nil {
			return err
		}

		if err := tx.Create(&publications.PublicationStatus{
			PublicationID: p.ID,
			Status:        publications.StatusLive,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&p).Update("current_status", publications.StatusLive).Error
	})
	if err != nil {
		if err == publications.ErrNotReady || err == publications.ErrConflictText {
			c.JSON(http.StatusForbidden, gin.H{"error": "Publication is not ready to be made LIVE. Make sure all fields are filled in."})
			return
		}
		respondPublicationError(c, err)
		return
	}

	metrics.PublicationsPublished.Inc()
	c.JSON(http.StatusOK, gin.H{"status": "ok", "currentStatus": publications.StatusLive})
}

// respondPublicationError maps domain errors to the HTTP codes the API
// promises: absent -> 404, wrong author or wrong state -> 403.
func respondPublicationError(c *gin.Context, err error) {
	switch err {
	case gorm.ErrRecordNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "This publication does not exist."})
	case publications.ErrNotAuthor:
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not the author of this publication."})
	case publications.ErrNotDraft:
		c.JSON(http.StatusForbidden, gin.H{"error": "A LIVE publication cannot be changed."})
	case publications.ErrAlreadyLive:
		c.JSON(http.StatusForbidden, gin.H{"error": "This publication is already LIVE."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unknown server error."})
	}
}
