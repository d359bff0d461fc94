package references

import (
	"net/http"

	"publications-app/database"
	"publications-app/internal/api/httpx"
	"publications-app/internal/domain/publications"
	"publications-app/internal/domain/references"

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
// PUT /publications/:id/reference
//
// Replaces the publication's whole reference list in one transaction. There
// is no per-row patching: the client always sends the full set.
// ------------------------------
func UpdateAll(c *gin.Context) {
	id := c.Param("id")

	var inputs []ReferenceInput
	if err := httpx.BindStrictJSON(c, &inputs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	for _, in := range inputs {
		if !references.ValidType(references.Type(in.Type)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Reference type must be DOI, URL or TEXT"})
			return
		}
	}

	var count int64
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var p publications.Publication
		if err := tx.First(&p, "id = ?", id).Error; err != nil {
			return err
		}
		if !publications.IsAuthor(&p, userID) {
			return publications.ErrNotAuthor
		}
		if p.CurrentStatus != publications.StatusDraft {
			return publications.ErrNotDraft
		}

		if err := tx.Where("publication_id = ?", id).
			Delete(&references.Reference{}).Error; err != nil {
			return err
		}

		for i, in := range inputs {
			ref := references.Reference{
				ID:            in.ID,
				PublicationID: id,
				Type:          references.Type(in.Type),
				Text:          in.Text,
				Location:      in.Location,
				SortIndex:     i,
			}
			if err := tx.Create(&ref).Error; err != nil {
				return err
			}
		}

		count = int64(len(inputs))
		return nil
	})
	if err != nil {
		switch err {
		case gorm.ErrRecordNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "This publication does not exist."})
		case publications.ErrNotAuthor, publications.ErrNotDraft:
			c.JSON(http.StatusForbidden, gin.H{"error": "You cannot update the references of this publication."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unknown server error."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// ------------------------------
// GET /publications/:id/reference
// ------------------------------
func List(c *gin.Context) {
	id := c.Param("id")
	userID := c.GetString("user_id")

	var p publications.Publication
	if err := database.DB.Preload("CoAuthors").First(&p, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "This publication does not exist."})
		return
	}
	if !publications.CanView(&p, userID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "This publication does not exist."})
		return
	}

	var refs []references.Reference
	if err := database.DB.Where("publication_id = ?", id).
		Order("sort_index ASC").
		Find(&refs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load references"})
		return
	}

	c.JSON(http.StatusOK, refs)
}

// ------------------------------
// POST /publications/:id/reference/parse
//
// Turns pasted rich-text into candidate references without persisting them.
// The caller reviews the result and submits the final list via UpdateAll.
// ------------------------------
func Parse(c *gin.Context) {
	id := c.Param("id")

	var req ParseRequest
	if err := httpx.BindStrictJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var p publications.Publication
	if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "This publication does not exist."})
		return
	}
	if err := publications.CanEdit(&p, userID); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "You cannot update the references of this publication."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"references": references.Extract(id, req.Content)})
}
