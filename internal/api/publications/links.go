package publications

import (
	"errors"
	"net/http"

	"publications-app/database"
	"publications-app/internal/api/httpx"
	"publications-app/internal/domain/links"
	"publications-app/internal/domain/publications"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	errSelfLink      = errors.New("a publication cannot link to itself")
	errDuplicateLink = errors.New("these publications are already linked")
	errTargetDraft   = errors.New("the target publication is not live")
)

// ------------------------------
// POST /publications/:id/link
// ------------------------------
func CreateLink(c *gin.Context) {
	id := c.Param("id")

	var req CreateLinkRequest
	if err := httpx.BindStrictJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if req.To == id {
		c.JSON(http.StatusBadRequest, gin.H{"error": errSelfLink.Error()})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		from, err := getPublication(tx, id)
		if err != nil {
			return err
		}
		// co-authors may grow the chain from a publication they share
		if !publications.IsAuthor(from, userID) && !publications.IsCoAuthor(from, userID) {
			return publications.ErrNotAuthor
		}

		var to publications.Publication
		if err := tx.First(&to, "id = ?", req.To).Error; err != nil {
			return err
		}
		if to.CurrentStatus != publications.StatusLive {
			return errTargetDraft
		}

		var existing links.Link
		err = tx.First(&existing, "publication_from_id = ? AND publication_to_id = ?", id, req.To).Error
		if err == nil {
			return errDuplicateLink
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		link := links.Link{PublicationFromID: id, PublicationToID: req.To}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}

		c.JSON(http.StatusCreated, gin.H{"id": link.ID})
		return nil
	})
	if err != nil {
		switch err {
		case errTargetDraft, errDuplicateLink:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			respondPublicationError(c, err)
		}
	}
}

// ------------------------------
// DELETE /publications/:id/link/:linkId  (author only, DRAFT only)
// ------------------------------
func DeleteLink(c *gin.Context) {
	id := c.Param("id")
	linkID := c.Param("linkId")

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

		res := tx.Where("id = ? AND publication_from_id = ?", linkID, id).Delete(&links.Link{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		respondPublicationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
