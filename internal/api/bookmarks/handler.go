package bookmarks

import (
	"net/http"

	"publications-app/database"
	"publications-app/internal/domain/bookmarks"
	"publications-app/internal/domain/publications"
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

// loadLivePublication applies the shared bookmark preconditions: the
// publication must exist and must not be a draft. Both failures read as 404
// so drafts stay indistinguishable from missing publications.
func loadLivePublication(c *gin.Context, id string) (*publications.Publication, bool) {
	var p publications.Publication
	if err := database.DB.Preload("CoAuthors").Preload("User").First(&p, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "This publication does not exist."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unknown server error."})
		}
		return nil, false
	}

	if p.CurrentStatus == publications.StatusDraft {
		c.JSON(http.StatusNotFound, gin.H{"error": "You cannot bookmark a draft publication."})
		return nil, false
	}

	return &p, true
}

// ------------------------------
// POST /publications/:id/bookmark
// ------------------------------
func Create(c *gin.Context) {
	id := c.Param("id")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	p, ok := loadLivePublication(c, id)
	if !ok {
		return
	}

	var existing bookmarks.Bookmark
	err := database.DB.First(&existing, "publication_id = ? AND user_id = ?", id, userID).Error
	if err == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "You have already bookmarked this publication."})
		return
	}
	if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unknown server error."})
		return
	}

	if publications.IsAuthor(p, userID) || publications.IsCoAuthor(p, userID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "You cannot bookmark a publication you have authored or co-authored."})
		return
	}

	bookmark := bookmarks.Bookmark{PublicationID: id, UserID: userID}
	if err := database.DB.Create(&bookmark).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unknown server error."})
		return
	}

	metrics.BookmarksCreated.Inc()
	c.JSON(http.StatusOK, gin.H{"message": "You have bookmarked this publication."})
}

// ------------------------------
// DELETE /publications/:id/bookmark
// ------------------------------
func Remove(c *gin.Context) {
	id := c.Param("id")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if _, ok := loadLivePublication(c, id); !ok {
		return
	}

	var existing bookmarks.Bookmark
	err := database.DB.First(&existing, "publication_id = ? AND user_id = ?", id, userID).Error
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "You have already deleted the bookmark for this publication."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unknown server error."})
		return
	}

	if err := database.DB.Delete(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unknown server error."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bookmark removed."})
}

// ------------------------------
// GET /bookmarks
// ------------------------------

type BookmarkedPublicationDTO struct {
	BookmarkID    string              `json:"bookmarkId"`
	PublicationID string              `json:"publicationId"`
	Type          publications.Type   `json:"type"`
	Title         string              `json:"title"`
	CurrentStatus publications.Status `json:"currentStatus"`
}

func List(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var rows []bookmarks.Bookmark
	if err := database.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bookmarks"})
		return
	}

	out := make([]BookmarkedPublicationDTO, 0, len(rows))
	for _, b := range rows {
		var p publications.Publication
		if err := database.DB.Select("id, type, title, current_status").
			First(&p, "id = ?", b.PublicationID).Error; err != nil {
			continue
		}
		out = append(out, BookmarkedPublicationDTO{
			BookmarkID:    b.ID,
			PublicationID: p.ID,
			Type:          p.Type,
			Title:         p.Title,
			CurrentStatus: p.CurrentStatus,
		})
	}

	c.JSON(http.StatusOK, out)
}
