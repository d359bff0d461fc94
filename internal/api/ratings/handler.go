package ratings

import (
	"fmt"
	"net/http"

	"publications-app/database"
	"publications-app/internal/api/httpx"
	"publications-app/internal/domain/publications"
	"publications-app/internal/domain/ratings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateRatingRequest struct {
	Category string `json:"category" binding:"required"`
	Rating   int    `json:"rating" binding:"required"`
}

// ------------------------------
// POST /publications/:id/rating
//
// Upserts the caller's rating for one category of a live publication.
// Authors and co-authors cannot rate their own work.
// ------------------------------
func Create(c *gin.Context) {
	id := c.Param("id")

	var req CreateRatingRequest
	if err := httpx.BindStrictJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if req.Rating < ratings.MinValue || req.Rating > ratings.MaxValue {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Rating must be between %d and %d", ratings.MinValue, ratings.MaxValue),
		})
		return
	}

	var p publications.Publication
	if err := database.DB.Preload("CoAuthors").First(&p, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "This publication does not exist."})
		return
	}
	if p.CurrentStatus != publications.StatusLive {
		c.JSON(http.StatusNotFound, gin.H{"error": "This publication does not exist."})
		return
	}
	if publications.IsAuthor(&p, userID) || publications.IsCoAuthor(&p, userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You cannot rate a publication you have authored or co-authored."})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var existing ratings.Rating
		err := tx.First(&existing,
			"publication_id = ? AND user_id = ? AND category = ?", id, userID, req.Category).Error
		if err == gorm.ErrRecordNotFound {
			return tx.Create(&ratings.Rating{
				PublicationID: id,
				UserID:        userID,
				Category:      req.Category,
				Rating:        req.Rating,
			}).Error
		}
		if err != nil {
			return err
		}
		return tx.Model(&existing).Update("rating", req.Rating).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unknown server error."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
