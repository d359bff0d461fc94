package users

import (
	"net/http"

	"publications-app/database"
	"publications-app/internal/domain/bookmarks"
	"publications-app/internal/domain/publications"
	"publications-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// ------------------------------
// GET /me
// ------------------------------
func GetCurrentUser(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var publicationCount, bookmarkCount int64
	database.DB.Model(&publications.Publication{}).Where("user_id = ?", userID).Count(&publicationCount)
	database.DB.Model(&bookmarks.Bookmark{}).Where("user_id = ?", userID).Count(&bookmarkCount)

	c.JSON(http.StatusOK, MeResponse{
		User:         buildUserDTO(&user, true),
		Publications: publicationCount,
		Bookmarks:    bookmarkCount,
	})
}

// ------------------------------
// GET /users/:id  (public profile, LIVE publications only)
// ------------------------------
func GetUserProfile(c *gin.Context) {
	id := c.Param("id")

	var user users.User
	if err := database.DB.First(&user, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "This user does not exist."})
		return
	}

	var pubs []publications.Publication
	if err := database.DB.
		Select("id, type, title").
		Where("user_id = ? AND current_status = ?", id, publications.StatusLive).
		Order("updated_at DESC").
		Find(&pubs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load publications"})
		return
	}

	resp := ProfileResponse{
		User:         buildUserDTO(&user, false),
		Publications: make([]ProfilePublicationDTO, 0, len(pubs)),
	}
	for _, p := range pubs {
		resp.Publications = append(resp.Publications, ProfilePublicationDTO{
			ID:    p.ID,
			Type:  string(p.Type),
			Title: p.Title,
		})
	}

	c.JSON(http.StatusOK, resp)
}
