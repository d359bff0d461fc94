package admin

import (
	"net/http"

	"publications-app/database"
	"publications-app/internal/domain/bookmarks"
	"publications-app/internal/domain/publications"
	"publications-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type AdminUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

type AdminStats struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalPublications int64 `json:"totalPublications"`
	LivePublications  int64 `json:"livePublications"`
	DraftPublications int64 `json:"draftPublications"`
	TotalBookmarks    int64 `json:"totalBookmarks"`
}

func AdminDashboard(c *gin.Context) {
	var stats AdminStats

	database.DB.Model(&users.User{}).Count(&stats.TotalUsers)
	database.DB.Model(&publications.Publication{}).Count(&stats.TotalPublications)
	database.DB.Model(&publications.Publication{}).
		Where("current_status = ?", publications.StatusLive).Count(&stats.LivePublications)
	stats.DraftPublications = stats.TotalPublications - stats.LivePublications
	database.DB.Model(&bookmarks.Bookmark{}).Count(&stats.TotalBookmarks)

	c.JSON(http.StatusOK, stats)
}

func ListAllUsers(c *gin.Context) {
	var all []users.User
	if err := database.DB.Order("created_at ASC").Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	out := make([]AdminUser, 0, len(all))
	for _, u := range all {
		out = append(out, AdminUser{
			ID:        u.ID,
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Role:      u.Role,
			CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	c.JSON(http.StatusOK, out)
}
