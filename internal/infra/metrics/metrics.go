package metrics

import (
	"publications-app/internal/domain/bookmarks"
	"publications-app/internal/domain/publications"
	"publications-app/internal/domain/users"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

var (
	PublicationsPublished = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "publications_published_total",
		Help: "Total number of publications moved from DRAFT to LIVE.",
	})

	BookmarksCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bookmarks_created_total",
		Help: "Total number of bookmarks created.",
	})

	livePublications = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "publications_live",
		Help: "Current number of live publications.",
	})

	registeredUsers = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "users_registered",
		Help: "Current number of registered users.",
	})

	activeBookmarks = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "bookmarks_active",
		Help: "Current number of bookmarks.",
	})
)

func init() {
	prometheus.MustRegister(
		PublicationsPublished,
		BookmarksCreated,
		livePublications,
		registeredUsers,
		activeBookmarks,
	)
}

// RefreshPlatformGauges recounts the platform-level gauges. Run from the
// stats cron job.
func RefreshPlatformGauges(db *gorm.DB) error {
	var live, userCount, bookmarkCount int64

	if err := db.Model(&publications.Publication{}).
		Where("current_status = ?", publications.StatusLive).
		Count(&live).Error; err != nil {
		return err
	}
	if err := db.Model(&users.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if err := db.Model(&bookmarks.Bookmark{}).Count(&bookmarkCount).Error; err != nil {
		return err
	}

	livePublications.Set(float64(live))
	registeredUsers.Set(float64(userCount))
	activeBookmarks.Set(float64(bookmarkCount))
	return nil
}
