package publications

import (
	"errors"
	"net/http"

	"publications-app/database"
	"publications-app/internal/api/httpx"
	"publications-app/internal/domain/publications"
	"publications-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	errAlreadyCoAuthor = errors.New("this user is already a co-author")
	errAuthorAsCo      = errors.New("the author cannot be added as a co-author")
	errNoAccount       = errors.New("no account was found for that email address")
)

// ------------------------------
// POST /publications/:id/coauthor  (author only, DRAFT only)
// ------------------------------
func CreateCoAuthor(c *gin.Context) {
	id := c.Param("id")

	var req CreateCoAuthorRequest
	if err := httpx.BindStrictJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		p, err := getPublication(tx, id)
		if err != nil {
			return err
		}
		if err := publications.CanEdit(p, userID); err != nil {
			return err
		}

		var coAuthor users.User
		if err := tx.First(&coAuthor, "email = ?", req.Email).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errNoAccount
			}
			return err
		}
		if coAuthor.ID == p.UserID {
			return errAuthorAsCo
		}
		if publications.IsCoAuthor(p, coAuthor.ID) {
			return errAlreadyCoAuthor
		}

		return tx.Model(p).Association("CoAuthors").Append(&coAuthor)
	})
	if err != nil {
		switch err {
		case errAlreadyCoAuthor, errAuthorAsCo:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errNoAccount:
			c.JSON(http.StatusNotFound, gin.H{"error": "No account was found for that email address."})
		default:
			respondPublicationError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ------------------------------
// DELETE /publications/:id/coauthor/:userId  (author only, DRAFT only)
// ------------------------------
func RemoveCoAuthor(c *gin.Context) {
	id := c.Param("id")
	coAuthorID := c.Param("userId")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		p, err := getPublication(tx, id)
		if err != nil {
			return err
		}
		if err := publications.CanEdit(p, userID); err != nil {
			return err
		}
		if !publications.IsCoAuthor(p, coAuthorID) {
			return gorm.ErrRecordNotFound
		}

		return tx.Model(p).Association("CoAuthors").Delete(&users.User{ID: coAuthorID})
	})
	if err != nil {
		respondPublicationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
