package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	middleware "github.com/phillip/pet-adoption-go/middleware"
	models "github.com/phillip/pet-adoption-go/models"
)

func Home(c *gin.Context) {
	c.String(http.StatusOK, "Server is running")
}

// ---------------- ISSUE SESSION ----------------
func IssueToken(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.SessionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			badRequest(c, err)
			return
		}

		token, err := app.Tokens.Issue(input.Email)
		if err != nil {
			app.Logger.Error("issue session token", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session"})
			return
		}

		c.SetSameSite(app.Config.CookieSameSite())
		c.SetCookie(middleware.SessionCookie, token, int(app.Tokens.TTL().Seconds()), "/", "",
			app.Config.CookieSecure(), true)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// ---------------- LOGOUT ----------------
func Logout(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetSameSite(app.Config.CookieSameSite())
		c.SetCookie(middleware.SessionCookie, "", -1, "/", "", app.Config.CookieSecure(), true)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
