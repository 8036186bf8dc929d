package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	models "github.com/phillip/pet-adoption-go/models"
	store "github.com/phillip/pet-adoption-go/store"
)

// ---------------- CREATE ----------------
func CreateUser(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CreateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			badRequest(c, err)
			return
		}

		ctx, cancel := opContext(c)
		defer cancel()

		res, err := app.Users.Create(ctx, models.User{
			Email: strings.TrimSpace(input.Email),
			Name:  input.Name,
			Photo: input.Photo,
		})
		if errors.Is(err, store.ErrUserExists) {
			c.JSON(http.StatusOK, gin.H{"message": "user already exist!", "insertedId": nil})
			return
		}
		if err != nil {
			app.storeFailure(c, "could not create user", err)
			return
		}

		c.JSON(http.StatusOK, insertResponse(res))
	}
}

// ---------------- LIST ----------------
func ListUsers(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := listContext(c)
		defer cancel()

		users, err := app.Users.List(ctx)
		if err != nil {
			app.storeFailure(c, "could not fetch users", err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// ---------------- GET BY EMAIL ----------------
func GetUserByEmail(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := opContext(c)
		defer cancel()

		email := strings.TrimSpace(c.Param("email"))
		user, err := app.Users.FindByEmail(ctx, email)
		if err != nil {
			app.storeFailure(c, "could not fetch user", err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// ---------------- MAKE ADMIN ----------------
func MakeAdmin(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectID(c, "id")
		if !ok {
			return
		}

		ctx, cancel := opContext(c)
		defer cancel()

		res, err := app.Users.SetRole(ctx, id, models.RoleAdmin)
		if err != nil {
			app.updateFailure(c, "could not update user role", err)
			return
		}
		c.JSON(http.StatusOK, updateResponse(res))
	}
}
