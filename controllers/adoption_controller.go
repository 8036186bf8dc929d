package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "github.com/phillip/pet-adoption-go/models"
	utils "github.com/phillip/pet-adoption-go/utils"
)

// ---------------- CREATE ----------------
func CreateAdoptionRequest(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CreateAdoptionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			badRequest(c, err)
			return
		}
		petID, err := primitive.ObjectIDFromHex(input.PetID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid petId"})
			return
		}

		request := models.AdoptionRequest{
			PetID:          petID,
			PetName:        input.PetName,
			PetImage:       input.PetImage,
			HostEmail:      input.HostEmail,
			RequesterName:  input.RequesterName,
			RequesterEmail: input.RequesterEmail,
			Phone:          input.Phone,
			Address:        input.Address,
			Status:         models.AdoptionPending,
		}

		ctx, cancel := opContext(c)
		defer cancel()

		res, err := app.Adoptions.Insert(ctx, request)
		if err != nil {
			app.storeFailure(c, "could not create adoption request", err)
			return
		}

		requester := request.RequesterName
		if requester == "" {
			requester = request.RequesterEmail
		}
		subject, body := utils.AdoptionRequestedEmail(request.PetName, requester)
		app.notify(ctx, request.HostEmail, subject, body)

		c.JSON(http.StatusOK, insertResponse(res))
	}
}

// ---------------- LIST FOR HOST ----------------
func ListAdoptionRequests(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := listContext(c)
		defer cancel()

		requests, err := app.Adoptions.FindByHost(ctx, c.Param("email"))
		if err != nil {
			app.storeFailure(c, "could not fetch adoption requests", err)
			return
		}
		c.JSON(http.StatusOK, requests)
	}
}

// ---------------- STATUS ----------------
func UpdateAdoptionStatus(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectID(c, "id")
		if !ok {
			return
		}

		var input models.AdoptionStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			badRequest(c, err)
			return
		}

		ctx, cancel := opContext(c)
		defer cancel()

		res, err := app.Adoptions.SetStatus(ctx, id, input.Status)
		if err != nil {
			app.storeFailure(c, "could not update adoption request", err)
			return
		}

		if res.ModifiedCount > 0 {
			if request, err := app.Adoptions.FindByID(ctx, id); err == nil && request != nil {
				subject, body := utils.AdoptionStatusEmail(request.PetName, input.Status)
				app.notify(ctx, request.RequesterEmail, subject, body)
			}
		}

		c.JSON(http.StatusOK, updateResponse(res))
	}
}

// notify sends an email without failing the request.
func (app *App) notify(ctx context.Context, to, subject, body string) {
	if app.Mailer == nil || to == "" {
		return
	}
	if err := app.Mailer.Send(ctx, to, subject, body); err != nil {
		app.Logger.Warn("notification not sent", "to", to, "error", err)
	}
}
