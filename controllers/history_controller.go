package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "github.com/phillip/pet-adoption-go/models"
)

// ---------------- CREATE ----------------
func CreateDonationHistory(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CreateDonationHistoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			badRequest(c, err)
			return
		}
		campaignID, err := primitive.ObjectIDFromHex(input.CampaignID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaignId"})
			return
		}

		record := models.DonationHistory{
			CampaignID:       campaignID,
			PetName:          input.PetName,
			PetImage:         input.PetImage,
			DonationCreator:  input.DonationCreator,
			PaymentUserEmail: input.PaymentUserEmail,
			PaymentUserName:  input.PaymentUserName,
			Amount:           input.Amount,
			TransactionID:    input.TransactionID,
		}

		ctx, cancel := opContext(c)
		defer cancel()

		res, err := app.History.Insert(ctx, record)
		if err != nil {
			app.storeFailure(c, "could not save donation", err)
			return
		}
		c.JSON(http.StatusOK, insertResponse(res))
	}
}

// ---------------- DONATIONS MADE BY USER ----------------
func MyDonationHistory(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := listContext(c)
		defer cancel()

		records, err := app.History.FindByPayer(ctx, c.Param("email"))
		if err != nil {
			app.storeFailure(c, "could not fetch donations", err)
			return
		}
		c.JSON(http.StatusOK, records)
	}
}

// ---------------- DONATIONS RECEIVED BY CREATOR ----------------
func CampaignDonationData(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := listContext(c)
		defer cancel()

		records, err := app.History.FindByCreator(ctx, c.Param("email"))
		if err != nil {
			app.storeFailure(c, "could not fetch donations", err)
			return
		}
		c.JSON(http.StatusOK, records)
	}
}

// ---------------- DELETE ----------------
func RemoveDonationHistory(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectID(c, "id")
		if !ok {
			return
		}

		ctx, cancel := opContext(c)
		defer cancel()

		res, err := app.History.Delete(ctx, id)
		if err != nil {
			app.storeFailure(c, "could not delete donation", err)
			return
		}
		c.JSON(http.StatusOK, deleteResponse(res))
	}
}
