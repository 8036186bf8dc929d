package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	models "github.com/phillip/pet-adoption-go/models"
	store "github.com/phillip/pet-adoption-go/store"
)

// ---------------- CREATE ----------------
func CreateCampaign(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CreateCampaignInput
		if err := c.ShouldBindJSON(&input); err != nil {
			badRequest(c, err)
			return
		}

		campaign := models.DonationCampaign{
			PetName:           input.PetName,
			PetImage:          input.PetImage,
			DonationLastDate:  input.DonationLastDate,
			MaxDonationAmount: input.MaxDonationAmount,
			DonatedAmount:     0,
			Status:            models.CampaignActive,
			SortDescription:   input.SortDescription,
			LongDescription:   input.LongDescription,
			DonationCreator:   input.DonationCreator,
		}

		ctx, cancel := opContext(c)
		defer cancel()

		res, err := app.Campaigns.Insert(ctx, campaign)
		if err != nil {
			app.storeFailure(c, "could not create campaign", err)
			return
		}
		c.JSON(http.StatusOK, insertResponse(res))
	}
}

// ---------------- LIST ----------------
func ListCampaigns(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := listContext(c)
		defer cancel()

		campaigns, err := app.Campaigns.List(ctx)
		if err != nil {
			app.storeFailure(c, "could not fetch campaigns", err)
			return
		}
		c.JSON(http.StatusOK, campaigns)
	}
}

// ---------------- RECOMMEND ----------------
func RecommendCampaigns(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := listContext(c)
		defer cancel()

		campaigns, err := app.Campaigns.Sample(ctx, store.RecommendSize)
		if err != nil {
			app.storeFailure(c, "could not fetch campaigns", err)
			return
		}
		c.JSON(http.StatusOK, campaigns)
	}
}

// ---------------- GET ----------------
func GetCampaign(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectID(c, "id")
		if !ok {
			return
		}

		ctx, cancel := opContext(c)
		defer cancel()

		campaign, err := app.Campaigns.FindByID(ctx, id)
		if err != nil {
			app.storeFailure(c, "could not fetch campaign", err)
			return
		}
		c.JSON(http.StatusOK, campaign)
	}
}

// ---------------- LIST BY CREATOR ----------------
func MyCampaigns(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := listContext(c)
		defer cancel()

		campaigns, err := app.Campaigns.FindByCreator(ctx, c.Param("email"))
		if err != nil {
			app.storeFailure(c, "could not fetch campaigns", err)
			return
		}
		c.JSON(http.StatusOK, campaigns)
	}
}

// ---------------- UPDATE ----------------
func UpdateCampaign(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectID(c, "id")
		if !ok {
			return
		}

		var input models.UpdateCampaignInput
		if err := c.ShouldBindJSON(&input); err != nil {
			badRequest(c, err)
			return
		}

		ctx, cancel := opContext(c)
		defer cancel()

		res, err := app.Campaigns.Update(ctx, id, input)
		if err != nil {
			app.updateFailure(c, "could not update campaign", err)
			return
		}
		c.JSON(http.StatusOK, updateResponse(res))
	}
}

// ---------------- DONATED AMOUNT ----------------
func UpdateDonatedAmount(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectID(c, "id")
		if !ok {
			return
		}

		var input models.DonatedAmountInput
		if err := c.ShouldBindJSON(&input); err != nil {
			badRequest(c, err)
			return
		}

		ctx, cancel := opContext(c)
		defer cancel()

		res, err := app.Campaigns.SetDonatedAmount(ctx, id, *input.DonatedAmount)
		if err != nil {
			app.storeFailure(c, "could not update campaign", err)
			return
		}
		c.JSON(http.StatusOK, updateResponse(res))
	}
}

// ---------------- STATUS ----------------
func UpdateCampaignStatus(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectID(c, "id")
		if !ok {
			return
		}

		var input models.CampaignStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			badRequest(c, err)
			return
		}

		ctx, cancel := opContext(c)
		defer cancel()

		res, err := app.Campaigns.SetStatus(ctx, id, input.Status)
		if err != nil {
			app.storeFailure(c, "could not update campaign", err)
			return
		}
		c.JSON(http.StatusOK, updateResponse(res))
	}
}

// ---------------- DELETE ----------------
// Donation history that references the campaign is kept.
func DeleteCampaign(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectID(c, "id")
		if !ok {
			return
		}

		ctx, cancel := opContext(c)
		defer cancel()

		var image string
		if app.Images != nil {
			if campaign, err := app.Campaigns.FindByID(ctx, id); err == nil && campaign != nil {
				image = campaign.PetImage
			}
		}

		res, err := app.Campaigns.Delete(ctx, id)
		if err != nil {
			app.storeFailure(c, "could not delete campaign", err)
			return
		}

		if image != "" && res.DeletedCount > 0 {
			app.removeImage(c, image)
		}
		c.JSON(http.StatusOK, deleteResponse(res))
	}
}
