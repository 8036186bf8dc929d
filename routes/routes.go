package routes

import (
	"github.com/gin-gonic/gin"

	controllers "github.com/phillip/pet-adoption-go/controllers"
	middleware "github.com/phillip/pet-adoption-go/middleware"
)

// SetupRoutes registers the whole API. Which routes sit behind the session
// gate is part of the API contract; some similar reads are public on purpose.
func SetupRoutes(r *gin.Engine, app *controllers.App) {
	auth := middleware.AuthMiddleware(app.Tokens)

	r.GET("/", controllers.Home)

	// session
	r.POST("/jwt", controllers.IssueToken(app))
	r.POST("/logout", controllers.Logout(app))

	// users
	r.POST("/users", controllers.CreateUser(app))
	r.GET("/users", auth, controllers.ListUsers(app))
	r.GET("/users/role/:email", controllers.GetUserByEmail(app))
	r.PATCH("/user-role/:id", auth, controllers.MakeAdmin(app))

	// pets
	r.GET("/pets", controllers.ListPets(app))
	r.POST("/pets", controllers.CreatePet(app))
	r.PUT("/pets/:id", auth, controllers.UpdatePet(app))
	r.PATCH("/pets/:id/adopted", auth, controllers.SetPetAdopted(app))
	r.DELETE("/pets/:id", auth, controllers.DeletePet(app))
	r.GET("/my-pet/:email", auth, controllers.MyPets(app))
	r.GET("/pet/:id", auth, controllers.GetPet(app))
	r.POST("/upload-image", auth, controllers.UploadImage(app))

	// adoption requests
	r.POST("/adoptionRequest", auth, controllers.CreateAdoptionRequest(app))
	r.GET("/adoptionRequest/:email", controllers.ListAdoptionRequests(app))
	r.PATCH("/adoptionRequest/:id", auth, controllers.UpdateAdoptionStatus(app))

	// donation campaigns
	r.POST("/donationsCampaign", auth, controllers.CreateCampaign(app))
	r.PATCH("/donationsCampaign/:id", auth, controllers.UpdateCampaign(app))
	r.DELETE("/donationsCampaign/:id", auth, controllers.DeleteCampaign(app))
	r.PATCH("/donationAmountUpdate/:id", auth, controllers.UpdateDonatedAmount(app))
	r.PATCH("/donationStatus/:id", auth, controllers.UpdateCampaignStatus(app))
	r.GET("/donations", controllers.ListCampaigns(app))
	r.GET("/donations-recommend", controllers.RecommendCampaigns(app))
	r.GET("/donations/:id", controllers.GetCampaign(app))
	r.GET("/my-donation/:email", auth, controllers.MyCampaigns(app))

	// donation history
	r.POST("/donationsHistory", auth, controllers.CreateDonationHistory(app))
	r.GET("/my-donations-history/:email", auth, controllers.MyDonationHistory(app))
	r.GET("/campaign-donation-data/:email", auth, controllers.CampaignDonationData(app))
	r.DELETE("/my-donations-remove/:id", auth, controllers.RemoveDonationHistory(app))

	// payments
	r.POST("/create-payment-intent", controllers.CreatePaymentIntent(app))
}
