package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	models "github.com/phillip/pet-adoption-go/models"
)

// ---------------- CREATE ----------------
func CreatePet(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CreatePetInput
		if err := c.ShouldBindJSON(&input); err != nil {
			badRequest(c, err)
			return
		}

		pet := models.Pet{
			Name:             input.Name,
			Category:         input.Category,
			Age:              input.Age,
			Location:         input.Location,
			Image:            input.Image,
			ShortDescription: input.ShortDescription,
			LongDescription:  input.LongDescription,
			Email:            input.Email,
			Adopted:          false,
		}

		ctx, cancel := opContext(c)
		defer cancel()

		res, err := app.Pets.Insert(ctx, pet)
		if err != nil {
			app.storeFailure(c, "could not create pet", err)
			return
		}
		c.JSON(http.StatusOK, insertResponse(res))
	}
}

// ---------------- LIST ----------------
// Query: search (name substring, case-insensitive), filter or category
// (exact), adopted (true|false). All given filters must match.
func ListPets(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := models.PetFilter{
			Search:   strings.TrimSpace(c.Query("search")),
			Category: c.Query("filter"),
		}
		if category := c.Query("category"); category != "" {
			filter.Category = category
		}
		if raw := c.Query("adopted"); raw != "" {
			adopted, err := strconv.ParseBool(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "adopted must be true or false"})
				return
			}
			filter.Adopted = &adopted
		}

		ctx, cancel := listContext(c)
		defer cancel()

		pets, err := app.Pets.Find(ctx, filter)
		if err != nil {
			app.storeFailure(c, "could not fetch pets", err)
			return
		}
		c.JSON(http.StatusOK, pets)
	}
}

// ---------------- LIST BY OWNER ----------------
func MyPets(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := listContext(c)
		defer cancel()

		pets, err := app.Pets.FindByOwner(ctx, c.Param("email"))
		if err != nil {
			app.storeFailure(c, "could not fetch pets", err)
			return
		}
		c.JSON(http.StatusOK, pets)
	}
}

// ---------------- GET ----------------
func GetPet(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectID(c, "id")
		if !ok {
			return
		}

		ctx, cancel := opContext(c)
		defer cancel()

		pet, err := app.Pets.FindByID(ctx, id)
		if err != nil {
			app.storeFailure(c, "could not fetch pet", err)
			return
		}
		c.JSON(http.StatusOK, pet)
	}
}

// ---------------- UPDATE ----------------
func UpdatePet(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectID(c, "id")
		if !ok {
			return
		}

		var input models.UpdatePetInput
		if err := c.ShouldBindJSON(&input); err != nil {
			badRequest(c, err)
			return
		}

		ctx, cancel := opContext(c)
		defer cancel()

		res, err := app.Pets.Update(ctx, id, input)
		if err != nil {
			app.updateFailure(c, "could not update pet", err)
			return
		}
		c.JSON(http.StatusOK, updateResponse(res))
	}
}

// ---------------- ADOPTED FLAG ----------------
func SetPetAdopted(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectID(c, "id")
		if !ok {
			return
		}

		var input models.AdoptedInput
		if err := c.ShouldBindJSON(&input); err != nil {
			badRequest(c, err)
			return
		}

		ctx, cancel := opContext(c)
		defer cancel()

		res, err := app.Pets.SetAdopted(ctx, id, *input.Adopted)
		if err != nil {
			app.storeFailure(c, "could not update pet", err)
			return
		}
		c.JSON(http.StatusOK, updateResponse(res))
	}
}

// ---------------- DELETE ----------------
func DeletePet(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectID(c, "id")
		if !ok {
			return
		}

		ctx, cancel := opContext(c)
		defer cancel()

		// Looked up first only to find the hosted image to clean up.
		var image string
		if app.Images != nil {
			if pet, err := app.Pets.FindByID(ctx, id); err == nil && pet != nil {
				image = pet.Image
			}
		}

		res, err := app.Pets.Delete(ctx, id)
		if err != nil {
			app.storeFailure(c, "could not delete pet", err)
			return
		}

		if image != "" && res.DeletedCount > 0 {
			app.removeImage(c, image)
		}
		c.JSON(http.StatusOK, deleteResponse(res))
	}
}
