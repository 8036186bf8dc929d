package controllers

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	models "github.com/phillip/pet-adoption-go/models"
	utils "github.com/phillip/pet-adoption-go/utils"
)

// maxPrice keeps the cent amount well inside int64.
const maxPrice = float64(math.MaxInt64 / 1000)

// ---------------- PAYMENT INTENT ----------------
func CreatePaymentIntent(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.PaymentIntentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			badRequest(c, err)
			return
		}

		price, ok := parsePrice(input.Price)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must be a positive number"})
			return
		}
		if price > maxPrice {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price is too large"})
			return
		}
		amount := utils.ToMinorUnits(price)
		if amount < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must be at least 0.01"})
			return
		}

		ctx, cancel := opContext(c)
		defer cancel()

		secret, err := app.Payments.CreatePaymentIntent(ctx, amount, utils.PaymentCurrency)
		if err != nil {
			app.Logger.Error("payment intent failed", "amount", amount, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
	}
}

// parsePrice accepts a JSON number or a numeric string and requires it to be
// finite and positive.
func parsePrice(raw any) (float64, bool) {
	var price float64
	switch v := raw.(type) {
	case float64:
		price = v
	case string:
		p, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		price = p
	default:
		return 0, false
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return 0, false
	}
	return price, true
}
