package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	store "github.com/phillip/pet-adoption-go/store"
)

const (
	opTimeout   = 5 * time.Second
	listTimeout = 10 * time.Second
)

func opContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), opTimeout)
}

func listContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), listTimeout)
}

// objectID parses a path parameter, answering 400 when it is not a valid id.
func objectID(c *gin.Context, param string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + param})
		return primitive.NilObjectID, false
	}
	return oid, true
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// storeFailure logs the driver error and answers a generic 500.
func (app *App) storeFailure(c *gin.Context, msg string, err error) {
	_ = c.Error(err)
	app.Logger.Error(msg, "error", err, "path", c.FullPath())
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

// updateFailure answers 400 for an empty update and 500 otherwise.
func (app *App) updateFailure(c *gin.Context, msg string, err error) {
	if errors.Is(err, store.ErrNoFields) {
		badRequest(c, err)
		return
	}
	app.storeFailure(c, msg, err)
}

func insertResponse(res *mongo.InsertOneResult) gin.H {
	return gin.H{"acknowledged": true, "insertedId": res.InsertedID}
}

func updateResponse(res *mongo.UpdateResult) gin.H {
	return gin.H{
		"acknowledged":  true,
		"matchedCount":  res.MatchedCount,
		"modifiedCount": res.ModifiedCount,
		"upsertedCount": res.UpsertedCount,
		"upsertedId":    res.UpsertedID,
	}
}

func deleteResponse(res *mongo.DeleteResult) gin.H {
	return gin.H{"acknowledged": true, "deletedCount": res.DeletedCount}
}
