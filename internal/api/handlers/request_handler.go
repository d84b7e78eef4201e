package handlers

import (
	"context"
	"net/http"

	"share-meal-api-server/internal/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RequestHandler struct {
	Store *store.Store
}

// CreateRequest records a claim against the listing named in the path and
// bumps that listing's claim counter. The two writes are separate store
// operations: if the counter update fails after the insert succeeded, the
// insert stands and the response carries both outcomes.
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid food ID"})
		return
	}

	var data bson.M
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	insertResult, err := h.Store.Requests.InsertOne(context.Background(), data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create request"})
		return
	}

	counterResult, err := h.Store.Foods.IncrementField(context.Background(), id, "requiests", 1)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":        "Request created but counting it failed",
			"insertResult": insertResult,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"insertResult":        insertResult,
		"counterUpdateResult": counterResult,
	})
}

// MyRequests lists the claims made by the email given in the query string.
// Same as ManageFoods, the email is not checked against the token subject.
func (h *RequestHandler) MyRequests(c *gin.Context) {
	email := c.Query("email")

	requests, err := h.Store.Requests.FindMany(context.Background(), bson.M{"requester_email": email})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query requests"})
		return
	}

	c.JSON(http.StatusOK, requests)
}
