package handlers

import (
	"context"
	"net/http"
	"regexp"

	"share-meal-api-server/internal/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FoodHandler struct {
	Store *store.Store
}

// featuredFoodLimit caps the home-page listing.
const featuredFoodLimit = 6

// GetFeaturedFoods returns the home-page listings: highest quantity first,
// at most featuredFoodLimit of them.
func (h *FoodHandler) GetFeaturedFoods(c *gin.Context) {
	opts := options.Find().
		SetSort(bson.D{{Key: "food_quantity", Value: -1}}).
		SetLimit(featuredFoodLimit)

	foods, err := h.Store.Foods.FindMany(context.Background(), bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query foods"})
		return
	}

	c.JSON(http.StatusOK, foods)
}

// GetAvailableFoods returns every listing, no sort, no cap.
func (h *FoodHandler) GetAvailableFoods(c *gin.Context) {
	foods, err := h.Store.Foods.FindMany(context.Background(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query foods"})
		return
	}

	c.JSON(http.StatusOK, foods)
}

// CreateFood persists the request body as a listing, verbatim. No field is
// required; absent fields stay absent.
func (h *FoodHandler) CreateFood(c *gin.Context) {
	var data bson.M
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Store.Foods.InsertOne(context.Background(), data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create food"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetFoodByID returns a single listing, or a JSON null body when the id
// matches nothing.
func (h *FoodHandler) GetFoodByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid food ID"})
		return
	}

	food, err := h.Store.Foods.FindOne(context.Background(), id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusOK, nil)
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve food"})
		}
		return
	}

	c.JSON(http.StatusOK, food)
}

// UpdateFood shallow-merges the body fields into the listing: only the named
// top-level fields are replaced.
func (h *FoodHandler) UpdateFood(c *gin.Context) {
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

	// The identity is immutable once assigned.
	delete(data, "_id")

	result, err := h.Store.Foods.UpdateOne(context.Background(), id, data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update food"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "result": result})
}

// DeleteFood removes a listing. Deleting an already-deleted id reports a
// zero DeletedCount, not an error.
func (h *FoodHandler) DeleteFood(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid food ID"})
		return
	}

	result, err := h.Store.Foods.DeleteOne(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete food"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ManageFoods lists the listings created by the email given in the query
// string. The gate has verified the token by the time this runs; the email
// filter is taken from the query string as-is and is not checked against
// the token subject.
func (h *FoodHandler) ManageFoods(c *gin.Context) {
	email := c.Query("email")

	foods, err := h.Store.Foods.FindMany(context.Background(), bson.M{"created_by": email})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query foods"})
		return
	}

	c.JSON(http.StatusOK, foods)
}

// searchFilter builds a case-insensitive substring match on food_name.
// User text is quoted so regex metacharacters match literally.
func searchFilter(text string) bson.M {
	return bson.M{"food_name": bson.M{"$regex": regexp.QuoteMeta(text), "$options": "i"}}
}

// SearchFoods returns the listings whose name contains the search term,
// case-insensitively.
func (h *FoodHandler) SearchFoods(c *gin.Context) {
	foods, err := h.Store.Foods.FindMany(context.Background(), searchFilter(c.Query("search")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search foods"})
		return
	}

	c.JSON(http.StatusOK, foods)
}
