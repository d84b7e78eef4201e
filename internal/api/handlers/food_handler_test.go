package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"share-meal-api-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

// handlerRouter wires the handlers to an empty store. Only paths that fail
// before reaching the database are exercised here; everything else needs a
// live Mongo instance.
func handlerRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	st := &store.Store{}
	foodHandler := &FoodHandler{Store: st}
	requestHandler := &RequestHandler{Store: st}

	router := gin.New()
	router.GET("/foods/:id", foodHandler.GetFoodByID)
	router.PUT("/foods/:id", foodHandler.UpdateFood)
	router.DELETE("/foods/:id", foodHandler.DeleteFood)
	router.POST("/requiests/:id", requestHandler.CreateRequest)
	return router
}

func TestInvalidObjectIDReturnsBadRequest(t *testing.T) {
	router := handlerRouter()

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/foods/abc123"},
		{http.MethodPut, "/foods/not-hex"},
		{http.MethodDelete, "/foods/123"},
		{http.MethodPost, "/requiests/abc123"},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "%s %s", tc.method, tc.path)
		assert.JSONEq(t, `{"error": "Invalid food ID"}`, w.Body.String())
	}
}

func TestSearchFilterEscapesMetacharacters(t *testing.T) {
	filter := searchFilter("rice.*")

	nameFilter, ok := filter["food_name"].(bson.M)
	assert.True(t, ok)
	assert.Equal(t, `rice\.\*`, nameFilter["$regex"])
	assert.Equal(t, "i", nameFilter["$options"])
}

func TestSearchFilterPlainText(t *testing.T) {
	filter := searchFilter("rice")

	nameFilter := filter["food_name"].(bson.M)
	assert.Equal(t, "rice", nameFilter["$regex"])
	assert.Equal(t, "i", nameFilter["$options"])
}
