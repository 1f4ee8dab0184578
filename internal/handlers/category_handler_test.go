package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"agro-catalog/internal/models"
)

func newCategoryRouter(store *fakeCategoryStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewCategoryHandler(store)

	categories := router.Group("/api/categories")
	categories.POST("/add", h.AddCategory)
	categories.PUT("/update/:id", h.UpdateCategory)
	categories.DELETE("/delete/:id", h.DeleteCategory)
	categories.GET("/list", h.ListCategories)
	categories.GET("/detail/:id", h.CategoryDetails)

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAddCategory(t *testing.T) {
	store := &fakeCategoryStore{}
	router := newCategoryRouter(store)

	w := doJSON(t, router, http.MethodPost, "/api/categories/add",
		`{"name":"Insecticides","description":"Pest control products"}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message  string          `json:"message"`
		Category models.Category `json:"category"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Category added successfully", resp.Message)
	assert.Equal(t, "Insecticides", resp.Category.Name)
	assert.False(t, resp.Category.ID.IsZero())

	// round-trip: detail sobre el ID nuevo devuelve los mismos valores
	w = doJSON(t, router, http.MethodGet, "/api/categories/detail/"+resp.Category.ID.Hex(), "")
	assert.Equal(t, http.StatusOK, w.Code)

	var got models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, resp.Category, got)
}

func TestAddCategoryMissingName(t *testing.T) {
	store := &fakeCategoryStore{}
	router := newCategoryRouter(store)

	w := doJSON(t, router, http.MethodPost, "/api/categories/add",
		`{"description":"no name"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Category name is required")
	assert.Empty(t, store.categories)
}

func TestAddCategoryDuplicateName(t *testing.T) {
	store := &fakeCategoryStore{}
	router := newCategoryRouter(store)

	w := doJSON(t, router, http.MethodPost, "/api/categories/add", `{"name":"Herbicides"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/categories/add", `{"name":"Herbicides"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Category already exists")
	assert.Len(t, store.categories, 1)
}

func TestUpdateCategoryPartial(t *testing.T) {
	store := &fakeCategoryStore{}
	router := newCategoryRouter(store)

	w := doJSON(t, router, http.MethodPost, "/api/categories/add",
		`{"name":"Fungicides","description":"old"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	id := store.categories[0].ID.Hex()

	w = doJSON(t, router, http.MethodPut, "/api/categories/update/"+id,
		`{"description":"new description"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "Fungicides", store.categories[0].Name)
	assert.Equal(t, "new description", store.categories[0].Description)
}

func TestUpdateCategoryUnknownID(t *testing.T) {
	store := &fakeCategoryStore{}
	router := newCategoryRouter(store)

	id := primitive.NewObjectID().Hex()
	w := doJSON(t, router, http.MethodPut, "/api/categories/update/"+id, `{"name":"x"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Category not found")
	assert.Empty(t, store.categories)
}

func TestDeleteCategoryThenDetail(t *testing.T) {
	store := &fakeCategoryStore{}
	router := newCategoryRouter(store)

	w := doJSON(t, router, http.MethodPost, "/api/categories/add", `{"name":"Seeds"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	id := store.categories[0].ID.Hex()

	w = doJSON(t, router, http.MethodDelete, "/api/categories/delete/"+id, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Category deleted successfully")

	w = doJSON(t, router, http.MethodGet, "/api/categories/detail/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCategoryUnknownID(t *testing.T) {
	router := newCategoryRouter(&fakeCategoryStore{})

	w := doJSON(t, router, http.MethodDelete, "/api/categories/delete/"+primitive.NewObjectID().Hex(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListCategoriesEmpty(t *testing.T) {
	router := newCategoryRouter(&fakeCategoryStore{})

	w := doJSON(t, router, http.MethodGet, "/api/categories/list", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestListCategoriesInsertionOrder(t *testing.T) {
	store := &fakeCategoryStore{}
	router := newCategoryRouter(store)

	for _, name := range []string{"A", "B", "C"} {
		w := doJSON(t, router, http.MethodPost, "/api/categories/add", `{"name":"`+name+`"}`)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, router, http.MethodGet, "/api/categories/list", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var got []models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "A", got[0].Name)
	assert.Equal(t, "B", got[1].Name)
	assert.Equal(t, "C", got[2].Name)
}
