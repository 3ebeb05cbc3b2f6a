package Controllers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/grubdash/controllers"
	"github.com/yeremiapane/grubdash/models"
	"github.com/yeremiapane/grubdash/repository"
)

func setupDishRouter(t *testing.T, seed ...models.Dish) (*gin.Engine, *repository.MemoryStore[models.Dish]) {
	t.Helper()
	store := repository.NewDishMemoryStore()
	for _, d := range seed {
		require.NoError(t, store.Insert(context.Background(), d))
	}

	dishCtrl := controllers.NewDishController(store, sequentialIDs("dish"))
	r := gin.New()
	r.GET("/dishes", dishCtrl.GetAllDishes)
	r.POST("/dishes", dishCtrl.CreateDish)
	r.GET("/dishes/:dishId", dishCtrl.GetDishByID)
	r.PUT("/dishes/:dishId", dishCtrl.UpdateDish)
	return r, store
}

func taco() gin.H {
	return gin.H{"name": "Taco", "description": "Spicy", "price": 5, "image_url": "x"}
}

func listDishes(t *testing.T, store repository.Store[models.Dish]) []models.Dish {
	t.Helper()
	dishes, err := store.List(context.Background())
	require.NoError(t, err)
	return dishes
}

var seededDish = models.Dish{
	ID:          "3c637d011d844ebab1205fef8a7e36ea",
	Name:        "Broccoli and beetroot stir fry",
	Description: "Crunchy stir fry featuring fresh broccoli and beetroot",
	Price:       15,
	ImageURL:    "https://images.pexels.com/photos/4144234/pexels-photo-4144234.jpeg",
}

func TestCreateDish(t *testing.T) {
	r, store := setupDishRouter(t)

	w := performRequest(r, http.MethodPost, "/dishes", wrap(taco()))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Dish
	decodeData(t, w, &created)
	assert.Equal(t, "dish-1", created.ID)
	assert.Equal(t, "Taco", created.Name)
	assert.Equal(t, "Spicy", created.Description)
	assert.Equal(t, 5.0, created.Price)
	assert.Equal(t, "x", created.ImageURL)

	assert.Equal(t, []models.Dish{created}, listDishes(t, store))
}

func TestCreateDishGetsFreshIDAndAppearsInList(t *testing.T) {
	r, _ := setupDishRouter(t, seededDish)

	w := performRequest(r, http.MethodPost, "/dishes", wrap(taco()))
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Dish
	decodeData(t, w, &created)
	assert.NotEqual(t, seededDish.ID, created.ID)

	w = performRequest(r, http.MethodGet, "/dishes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all []models.Dish
	decodeData(t, w, &all)
	require.Len(t, all, 2)
	assert.Equal(t, seededDish, all[0])
	assert.Equal(t, created, all[1])
}

func TestListDishesEmpty(t *testing.T) {
	r, _ := setupDishRouter(t)

	w := performRequest(r, http.MethodGet, "/dishes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[]}`, w.Body.String())
}

func TestCreateDishValidation(t *testing.T) {
	without := func(field string) gin.H {
		d := taco()
		delete(d, field)
		return d
	}
	with := func(field string, v interface{}) gin.H {
		d := taco()
		d[field] = v
		return d
	}

	tests := []struct {
		name string
		body interface{}
		want string
	}{
		{"missing name", wrap(without("name")), "Dish must include a name"},
		{"empty name", wrap(with("name", "")), "Dish must include a name"},
		{"null description", wrap(with("description", nil)), "Dish must include a description"},
		{"missing price", wrap(without("price")), "Dish must include a price"},
		{"missing image_url", wrap(without("image_url")), "Dish must include a image_url"},
		{"negative price", wrap(with("price", -1)), "The price must be a number and greater than zero."},
		{"zero price", wrap(with("price", 0)), "The price must be a number and greater than zero."},
		{"string price", wrap(with("price", "5")), "The price must be a number and greater than zero."},
		{"object name", wrap(with("name", gin.H{"x": 1})), "Dish name must be a string"},
		{"array description", wrap(with("description", []int{1})), "Dish description must be a string"},
		{"object image_url", wrap(with("image_url", gin.H{})), "Dish image_url must be a string"},
		{"no data envelope", taco(), "Dish must include a name"},
		{"empty body", nil, "Dish must include a name"},
		{"malformed json", `{"data":`, "Request body must be a JSON object with a data object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, store := setupDishRouter(t, seededDish)

			w := performRequest(r, http.MethodPost, "/dishes", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, decodeError(t, w), tt.want)
			assert.Equal(t, []models.Dish{seededDish}, listDishes(t, store))
		})
	}
}

func TestGetDishByID(t *testing.T) {
	r, _ := setupDishRouter(t, seededDish)

	w := performRequest(r, http.MethodGet, "/dishes/"+seededDish.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got models.Dish
	decodeData(t, w, &got)
	assert.Equal(t, seededDish, got)
}

func TestGetDishNotFound(t *testing.T) {
	r, _ := setupDishRouter(t, seededDish)

	w := performRequest(r, http.MethodGet, "/dishes/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Dish does not exist: missing", decodeError(t, w))
}

func TestUpdateDish(t *testing.T) {
	r, store := setupDishRouter(t, seededDish)

	body := taco()
	body["id"] = seededDish.ID
	w := performRequest(r, http.MethodPut, "/dishes/"+seededDish.ID, wrap(body))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.Dish
	decodeData(t, w, &updated)
	want := models.Dish{ID: seededDish.ID, Name: "Taco", Description: "Spicy", Price: 5, ImageURL: "x"}
	assert.Equal(t, want, updated)
	assert.Equal(t, []models.Dish{want}, listDishes(t, store))
}

func TestUpdateDishWithoutBodyIDKeepsPathID(t *testing.T) {
	r, store := setupDishRouter(t, seededDish)

	w := performRequest(r, http.MethodPut, "/dishes/"+seededDish.ID, wrap(taco()))
	require.Equal(t, http.StatusOK, w.Code)

	dishes := listDishes(t, store)
	require.Len(t, dishes, 1)
	assert.Equal(t, seededDish.ID, dishes[0].ID)
	assert.Equal(t, "Taco", dishes[0].Name)
}

func TestUpdateDishFailures(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   gin.H
		status int
		want   string
	}{
		{
			name:   "unknown dish",
			path:   "/dishes/missing",
			body:   taco(),
			status: http.StatusNotFound,
			want:   "Dish does not exist: missing",
		},
		{
			name:   "id mismatch",
			path:   "/dishes/" + seededDish.ID,
			body:   gin.H{"id": "other", "name": "Taco", "description": "Spicy", "price": 5, "image_url": "x"},
			status: http.StatusBadRequest,
			want:   "Dish id in url (" + seededDish.ID + ") does not match id in request body (other)",
		},
		{
			name:   "bad price",
			path:   "/dishes/" + seededDish.ID,
			body:   gin.H{"name": "Taco", "description": "Spicy", "price": -3, "image_url": "x"},
			status: http.StatusBadRequest,
			want:   "The price must be a number and greater than zero.",
		},
		{
			name:   "array name",
			path:   "/dishes/" + seededDish.ID,
			body:   gin.H{"name": []string{"Taco"}, "description": "Spicy", "price": 5, "image_url": "x"},
			status: http.StatusBadRequest,
			want:   "Dish name must be a string",
		},
		{
			name:   "missing description",
			path:   "/dishes/" + seededDish.ID,
			body:   gin.H{"name": "Taco", "price": 5, "image_url": "x"},
			status: http.StatusBadRequest,
			want:   "Dish must include a description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, store := setupDishRouter(t, seededDish)

			w := performRequest(r, http.MethodPut, tt.path, wrap(tt.body))
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.want, decodeError(t, w))
			assert.Equal(t, []models.Dish{seededDish}, listDishes(t, store))
		})
	}
}

func TestCreateDishStoresNumericNameAsText(t *testing.T) {
	r, store := setupDishRouter(t)

	body := taco()
	body["name"] = 42
	w := performRequest(r, http.MethodPost, "/dishes", wrap(body))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	dishes := listDishes(t, store)
	require.Len(t, dishes, 1)
	assert.Equal(t, "42", dishes[0].Name)
}

func TestUpdateDishChecksPriceBeforeFields(t *testing.T) {
	r, _ := setupDishRouter(t, seededDish)

	w := performRequest(r, http.MethodPut, "/dishes/"+seededDish.ID, wrap(gin.H{"price": 0}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "The price must be a number and greater than zero.", decodeError(t, w))
}
