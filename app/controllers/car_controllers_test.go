package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/ridewithme/app/controllers"
	"github.com/shashiranjanraj/ridewithme/app/models"
	"github.com/shashiranjanraj/ridewithme/app/repositories"
	"github.com/shashiranjanraj/ridewithme/app/routes"
	"github.com/shashiranjanraj/ridewithme/app/services"
	"github.com/shashiranjanraj/ridewithme/pkg/auth"
	"github.com/shashiranjanraj/ridewithme/pkg/fault"
	"github.com/shashiranjanraj/ridewithme/pkg/router"
	"github.com/shashiranjanraj/ridewithme/pkg/storage"
)

// memCarStore is just enough of the store contract to drive the HTTP
// surface; query semantics are covered by the service tests.
type memCarStore struct {
	cars []models.Car
	seq  int
}

func (s *memCarStore) Search(ctx context.Context, q repositories.CatalogQuery) ([]models.Car, error) {
	out := []models.Car{}
	for _, c := range s.cars {
		if c.Price <= q.PriceMax {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *memCarStore) FindByID(ctx context.Context, id int) (models.Car, error) {
	for _, c := range s.cars {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Car{}, fault.New(fault.ErrNotFound, "Car not found")
}

func (s *memCarStore) FindByOwner(ctx context.Context, owner string) ([]models.Car, error) {
	out := []models.Car{}
	for _, c := range s.cars {
		if c.OwnerID == owner || c.Owner == owner {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *memCarStore) NextID(ctx context.Context) (int, error) {
	s.seq++
	return s.seq, nil
}

func (s *memCarStore) Insert(ctx context.Context, car *models.Car) error {
	s.cars = append(s.cars, *car)
	return nil
}

func (s *memCarStore) Replace(ctx context.Context, id int, car *models.Car) (models.Car, error) {
	for i, c := range s.cars {
		if c.ID == id {
			car.ID = id
			s.cars[i] = *car
			return *car, nil
		}
	}
	return models.Car{}, fault.New(fault.ErrNotFound, "Car not found")
}

func (s *memCarStore) Delete(ctx context.Context, id int) error {
	for i, c := range s.cars {
		if c.ID == id {
			s.cars = append(s.cars[:i], s.cars[i+1:]...)
			return nil
		}
	}
	return fault.New(fault.ErrNotFound, "Car not found")
}

func (s *memCarStore) AddImage(ctx context.Context, id int, url string) error {
	for i, c := range s.cars {
		if c.ID == id {
			s.cars[i].Images = append(s.cars[i].Images, url)
			return nil
		}
	}
	return fault.New(fault.ErrNotFound, "Car not found")
}

type apiEnvelope struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func newAPI(t *testing.T, store *memCarStore) http.Handler {
	t.Helper()

	carSvc := services.NewCarService(store)
	gql, err := controllers.NewGraphQLHandler(carSvc)
	require.NoError(t, err)

	r := router.New()
	routes.RegisterAPI(r, routes.Controllers{
		Auth:    controllers.NewAuthController(services.NewAuthService(nil)),
		Cars:    controllers.NewCarController(carSvc),
		GraphQL: gql,
	})
	return r.Handler()
}

func seeded() *memCarStore {
	return &memCarStore{
		cars: []models.Car{
			{ID: 1, Brand: "Ferrari", Model: "488 GTB", Price: 250, Location: "Paris", Owner: "Michel R."},
			{ID: 2, Brand: "Lamborghini", Model: "Huracán EVO", Price: 300, Location: "Lyon", OwnerID: "u1", Owner: "Sophie M."},
		},
		seq: 2,
	}
}

func do(h http.Handler, method, target, token string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

const carJSON = `{
	"brand": "Porsche", "model": "911 Turbo S", "year": 2022, "price": 200,
	"location": "Marseille", "image": "https://example.com/911.jpg",
	"owner": "Antoine L.", "rating": 5, "reviews": 31,
	"horsepower": 650, "topSpeed": 330, "acceleration": 2.7,
	"category": "Sport", "color": "Gris GT Silver"
}`

func TestListCars(t *testing.T) {
	h := newAPI(t, seeded())

	rec := do(h, http.MethodGet, "/api/cars?priceMax=280", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var cars []models.Car
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &cars))
	require.Len(t, cars, 1)
	assert.Equal(t, "Ferrari", cars[0].Brand)
}

func TestGetCar(t *testing.T) {
	h := newAPI(t, seeded())

	rec := do(h, http.MethodGet, "/api/cars/1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(h, http.MethodGet, "/api/cars/99", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(h, http.MethodGet, "/api/cars/abc", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateCar_RequiresAuth(t *testing.T) {
	h := newAPI(t, seeded())

	rec := do(h, http.MethodPost, "/api/cars", "", carJSON)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateCar(t *testing.T) {
	h := newAPI(t, seeded())
	token, err := auth.GenerateToken("u1", "u1@example.com")
	require.NoError(t, err)

	rec := do(h, http.MethodPost, "/api/cars", token, carJSON)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var car models.Car
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &car))
	assert.Equal(t, 3, car.ID)
}

func TestCreateCar_ValidationFailure(t *testing.T) {
	h := newAPI(t, seeded())
	token, err := auth.GenerateToken("u1", "u1@example.com")
	require.NoError(t, err)

	rec := do(h, http.MethodPost, "/api/cars", token, `{"brand": "Ferrari"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	env := decode(t, rec)
	assert.NotEmpty(t, env.Errors["model"])
	assert.NotEmpty(t, env.Errors["price"])
}

func TestUpdateAndDeleteCar(t *testing.T) {
	store := seeded()
	h := newAPI(t, store)
	token, err := auth.GenerateToken("u1", "u1@example.com")
	require.NoError(t, err)

	rec := do(h, http.MethodPut, "/api/cars/1", token, carJSON)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var car models.Car
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &car))
	assert.Equal(t, 1, car.ID)
	assert.Equal(t, "Porsche", car.Brand)

	rec = do(h, http.MethodDelete, "/api/cars/1", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(h, http.MethodDelete, "/api/cars/1", token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOwnerCars(t *testing.T) {
	h := newAPI(t, seeded())

	rec := do(h, http.MethodGet, "/api/cars/user/u1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var cars []models.Car
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &cars))
	require.Len(t, cars, 1)
	assert.Equal(t, "Lamborghini", cars[0].Brand)
}

func multipartImage(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", "front.jpg")
	require.NoError(t, err)
	_, err = fw.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func doUpload(h http.Handler, target, token string, t *testing.T) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartImage(t)
	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func storedFiles(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if !info.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	require.NoError(t, err)
	return files
}

func uploadFixture(t *testing.T) (http.Handler, *memCarStore, string, string) {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("STORAGE_LOCAL_ROOT", tmp)
	storage.Connect()

	store := seeded()
	token, err := auth.GenerateToken("u1", "u1@example.com")
	require.NoError(t, err)
	return newAPI(t, store), store, token, tmp
}

func TestUploadImage(t *testing.T) {
	h, store, token, tmp := uploadFixture(t)

	rec := doUpload(h, "/api/cars/1/images", token, t)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var data map[string]string
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))
	assert.NotEmpty(t, data["url"])

	require.Len(t, store.cars[0].Images, 1)
	assert.Equal(t, data["url"], store.cars[0].Images[0])
	assert.Len(t, storedFiles(t, tmp), 1)
}

func TestUploadImage_BadIDWritesNothing(t *testing.T) {
	h, _, token, tmp := uploadFixture(t)

	rec := doUpload(h, "/api/cars/abc/images", token, t)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, storedFiles(t, tmp))
}

func TestUploadImage_UnknownIDWritesNothing(t *testing.T) {
	h, _, token, tmp := uploadFixture(t)

	rec := doUpload(h, "/api/cars/99/images", token, t)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, storedFiles(t, tmp))
}

func TestGraphQLCatalog(t *testing.T) {
	h := newAPI(t, seeded())

	rec := do(h, http.MethodPost, "/api/graphql", "", `{"query": "{ cars { id brand price } }"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Data struct {
			Cars []struct {
				ID    int    `json:"id"`
				Brand string `json:"brand"`
			} `json:"cars"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Len(t, result.Data.Cars, 2)
}
