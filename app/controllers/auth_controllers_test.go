package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/ridewithme/app/controllers"
	"github.com/shashiranjanraj/ridewithme/app/models"
	"github.com/shashiranjanraj/ridewithme/app/routes"
	"github.com/shashiranjanraj/ridewithme/app/services"
	"github.com/shashiranjanraj/ridewithme/pkg/fault"
	"github.com/shashiranjanraj/ridewithme/pkg/router"
)

type memUserStore struct {
	users []models.User
}

func (s *memUserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, fault.New(fault.ErrNotFound, "User not found")
}

func (s *memUserStore) FindByID(ctx context.Context, id string) (models.User, error) {
	for _, u := range s.users {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return models.User{}, fault.New(fault.ErrNotFound, "User not found")
}

func (s *memUserStore) Insert(ctx context.Context, user *models.User) error {
	for _, u := range s.users {
		if u.Email == user.Email {
			return fault.New(fault.ErrConflict, "An account with this email already exists")
		}
	}
	user.ID = primitive.NewObjectID()
	s.users = append(s.users, *user)
	return nil
}

func newAuthAPI(t *testing.T) http.Handler {
	t.Helper()

	r := router.New()
	routes.RegisterAPI(r, routes.Controllers{
		Auth: controllers.NewAuthController(services.NewAuthService(&memUserStore{})),
		Cars: controllers.NewCarController(services.NewCarService(&memCarStore{})),
	})
	return r.Handler()
}

const registerJSON = `{
	"firstName": "Jean", "lastName": "Dupont",
	"email": "jean.dupont@example.com", "phone": "+33600000000",
	"city": "Paris", "password": "Secret123", "agreeTerms": true
}`

func TestRegister(t *testing.T) {
	h := newAuthAPI(t)

	rec := do(h, http.MethodPost, "/api/auth/register", "", registerJSON)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var session struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &session))
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "jean.dupont@example.com", session.User.Email)
}

func TestRegister_AllFieldsRequired(t *testing.T) {
	h := newAuthAPI(t)

	// Every required field missing in turn, city included.
	for _, field := range []string{"firstName", "lastName", "email", "phone", "city", "password"} {
		var payload map[string]any
		require.NoError(t, json.Unmarshal([]byte(registerJSON), &payload))
		delete(payload, field)
		body, err := json.Marshal(payload)
		require.NoError(t, err)

		rec := do(h, http.MethodPost, "/api/auth/register", "", string(body))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code, "missing %s", field)
		assert.NotEmpty(t, decode(t, rec).Errors[field], "missing %s should be reported", field)
	}
}

func TestLoginEndpoint(t *testing.T) {
	h := newAuthAPI(t)

	rec := do(h, http.MethodPost, "/api/auth/register", "", registerJSON)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(h, http.MethodPost, "/api/auth/login", "",
		`{"email": "jean.dupont@example.com", "password": "Secret123"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(h, http.MethodPost, "/api/auth/login", "",
		`{"email": "jean.dupont@example.com", "password": "Wrong123"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
