package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/ridewithme/app/models"
	"github.com/shashiranjanraj/ridewithme/app/services"
	"github.com/shashiranjanraj/ridewithme/pkg/auth"
	"github.com/shashiranjanraj/ridewithme/pkg/fault"
)

type fakeUserStore struct {
	users []models.User
	calls int
}

func (s *fakeUserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	s.calls++
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, fault.New(fault.ErrNotFound, "User not found")
}

func (s *fakeUserStore) FindByID(ctx context.Context, id string) (models.User, error) {
	s.calls++
	for _, u := range s.users {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return models.User{}, fault.New(fault.ErrNotFound, "User not found")
}

func (s *fakeUserStore) Insert(ctx context.Context, user *models.User) error {
	s.calls++
	for _, u := range s.users {
		if u.Email == user.Email {
			return fault.New(fault.ErrConflict, "An account with this email already exists")
		}
	}
	user.ID = primitive.NewObjectID()
	s.users = append(s.users, *user)
	return nil
}

func registerInput() services.RegisterInput {
	return services.RegisterInput{
		FirstName:  "Jean",
		LastName:   "Dupont",
		Email:      "Jean.Dupont@Example.com",
		Phone:      "+33600000000",
		City:       "Paris",
		Password:   "Secret123",
		AgreeTerms: true,
	}
}

func TestRegister_Success(t *testing.T) {
	store := &fakeUserStore{}
	svc := services.NewAuthService(store)

	session, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "jean.dupont@example.com", session.User.Email)
	assert.NotEqual(t, "Secret123", session.User.Password)
	assert.True(t, auth.CheckPassword(session.User.Password, "Secret123"))
}

func TestRegister_PasswordPolicy(t *testing.T) {
	svc := services.NewAuthService(&fakeUserStore{})

	for _, pw := range []string{"Ab1", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"} {
		in := registerInput()
		in.Password = pw

		_, err := svc.Register(context.Background(), in)
		assert.True(t, fault.IsInvalidArgument(err), "password %q should be rejected", pw)
	}
}

func TestRegister_PolicyRejectedBeforeStore(t *testing.T) {
	store := &fakeUserStore{}
	svc := services.NewAuthService(store)

	in := registerInput()
	in.Password = "short"

	_, err := svc.Register(context.Background(), in)
	require.Error(t, err)
	assert.Zero(t, store.calls)
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	store := &fakeUserStore{}
	svc := services.NewAuthService(store)

	_, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	// Same address in different case resolves to the same account.
	in := registerInput()
	in.Email = "JEAN.DUPONT@EXAMPLE.COM"
	_, err = svc.Register(context.Background(), in)
	assert.True(t, fault.IsConflict(err))
}

func TestRegister_RequiresTerms(t *testing.T) {
	svc := services.NewAuthService(&fakeUserStore{})

	in := registerInput()
	in.AgreeTerms = false

	_, err := svc.Register(context.Background(), in)
	assert.True(t, fault.IsInvalidArgument(err))
}

func TestLogin(t *testing.T) {
	store := &fakeUserStore{}
	svc := services.NewAuthService(store)

	_, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	session, err := svc.Login(context.Background(), services.LoginInput{
		Email:    "jean.dupont@example.com",
		Password: "Secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "Jean", session.User.FirstName)
}

func TestLogin_BadCredentialsLookTheSame(t *testing.T) {
	store := &fakeUserStore{}
	svc := services.NewAuthService(store)

	_, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	_, errUnknown := svc.Login(context.Background(), services.LoginInput{
		Email: "nobody@example.com", Password: "Secret123",
	})
	_, errWrongPw := svc.Login(context.Background(), services.LoginInput{
		Email: "jean.dupont@example.com", Password: "Wrong123",
	})

	assert.True(t, fault.IsUnauthorized(errUnknown))
	assert.True(t, fault.IsUnauthorized(errWrongPw))
	assert.Equal(t, fault.Message(errUnknown), fault.Message(errWrongPw))
}

func TestWhoami(t *testing.T) {
	store := &fakeUserStore{}
	svc := services.NewAuthService(store)

	session, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	user, err := svc.Whoami(context.Background(), session.User.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, session.User.Email, user.Email)

	_, err = svc.Whoami(context.Background(), primitive.NewObjectID().Hex())
	assert.True(t, fault.IsNotFound(err))
}
