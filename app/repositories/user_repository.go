package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/ridewithme/app/models"
	"github.com/shashiranjanraj/ridewithme/pkg/database"
	"github.com/shashiranjanraj/ridewithme/pkg/fault"
	"github.com/shashiranjanraj/ridewithme/pkg/metrics"
)

// UserRepository handles document-store operations for User.
type UserRepository struct {
	users *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{users: db.Collection(database.UsersCollection)}
}

// FindByEmail looks a user up by their normalized email address.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	defer metrics.ObserveStoreOp("find_one", "users", time.Now())

	var user models.User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, fault.New(fault.ErrNotFound, "User not found")
	}
	if err != nil {
		return models.User{}, fault.Wrap(fault.ErrInternal, err, "Failed to fetch user")
	}
	return user, nil
}

// FindByID looks a user up by their hex object id.
func (r *UserRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	defer metrics.ObserveStoreOp("find_one", "users", time.Now())

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, fault.New(fault.ErrNotFound, "User not found")
	}

	var user models.User
	err = r.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, fault.New(fault.ErrNotFound, "User not found")
	}
	if err != nil {
		return models.User{}, fault.Wrap(fault.ErrInternal, err, "Failed to fetch user")
	}
	return user, nil
}

// Insert persists a new user. The unique index on email turns concurrent
// duplicate registrations into a conflict.
func (r *UserRepository) Insert(ctx context.Context, user *models.User) error {
	defer metrics.ObserveStoreOp("insert", "users", time.Now())

	res, err := r.users.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return fault.New(fault.ErrConflict, "An account with this email already exists")
	}
	if err != nil {
		return fault.Wrap(fault.ErrInternal, err, "Failed to create account")
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}
