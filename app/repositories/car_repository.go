package repositories

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/ridewithme/app/models"
	"github.com/shashiranjanraj/ridewithme/pkg/database"
	"github.com/shashiranjanraj/ridewithme/pkg/fault"
	"github.com/shashiranjanraj/ridewithme/pkg/metrics"
)

// Catalog sort keys.
const (
	SortPrice      = "price"
	SortRating     = "rating"
	SortHorsepower = "horsepower"
)

// CatalogQuery holds the optional catalog filter criteria. Zero-value
// substring fields impose no constraint; SortBy falls back to rating
// descending for unknown keys.
type CatalogQuery struct {
	Location string
	Brand    string
	PriceMax int
	SortBy   string
}

// filter builds the document predicate: location AND brand substring
// matches (case-insensitive), price at most PriceMax.
func (q CatalogQuery) filter() bson.M {
	f := bson.M{
		"price": bson.M{"$lte": q.PriceMax},
	}
	if q.Location != "" {
		f["location"] = bson.M{"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(q.Location), Options: "i"}}
	}
	if q.Brand != "" {
		f["brand"] = bson.M{"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(q.Brand), Options: "i"}}
	}
	return f
}

// sort builds the order clause. Price sorts ascending (cheapest first);
// rating and horsepower descending (best first).
func (q CatalogQuery) sort() bson.D {
	switch q.SortBy {
	case SortPrice:
		return bson.D{{Key: "price", Value: 1}}
	case SortHorsepower:
		return bson.D{{Key: "horsepower", Value: -1}}
	default:
		return bson.D{{Key: "rating", Value: -1}}
	}
}

// ownerFilter matches cars belonging to id through either ownership era:
// the stable ownerId reference or the legacy free-text owner name. Records
// from both eras must stay visible, so this is a plain $or with no precedence.
func ownerFilter(id string) bson.M {
	return bson.M{
		"$or": bson.A{
			bson.M{"ownerId": id},
			bson.M{"owner": id},
		},
	}
}

// CarRepository handles document-store operations for Car.
type CarRepository struct {
	cars     *mongo.Collection
	counters *mongo.Collection
}

func NewCarRepository(db *mongo.Database) *CarRepository {
	return &CarRepository{
		cars:     db.Collection(database.CarsCollection),
		counters: db.Collection(database.CountersCollection),
	}
}

// Search returns every car matching q, ordered by its sort key.
// The full result set is returned; the catalog has no pagination.
func (r *CarRepository) Search(ctx context.Context, q CatalogQuery) ([]models.Car, error) {
	defer metrics.ObserveStoreOp("find", "cars", time.Now())

	cur, err := r.cars.Find(ctx, q.filter(), options.Find().SetSort(q.sort()))
	if err != nil {
		return nil, fault.Wrap(fault.ErrInternal, err, "Failed to fetch cars")
	}

	cars := []models.Car{}
	if err := cur.All(ctx, &cars); err != nil {
		return nil, fault.Wrap(fault.ErrInternal, err, "Failed to fetch cars")
	}
	return cars, nil
}

// FindByID returns the car with the given sequential id.
func (r *CarRepository) FindByID(ctx context.Context, id int) (models.Car, error) {
	defer metrics.ObserveStoreOp("find_one", "cars", time.Now())

	var car models.Car
	err := r.cars.FindOne(ctx, bson.M{"id": id}).Decode(&car)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Car{}, fault.New(fault.ErrNotFound, "Car not found")
	}
	if err != nil {
		return models.Car{}, fault.Wrap(fault.ErrInternal, err, "Failed to fetch car")
	}
	return car, nil
}

// FindByOwner returns every car owned by id, resolving both ownership eras.
// An owner with no cars gets an empty slice, not an error.
func (r *CarRepository) FindByOwner(ctx context.Context, id string) ([]models.Car, error) {
	defer metrics.ObserveStoreOp("find", "cars", time.Now())

	cur, err := r.cars.Find(ctx, ownerFilter(id))
	if err != nil {
		return nil, fault.Wrap(fault.ErrInternal, err, "Failed to fetch user cars")
	}

	cars := []models.Car{}
	if err := cur.All(ctx, &cars); err != nil {
		return nil, fault.Wrap(fault.ErrInternal, err, "Failed to fetch user cars")
	}
	return cars, nil
}

// NextID atomically reserves the next sequential car id from the counters
// collection. The upsert makes an empty catalog start at 1. Using a counter
// document instead of scanning for the current max keeps concurrent creates
// from colliding on the same id.
func (r *CarRepository) NextID(ctx context.Context) (int, error) {
	defer metrics.ObserveStoreOp("find_one_and_update", "counters", time.Now())

	var counter struct {
		Seq int `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "cars"},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fault.Wrap(fault.ErrInternal, err, "Failed to create car")
	}
	return counter.Seq, nil
}

// Insert persists a car whose ID has already been assigned.
func (r *CarRepository) Insert(ctx context.Context, car *models.Car) error {
	defer metrics.ObserveStoreOp("insert", "cars", time.Now())

	if _, err := r.cars.InsertOne(ctx, car); err != nil {
		return fault.Wrap(fault.ErrInternal, err, "Failed to create car")
	}
	return nil
}

// Replace performs a full-document replace keyed on the sequential id.
func (r *CarRepository) Replace(ctx context.Context, id int, car *models.Car) (models.Car, error) {
	defer metrics.ObserveStoreOp("replace", "cars", time.Now())

	car.ID = id

	var updated models.Car
	err := r.cars.FindOneAndReplace(ctx,
		bson.M{"id": id},
		car,
		options.FindOneAndReplace().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Car{}, fault.New(fault.ErrNotFound, "Car not found")
	}
	if err != nil {
		return models.Car{}, fault.Wrap(fault.ErrInternal, err, "Failed to update car")
	}
	return updated, nil
}

// Delete removes the car with the given id.
func (r *CarRepository) Delete(ctx context.Context, id int) error {
	defer metrics.ObserveStoreOp("delete", "cars", time.Now())

	res, err := r.cars.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fault.Wrap(fault.ErrInternal, err, "Failed to delete car")
	}
	if res.DeletedCount == 0 {
		return fault.New(fault.ErrNotFound, "Car not found")
	}
	return nil
}

// AddImage appends an image URL to the car's gallery.
func (r *CarRepository) AddImage(ctx context.Context, id int, url string) error {
	defer metrics.ObserveStoreOp("update", "cars", time.Now())

	res, err := r.cars.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$push": bson.M{"images": url}},
	)
	if err != nil {
		return fault.Wrap(fault.ErrInternal, err, "Failed to attach image")
	}
	if res.MatchedCount == 0 {
		return fault.New(fault.ErrNotFound, "Car not found")
	}
	return nil
}

// SyncCounter sets the id counter to the current maximum id, so catalogs
// seeded with explicit ids keep their numbering on the next create.
func (r *CarRepository) SyncCounter(ctx context.Context) error {
	opts := options.FindOne().SetSort(bson.D{{Key: "id", Value: -1}})

	var last struct {
		ID int `bson:"id"`
	}
	err := r.cars.FindOne(ctx, bson.M{}, opts).Decode(&last)
	if errors.Is(err, mongo.ErrNoDocuments) {
		last.ID = 0
	} else if err != nil {
		return fmt.Errorf("car repository: read max id: %w", err)
	}

	_, err = r.counters.UpdateOne(ctx,
		bson.M{"_id": "cars"},
		bson.M{"$max": bson.M{"seq": last.ID}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("car repository: sync counter: %w", err)
	}
	return nil
}
