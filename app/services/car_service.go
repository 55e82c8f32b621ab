package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/shashiranjanraj/ridewithme/app/models"
	"github.com/shashiranjanraj/ridewithme/app/repositories"
	"github.com/shashiranjanraj/ridewithme/config"
	"github.com/shashiranjanraj/ridewithme/pkg/fault"
	"github.com/shashiranjanraj/ridewithme/pkg/metrics"
)

// CarStore is the persistence surface CarService depends on.
type CarStore interface {
	Search(ctx context.Context, q repositories.CatalogQuery) ([]models.Car, error)
	FindByID(ctx context.Context, id int) (models.Car, error)
	FindByOwner(ctx context.Context, owner string) ([]models.Car, error)
	NextID(ctx context.Context) (int, error)
	Insert(ctx context.Context, car *models.Car) error
	Replace(ctx context.Context, id int, car *models.Car) (models.Car, error)
	Delete(ctx context.Context, id int) error
	AddImage(ctx context.Context, id int, url string) error
}

// CarService implements the catalog and listing lifecycle.
type CarService struct {
	store CarStore
}

func NewCarService(store CarStore) *CarService {
	return &CarService{store: store}
}

// CatalogParams are the raw query-string inputs to a catalog search.
type CatalogParams struct {
	Location string
	Brand    string
	PriceMax string
	SortBy   string
}

// Catalog searches the fleet. Empty location/brand match everything; a
// missing or non-numeric priceMax falls back to the configured ceiling.
func (s *CarService) Catalog(ctx context.Context, p CatalogParams) ([]models.Car, error) {
	q := repositories.CatalogQuery{
		Location: strings.TrimSpace(p.Location),
		Brand:    strings.TrimSpace(p.Brand),
		PriceMax: config.PriceCeiling(),
		SortBy:   p.SortBy,
	}
	if n, err := strconv.Atoi(p.PriceMax); err == nil && n > 0 {
		q.PriceMax = n
	}

	metrics.CatalogSearches.WithLabelValues(sortLabel(q.SortBy)).Inc()
	return s.store.Search(ctx, q)
}

func sortLabel(s string) string {
	switch s {
	case repositories.SortPrice, repositories.SortHorsepower:
		return s
	default:
		return repositories.SortRating
	}
}

// Get returns a single car by its path id.
func (s *CarService) Get(ctx context.Context, rawID string) (models.Car, error) {
	id, err := parseID(rawID)
	if err != nil {
		return models.Car{}, err
	}
	return s.store.FindByID(ctx, id)
}

// Create assigns the next sequential id and persists the listing.
func (s *CarService) Create(ctx context.Context, car *models.Car) (models.Car, error) {
	id, err := s.store.NextID(ctx)
	if err != nil {
		return models.Car{}, err
	}
	car.ID = id
	if err := s.store.Insert(ctx, car); err != nil {
		return models.Car{}, err
	}
	return *car, nil
}

// Update replaces the listing with the given id.
func (s *CarService) Update(ctx context.Context, rawID string, car *models.Car) (models.Car, error) {
	id, err := parseID(rawID)
	if err != nil {
		return models.Car{}, err
	}
	return s.store.Replace(ctx, id, car)
}

// Remove deletes the listing with the given id.
func (s *CarService) Remove(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

// ByOwner lists all cars owned by the given user, in either ownership era.
func (s *CarService) ByOwner(ctx context.Context, owner string) ([]models.Car, error) {
	return s.store.FindByOwner(ctx, owner)
}

// AttachImage appends an uploaded image URL to the listing's gallery.
func (s *CarService) AttachImage(ctx context.Context, rawID string, url string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	return s.store.AddImage(ctx, id, url)
}

// parseID rejects non-numeric path ids before any store access.
func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fault.New(fault.ErrInvalidArgument, "Invalid car id")
	}
	return id, nil
}
