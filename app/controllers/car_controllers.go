package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/ridewithme/app/models"
	"github.com/shashiranjanraj/ridewithme/app/services"
	"github.com/shashiranjanraj/ridewithme/pkg/bind"
	"github.com/shashiranjanraj/ridewithme/pkg/logger"
	"github.com/shashiranjanraj/ridewithme/pkg/response"
	"github.com/shashiranjanraj/ridewithme/pkg/storage"
)

// CarController exposes the /api/cars endpoints.
type CarController struct {
	svc *services.CarService
}

func NewCarController(svc *services.CarService) *CarController {
	return &CarController{svc: svc}
}

// List handles GET /api/cars with optional location, brand, priceMax and
// sortBy query parameters.
func (c *CarController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	cars, err := c.svc.Catalog(r.Context(), services.CatalogParams{
		Location: q.Get("location"),
		Brand:    q.Get("brand"),
		PriceMax: q.Get("priceMax"),
		SortBy:   q.Get("sortBy"),
	})
	if err != nil {
		logger.WithCtx(r.Context()).Error("catalog search failed", "error", err)
		response.Fault(w, err)
		return
	}
	response.Success(w, cars)
}

// Get handles GET /api/cars/{id}.
func (c *CarController) Get(w http.ResponseWriter, r *http.Request) {
	car, err := c.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Fault(w, err)
		return
	}
	response.Success(w, car)
}

// Create handles POST /api/cars.
func (c *CarController) Create(w http.ResponseWriter, r *http.Request) {
	var car models.Car
	if errs, err := bind.JSON(r, &car); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	created, err := c.svc.Create(r.Context(), &car)
	if err != nil {
		logger.WithCtx(r.Context()).Error("car create failed", "error", err)
		response.Fault(w, err)
		return
	}
	response.Created(w, created)
}

// Update handles PUT /api/cars/{id}.
func (c *CarController) Update(w http.ResponseWriter, r *http.Request) {
	var car models.Car
	if errs, err := bind.JSON(r, &car); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	updated, err := c.svc.Update(r.Context(), chi.URLParam(r, "id"), &car)
	if err != nil {
		response.Fault(w, err)
		return
	}
	response.Success(w, updated)
}

// Delete handles DELETE /api/cars/{id}.
func (c *CarController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.svc.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.Fault(w, err)
		return
	}
	response.Success(w, map[string]string{"message": "Car deleted"})
}

// ByOwner handles GET /api/cars/user/{userId}.
func (c *CarController) ByOwner(w http.ResponseWriter, r *http.Request) {
	cars, err := c.svc.ByOwner(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		response.Fault(w, err)
		return
	}
	response.Success(w, cars)
}

// UploadImage handles POST /api/cars/{id}/images: a multipart upload
// stored on the configured disk and appended to the car's gallery.
// The car is resolved before anything touches the disk, so a bad or
// unknown id never leaves an orphan file behind.
func (c *CarController) UploadImage(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "id")

	car, err := c.svc.Get(r.Context(), rawID)
	if err != nil {
		response.Fault(w, err)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Missing image file")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		response.Error(w, http.StatusBadRequest, "Unsupported image type")
		return
	}

	path := fmt.Sprintf("cars/%d/%d%s", car.ID, time.Now().UnixNano(), ext)
	if err := storage.PutStream(path, file); err != nil {
		logger.WithCtx(r.Context()).Error("image upload failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to store image")
		return
	}

	url := storage.URL(path)
	if err := c.svc.AttachImage(r.Context(), rawID, url); err != nil {
		// The gallery update failed after the file landed on disk;
		// remove it again so the two stores stay consistent.
		if delErr := storage.Delete(path); delErr != nil {
			logger.WithCtx(r.Context()).Error("orphan image cleanup failed", "error", delErr, "path", path)
		}
		response.Fault(w, err)
		return
	}
	response.Created(w, map[string]string{"url": url})
}
