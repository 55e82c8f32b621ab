// Package routes maps the HTTP surface onto controllers.
package routes

import (
	"net/http"

	"github.com/shashiranjanraj/ridewithme/app/controllers"
	"github.com/shashiranjanraj/ridewithme/pkg/middleware"
	"github.com/shashiranjanraj/ridewithme/pkg/router"
)

// Controllers bundles everything the API routes need.
type Controllers struct {
	Auth    *controllers.AuthController
	Cars    *controllers.CarController
	GraphQL http.HandlerFunc
}

// RegisterAPI mounts the /api surface. Catalog reads are public; anything
// that writes, and session introspection, sits behind the auth middleware.
func RegisterAPI(r *router.Router, c Controllers) {
	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", "auth.register", c.Auth.Register)
	authGroup.Post("/login", "auth.login", c.Auth.Login)
	authGroup.Post("/logout", "auth.logout", c.Auth.Logout, middleware.Auth)
	authGroup.Get("/me", "auth.me", c.Auth.Me, middleware.Auth)

	cars := api.Group("/cars")
	cars.Get("/", "cars.index", c.Cars.List)
	cars.Get("/{id}", "cars.show", c.Cars.Get)
	cars.Post("/", "cars.store", c.Cars.Create, middleware.Auth)
	cars.Put("/{id}", "cars.update", c.Cars.Update, middleware.Auth)
	cars.Delete("/{id}", "cars.destroy", c.Cars.Delete, middleware.Auth)
	cars.Post("/{id}/images", "cars.images.store", c.Cars.UploadImage, middleware.Auth)
	cars.Get("/user/{userId}", "cars.byOwner", c.Cars.ByOwner)

	if c.GraphQL != nil {
		api.Post("/graphql", "graphql", c.GraphQL)
	}
}
