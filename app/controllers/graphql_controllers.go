package controllers

import (
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/ridewithme/app/services"
	gqlhttp "github.com/shashiranjanraj/ridewithme/pkg/graphql"
)

// carType mirrors the REST catalog representation, minus the nested
// detail blocks that GraphQL clients have no use for yet.
var carType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Car",
	Fields: graphql.Fields{
		"id":         &graphql.Field{Type: graphql.Int},
		"brand":      &graphql.Field{Type: graphql.String},
		"model":      &graphql.Field{Type: graphql.String},
		"year":       &graphql.Field{Type: graphql.Int},
		"price":      &graphql.Field{Type: graphql.Int},
		"location":   &graphql.Field{Type: graphql.String},
		"image":      &graphql.Field{Type: graphql.String},
		"owner":      &graphql.Field{Type: graphql.String},
		"ownerId":    &graphql.Field{Type: graphql.String},
		"rating":     &graphql.Field{Type: graphql.Float},
		"reviews":    &graphql.Field{Type: graphql.Int},
		"horsepower": &graphql.Field{Type: graphql.Int},
		"category":   &graphql.Field{Type: graphql.String},
	},
})

// NewGraphQLHandler builds the read-only catalog query endpoint.
// Mutations stay on the REST surface where auth middleware guards them.
func NewGraphQLHandler(svc *services.CarService) (http.HandlerFunc, error) {
	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name: "RootQuery",
		Fields: graphql.Fields{
			"cars": &graphql.Field{
				Type: graphql.NewList(carType),
				Args: graphql.FieldConfigArgument{
					"location": &graphql.ArgumentConfig{Type: graphql.String},
					"brand":    &graphql.ArgumentConfig{Type: graphql.String},
					"priceMax": &graphql.ArgumentConfig{Type: graphql.String},
					"sortBy":   &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.Catalog(p.Context, services.CatalogParams{
						Location: stringArg(p, "location"),
						Brand:    stringArg(p, "brand"),
						PriceMax: stringArg(p, "priceMax"),
						SortBy:   stringArg(p, "sortBy"),
					})
				},
			},
			"car": &graphql.Field{
				Type: carType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.Get(p.Context, stringArg(p, "id"))
				},
			},
		},
	})

	schema, err := gqlhttp.NewSchema(rootQuery)
	if err != nil {
		return nil, err
	}
	return gqlhttp.Handler(schema), nil
}

func stringArg(p graphql.ResolveParams, name string) string {
	if v, ok := p.Args[name].(string); ok {
		return v
	}
	return ""
}
