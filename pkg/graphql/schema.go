package graphql

import (
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/ridewithme/pkg/response"
)

// NewSchema creates a GraphQL schema from a provided RootQuery.
func NewSchema(query *graphql.Object) (graphql.Schema, error) {
	return graphql.NewSchema(graphql.SchemaConfig{
		Query: query,
	})
}

// request is the standard GraphQL POST body.
type request struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

// Handler returns an http.HandlerFunc executing queries against schema.
// Execution errors are reported inside the GraphQL response body, per
// convention; only a malformed request produces a non-200 status.
func Handler(schema graphql.Schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := decodeJSON(r, &req); err != nil {
			response.Error(w, http.StatusBadRequest, "invalid GraphQL request")
			return
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			Context:        r.Context(),
		})

		writeJSON(w, result)
	}
}
