package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCatalogQueryFilter_PriceOnly(t *testing.T) {
	f := CatalogQuery{PriceMax: 500}.filter()

	assert.Equal(t, bson.M{"price": bson.M{"$lte": 500}}, f)
	assert.NotContains(t, f, "location")
	assert.NotContains(t, f, "brand")
}

func TestCatalogQueryFilter_SubstringMatchesAreCaseInsensitive(t *testing.T) {
	f := CatalogQuery{Location: "par", Brand: "ferr", PriceMax: 300}.filter()

	loc := f["location"].(bson.M)["$regex"].(primitive.Regex)
	assert.Equal(t, "par", loc.Pattern)
	assert.Equal(t, "i", loc.Options)

	brand := f["brand"].(bson.M)["$regex"].(primitive.Regex)
	assert.Equal(t, "ferr", brand.Pattern)
	assert.Equal(t, "i", brand.Options)
}

func TestCatalogQueryFilter_QuotesRegexMetacharacters(t *testing.T) {
	f := CatalogQuery{Brand: "a.b*", PriceMax: 500}.filter()

	brand := f["brand"].(bson.M)["$regex"].(primitive.Regex)
	assert.Equal(t, `a\.b\*`, brand.Pattern)
}

func TestCatalogQuerySort(t *testing.T) {
	cases := []struct {
		sortBy string
		want   bson.D
	}{
		{SortPrice, bson.D{{Key: "price", Value: 1}}},
		{SortHorsepower, bson.D{{Key: "horsepower", Value: -1}}},
		{SortRating, bson.D{{Key: "rating", Value: -1}}},
		{"", bson.D{{Key: "rating", Value: -1}}},
		{"mileage", bson.D{{Key: "rating", Value: -1}}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CatalogQuery{SortBy: c.sortBy}.sort(), "sortBy=%q", c.sortBy)
	}
}

func TestOwnerFilter_CoversBothOwnershipEras(t *testing.T) {
	f := ownerFilter("u1")

	or, ok := f["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)

	assert.Contains(t, or, bson.M{"ownerId": "u1"})
	assert.Contains(t, or, bson.M{"owner": "u1"})
}
