package models

// Car is a single rentable vehicle in the `cars` collection.
//
// ID is a human-readable sequential integer, unique and immutable once
// assigned. Ownership is recorded in two fields for backward compatibility:
// OwnerID (stable user identifier, set on cars listed after accounts were
// introduced) and Owner (free-text display name, the only field on legacy
// seed records). Both eras must stay resolvable.
type Car struct {
	ID           int      `bson:"id" json:"id"`
	Brand        string   `bson:"brand" json:"brand" validate:"required"`
	Model        string   `bson:"model" json:"model" validate:"required"`
	Year         int      `bson:"year" json:"year" validate:"required,gte=1950"`
	Price        int      `bson:"price" json:"price" validate:"required,gt=0"`
	Location     string   `bson:"location" json:"location" validate:"required"`
	Image        string   `bson:"image" json:"image" validate:"required,url"`
	Owner        string   `bson:"owner" json:"owner" validate:"required"`
	OwnerID      string   `bson:"ownerId,omitempty" json:"ownerId,omitempty"`
	Rating       float64  `bson:"rating" json:"rating" validate:"between=0,5"`
	Reviews      int      `bson:"reviews" json:"reviews" validate:"gte=0"`
	Horsepower   int      `bson:"horsepower" json:"horsepower" validate:"required,gt=0"`
	TopSpeed     int      `bson:"topSpeed" json:"topSpeed" validate:"required,gt=0"`
	Acceleration float64  `bson:"acceleration" json:"acceleration" validate:"required,gt=0"`
	Category     string   `bson:"category" json:"category" validate:"required,in=Supercar,Hypercar,Sport,Grand Tourer,Électrique"`
	Color        string   `bson:"color" json:"color" validate:"required"`
	Images       []string `bson:"images,omitempty" json:"images,omitempty"`

	// Detail-page blocks. Absent on cars created through the minimal
	// listing form; legacy records without them are valid as-is.
	OwnerDetails   *OwnerDetails   `bson:"ownerDetails,omitempty" json:"ownerDetails,omitempty"`
	Route          *Route          `bson:"route,omitempty" json:"route,omitempty"`
	Specifications *Specifications `bson:"specifications,omitempty" json:"specifications,omitempty"`
	Features       []string        `bson:"features,omitempty" json:"features,omitempty"`
	Included       []string        `bson:"included,omitempty" json:"included,omitempty"`
}

// OwnerDetails is the embedded public profile of the person renting the car out.
type OwnerDetails struct {
	Name       string   `bson:"name" json:"name"`
	Avatar     string   `bson:"avatar" json:"avatar"`
	Age        int      `bson:"age" json:"age"`
	Experience string   `bson:"experience" json:"experience"`
	Rating     float64  `bson:"rating" json:"rating"`
	Reviews    int      `bson:"reviews" json:"reviews"`
	Bio        string   `bson:"bio" json:"bio"`
	Location   string   `bson:"location" json:"location"`
	Languages  []string `bson:"languages" json:"languages"`
	Verified   bool     `bson:"verified" json:"verified"`
}

// Route describes the suggested driving route sold with the rental.
type Route struct {
	Name        string   `bson:"name" json:"name"`
	Distance    string   `bson:"distance" json:"distance"`
	Duration    string   `bson:"duration" json:"duration"`
	Difficulty  string   `bson:"difficulty" json:"difficulty"`
	Description string   `bson:"description" json:"description"`
	Highlights  []string `bson:"highlights" json:"highlights"`
	MapImage    string   `bson:"mapImage" json:"mapImage"`
}

// Specifications is the technical data block shown on the detail page.
type Specifications struct {
	Engine       string `bson:"engine" json:"engine"`
	Transmission string `bson:"transmission" json:"transmission"`
	Drivetrain   string `bson:"drivetrain" json:"drivetrain"`
	Weight       string `bson:"weight" json:"weight"`
	FuelType     string `bson:"fuelType" json:"fuelType"`
	Consumption  string `bson:"consumption" json:"consumption"`
	CO2          string `bson:"co2" json:"co2"`
}
