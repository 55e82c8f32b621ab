package seeders

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/ridewithme/app/models"
	"github.com/shashiranjanraj/ridewithme/pkg/database"
)

func init() {
	register(Seeder{Name: "cars", Run: seedCars})
}

// seedCars replaces the fleet with the demo catalog. The first two cars
// carry the full detail blocks; the rest are catalog-only records, which
// also exercises the partial-document path of the detail page.
func seedCars(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection(database.CarsCollection)
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}

	docs := make([]interface{}, len(demoCars))
	for i := range demoCars {
		docs[i] = demoCars[i]
	}
	_, err := coll.InsertMany(ctx, docs)
	return err
}

var demoCars = []models.Car{
	{
		ID:           1,
		Brand:        "Ferrari",
		Model:        "488 GTB",
		Year:         2020,
		Price:        250,
		Location:     "Paris",
		Image:        "https://images.unsplash.com/photo-1544829099-b9a0c5303bea?w=800&h=500&fit=crop&crop=center",
		Owner:        "Michel R.",
		Rating:       4.9,
		Reviews:      24,
		Horsepower:   670,
		TopSpeed:     330,
		Acceleration: 3.0,
		Category:     "Supercar",
		Color:        "Rouge Rosso Corsa",
		Images: []string{
			"https://images.unsplash.com/photo-1544829099-b9a0c5303bea?w=1200&h=800&fit=crop&crop=center",
			"https://images.unsplash.com/photo-1583121274602-3e2820c69888?w=1200&h=800&fit=crop&crop=center",
			"https://images.unsplash.com/photo-1552519507-da3b142c6e3d?w=1200&h=800&fit=crop&crop=center",
			"https://images.unsplash.com/photo-1563720223185-11003d516935?w=1200&h=800&fit=crop&crop=center",
		},
		OwnerDetails: &models.OwnerDetails{
			Name:       "Michel Rousseau",
			Avatar:     "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=200&h=200&fit=crop&crop=face",
			Age:        42,
			Experience: "8 ans",
			Rating:     4.9,
			Reviews:    156,
			Bio:        "Passionné d'automobiles italiennes depuis plus de 15 ans. Je possède cette Ferrari depuis 3 ans et j'adore partager ma passion avec d'autres enthousiastes. Ancien pilote amateur, je connais parfaitement les routes de montagne.",
			Location:   "Paris 16ème",
			Languages:  []string{"Français", "Anglais", "Italien"},
			Verified:   true,
		},
		Route: &models.Route{
			Name:        "Route des Grandes Alpes",
			Distance:    "280 km",
			Duration:    "4h30",
			Difficulty:  "Intermédiaire",
			Description: "Un parcours mythique à travers les cols alpins avec des paysages à couper le souffle. Nous traverserons le Col du Galibier, le Col de l'Iseran et finirons au Col de la Bonette.",
			Highlights: []string{
				"Col du Galibier (2645m)",
				"Col de l'Iseran (2764m)",
				"Col de la Bonette (2802m)",
				"Villages alpins authentiques",
				"Points photos panoramiques",
			},
			MapImage: "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&h=600&fit=crop&crop=center",
		},
		Specifications: &models.Specifications{
			Engine:       "V8 3.9L Turbo",
			Transmission: "7 rapports automatique",
			Drivetrain:   "Propulsion",
			Weight:       "1475 kg",
			FuelType:     "Essence SP98",
			Consumption:  "11.4L/100km",
			CO2:          "260 g/km",
		},
		Features: []string{
			"Sièges sport en cuir Frau",
			"Système audio premium",
			"Climatisation automatique",
			"Écran tactile 8.4\"",
			"Caméra de recul",
			"Jantes 20\" forgées",
			"Étriers Brembo",
			"Suspension adaptative",
		},
		Included: []string{
			"Casque intégral fourni",
			"Gants de conduite",
			"Briefing sécurité complet",
			"Photos/vidéos de la sortie",
			"Assurance tous risques",
			"Carburant inclus",
			"Déjeuner dans un restaurant étoilé",
		},
	},
	{
		ID:           2,
		Brand:        "Lamborghini",
		Model:        "Huracán EVO",
		Year:         2021,
		Price:        300,
		Location:     "Lyon",
		Image:        "https://images.unsplash.com/photo-1563720223185-11003d516935?w=800&h=500&fit=crop&crop=center",
		Owner:        "Sophie M.",
		Rating:       4.8,
		Reviews:      18,
		Horsepower:   640,
		TopSpeed:     325,
		Acceleration: 2.9,
		Category:     "Supercar",
		Color:        "Orange Arancio",
		Images: []string{
			"https://images.unsplash.com/photo-1563720223185-11003d516935?w=1200&h=800&fit=crop&crop=center",
			"https://images.unsplash.com/photo-1544829099-b9a0c5303bea?w=1200&h=800&fit=crop&crop=center",
			"https://images.unsplash.com/photo-1520031441872-265b8e4156a2?w=1200&h=800&fit=crop&crop=center",
			"https://images.unsplash.com/photo-1583121274602-3e2820c69888?w=1200&h=800&fit=crop&crop=center",
		},
		OwnerDetails: &models.OwnerDetails{
			Name:       "Sophie Martin",
			Avatar:     "https://images.unsplash.com/photo-1494790108755-2616b612b0e1?w=200&h=200&fit=crop&crop=face",
			Age:        35,
			Experience: "6 ans",
			Rating:     4.8,
			Reviews:    89,
			Bio:        "Pilote professionnelle reconvertie dans le partage d'expériences automobiles. Spécialisée dans les supercars italiennes, j'organise des sorties sur circuits et en montagne pour faire découvrir ces bolides d'exception.",
			Location:   "Lyon 6ème",
			Languages:  []string{"Français", "Anglais"},
			Verified:   true,
		},
		Route: &models.Route{
			Name:        "Circuit des Dombes",
			Distance:    "220 km",
			Duration:    "3h45",
			Difficulty:  "Facile",
			Description: "Un parcours à travers la région des étangs de la Dombes, avec des lignes droites permettant d'apprécier les performances de la Lamborghini et des paysages uniques.",
			Highlights: []string{
				"Étangs de la Dombes",
				"Villages médiévaux",
				"Routes sinueuses en forêt",
				"Point de vue panoramique",
				"Dégustation locale",
			},
			MapImage: "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&h=600&fit=crop&crop=center",
		},
		Specifications: &models.Specifications{
			Engine:       "V10 5.2L Atmosph.",
			Transmission: "7 rapports automatique",
			Drivetrain:   "Intégrale",
			Weight:       "1422 kg",
			FuelType:     "Essence SP98",
			Consumption:  "13.9L/100km",
			CO2:          "325 g/km",
		},
		Features: []string{
			"Sièges Alcantara sport",
			"Système multimédia ANIMA",
			"Climatisation bi-zone",
			"Caméra 360°",
			"Jantes 20\" Pirelli",
			"Système d'échappement sport",
			"Suspension magnétique",
			"Éclairage LED Matrix",
		},
		Included: []string{
			"Casque Arai fourni",
			"Gants Sparco",
			"Briefing technique",
			"Session photo professionnelle",
			"Assurance premium",
			"Carburant SP98 inclus",
			"Pause déjeuner gastronomique",
		},
	},
	{
		ID:           3,
		Brand:        "Porsche",
		Model:        "911 Turbo S",
		Year:         2022,
		Price:        200,
		Location:     "Marseille",
		Image:        "https://images.unsplash.com/photo-1503736334956-4c8f8e92946d?w=800&h=500&fit=crop&crop=center",
		Owner:        "Antoine L.",
		Rating:       5.0,
		Reviews:      31,
		Horsepower:   650,
		TopSpeed:     330,
		Acceleration: 2.7,
		Category:     "Sport",
		Color:        "Gris GT Silver",
	},
	{
		ID:           4,
		Brand:        "McLaren",
		Model:        "720S",
		Year:         2019,
		Price:        280,
		Location:     "Nice",
		Image:        "https://images.unsplash.com/photo-1520031441872-265b8e4156a2?w=800&h=500&fit=crop&crop=center",
		Owner:        "Julie D.",
		Rating:       4.7,
		Reviews:      15,
		Horsepower:   720,
		TopSpeed:     341,
		Acceleration: 2.8,
		Category:     "Supercar",
		Color:        "Bleu Burton",
	},
	{
		ID:           5,
		Brand:        "Aston Martin",
		Model:        "DB11",
		Year:         2021,
		Price:        220,
		Location:     "Bordeaux",
		Image:        "https://images.unsplash.com/photo-1552519507-da3b142c6e3d?w=800&h=500&fit=crop&crop=center",
		Owner:        "Pierre K.",
		Rating:       4.9,
		Reviews:      22,
		Horsepower:   630,
		TopSpeed:     322,
		Acceleration: 3.9,
		Category:     "Grand Tourer",
		Color:        "Noir Jet Black",
	},
	{
		ID:           6,
		Brand:        "BMW",
		Model:        "M8 Competition",
		Year:         2022,
		Price:        180,
		Location:     "Toulouse",
		Image:        "https://images.unsplash.com/photo-1555215695-3004980ad54e?w=800&h=500&fit=crop&crop=center",
		Owner:        "Clara B.",
		Rating:       4.6,
		Reviews:      19,
		Horsepower:   625,
		TopSpeed:     305,
		Acceleration: 3.2,
		Category:     "Grand Tourer",
		Color:        "Blanc Alpine",
	},
	{
		ID:           7,
		Brand:        "Bugatti",
		Model:        "Chiron",
		Year:         2023,
		Price:        500,
		Location:     "Monaco",
		Image:        "https://images.unsplash.com/photo-1544636331-e26879cd4d9b?w=800&h=500&fit=crop&crop=center",
		Owner:        "Alexandre D.",
		Rating:       5.0,
		Reviews:      8,
		Horsepower:   1500,
		TopSpeed:     420,
		Acceleration: 2.4,
		Category:     "Hypercar",
		Color:        "Bleu Bugatti",
	},
	{
		ID:           8,
		Brand:        "Koenigsegg",
		Model:        "Regera",
		Year:         2022,
		Price:        450,
		Location:     "Cannes",
		Image:        "https://images.unsplash.com/photo-1492144534655-ae79c964c9d7?w=800&h=500&fit=crop&crop=center",
		Owner:        "Victoria S.",
		Rating:       4.9,
		Reviews:      5,
		Horsepower:   1360,
		TopSpeed:     400,
		Acceleration: 2.8,
		Category:     "Hypercar",
		Color:        "Carbon Noir",
	},
	{
		ID:           9,
		Brand:        "Tesla",
		Model:        "Roadster",
		Year:         2023,
		Price:        180,
		Location:     "Paris",
		Image:        "https://images.unsplash.com/photo-1617788138017-80ad40651399?w=800&h=500&fit=crop&crop=center",
		Owner:        "Thomas E.",
		Rating:       4.7,
		Reviews:      12,
		Horsepower:   1020,
		TopSpeed:     400,
		Acceleration: 1.9,
		Category:     "Électrique",
		Color:        "Rouge Cherry",
	},
}
