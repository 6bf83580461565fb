package bootstrap

import "github.com/homevista/property-listings/internal/model"

// sampleCatalog is inserted once into an empty properties collection so a
// fresh deployment has something to browse. AgentID 1 is the seeded admin.
var sampleCatalog = []model.Property{
	{
		Title:        "Family Suburban Home",
		Description:  "Spacious four-bedroom home on a quiet cul-de-sac with a fenced backyard and two-car garage.",
		Price:        "475000",
		Location:     "Maplewood, NJ",
		PropertyType: "house",
		Bedrooms:     4,
		Bathrooms:    2.5,
		AreaSqFt:     2400,
		Status:       model.StatusAvailable,
		Images:       []string{"https://images.homevista.io/listings/suburban-home-1.jpg"},
		Features:     []string{"Fenced backyard", "Two-car garage", "Finished basement"},
		AgentID:      1,
	},
	{
		Title:        "Oceanview Condo",
		Description:  "Ninth-floor corner unit with floor-to-ceiling windows and unobstructed ocean views.",
		Price:        "650000",
		Location:     "Miami Beach, FL",
		PropertyType: "condo",
		Bedrooms:     2,
		Bathrooms:    2,
		AreaSqFt:     1350,
		Status:       model.StatusAvailable,
		Images:       []string{"https://images.homevista.io/listings/oceanview-condo-1.jpg"},
		Features:     []string{"Ocean view", "Rooftop pool", "Concierge"},
		AgentID:      1,
	},
	{
		Title:        "Modern Townhouse",
		Description:  "Newly built three-story townhouse with a rooftop terrace, walkable to shops and transit.",
		Price:        "725000",
		Location:     "Austin, TX",
		PropertyType: "townhouse",
		Bedrooms:     3,
		Bathrooms:    3.5,
		AreaSqFt:     1980,
		Status:       model.StatusAvailable,
		Images:       []string{"https://images.homevista.io/listings/modern-townhouse-1.jpg"},
		Features:     []string{"Rooftop terrace", "Smart thermostat", "EV charger"},
		AgentID:      1,
	},
	{
		Title:        "Cozy Studio Apartment",
		Description:  "Bright studio near the university, ideal as a starter home or rental investment.",
		Price:        "189000",
		Location:     "Columbus, OH",
		PropertyType: "apartment",
		Bedrooms:     0,
		Bathrooms:    1,
		AreaSqFt:     520,
		Status:       model.StatusAvailable,
		Images:       []string{"https://images.homevista.io/listings/cozy-studio-1.jpg"},
		Features:     []string{"In-unit laundry", "Bike storage"},
		AgentID:      1,
	},
	{
		Title:        "Grand Hillside Villa",
		Description:  "Mediterranean villa with an infinity pool, wine cellar and panoramic canyon views.",
		Price:        "1250000",
		Location:     "Scottsdale, AZ",
		PropertyType: "villa",
		Bedrooms:     5,
		Bathrooms:    4.5,
		AreaSqFt:     4600,
		Status:       model.StatusPending,
		Images:       []string{"https://images.homevista.io/listings/hillside-villa-1.jpg"},
		Features:     []string{"Infinity pool", "Wine cellar", "Guest house"},
		AgentID:      1,
	},
	{
		Title:        "Lakefront Craftsman",
		Description:  "Restored craftsman on two wooded acres with a private dock and wraparound porch.",
		Price:        "980000",
		Location:     "Lake Geneva, WI",
		PropertyType: "house",
		Bedrooms:     4,
		Bathrooms:    3,
		AreaSqFt:     3100,
		Status:       model.StatusSold,
		Images:       []string{"https://images.homevista.io/listings/lakefront-craftsman-1.jpg"},
		Features:     []string{"Private dock", "Wraparound porch", "Stone fireplace"},
		AgentID:      1,
	},
}
