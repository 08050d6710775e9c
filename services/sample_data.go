package services

import (
	"encoding/json"

	"gorm.io/datatypes"

	"tourism-backend/models"
)

// Built-in sample catalog served whenever the live store errors or is still
// unseeded, so listings are never blank. IDs are stable slugs so detail
// links keep working against the fallback set.

func mustJSON(v any) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return datatypes.JSON(b)
}

func strPtr(s string) *string { return &s }

var SampleDestinations = []models.Destination{
	{
		ID:          "dest-munnar",
		Name:        "Munnar",
		Description: "Hill station wrapped in tea plantations and misty valleys.",
		ImageURL:    "/images/destinations/munnar.jpg",
		Location:    "Idukki, Kerala",
		IsFeatured:  true,
	},
	{
		ID:          "dest-alleppey",
		Name:        "Alleppey",
		Description: "Backwater canals, lagoons and paddy fields best seen from a houseboat.",
		ImageURL:    "/images/destinations/alleppey.jpg",
		Location:    "Alappuzha, Kerala",
		IsFeatured:  true,
	},
	{
		ID:          "dest-kovalam",
		Name:        "Kovalam",
		Description: "Crescent beaches and lighthouse views on the Arabian Sea.",
		ImageURL:    "/images/destinations/kovalam.jpg",
		Location:    "Thiruvananthapuram, Kerala",
		IsFeatured:  false,
	},
}

var SampleHotels = []models.Hotel{
	{
		ID:            "hotel-tea-valley",
		Name:          "Tea Valley Resort",
		Description:   "Plantation-view rooms above the Muthirapuzha river valley.",
		DestinationID: strPtr("dest-munnar"),
		Address:       "Pothamedu, Munnar",
		PricePerNight: 4500,
		StarRating:    4,
		Amenities:     mustJSON([]string{"wifi", "restaurant", "parking", "room-service"}),
		Images:        mustJSON([]string{"/images/hotels/tea-valley-1.jpg", "/images/hotels/tea-valley-2.jpg"}),
		IsFeatured:    true,
	},
	{
		ID:            "hotel-lake-palace",
		Name:          "Lake Palace Residency",
		Description:   "Heritage property on the Vembanad lake shore.",
		DestinationID: strPtr("dest-alleppey"),
		Address:       "Finishing Point, Alappuzha",
		PricePerNight: 6200,
		StarRating:    5,
		Amenities:     mustJSON([]string{"wifi", "pool", "spa", "restaurant"}),
		Images:        mustJSON([]string{"/images/hotels/lake-palace-1.jpg"}),
		IsFeatured:    true,
	},
	{
		ID:            "hotel-sea-breeze",
		Name:          "Sea Breeze Inn",
		Description:   "Budget stay two minutes from Lighthouse Beach.",
		DestinationID: strPtr("dest-kovalam"),
		Address:       "Lighthouse Road, Kovalam",
		PricePerNight: 2100,
		StarRating:    3,
		Amenities:     mustJSON([]string{"wifi", "parking"}),
		Images:        mustJSON([]string{"/images/hotels/sea-breeze-1.jpg"}),
		IsFeatured:    false,
	},
}

var SamplePackages = []models.Package{
	{
		ID:                 "pkg-kerala-classic",
		Name:               "Kerala Classic",
		Description:        "Munnar, Thekkady and Alleppey in one loop.",
		Duration:           "5 days / 4 nights",
		Price:              24999,
		DiscountPercentage: 10,
		Itinerary: mustJSON([]map[string]any{
			{"day": 1, "description": "Arrival at Kochi, drive to Munnar"},
			{"day": 2, "description": "Tea museum and Eravikulam National Park"},
			{"day": 3, "description": "Thekkady spice gardens"},
			{"day": 4, "description": "Alleppey houseboat cruise"},
			{"day": 5, "description": "Departure from Kochi"},
		}),
		Inclusions: mustJSON([]string{"accommodation", "breakfast", "transfers", "houseboat cruise"}),
		Exclusions: mustJSON([]string{"flights", "lunch and dinner", "entry tickets"}),
		Images:     mustJSON([]string{"/images/packages/kerala-classic.jpg"}),
		IsFeatured: true,
	},
	{
		ID:                 "pkg-hill-and-beach",
		Name:               "Hills & Beaches",
		Description:        "Munnar mornings, Kovalam sunsets.",
		Duration:           "4 days / 3 nights",
		Price:              18500,
		DiscountPercentage: 0,
		Itinerary: mustJSON([]map[string]any{
			{"day": 1, "description": "Kochi to Munnar"},
			{"day": 2, "description": "Munnar sightseeing"},
			{"day": 3, "description": "Drive to Kovalam"},
			{"day": 4, "description": "Beach day and departure"},
		}),
		Inclusions: mustJSON([]string{"accommodation", "breakfast", "transfers"}),
		Exclusions: mustJSON([]string{"flights", "personal expenses"}),
		Images:     mustJSON([]string{"/images/packages/hill-and-beach.jpg"}),
		IsFeatured: false,
	},
}

var SampleHouseboats = []models.Houseboat{
	{
		ID:            "boat-emerald",
		Name:          "Emerald Queen",
		Description:   "Two-bedroom premium kettuvallam with an upper deck.",
		Location:      "Alleppey",
		PricePerNight: 9500,
		Capacity:      6,
		Bedrooms:      2,
		Amenities:     mustJSON([]string{"ac-bedrooms", "onboard-chef", "sun-deck"}),
		Images:        mustJSON([]string{"/images/houseboats/emerald-1.jpg"}),
		IsLuxury:      true,
		IsFeatured:    true,
	},
	{
		ID:            "boat-backwater-pearl",
		Name:          "Backwater Pearl",
		Description:   "Single-bedroom boat for a quiet overnight cruise.",
		Location:      "Kumarakom",
		PricePerNight: 5800,
		Capacity:      3,
		Bedrooms:      1,
		Amenities:     mustJSON([]string{"ac-bedrooms", "onboard-chef"}),
		Images:        mustJSON([]string{"/images/houseboats/pearl-1.jpg"}),
		IsLuxury:      false,
		IsFeatured:    false,
	},
}

var SampleTaxis = []models.Taxi{
	{
		ID:          "taxi-sedan-ac",
		Name:        "AC Sedan",
		Description: "Comfortable sedan for up to 4 passengers with luggage.",
		VehicleType: "sedan",
		Capacity:    4,
		PricePerKM:  14,
		BaseFare:    300,
		Images:      mustJSON([]string{"/images/taxis/sedan.jpg"}),
		IsFeatured:  true,
	},
	{
		ID:          "taxi-traveller",
		Name:        "Tempo Traveller",
		Description: "12-seat van for group transfers and day tours.",
		VehicleType: "van",
		Capacity:    12,
		PricePerKM:  22,
		BaseFare:    600,
		Images:      mustJSON([]string{"/images/taxis/traveller.jpg"}),
		IsFeatured:  false,
	},
}

var SampleActivities = []models.Activity{
	{
		ID:            "act-kathakali",
		Name:          "Kathakali Evening Show",
		Description:   "Classical dance performance with make-up demonstration.",
		DestinationID: strPtr("dest-munnar"),
		Duration:      "2 hours",
		Price:         500,
		Category:      "culture",
		Images:        mustJSON([]string{"/images/activities/kathakali.jpg"}),
		IsFeatured:    true,
	},
	{
		ID:            "act-shikara-ride",
		Name:          "Shikara Canal Ride",
		Description:   "Slow cruise through the narrow village canals.",
		DestinationID: strPtr("dest-alleppey"),
		Duration:      "3 hours",
		Price:         1200,
		Category:      "nature",
		Images:        mustJSON([]string{"/images/activities/shikara.jpg"}),
		IsFeatured:    true,
	},
	{
		ID:            "act-surf-lesson",
		Name:          "Beginner Surf Lesson",
		Description:   "Board, instructor and two hours in the Kovalam surf.",
		DestinationID: strPtr("dest-kovalam"),
		Duration:      "2 hours",
		Price:         1800,
		Category:      "adventure",
		Images:        mustJSON([]string{"/images/activities/surf.jpg"}),
		IsFeatured:    false,
	},
}
