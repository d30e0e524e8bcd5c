package catalog

import (
	"fmt"

	"github.com/FACorreiaa/go-yatra/internal/types"
)

// Seed returns the compiled-in reference catalog.
func Seed() *Catalog {
	c, err := New(seedPreferences(), seedStates(), seedCities(), seedPlaces())
	if err != nil {
		panic(fmt.Sprintf("catalog: seed data is invalid: %v", err))
	}
	return c
}

func seedPreferences() []types.Preference {
	return []types.Preference{
		{ID: types.PreferenceHills, Label: "Hills", Icon: "⛰️", Description: "Scenic hill stations and valleys"},
		{ID: types.PreferenceMountains, Label: "Mountains", Icon: "🏔️", Description: "Majestic mountain ranges"},
		{ID: types.PreferenceBeaches, Label: "Beaches", Icon: "🏖️", Description: "Beautiful coastal areas"},
		{ID: types.PreferenceAgriculture, Label: "Agriculture Villages", Icon: "🌾", Description: "Rural farming communities"},
		{ID: types.PreferenceSpiritual, Label: "Spiritual Places", Icon: "🛕", Description: "Temples and sacred sites"},
	}
}

func seedStates() []types.State {
	return []types.State{
		{
			ID:          "andhra-pradesh",
			Name:        "Andhra Pradesh",
			Description: "Land of rice and spices, known for its rich cultural heritage and stunning temples.",
			Image:       "https://images.unsplash.com/photo-1582510003544-4d00b7f74220?w=800",
			Highlights:  []string{"Tirupati Temple", "Beaches", "Rich Culture"},
		},
		{
			ID:          "telangana",
			Name:        "Telangana",
			Description: "Home to the historic city of Hyderabad with its iconic Charminar and delicious biryani.",
			Image:       "https://images.unsplash.com/photo-1603813507806-0d33c9d6b0c4?w=800",
			Highlights:  []string{"Charminar", "Golconda Fort", "Hyderabadi Cuisine"},
		},
		{
			ID:          "tamil-nadu",
			Name:        "Tamil Nadu",
			Description: "Ancient Dravidian culture with magnificent temples and classical arts.",
			Image:       "https://images.unsplash.com/photo-1582510003544-4d00b7f74220?w=800",
			Highlights:  []string{"Meenakshi Temple", "Marina Beach", "Classical Dance"},
		},
		{
			ID:          "kerala",
			Name:        "Kerala",
			Description: "God's Own Country - famous for backwaters, Ayurveda, and lush greenery.",
			Image:       "https://images.unsplash.com/photo-1602216056096-3b40cc0c9944?w=800",
			Highlights:  []string{"Backwaters", "Hill Stations", "Ayurveda"},
		},
	}
}

func seedCities() []types.City {
	return []types.City{
		// Andhra Pradesh
		{
			ID:          "vijayawada",
			StateID:     "andhra-pradesh",
			Name:        "Vijayawada",
			Description: "The business capital of AP, known for Kanaka Durga Temple and vibrant city life.",
			Image:       "https://images.unsplash.com/photo-1587474260584-136574528ed5?w=800",
			Tags:        []string{"City Life", "Culture", "Temples"},
			BestFor:     []types.PreferenceType{types.PreferenceSpiritual, types.PreferenceAgriculture},
		},
		{
			ID:          "visakhapatnam",
			StateID:     "andhra-pradesh",
			Name:        "Visakhapatnam",
			Description: "The City of Destiny - a beautiful port city with stunning beaches and hills.",
			Image:       "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=800",
			Tags:        []string{"Beaches", "Hills", "Navy"},
			BestFor:     []types.PreferenceType{types.PreferenceBeaches, types.PreferenceHills, types.PreferenceMountains},
		},
		{
			ID:          "tirupati",
			StateID:     "andhra-pradesh",
			Name:        "Tirupati",
			Description: "Home to the world-famous Tirumala Venkateswara Temple, one of the richest pilgrimage centers.",
			Image:       "https://images.unsplash.com/photo-1582510003544-4d00b7f74220?w=800",
			Tags:        []string{"Pilgrimage", "Spiritual", "Temple"},
			BestFor:     []types.PreferenceType{types.PreferenceSpiritual, types.PreferenceHills},
		},
		// Telangana
		{
			ID:          "hyderabad",
			StateID:     "telangana",
			Name:        "Hyderabad",
			Description: "The City of Pearls - known for Charminar, biryani, and IT hub.",
			Image:       "https://images.unsplash.com/photo-1603813507806-0d33c9d6b0c4?w=800",
			Tags:        []string{"Heritage", "Food", "IT Hub"},
			BestFor:     []types.PreferenceType{types.PreferenceSpiritual, types.PreferenceAgriculture},
		},
		{
			ID:          "warangal",
			StateID:     "telangana",
			Name:        "Warangal",
			Description: "Ancient Kakatiya kingdom capital with stunning temples and fort ruins.",
			Image:       "https://images.unsplash.com/photo-1548013146-72479768bada?w=800",
			Tags:        []string{"Heritage", "Temples", "History"},
			BestFor:     []types.PreferenceType{types.PreferenceSpiritual, types.PreferenceAgriculture},
		},
		// Tamil Nadu
		{
			ID:          "chennai",
			StateID:     "tamil-nadu",
			Name:        "Chennai",
			Description: "The gateway to South India with beautiful beaches and classical arts.",
			Image:       "https://images.unsplash.com/photo-1582510003544-4d00b7f74220?w=800",
			Tags:        []string{"Beaches", "Culture", "Temples"},
			BestFor:     []types.PreferenceType{types.PreferenceBeaches, types.PreferenceSpiritual},
		},
		{
			ID:          "madurai",
			StateID:     "tamil-nadu",
			Name:        "Madurai",
			Description: "One of the oldest cities in India, home to the magnificent Meenakshi Temple.",
			Image:       "https://images.unsplash.com/photo-1582510003544-4d00b7f74220?w=800",
			Tags:        []string{"Pilgrimage", "Heritage", "Temples"},
			BestFor:     []types.PreferenceType{types.PreferenceSpiritual},
		},
		// Kerala
		{
			ID:          "kochi",
			StateID:     "kerala",
			Name:        "Kochi",
			Description: "The Queen of Arabian Sea - a vibrant port city with colonial heritage.",
			Image:       "https://images.unsplash.com/photo-1602216056096-3b40cc0c9944?w=800",
			Tags:        []string{"Backwaters", "Heritage", "Beaches"},
			BestFor:     []types.PreferenceType{types.PreferenceBeaches, types.PreferenceAgriculture},
		},
		{
			ID:          "munnar",
			StateID:     "kerala",
			Name:        "Munnar",
			Description: "A hill station surrounded by tea plantations and misty mountains.",
			Image:       "https://images.unsplash.com/photo-1602216056096-3b40cc0c9944?w=800",
			Tags:        []string{"Hills", "Tea Gardens", "Nature"},
			BestFor:     []types.PreferenceType{types.PreferenceHills, types.PreferenceMountains, types.PreferenceAgriculture},
		},
	}
}

func seedPlaces() []types.Place {
	return []types.Place{
		// Visakhapatnam
		{
			ID:            "rk-beach",
			CityID:        "visakhapatnam",
			Name:          "RK Beach",
			Description:   "The most popular beach in Vizag, perfect for evening walks and local food.",
			Image:         "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=800",
			Category:      "Beach",
			VisitDuration: "2-3 hours",
		},
		{
			ID:            "kailasagiri",
			CityID:        "visakhapatnam",
			Name:          "Kailasagiri",
			Description:   "A hilltop park with panoramic views of the city and sea, featuring Shiva-Parvati statues.",
			Image:         "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800",
			Category:      "Hill Station",
			VisitDuration: "3-4 hours",
		},
		{
			ID:            "submarine-museum",
			CityID:        "visakhapatnam",
			Name:          "INS Kursura Submarine Museum",
			Description:   "A decommissioned submarine converted into a museum showcasing naval history.",
			Image:         "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=800",
			Category:      "Museum",
			VisitDuration: "1-2 hours",
		},
		{
			ID:            "araku-valley",
			CityID:        "visakhapatnam",
			Name:          "Araku Valley",
			Description:   "A scenic hill station known for coffee plantations and tribal culture.",
			Image:         "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800",
			Category:      "Hill Station",
			VisitDuration: "Full day",
		},
		// Tirupati
		{
			ID:            "tirumala-temple",
			CityID:        "tirupati",
			Name:          "Tirumala Venkateswara Temple",
			Description:   "The most visited religious site in the world, dedicated to Lord Venkateswara.",
			Image:         "https://images.unsplash.com/photo-1582510003544-4d00b7f74220?w=800",
			Category:      "Temple",
			VisitDuration: "4-6 hours",
		},
		{
			ID:            "sri-padmavathi",
			CityID:        "tirupati",
			Name:          "Sri Padmavathi Ammavari Temple",
			Description:   "Temple dedicated to Goddess Padmavathi, consort of Lord Venkateswara.",
			Image:         "https://images.unsplash.com/photo-1582510003544-4d00b7f74220?w=800",
			Category:      "Temple",
			VisitDuration: "1-2 hours",
		},
		{
			ID:            "talakona-waterfall",
			CityID:        "tirupati",
			Name:          "Talakona Waterfall",
			Description:   "The highest waterfall in Andhra Pradesh, surrounded by dense forests.",
			Image:         "https://images.unsplash.com/photo-1432405972618-c60b0225b8f9?w=800",
			Category:      "Nature",
			VisitDuration: "3-4 hours",
		},
		// Vijayawada
		{
			ID:            "kanaka-durga",
			CityID:        "vijayawada",
			Name:          "Kanaka Durga Temple",
			Description:   "An ancient temple dedicated to Goddess Durga, situated on Indrakeeladri Hill.",
			Image:         "https://images.unsplash.com/photo-1582510003544-4d00b7f74220?w=800",
			Category:      "Temple",
			VisitDuration: "2-3 hours",
		},
		{
			ID:            "prakasam-barrage",
			CityID:        "vijayawada",
			Name:          "Prakasam Barrage",
			Description:   "A beautiful dam across Krishna River, offering stunning sunset views.",
			Image:         "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800",
			Category:      "Landmark",
			VisitDuration: "1-2 hours",
		},
		{
			ID:            "undavalli-caves",
			CityID:        "vijayawada",
			Name:          "Undavalli Caves",
			Description:   "Ancient rock-cut caves with beautiful sculptures and a huge monolithic Buddha statue.",
			Image:         "https://images.unsplash.com/photo-1548013146-72479768bada?w=800",
			Category:      "Heritage",
			VisitDuration: "2-3 hours",
		},
	}
}
