package repositories

import (
	"time"

	"github.com/BillyBobz/travel-planner/backend/internal/models"
	"github.com/google/uuid"
)

// SeedDemoData loads the demo dataset the app ships with. Everything lives
// in memory, so this runs once at startup.
func SeedDemoData(
	destinations *InMemoryDestinationRepository,
	trips *InMemoryTripRepository,
	users *InMemoryUserRepository,
	bookings *InMemoryBookingRepository,
	notifications *InMemoryNotificationRepository,
	social *InMemorySocialTripRepository,
) {
	now := time.Now()

	destinations.Seed(
		models.Destination{
			ID:              uuid.NewString(),
			Name:            "Santorini",
			Country:         "Greece",
			Description:     "A beautiful Greek island known for its stunning sunsets, white buildings, and blue domes.",
			ImageURL:        "https://images.unsplash.com/photo-1570077188670-e3a8d69ac5ff?w=800",
			Rating:          4.8,
			Coordinates:     models.Coordinates{Lat: 36.3932, Lng: 25.4615},
			Category:        "beach",
			BestTimeToVisit: "April to October",
			AverageCost:     1200,
			Activities:      []string{"Beach hopping", "Wine tasting", "Sunset viewing", "Photography"},
		},
		models.Destination{
			ID:              uuid.NewString(),
			Name:            "Kyoto",
			Country:         "Japan",
			Description:     "Ancient capital with beautiful temples, traditional architecture, and stunning gardens.",
			ImageURL:        "https://images.unsplash.com/photo-1493976040374-85c8e12f0c0e?w=800",
			Rating:          4.9,
			Coordinates:     models.Coordinates{Lat: 35.0116, Lng: 135.7681},
			Category:        "cultural",
			BestTimeToVisit: "March to May, September to November",
			AverageCost:     1000,
			Activities:      []string{"Temple visits", "Garden tours", "Traditional tea ceremony", "Cherry blossom viewing"},
		},
		models.Destination{
			ID:              uuid.NewString(),
			Name:            "Banff National Park",
			Country:         "Canada",
			Description:     "Spectacular mountain scenery, pristine lakes, and abundant wildlife in the Canadian Rockies.",
			ImageURL:        "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=800",
			Rating:          4.7,
			Coordinates:     models.Coordinates{Lat: 51.4968, Lng: -115.9281},
			Category:        "nature",
			BestTimeToVisit: "June to September",
			AverageCost:     800,
			Activities:      []string{"Hiking", "Lake canoeing", "Wildlife watching", "Mountain climbing"},
		},
		models.Destination{
			ID:              uuid.NewString(),
			Name:            "Paris",
			Country:         "France",
			Description:     "The City of Light, famous for its art, fashion, gastronomy, and culture.",
			ImageURL:        "https://images.unsplash.com/photo-1431274172761-fca41d930114?w=800",
			Rating:          4.6,
			Coordinates:     models.Coordinates{Lat: 48.8566, Lng: 2.3522},
			Category:        "city",
			BestTimeToVisit: "April to June, September to October",
			AverageCost:     1500,
			Activities:      []string{"Museum visits", "Seine river cruise", "Café culture", "Shopping"},
		},
		models.Destination{
			ID:              uuid.NewString(),
			Name:            "Machu Picchu",
			Country:         "Peru",
			Description:     "Ancient Incan citadel set high in the Andes Mountains, a UNESCO World Heritage site.",
			ImageURL:        "https://images.unsplash.com/photo-1526392060635-9d6019884377?w=800",
			Rating:          4.9,
			Coordinates:     models.Coordinates{Lat: -13.1631, Lng: -72.5450},
			Category:        "adventure",
			BestTimeToVisit: "May to September",
			AverageCost:     900,
			Activities:      []string{"Inca Trail hiking", "Historical tours", "Photography", "Llama spotting"},
		},
	)

	trips.Seed(models.Trip{
		ID:           uuid.NewString(),
		UserID:       "user1",
		Title:        "Greece Island Hopping",
		Description:  "A 10-day adventure through the Greek islands",
		Destinations: []string{"santorini", "mykonos", "crete"},
		StartDate:    "2024-06-15",
		EndDate:      "2024-06-25",
		Budget:       3000,
		Status:       models.TripStatusPlanning,
		Itinerary:    []models.ItineraryItem{},
		CreatedAt:    now,
		UpdatedAt:    now,
	})

	users.Seed(models.User{
		ID:     "user1",
		Email:  "john@example.com",
		Name:   "John Doe",
		Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150",
		Preferences: models.UserPreferences{
			TravelStyle:      "mid-range",
			Interests:        []string{"photography", "food", "culture", "nature"},
			PreferredClimate: "temperate",
		},
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	notifications.Seed(
		models.Notification{
			ID:        uuid.NewString(),
			UserID:    "user1",
			Type:      models.NotificationTypeWeather,
			Title:     "Weather Alert for Paris",
			Message:   "Rain expected during your visit. Pack an umbrella!",
			Priority:  models.PriorityMedium,
			Read:      false,
			CreatedAt: now,
		},
		models.Notification{
			ID:        uuid.NewString(),
			UserID:    "user1",
			Type:      models.NotificationTypeAI,
			Title:     "AI Trip Optimization Available",
			Message:   "I found ways to save $200 on your Tokyo trip. Want to see?",
			Priority:  models.PriorityHigh,
			Read:      false,
			ActionURL: "/ai-assistant",
			CreatedAt: now,
		},
	)

	social.Seed(models.SocialTrip{
		ID:         uuid.NewString(),
		UserID:     "user1",
		UserName:   "BillyBobz",
		UserAvatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop&crop=face",
		Title:      "Amazing 2-Week European Adventure",
		Description: "Just completed an incredible journey through 8 European countries! " +
			"The food, culture, and people were absolutely amazing. Highly recommend this route for first-time Europe travelers.",
		Destinations: []string{"Paris", "Rome", "Barcelona", "Amsterdam", "Prague"},
		Images: []string{
			"https://images.unsplash.com/photo-1502602898536-47ad22581b52",
			"https://images.unsplash.com/photo-1515542622106-78bda8ba0e5b",
			"https://images.unsplash.com/photo-1558642452-9d2a7deb7f62",
		},
		IsPublic: true,
		Likes:    3,
		LikedBy:  []string{"user2", "user3", "user4"},
		Comments: []models.Comment{
			{
				ID:        uuid.NewString(),
				UserID:    "user2",
				UserName:  "TravelExplorer",
				Content:   "This looks incredible! How was the budget for this trip?",
				CreatedAt: now.Add(-2 * time.Hour),
			},
		},
		Tags:      []string{"europe", "backpacking", "culture", "food"},
		CreatedAt: now.Add(-24 * time.Hour),
		UpdatedAt: now,
	})

	bookings.Seed(
		models.Booking{
			ID:               uuid.NewString(),
			UserID:           "ahmed_hassan",
			Type:             models.BookingTypeHotel,
			Status:           models.BookingStatusConfirmed,
			Title:            "Jumeirah Al Seef - Halal Certified Hotel",
			Description:      "Luxury waterfront hotel with halal-certified dining and prayer facilities",
			Destination:      "Dubai, UAE",
			StartDate:        "2025-09-05",
			EndDate:          "2025-09-12",
			Price:            1400,
			Currency:         "GBP",
			Provider:         "Jumeirah Hotels",
			ConfirmationCode: "JAS2025-AH-789",
			Details: map[string]any{
				"roomType":       "Deluxe Creek View",
				"guests":         1,
				"amenities":      []string{"Halal dining", "Prayer room", "Spa", "Creek view", "WiFi"},
				"address":        "Al Seef, Dubai Creek",
				"checkIn":        "15:00",
				"checkOut":       "12:00",
				"halalCertified": true,
			},
			CreatedAt: time.Date(2025, 8, 15, 10, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2025, 8, 15, 10, 0, 0, 0, time.UTC),
		},
		models.Booking{
			ID:               uuid.NewString(),
			UserID:           "ahmed_hassan",
			Type:             models.BookingTypeActivity,
			Status:           models.BookingStatusConfirmed,
			Title:            "Sheikh Zayed Grand Mosque Tour",
			Description:      "Guided tour of the architectural masterpiece with Islamic art and calligraphy",
			Destination:      "Abu Dhabi, UAE",
			StartDate:        "2025-09-06",
			Price:            45,
			Currency:         "GBP",
			Provider:         "Emirates Heritage Tours",
			ConfirmationCode: "SZGM-2025-456",
			Details: map[string]any{
				"duration":   "4 hours",
				"includes":   []string{"Transportation", "Guided tour", "Cultural presentation"},
				"dressCode":  "Conservative - long sleeves and covered legs required",
				"prayerTime": "Tour includes prayer break",
				"groupSize":  "Small group (max 15 people)",
			},
			CreatedAt: time.Date(2025, 8, 20, 14, 30, 0, 0, time.UTC),
			UpdatedAt: time.Date(2025, 8, 20, 14, 30, 0, 0, time.UTC),
		},
		models.Booking{
			ID:               uuid.NewString(),
			UserID:           "ahmed_hassan",
			Type:             models.BookingTypeActivity,
			Status:           models.BookingStatusConfirmed,
			Title:            "Desert Safari with Bedouin Cultural Experience",
			Description:      "Traditional desert safari with halal BBQ dinner and cultural performances",
			Destination:      "Dubai Desert, UAE",
			StartDate:        "2025-09-09",
			Price:            85,
			Currency:         "GBP",
			Provider:         "Arabian Adventures",
			ConfirmationCode: "DS-HALAL-2025-321",
			Details: map[string]any{
				"duration":         "8 hours (3:00 PM - 11:00 PM)",
				"includes":         []string{"4x4 dune bashing", "Camel riding", "Sandboarding", "Halal BBQ dinner", "Cultural shows"},
				"halalCertified":   true,
				"prayerFacilities": "Desert prayer area available",
				"entertainment":    []string{"Belly dancing", "Tanoura dance", "Falconry display"},
				"pickup":           "Hotel pickup included",
			},
			CreatedAt: time.Date(2025, 8, 22, 9, 15, 0, 0, time.UTC),
			UpdatedAt: time.Date(2025, 8, 22, 9, 15, 0, 0, time.UTC),
		},
		models.Booking{
			ID:               uuid.NewString(),
			UserID:           "ahmed_hassan",
			Type:             models.BookingTypeRestaurant,
			Status:           models.BookingStatusConfirmed,
			Title:            "Al Fanar Restaurant - Traditional Emirati Dining",
			Description:      "Authentic Emirati cuisine in traditional setting with cultural ambiance",
			Destination:      "Dubai, UAE",
			StartDate:        "2025-09-05",
			Price:            35,
			Currency:         "GBP",
			Provider:         "Al Fanar Restaurant",
			ConfirmationCode: "AFR-2025-AHMED-567",
			Details: map[string]any{
				"cuisine":         "Traditional Emirati",
				"seatingTime":     "20:00",
				"partySize":       1,
				"specialRequests": "Halal certified, traditional atmosphere",
				"menu":            "Set menu with local specialties",
				"location":        "Festival City Mall",
			},
			CreatedAt: time.Date(2025, 8, 18, 16, 45, 0, 0, time.UTC),
			UpdatedAt: time.Date(2025, 8, 18, 16, 45, 0, 0, time.UTC),
		},
	)

	bookings.SeedCatalog(
		[]models.HotelOffer{
			{
				ID:             "hotel_1",
				Name:           "Jumeirah Al Seef",
				Location:       "Dubai Creek, Dubai",
				Rating:         4.8,
				PricePerNight:  200,
				Currency:       "GBP",
				HalalCertified: true,
				Amenities:      []string{"Halal dining", "Prayer room", "Spa", "Creek view", "WiFi", "Pool"},
				Images:         []string{"https://images.unsplash.com/photo-1566073771259-6a8506099945"},
				Description:    "Luxury waterfront hotel with authentic Arabic architecture",
			},
			{
				ID:             "hotel_2",
				Name:           "Atlantis The Palm",
				Location:       "Palm Jumeirah, Dubai",
				Rating:         4.9,
				PricePerNight:  350,
				Currency:       "GBP",
				HalalCertified: true,
				Amenities:      []string{"Halal restaurants", "Aquarium", "Water park", "Beach access", "Spa"},
				Images:         []string{"https://images.unsplash.com/photo-1582719478250-c89cae4dc85b"},
				Description:    "Iconic resort with world-class amenities and halal dining options",
			},
			{
				ID:             "hotel_3",
				Name:           "Ritz-Carlton DIFC",
				Location:       "Financial District, Dubai",
				Rating:         4.7,
				PricePerNight:  280,
				Currency:       "GBP",
				HalalCertified: true,
				Amenities:      []string{"Halal fine dining", "Business center", "Rooftop pool", "Prayer facilities"},
				Images:         []string{"https://images.unsplash.com/photo-1571896349842-33c89424de2d"},
				Description:    "Sophisticated urban hotel with halal-certified restaurants",
			},
		},
		[]models.ActivityOffer{
			{
				ID:            "activity_1",
				Name:          "Burj Khalifa At the Top Experience",
				Location:      "Downtown Dubai",
				Price:         75,
				Duration:      "2 hours",
				Category:      "Sightseeing",
				HalalFriendly: true,
				Description:   "Visit the world's tallest building with stunning city views",
			},
			{
				ID:            "activity_2",
				Name:          "Gold & Spice Souk Walking Tour",
				Location:      "Old Dubai",
				Price:         25,
				Duration:      "3 hours",
				Category:      "Cultural",
				HalalFriendly: true,
				Description:   "Explore traditional markets with local guide and cultural insights",
			},
			{
				ID:            "activity_3",
				Name:          "IMG Worlds of Adventure",
				Location:      "City of Arabia, Dubai",
				Price:         65,
				Duration:      "Full day",
				Category:      "Entertainment",
				HalalFriendly: true,
				Description:   "Family-friendly indoor theme park with halal dining options",
			},
		},
	)
}
