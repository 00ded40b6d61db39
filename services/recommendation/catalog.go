package recommendation

import "gatherandgo/models"

// DefaultCatalog returns the curated fallback catalog, already ordered by
// descending match score. Recommendation delivery must never hard-fail, so
// this list is what callers get whenever the real matching path cannot run.
func DefaultCatalog() []models.EventRecommendation {
	return []models.EventRecommendation{
		{
			ID:          "evt-1",
			Title:       "Free Jazz Picnic",
			Location:    "Central Park",
			Time:        "Saturday, 3:00 PM",
			Price:       "$15/person",
			Description: "Live jazz band with picnic setup and food trucks. Perfect for a relaxing afternoon.",
			ImageURL:    "https://images.unsplash.com/photo-1511192336575-5a79af67a629?w=800",
			MatchScore:  95,
			Tags:        []string{"Picnic", "Concert", "Music"},
			Emoji:       "🎶",
			Rating:      models.EventRating{Average: 4.5, Count: 10},
		},
		{
			ID:          "evt-2",
			Title:       "Rooftop Dinner",
			Location:    "Downtown Skybar",
			Time:        "Friday, 7:00 PM",
			Price:       "$45/person",
			Description: "Italian cuisine with breathtaking city views. Great for a fancy night out.",
			ImageURL:    "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=800",
			MatchScore:  88,
			Tags:        []string{"Dinner", "Food & Drinks", "View"},
			Emoji:       "🍽️",
			Rating:      models.EventRating{Average: 4.5, Count: 10},
		},
		{
			ID:          "evt-3",
			Title:       "Coffee & Catch Up",
			Location:    "The Brew House",
			Time:        "Sunday, 10:00 AM",
			Price:       "$8/person",
			Description: "Cozy cafe with board games and artisan coffee blends.",
			ImageURL:    "https://images.unsplash.com/photo-1509042239860-f550ce710b93?w=800",
			MatchScore:  85,
			Tags:        []string{"Coffee", "Gaming", "Relax"},
			Emoji:       "☕",
			Rating:      models.EventRating{Average: 4.5, Count: 10},
		},
		{
			ID:          "evt-4",
			Title:       "Movie Marathon",
			Location:    "Cinema Plaza",
			Time:        "Saturday, 7:30 PM",
			Price:       "$12/person",
			Description: "Back-to-back screenings of classic films with premium seating.",
			ImageURL:    "https://images.unsplash.com/photo-1489599849927-2ee91cede3ba?w=800",
			MatchScore:  82,
			Tags:        []string{"Movie", "Entertainment", "Popcorn"},
			Emoji:       "🎬",
			Rating:      models.EventRating{Average: 4.5, Count: 10},
		},
		{
			ID:          "evt-5",
			Title:       "Modern Art Gallery Tour",
			Location:    "MoMA",
			Time:        "Sunday, 11:00 AM",
			Price:       "$25/person",
			Description: "Guided tour of the new exhibition with expert commentary.",
			ImageURL:    "https://images.unsplash.com/photo-1561214115-f2f134cc4912?w=800",
			MatchScore:  80,
			Tags:        []string{"Museums", "Arts", "Culture"},
			Emoji:       "🏛️",
			Rating:      models.EventRating{Average: 4.5, Count: 10},
		},
		{
			ID:          "evt-6",
			Title:       "Sunset Beach Yoga",
			Location:    "Ocean Beach",
			Time:        "Saturday, 6:00 PM",
			Price:       "$20/person",
			Description: "Relaxing yoga session by the waves followed by meditation.",
			ImageURL:    "https://images.unsplash.com/photo-1506126613408-eca07ce68773?w=800",
			MatchScore:  78,
			Tags:        []string{"Wellness", "Beach", "Sports"},
			Emoji:       "🧘",
			Rating:      models.EventRating{Average: 4.5, Count: 10},
		},
		{
			ID:          "evt-7",
			Title:       "Hiking Adventure",
			Location:    "Bear Mountain",
			Time:        "Sunday, 8:00 AM",
			Price:       "Free",
			Description: "Moderate trail with scenic overlooks. Bring your own water!",
			ImageURL:    "https://images.unsplash.com/photo-1551632811-561732d1e306?w=800",
			MatchScore:  75,
			Tags:        []string{"Hiking", "Sports", "Nature"},
			Emoji:       "⛰️",
			Rating:      models.EventRating{Average: 4.5, Count: 10},
		},
		{
			ID:          "evt-8",
			Title:       "Shopping Spree",
			Location:    "SoHo District",
			Time:        "Saturday, 1:00 PM",
			Price:       "Free entry",
			Description: "Explore trendy boutiques and pop-up shops in the heart of the city.",
			ImageURL:    "https://images.unsplash.com/photo-1483985988355-763728e1935b?w=800",
			MatchScore:  72,
			Tags:        []string{"Shopping", "Lifestyle", "Fashion"},
			Emoji:       "🛍️",
			Rating:      models.EventRating{Average: 4.5, Count: 10},
		},
		{
			ID:          "evt-9",
			Title:       "Gaming Tournament",
			Location:    "Arcade Bar",
			Time:        "Friday, 9:00 PM",
			Price:       "$10 entry",
			Description: "Retro arcade games and e-sports tournament with prizes.",
			ImageURL:    "https://images.unsplash.com/photo-1511512578047-dfb367046420?w=800",
			MatchScore:  70,
			Tags:        []string{"Gaming", "Entertainment", "Nightlife"},
			Emoji:       "🎮",
			Rating:      models.EventRating{Average: 4.5, Count: 10},
		},
		{
			ID:          "evt-10",
			Title:       "Book Club Meetup",
			Location:    "City Library",
			Time:        "Sunday, 2:00 PM",
			Price:       "Free",
			Description: "Discussing the latest bestseller with fellow book lovers.",
			ImageURL:    "https://images.unsplash.com/photo-1495446815901-a7297e633e8d?w=800",
			MatchScore:  68,
			Tags:        []string{"Books", "Culture", "Quiet"},
			Emoji:       "📚",
			Rating:      models.EventRating{Average: 4.5, Count: 10},
		},
	}
}
