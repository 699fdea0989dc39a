package journal

// Default seed data adopted on first run (empty remote store) and used as
// the last-resort fallback when both the remote store and the local cache
// are unavailable.

// DefaultConfig returns the initial shared profile.
func DefaultConfig() SharedConfig {
	return SharedConfig{
		Name:        "Nosotros",
		Avatar:      "/maria-y-guillem-passport.jpg.jpeg",
		Anniversary: NewDate(2022, 9, 25),
	}
}

// SeedRecords returns the initial memory set. The set is anchored to the
// given date: the first entry is an upcoming plan ten days out, so a fresh
// install always has a countdown target.
func SeedRecords(today Date) []Record {
	return []Record{
		{
			ID:          "next-spec",
			Title:       "Cena Romántica de Aniversario",
			Date:        today.AddDays(10),
			Location:    "Le Petit Bistro, Madrid",
			Category:    CategoryFood,
			Description: "Nuestra cita especial para celebrar todo este tiempo juntos.",
			ImageURLs: []string{
				"https://images.unsplash.com/photo-1550966841-3ee7adac1af0?auto=format&fit=crop&w=800&q=80",
			},
			Favorite: true,
		},
		{
			ID:          "1",
			Title:       "Ruta por la Costa Azul",
			Date:        NewDate(2024, 7, 15),
			EndDate:     datePtr(NewDate(2024, 7, 22)),
			Location:    "Niza, Francia",
			Category:    CategoryTrip,
			Description: "Nuestra primera gran ruta en coche por las carreteras de la costa.",
			ImageURLs: []string{
				"https://images.unsplash.com/photo-1533929736458-ca588d08c8be?auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1523906834658-6e24ef2386f9?auto=format&fit=crop&w=800&q=80",
			},
			Favorite: true,
			Trip:     &TripInfo{DistanceKM: 1450},
		},
		{
			ID:          "2",
			Title:       "Dune: Parte Dos",
			Date:        NewDate(2024, 8, 5),
			Location:    "Cines Callao, Madrid",
			Category:    CategoryCinema,
			Description: "Fuimos al estreno y salimos flipando con la fotografía y la música.",
			ImageURLs: []string{
				"https://images.unsplash.com/photo-1485846234645-a62644f84728?auto=format&fit=crop&w=800&q=80",
			},
			Cinema: &CinemaInfo{Movie: "Dune: Parte Dos", RatingHer: 5, RatingHim: 4},
		},
		{
			ID:          "cine-inside-out",
			Title:       "Inside Out 2",
			Date:        NewDate(2024, 6, 20),
			Location:    "Cinesa Proyecciones",
			Category:    CategoryCinema,
			Description: "Una tarde muy dulce con palomitas dulces y saladas mezcladas.",
			ImageURLs: []string{
				"https://images.unsplash.com/photo-1594909122845-11baa439b7bf?auto=format&fit=crop&w=800&q=80",
			},
			Favorite: true,
			Cinema:   &CinemaInfo{Movie: "Inside Out 2", RatingHer: 5, RatingHim: 5},
		},
		{
			ID:          "3",
			Title:       "Cena de Sushi Especial",
			Date:        NewDate(2024, 5, 20),
			Location:    "Restaurante Oishii",
			Category:    CategoryFood,
			Description: "El sushi estaba increíble, pero lo mejor fue el postre sorpresa.",
			ImageURLs: []string{
				"https://images.unsplash.com/photo-1579871494447-9811cf80d66c?auto=format&fit=crop&w=800&q=80",
			},
			Favorite: true,
		},
		{
			ID:          "4",
			Title:       "¡Nos mudamos juntos!",
			Date:        NewDate(2023, 11, 12),
			Location:    "Nuestro nuevo hogar",
			Category:    CategoryMilestone,
			Description: "El día que por fin dejamos de vivir en dos sitios distintos.",
			ImageURLs: []string{
				"https://images.unsplash.com/photo-1583847268964-b28dc2f51f92?auto=format&fit=crop&w=800&q=80",
			},
			Favorite: true,
		},
	}
}

// SeedWishlist returns the initial wishlist.
func SeedWishlist() []WishlistItem {
	return []WishlistItem{
		{ID: "1", Title: "Viaje a Japón", Category: CategoryTrip},
		{ID: "2", Title: "Curso de Baile juntos", Category: CategoryMilestone},
		{ID: "m1", Title: "Gladiator 2", Category: CategoryCinema},
		{ID: "m2", Title: "Wicked", Category: CategoryCinema},
	}
}

func datePtr(d Date) *Date { return &d }
