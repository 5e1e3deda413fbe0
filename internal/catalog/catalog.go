// Package catalog holds the static genre and movie dataset served by the API
// together with the filtering and sorting applied to listings.
package catalog

// Genre is immutable for the lifetime of the process.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Movie carries no favorite flag; that is derived from the favorites set
// whenever a movie is rendered.
type Movie struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	ReleaseYear int     `json:"releaseYear"`
	GenreIDs    []int   `json:"genreIds"`
	Rating      float64 `json:"rating"`
	PosterURL   string  `json:"posterUrl"`
	Description string  `json:"description"`
	DurationMin int     `json:"durationMin"`
}

// HasAnyGenre reports whether the movie belongs to at least one of ids.
func (m Movie) HasAnyGenre(ids []int) bool {
	for _, want := range ids {
		for _, g := range m.GenreIDs {
			if g == want {
				return true
			}
		}
	}
	return false
}

// primaryGenre is the first genre id, or 0 when the movie has none.
func (m Movie) primaryGenre() int {
	if len(m.GenreIDs) == 0 {
		return 0
	}
	return m.GenreIDs[0]
}

// Genres returns the genre list in declared order. Id 0 is the "all" sentinel.
func Genres() []Genre {
	return []Genre{
		{ID: 0, Name: "Все", Slug: "all"},
		{ID: 1, Name: "Мелодрама", Slug: "melodrama"},
		{ID: 2, Name: "Фантастика", Slug: "fantasy"},
		{ID: 3, Name: "Боевик", Slug: "action"},
		{ID: 4, Name: "Триллер", Slug: "thriller"},
		{ID: 5, Name: "Детектив", Slug: "detective"},
	}
}

// Movies returns a fresh copy of the seed catalog.
func Movies() []Movie {
	return []Movie{
		{
			ID:          "m_002",
			Title:       "Interstellar",
			ReleaseYear: 2014,
			GenreIDs:    []int{2, 4},
			Rating:      4.8,
			PosterURL:   "https://upload.wikimedia.org/wikipedia/en/b/bc/Interstellar_film_poster.jpg",
			Description: "Экспедиция за пределы привычного мира ради будущего человечества.",
			DurationMin: 169,
		},
		{
			ID:          "m_004",
			Title:       "Mad Max: Fury Road",
			ReleaseYear: 2015,
			GenreIDs:    []int{3, 4},
			Rating:      4.3,
			PosterURL:   "https://upload.wikimedia.org/wikipedia/en/6/6e/Mad_Max_Fury_Road.jpg",
			Description: "Дорога ярости, топливо и борьба за свободу.",
			DurationMin: 120,
		},
		{
			ID:          "m_005",
			Title:       "The Notebook",
			ReleaseYear: 2004,
			GenreIDs:    []int{1},
			Rating:      4.2,
			PosterURL:   "https://upload.wikimedia.org/wikipedia/en/8/86/Posternotebook.jpg",
			Description: "История любви, рассказанная сквозь годы.",
			DurationMin: 124,
		},
		{
			ID:          "m_006",
			Title:       "Inception",
			ReleaseYear: 2010,
			GenreIDs:    []int{3, 2, 4},
			Rating:      4.6,
			PosterURL:   "https://upload.wikimedia.org/wikipedia/en/2/2e/Inception_%282010%29_theatrical_poster.jpg",
			Description: "Во сне внутри сна, где реальность под вопросом.",
			DurationMin: 148,
		},
	}
}

// SeedFavorites lists the movie ids that start out as favorites.
func SeedFavorites() []string {
	return []string{"m_002"}
}
