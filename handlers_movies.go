package main

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/example/filmly/internal/catalog"
	"github.com/example/filmly/internal/store"
	"github.com/example/filmly/internal/validator"
)

// movieView is a movie as rendered to clients, with its live favorite flag.
type movieView struct {
	catalog.Movie
	IsFavorite bool `json:"isFavorite"`
}

// supplied reports whether key carries at least one non-empty value. An empty
// value ("?from=") counts as absent.
func supplied(q url.Values, key string) bool {
	for _, v := range q[key] {
		if v != "" {
			return true
		}
	}
	return false
}

// parseListFilters reads id, from, to and sort. The returned message is
// non-empty when a supplied parameter could not be used.
func parseListFilters(q url.Values) (catalog.Filters, string) {
	var f catalog.Filters

	if supplied(q, "id") {
		ids, err := validator.ParseIDs(q["id"])
		if err != nil {
			return f, "Некорректные id жанров"
		}
		f.GenreIDs = ids
	}

	if supplied(q, "from") {
		if len(q["from"]) > 1 {
			return f, `Некорректный год "from"`
		}
		year, err := validator.ParseYear(q.Get("from"))
		if err != nil {
			return f, `Некорректный год "from"`
		}
		f.From = year
	}

	if supplied(q, "to") {
		if len(q["to"]) > 1 {
			return f, `Некорректный год "to"`
		}
		year, err := validator.ParseYear(q.Get("to"))
		if err != nil {
			return f, `Некорректный год "to"`
		}
		f.To = year
	}

	if supplied(q, "sort") {
		if len(q["sort"]) > 1 {
			return f, "Некорректный параметр сортировки"
		}
		key, err := catalog.ParseSortKey(q.Get("sort"))
		if err != nil {
			return f, "Некорректный параметр сортировки"
		}
		f.Sort = key
	}

	return f, ""
}

// listMovies filters and sorts the catalog against one favorites snapshot.
func (a *App) listMovies(f catalog.Filters) []movieView {
	favorites := a.DB.FavoriteIDs()

	var matched []catalog.Movie
	for _, m := range a.DB.Movies() {
		if f.Match(m, favorites[m.ID]) {
			matched = append(matched, m)
		}
	}

	items := make([]movieView, 0, len(matched))
	for _, m := range catalog.Sort(matched, f.Sort) {
		items = append(items, movieView{Movie: m, IsFavorite: favorites[m.ID]})
	}
	return items
}

func (a *App) favoriteMovies() []movieView {
	return a.listMovies(catalog.Filters{FavoritesOnly: true})
}

func (a *App) HandleMovies(w http.ResponseWriter, r *http.Request) {
	f, msg := parseListFilters(r.URL.Query())
	if msg != "" {
		badRequest(w, msg)
		return
	}

	items := a.listMovies(f)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
		"total": len(items),
	})
}

// HandleFavorites answers without a "total" field, unlike HandleMovies.
func (a *App) HandleFavorites(w http.ResponseWriter, r *http.Request) {
	f, msg := parseListFilters(r.URL.Query())
	if msg != "" {
		badRequest(w, msg)
		return
	}
	f.FavoritesOnly = true

	writeJSON(w, http.StatusOK, map[string]interface{}{"items": a.listMovies(f)})
}

func (a *App) readMovieID(w http.ResponseWriter, r *http.Request) (string, bool) {
	var in struct {
		MovieID interface{} `json:"movieId"`
	}
	a.decodeBody(w, r, &in)
	return validator.NonBlank(in.MovieID)
}

// HandleAddFavorite rejects a movie that is already a favorite with 409.
func (a *App) HandleAddFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := a.readMovieID(w, r)
	if !ok {
		badRequest(w, "movieId обязателен")
		return
	}

	switch err := a.DB.AddFavorite(id); {
	case errors.Is(err, store.ErrMovieNotFound):
		notFound(w, "Фильм не найден")
		return
	case errors.Is(err, store.ErrAlreadyFavorite):
		conflict(w, "Фильм уже в избранном")
		return
	case err != nil:
		a.serverError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"items": a.favoriteMovies()})
}

func (a *App) HandleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := a.readMovieID(w, r)
	if !ok {
		badRequest(w, "movieId обязателен")
		return
	}

	switch err := a.DB.RemoveFavorite(id); {
	case errors.Is(err, store.ErrNotFavorite):
		notFound(w, "Фильм не найден в избранном")
		return
	case err != nil:
		a.serverError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"items": a.favoriteMovies()})
}
