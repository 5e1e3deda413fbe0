package main

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/example/filmly/internal/docs"
)

// routes builds the full handler: the mux router wrapped in the middleware
// that must also see unmatched requests.
func (a *App) routes() (http.Handler, error) {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(routeNotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(routeNotFound)

	if err := docs.Register(r, "/docs"); err != nil {
		return nil, err
	}

	v1 := r.PathPrefix(apiPrefix).Subrouter()

	// Public endpoints
	v1.HandleFunc("/health", a.HandleHealth).Methods("GET")
	v1.HandleFunc("/auth", a.HandleLogin).Methods("POST")

	// Protected endpoints
	protected := v1.NewRoute().Subrouter()
	protected.Use(a.Authenticate)
	protected.HandleFunc("/logout", a.HandleLogout).Methods("POST")
	protected.HandleFunc("/genres", a.HandleGenres).Methods("GET")
	protected.HandleFunc("/movies", a.HandleMovies).Methods("GET")
	protected.HandleFunc("/favorites", a.HandleFavorites).Methods("GET")
	protected.HandleFunc("/favorites", a.HandleAddFavorite).Methods("PATCH")
	protected.HandleFunc("/favorites", a.HandleRemoveFavorite).Methods("DELETE")

	return SecurityHeaders(a.Logging(a.recoverPanic(a.CORS(r)))), nil
}
