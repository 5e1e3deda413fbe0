package store

import (
	"errors"
	"sync"

	"golang.org/x/crypto/blake2b"

	"github.com/example/filmly/internal/catalog"
)

var (
	ErrMovieNotFound   = errors.New("movie not found")
	ErrAlreadyFavorite = errors.New("movie already in favorites")
	ErrNotFavorite     = errors.New("movie not in favorites")
)

// DB interface for dataset operations
type DB interface {
	// Catalog operations
	Genres() []catalog.Genre
	Movies() []catalog.Movie
	GetMovie(id string) (catalog.Movie, bool)
	// Favorite operations
	FavoriteIDs() map[string]bool
	AddFavorite(id string) error
	RemoveFavorite(id string) error
	// Token operations
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

var _ DB = (*MemDB)(nil)

// Memory DB
type MemDB struct {
	genres []catalog.Genre
	movies []catalog.Movie
	byID   map[string]int

	mu        sync.RWMutex
	favorites map[string]struct{}
	revoked   map[[blake2b.Size256]byte]struct{}
}

// NewMemoryDB builds a store over the given dataset. Seed favorites that do
// not name a movie are ignored.
func NewMemoryDB(genres []catalog.Genre, movies []catalog.Movie, favorites []string) *MemDB {
	m := &MemDB{
		genres:    genres,
		movies:    movies,
		byID:      make(map[string]int, len(movies)),
		favorites: map[string]struct{}{},
		revoked:   map[[blake2b.Size256]byte]struct{}{},
	}
	for i, mv := range movies {
		m.byID[mv.ID] = i
	}
	for _, id := range favorites {
		if _, ok := m.byID[id]; ok {
			m.favorites[id] = struct{}{}
		}
	}
	return m
}

// NewSeededMemoryDB returns a store over the built-in catalog.
func NewSeededMemoryDB() *MemDB {
	return NewMemoryDB(catalog.Genres(), catalog.Movies(), catalog.SeedFavorites())
}

func (m *MemDB) Genres() []catalog.Genre {
	out := make([]catalog.Genre, len(m.genres))
	copy(out, m.genres)
	return out
}

func (m *MemDB) Movies() []catalog.Movie {
	out := make([]catalog.Movie, len(m.movies))
	copy(out, m.movies)
	return out
}

func (m *MemDB) GetMovie(id string) (catalog.Movie, bool) {
	i, ok := m.byID[id]
	if !ok {
		return catalog.Movie{}, false
	}
	return m.movies[i], true
}

// FavoriteIDs returns a snapshot of the favorites set.
func (m *MemDB) FavoriteIDs() map[string]bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]bool, len(m.favorites))
	for id := range m.favorites {
		out[id] = true
	}
	return out
}

func (m *MemDB) AddFavorite(id string) error {
	if _, ok := m.GetMovie(id); !ok {
		return ErrMovieNotFound
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.favorites[id]; ok {
		return ErrAlreadyFavorite
	}
	m.favorites[id] = struct{}{}
	return nil
}

func (m *MemDB) RemoveFavorite(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.favorites[id]; !ok {
		return ErrNotFavorite
	}
	delete(m.favorites, id)
	return nil
}

// RevokeToken blacklists token for the rest of the process lifetime. Only a
// digest of the token is kept.
func (m *MemDB) RevokeToken(token string) {
	sum := blake2b.Sum256([]byte(token))
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[sum] = struct{}{}
}

func (m *MemDB) IsTokenRevoked(token string) bool {
	sum := blake2b.Sum256([]byte(token))
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.revoked[sum]
	return ok
}
