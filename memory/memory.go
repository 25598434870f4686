package memory

import (
	"context"
	"slices"
	"sync"

	"moviecatalog/movie"

	"github.com/google/uuid"
)

// MovieRepository implements movie.Repository on an ordered in-memory
// collection. Listing order is insertion order.
type MovieRepository struct {
	mu     sync.RWMutex
	movies []movie.Movie
	newID  func() string
}

type Option func(r *MovieRepository)

// WithIDGenerator replaces the default random UUID generator.
func WithIDGenerator(fn func() string) Option {
	return func(r *MovieRepository) {
		r.newID = fn
	}
}

// NewMovieRepository creates a repository holding a copy of seed.
func NewMovieRepository(seed []movie.Movie, opts ...Option) *MovieRepository {
	r := &MovieRepository{
		movies: make([]movie.Movie, 0, len(seed)),
		newID:  uuid.NewString,
	}
	for _, m := range seed {
		r.movies = append(r.movies, m.Clone())
	}
	for _, fn := range opts {
		fn(r)
	}
	return r
}

// List returns all movies, or those tagged with genre (case-insensitive)
// when genre is not empty.
func (r *MovieRepository) List(_ context.Context, genre string) []movie.Movie {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movies := make([]movie.Movie, 0, len(r.movies))
	for _, m := range r.movies {
		if genre == "" || m.HasGenre(genre) {
			movies = append(movies, m.Clone())
		}
	}
	return movies
}

func (r *MovieRepository) Get(_ context.Context, id string) (movie.Movie, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i == -1 {
		return movie.Movie{}, false
	}
	return r.movies[i].Clone(), true
}

// Insert stores a new movie built from f under a freshly generated id.
func (r *MovieRepository) Insert(_ context.Context, f movie.Fields) movie.Movie {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := movie.New(r.newID(), f)
	r.movies = append(r.movies, m)
	return m.Clone()
}

// Replace merges patch over the movie with id, keeping its position.
func (r *MovieRepository) Replace(_ context.Context, id string, patch movie.Fields) (movie.Movie, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i == -1 {
		return movie.Movie{}, false
	}
	r.movies[i] = r.movies[i].Apply(patch)
	return r.movies[i].Clone(), true
}

func (r *MovieRepository) Delete(_ context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i == -1 {
		return false
	}
	r.movies = slices.Delete(r.movies, i, i+1)
	return true
}

// indexOf must be called with mu held.
func (r *MovieRepository) indexOf(id string) int {
	return slices.IndexFunc(r.movies, func(m movie.Movie) bool {
		return m.ID == id
	})
}
