package movie

import (
	"slices"
	"strings"

	"moviecatalog/errs"
)

var (
	ErrMovieNotFound = errs.Errorf(errs.ENOTFOUND, "movie not found")
	ErrGenreNotFound = errs.Errorf(errs.ENOTFOUND, "genre not found")
)

type Genre string

const (
	GenreAction    Genre = "Action"
	GenreAdventure Genre = "Adventure"
	GenreCrime     Genre = "Crime"
	GenreComedy    Genre = "Comedy"
	GenreDrama     Genre = "Drama"
	GenreFantasy   Genre = "Fantasy"
	GenreHorror    Genre = "Horror"
	GenreThriller  Genre = "Thriller"
	GenreSciFi     Genre = "Sci-Fi"
)

// Genres lists the accepted genres in their canonical order.
var Genres = []Genre{
	GenreAction,
	GenreAdventure,
	GenreCrime,
	GenreComedy,
	GenreDrama,
	GenreFantasy,
	GenreHorror,
	GenreThriller,
	GenreSciFi,
}

// IsGenre reports whether s is one of the accepted genres. Matching is exact.
func IsGenre(s string) bool {
	return slices.Contains(Genres, Genre(s))
}

type Movie struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Year     int     `json:"year"`
	Director string  `json:"director"`
	Duration int     `json:"duration"`
	Poster   string  `json:"poster"`
	Genre    []Genre `json:"genre"`
	Rate     float64 `json:"rate"`
}

// Fields is a set of validated movie attributes. A nil pointer (or nil
// Genre) means the attribute is absent.
type Fields struct {
	Title    *string
	Year     *int
	Duration *int
	Rate     *float64
	Director *string
	Poster   *string
	Genre    []Genre
}

// Empty reports whether no attribute is set.
func (f Fields) Empty() bool {
	return f.Title == nil && f.Year == nil && f.Duration == nil && f.Rate == nil &&
		f.Director == nil && f.Poster == nil && f.Genre == nil
}

// New builds a movie with the given id from a validated field set.
func New(id string, f Fields) Movie {
	return Movie{ID: id}.Apply(f)
}

// Apply returns a copy of m with every attribute present in f overwritten.
// The id is never changed.
func (m Movie) Apply(f Fields) Movie {
	if f.Title != nil {
		m.Title = *f.Title
	}
	if f.Year != nil {
		m.Year = *f.Year
	}
	if f.Duration != nil {
		m.Duration = *f.Duration
	}
	if f.Rate != nil {
		m.Rate = *f.Rate
	}
	if f.Director != nil {
		m.Director = *f.Director
	}
	if f.Poster != nil {
		m.Poster = *f.Poster
	}
	if f.Genre != nil {
		m.Genre = slices.Clone(f.Genre)
	}
	return m
}

// Clone returns a deep copy of m.
func (m Movie) Clone() Movie {
	m.Genre = slices.Clone(m.Genre)
	return m
}

// HasGenre reports whether the movie is tagged with genre, ignoring case.
func (m Movie) HasGenre(genre string) bool {
	for _, g := range m.Genre {
		if strings.EqualFold(string(g), genre) {
			return true
		}
	}
	return false
}
