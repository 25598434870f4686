package movie

import "context"

type Service interface {
	ListMovies(ctx context.Context, genre string) ([]Movie, error)
	GetMovie(ctx context.Context, id string) (Movie, error)
	CreateMovie(ctx context.Context, payload map[string]any) (Movie, error)
	UpdateMovie(ctx context.Context, id string, payload map[string]any) (Movie, error)
	DeleteMovie(ctx context.Context, id string) error
}

// Repository owns the movie collection. Callers validate before mutating.
type Repository interface {
	List(ctx context.Context, genre string) []Movie
	Get(ctx context.Context, id string) (Movie, bool)
	Insert(ctx context.Context, f Fields) Movie
	Replace(ctx context.Context, id string, patch Fields) (Movie, bool)
	Delete(ctx context.Context, id string) bool
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

// ListMovies returns every movie, or only those tagged with genre when it is
// set. A filter that matches nothing yields ErrGenreNotFound.
func (uc *Usecase) ListMovies(ctx context.Context, genre string) ([]Movie, error) {
	movies := uc.r.List(ctx, genre)
	if genre != "" && len(movies) == 0 {
		return nil, ErrGenreNotFound
	}
	return movies, nil
}

func (uc *Usecase) GetMovie(ctx context.Context, id string) (Movie, error) {
	m, ok := uc.r.Get(ctx, id)
	if !ok {
		return Movie{}, ErrMovieNotFound
	}
	return m, nil
}

func (uc *Usecase) CreateMovie(ctx context.Context, payload map[string]any) (Movie, error) {
	f, err := ValidateFull(payload)
	if err != nil {
		return Movie{}, err
	}
	return uc.r.Insert(ctx, f), nil
}

func (uc *Usecase) UpdateMovie(ctx context.Context, id string, payload map[string]any) (Movie, error) {
	patch, err := ValidatePartial(payload)
	if err != nil {
		return Movie{}, err
	}
	m, ok := uc.r.Replace(ctx, id, patch)
	if !ok {
		return Movie{}, ErrMovieNotFound
	}
	return m, nil
}

func (uc *Usecase) DeleteMovie(ctx context.Context, id string) error {
	if !uc.r.Delete(ctx, id) {
		return ErrMovieNotFound
	}
	return nil
}
