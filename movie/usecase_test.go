// nolint: funlen
package movie_test

import (
	"context"
	"testing"

	"moviecatalog/errs"
	"moviecatalog/movie"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) List(ctx context.Context, genre string) []movie.Movie {
	args := m.Called(ctx, genre)
	return args.Get(0).([]movie.Movie)
}

func (m *MockMovieRepository) Get(ctx context.Context, id string) (movie.Movie, bool) {
	args := m.Called(ctx, id)
	return args.Get(0).(movie.Movie), args.Bool(1)
}

func (m *MockMovieRepository) Insert(ctx context.Context, f movie.Fields) movie.Movie {
	args := m.Called(ctx, f)
	return args.Get(0).(movie.Movie)
}

func (m *MockMovieRepository) Replace(ctx context.Context, id string, patch movie.Fields) (movie.Movie, bool) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(movie.Movie), args.Bool(1)
}

func (m *MockMovieRepository) Delete(ctx context.Context, id string) bool {
	args := m.Called(ctx, id)
	return args.Bool(0)
}

func TestListMovies(t *testing.T) {
	r := new(MockMovieRepository)
	uc := movie.NewUsecase(r)

	t.Run("should return every movie without a filter", func(t *testing.T) {
		movies := []movie.Movie{sampleMovie()}
		r.On("List", mock.Anything, "").Return(movies).Once()

		result, err := uc.ListMovies(context.Background(), "")

		assert.NoError(t, err)
		assert.Equal(t, movies, result)
		r.AssertExpectations(t)
	})

	t.Run("should return an empty list without a filter", func(t *testing.T) {
		r.On("List", mock.Anything, "").Return([]movie.Movie{}).Once()

		result, err := uc.ListMovies(context.Background(), "")

		assert.NoError(t, err)
		assert.Empty(t, result)
		r.AssertExpectations(t)
	})

	t.Run("should fail when a filter matches nothing", func(t *testing.T) {
		r.On("List", mock.Anything, "NoSuchGenre").Return([]movie.Movie{}).Once()

		_, err := uc.ListMovies(context.Background(), "NoSuchGenre")

		assert.ErrorIs(t, err, movie.ErrGenreNotFound)
		assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))
		r.AssertExpectations(t)
	})
}

func TestGetMovie(t *testing.T) {
	r := new(MockMovieRepository)
	uc := movie.NewUsecase(r)

	t.Run("should return the movie", func(t *testing.T) {
		r.On("Get", mock.Anything, "1").Return(sampleMovie(), true).Once()

		m, err := uc.GetMovie(context.Background(), "1")

		assert.NoError(t, err)
		assert.Equal(t, sampleMovie(), m)
		r.AssertExpectations(t)
	})

	t.Run("should fail for an unknown id", func(t *testing.T) {
		r.On("Get", mock.Anything, "2").Return(movie.Movie{}, false).Once()

		_, err := uc.GetMovie(context.Background(), "2")

		assert.ErrorIs(t, err, movie.ErrMovieNotFound)
		r.AssertExpectations(t)
	})
}

func TestCreateMovie(t *testing.T) {
	r := new(MockMovieRepository)
	uc := movie.NewUsecase(r)

	t.Run("should insert the validated fields", func(t *testing.T) {
		payload := validPayload()
		fields, err := movie.ValidateFull(payload)
		assert.NoError(t, err)
		created := movie.New("new", fields)
		r.On("Insert", mock.Anything, fields).Return(created).Once()

		m, err := uc.CreateMovie(context.Background(), payload)

		assert.NoError(t, err)
		assert.Equal(t, created, m)
		r.AssertExpectations(t)
	})

	t.Run("should not insert an invalid movie", func(t *testing.T) {
		_, err := uc.CreateMovie(context.Background(), withoutField("title"))

		assert.Equal(t, errs.EINVALID, errs.ErrorCode(err))
		r.AssertNumberOfCalls(t, "Insert", 1)
	})
}

func TestUpdateMovie(t *testing.T) {
	r := new(MockMovieRepository)
	uc := movie.NewUsecase(r)

	t.Run("should replace with the validated patch", func(t *testing.T) {
		patch := movie.Fields{Title: ptr("B")}
		updated := sampleMovie().Apply(patch)
		r.On("Replace", mock.Anything, "1", patch).Return(updated, true).Once()

		m, err := uc.UpdateMovie(context.Background(), "1", map[string]any{"title": "B"})

		assert.NoError(t, err)
		assert.Equal(t, updated, m)
		r.AssertExpectations(t)
	})

	t.Run("should fail for an unknown id", func(t *testing.T) {
		r.On("Replace", mock.Anything, "2", mock.Anything).Return(movie.Movie{}, false).Once()

		_, err := uc.UpdateMovie(context.Background(), "2", map[string]any{"title": "B"})

		assert.ErrorIs(t, err, movie.ErrMovieNotFound)
		r.AssertExpectations(t)
	})

	t.Run("should not touch the collection for an invalid patch", func(t *testing.T) {
		_, err := uc.UpdateMovie(context.Background(), "1", map[string]any{"year": 1800})

		assert.Equal(t, errs.EINVALID, errs.ErrorCode(err))
		assert.Len(t, errs.ErrorFields(err), 1)
		r.AssertNumberOfCalls(t, "Replace", 2)
	})
}

func TestDeleteMovie(t *testing.T) {
	r := new(MockMovieRepository)
	uc := movie.NewUsecase(r)

	t.Run("should delete an existing movie", func(t *testing.T) {
		r.On("Delete", mock.Anything, "1").Return(true).Once()

		assert.NoError(t, uc.DeleteMovie(context.Background(), "1"))
		r.AssertExpectations(t)
	})

	t.Run("should fail for an unknown id", func(t *testing.T) {
		r.On("Delete", mock.Anything, "1").Return(false).Once()

		assert.ErrorIs(t, uc.DeleteMovie(context.Background(), "1"), movie.ErrMovieNotFound)
		r.AssertExpectations(t)
	})
}
