package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterMovieRoutes(g *echo.Group) {
	g.GET("", s.handleListMovies)
	g.GET("/:id", s.handleGetMovie)
	g.POST("", s.handleCreateMovie)
	g.PATCH("/:id", s.handleUpdateMovie)
	g.DELETE("/:id", s.handleDeleteMovie)
}

// handleListMovies godoc
// @Summary List Movies
// @Description List all movies, optionally filtered by genre (case-insensitive)
// @Tags movies
// @Produce json
// @Param genre query string false "Genre filter"
// @Success 200 {array} movie.Movie
// @Failure 404 {object} APIResponse
// @Router /movies [get]
func (s *Server) handleListMovies(c echo.Context) error {
	var req ListMoviesRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	movies, err := s.MovieService.ListMovies(c.Request().Context(), req.Genre)
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, movies)
}

// handleGetMovie godoc
// @Summary Get Movie
// @Tags movies
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} movie.Movie
// @Failure 404 {object} APIResponse
// @Router /movies/{id} [get]
func (s *Server) handleGetMovie(c echo.Context) error {
	id, err := bindMovieID(c)
	if err != nil {
		return err
	}

	m, err := s.MovieService.GetMovie(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, m)
}

// handleCreateMovie godoc
// @Summary Create Movie
// @Description Any id in the body is ignored; a new one is assigned
// @Tags movies
// @Accept json
// @Produce json
// @Success 201 {object} movie.Movie
// @Failure 400 {object} APIResponse
// @Router /movies [post]
func (s *Server) handleCreateMovie(c echo.Context) error {
	payload, err := bindMoviePayload(c)
	if err != nil {
		return err
	}

	m, err := s.MovieService.CreateMovie(c.Request().Context(), payload)
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusCreated, m)
}

// handleUpdateMovie godoc
// @Summary Update Movie
// @Description Partially update a movie; only the given fields change
// @Tags movies
// @Accept json
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} movie.Movie
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /movies/{id} [patch]
func (s *Server) handleUpdateMovie(c echo.Context) error {
	id, err := bindMovieID(c)
	if err != nil {
		return err
	}
	payload, err := bindMoviePayload(c)
	if err != nil {
		return err
	}

	m, err := s.MovieService.UpdateMovie(c.Request().Context(), id, payload)
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, m)
}

func (s *Server) handleDeleteMovie(c echo.Context) error {
	id, err := bindMovieID(c)
	if err != nil {
		return err
	}

	if err := s.MovieService.DeleteMovie(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
