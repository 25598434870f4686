package httpserver

import (
	"github.com/labstack/echo/v4"
)

type ListMoviesRequest struct {
	Genre string `query:"genre" validate:"omitempty,max=50"`
}

type MovieIDRequest struct {
	ID string `param:"id" validate:"required,notblank"`
}

// MoviePayload is a raw movie document. Validation happens in the movie
// package so that type errors can be reported per field.
type MoviePayload map[string]any

func bindMovieID(c echo.Context) (string, error) {
	var req MovieIDRequest
	if err := (&echo.DefaultBinder{}).BindPathParams(c, &req); err != nil {
		return "", err
	}
	if err := c.Validate(&req); err != nil {
		return "", err
	}
	return req.ID, nil
}

func bindMoviePayload(c echo.Context) (MoviePayload, error) {
	var payload MoviePayload
	if err := (&echo.DefaultBinder{}).BindBody(c, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}
