package httpserver

import (
	"errors"

	"moviecatalog/movie"
	"moviecatalog/origin"
	"moviecatalog/pkg/config"

	"go.uber.org/zap"
)

type Options func(s *Server) error

func WithConfig(cfg *config.Config) Options {
	return func(s *Server) error {
		if cfg == nil {
			return errors.New("httpserver: nil config")
		}
		s.Config = cfg
		return nil
	}
}

func WithLogger(l *zap.SugaredLogger) Options {
	return func(s *Server) error {
		s.Logger = l
		return nil
	}
}

func WithMovieService(svc movie.Service) Options {
	return func(s *Server) error {
		s.MovieService = svc
		return nil
	}
}

// WithOriginGuard overrides the guard built from Config.AllowOrigins.
func WithOriginGuard(g *origin.Guard) Options {
	return func(s *Server) error {
		s.Origins = g
		return nil
	}
}
