package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"moviecatalog/errs"
	"moviecatalog/movie"
	"moviecatalog/origin"
	"moviecatalog/pkg/config"
	"moviecatalog/pkg/logger"
	"moviecatalog/pkg/sentry"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Server struct {
	// Router is the Echo router instance
	Router *echo.Echo

	// Addr represents the address the server will listen on
	Addr string

	Config *config.Config
	Logger *zap.SugaredLogger

	// Origins decides which browser origins may call the API
	Origins *origin.Guard

	MovieService movie.Service
}

func New(options ...Options) (*Server, error) {
	s := Server{
		Router: echo.New(),
		Addr:   ":1234",
		Config: config.Empty,
		Logger: logger.NOOPLogger,
	}

	for _, fn := range options {
		if err := fn(&s); err != nil {
			return nil, err
		}
	}
	if s.Origins == nil {
		s.Origins = origin.NewGuard(origin.ParseAllowList(s.Config.AllowOrigins)...)
	}

	s.Router.HideBanner = true
	s.Router.HidePort = true
	s.Router.Validator = NewValidator()
	s.Router.HTTPErrorHandler = s.handleError
	s.RegisterGlobalMiddlewares()

	s.RegisterHealthRoutes()
	s.RegisterMovieRoutes(s.Router.Group("/movies"))

	return &s, nil
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.Router.Use(middleware.Recover())
	s.Router.Use(middleware.Secure())
	s.Router.Use(middleware.RequestID())
	s.Router.Use(s.logRequests())
	s.Router.Use(middleware.Gzip())
	s.Router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	// CORS
	s.Router.Use(s.guardOrigin)
	s.Router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOriginFunc: func(o string) (bool, error) {
			return s.Origins.Allow(o), nil
		},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
	}))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) Start() error {
	return s.Router.Start(s.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Router.Shutdown(ctx)
}

// guardOrigin rejects browser requests from origins outside the allow-list.
func (s *Server) guardOrigin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := s.Origins.Check(c.Request().Header.Get(echo.HeaderOrigin)); err != nil {
			return err
		}
		return next(c)
	}
}

func (s *Server) logRequests() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			s.Logger.Infow("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			)
			return nil
		},
	})
}

// handleError maps application errors to HTTP status codes.
// The request logger handles errors first, so an error that reaches here
// with a committed response has already been logged and written.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(status)
	var fields []errs.FieldError

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		message = fmt.Sprint(he.Message)
	} else {
		status = statusCode(errs.ErrorCode(err))
		if status < http.StatusInternalServerError {
			message = errs.ErrorMessage(err)
		}
		fields = errs.ErrorFields(err)
	}

	if status >= http.StatusInternalServerError {
		s.Logger.Errorw(err.Error(), "request_id", s.requestID(c))
		sentry.WithContext(c).WithTags(map[string]string{"route": c.Path()}).Error(err)
	} else {
		s.Logger.Debugw(err.Error(), "request_id", s.requestID(c), "status", status)
	}

	if err := writeError(c, status, message, fields, err); err != nil {
		s.Logger.Errorw("write error response", "error", err, "request_id", s.requestID(c))
	}
}

func statusCode(code string) int {
	switch code {
	case errs.EINVALID:
		return http.StatusBadRequest
	case errs.ENOTFOUND:
		return http.StatusNotFound
	case errs.ECONFLICT:
		return http.StatusConflict
	case errs.EUNAUTHORIZED:
		return http.StatusUnauthorized
	case errs.EFORBIDDEN:
		return http.StatusForbidden
	case errs.ENOTIMPLEMENTED:
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

func (s *Server) requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
