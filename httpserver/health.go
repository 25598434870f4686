package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type healthStatus struct {
	Status string `json:"status"`
	Env    string `json:"env,omitempty"`
}

func (s *Server) RegisterHealthRoutes() {
	s.Router.GET("/healthcheck", s.healthCheck)
}

// healthCheck godoc
// @Summary Liveness probe
// @Description Reports that the catalog API is serving and which environment it runs in
// @Tags health
// @Success 200 {object} healthStatus
// @Router /healthcheck [get]
func (s *Server) healthCheck(c echo.Context) error {
	return writeSuccess(c, http.StatusOK, healthStatus{Status: "OK", Env: s.Config.AppEnv})
}
