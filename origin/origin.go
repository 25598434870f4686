package origin

import (
	"slices"
	"strings"

	"moviecatalog/errs"
)

var ErrNotAllowed = errs.Errorf(errs.EFORBIDDEN, "Not allowed by CORS")

// DefaultAllowList is used when no origins are configured.
var DefaultAllowList = []string{
	"http://localhost:3000",
	"http://localhost:8080",
	"http://localhost:1234",
	"http://localhost:1234/movies",
}

// Guard decides whether a request origin may use the API. Requests with no
// origin (same-origin or non-browser callers) are always allowed.
type Guard struct {
	allowed []string
}

func NewGuard(allowed ...string) *Guard {
	if len(allowed) == 0 {
		allowed = DefaultAllowList
	}
	return &Guard{allowed: slices.Clone(allowed)}
}

// ParseAllowList splits a comma separated origin list, dropping blanks.
func ParseAllowList(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func (g *Guard) Allow(origin string) bool {
	return origin == "" || slices.Contains(g.allowed, origin)
}

// Check is Allow reported as an error.
func (g *Guard) Check(origin string) error {
	if !g.Allow(origin) {
		return ErrNotAllowed
	}
	return nil
}
