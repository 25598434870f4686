package httpserver_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"moviecatalog/httpserver"
	"moviecatalog/memory"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"

	"github.com/stretchr/testify/require"
)

type apiResponse struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func seedMovie() movie.Movie {
	return movie.Movie{
		ID:       "1",
		Title:    "X",
		Year:     2000,
		Duration: 100,
		Rate:     5.5,
		Director: "Some Director",
		Poster:   "http://a.com/p.jpg",
		Genre:    []movie.Genre{movie.GenreDrama},
	}
}

// newTestServer wires the real usecase over an in-memory collection holding
// seedMovie. Generated ids are "new-1", "new-2", ...
func newTestServer(t *testing.T, opts ...httpserver.Options) *httpserver.Server {
	t.Helper()

	n := 0
	repo := memory.NewMovieRepository([]movie.Movie{seedMovie()}, memory.WithIDGenerator(func() string {
		n++
		return "new-" + strconv.Itoa(n)
	}))
	opts = append([]httpserver.Options{httpserver.WithMovieService(movie.NewUsecase(repo))}, opts...)

	server, err := httpserver.New(opts...)
	require.NoError(t, err)
	return server
}

func doRequest(server *httpserver.Server, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func decodeAPIResponse(t *testing.T, rec *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func decodeMovie(t *testing.T, resp apiResponse) movie.Movie {
	t.Helper()
	var m movie.Movie
	require.NoError(t, json.Unmarshal(resp.Result, &m))
	return m
}

func decodeMovies(t *testing.T, resp apiResponse) []movie.Movie {
	t.Helper()
	var result struct {
		Data []movie.Movie `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	return result.Data
}

func fieldsOf(resp apiResponse) []string {
	fields := make([]string, 0, len(resp.Errors))
	for _, e := range resp.Errors {
		fields = append(fields, e.Field)
	}
	return fields
}

func configWithOrigins(origins string) *config.Config {
	cfg := &config.Config{}
	cfg.AllowOrigins = origins
	return cfg
}
