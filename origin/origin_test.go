package origin_test

import (
	"testing"

	"moviecatalog/origin"

	"github.com/stretchr/testify/assert"
)

func TestGuard_Allow(t *testing.T) {
	g := origin.NewGuard()

	tests := []struct {
		name   string
		origin string
		want   bool
	}{
		{name: "no origin passes through", origin: "", want: true},
		{name: "listed origin", origin: "http://localhost:8080", want: true},
		{name: "listed origin with path", origin: "http://localhost:1234/movies", want: true},
		{name: "unlisted origin", origin: "https://evil.example.com", want: false},
		{name: "different port", origin: "http://localhost:5173", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Allow(tt.origin))
		})
	}
}

func TestGuard_Check(t *testing.T) {
	g := origin.NewGuard("https://movies.example.com")

	assert.NoError(t, g.Check("https://movies.example.com"))
	assert.NoError(t, g.Check(""))
	assert.ErrorIs(t, g.Check("http://localhost:3000"), origin.ErrNotAllowed)
}

func TestParseAllowList(t *testing.T) {
	assert.Equal(t,
		[]string{"http://a.com", "http://b.com"},
		origin.ParseAllowList(" http://a.com, ,http://b.com "),
	)
	assert.Nil(t, origin.ParseAllowList(""))
}
