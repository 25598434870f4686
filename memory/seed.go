package memory

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"moviecatalog/movie"
)

//go:embed movies.json
var defaultSeed []byte

// LoadSeed decodes a JSON array of movies.
func LoadSeed(r io.Reader) ([]movie.Movie, error) {
	var movies []movie.Movie
	if err := json.NewDecoder(r).Decode(&movies); err != nil {
		return nil, fmt.Errorf("memory: decode seed: %w", err)
	}
	return movies, nil
}

// LoadSeedFile reads the seed at path, or the built-in catalog when path is
// empty.
func LoadSeedFile(path string) ([]movie.Movie, error) {
	if path == "" {
		return LoadSeed(bytes.NewReader(defaultSeed))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("memory: open seed: %w", err)
	}
	defer f.Close()

	return LoadSeed(f)
}
