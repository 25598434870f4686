package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"moviecatalog/errs"
	"moviecatalog/movie"
	"moviecatalog/pkg/logger"
)

// seedcheck validates every record of a seed file with the same rules the
// API applies on create, and checks that ids are present and unique.
func main() {
	var seedPath string
	flag.StringVar(&seedPath, "file", "memory/movies.json", "Path to the movies seed file")
	flag.Parse()

	log, err := logger.New("local")
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot build logger:", err)
		os.Exit(1)
	}

	f, err := os.Open(seedPath)
	if err != nil {
		log.Fatalw("cannot open seed", "error", err)
	}
	defer f.Close()

	problems, total, err := checkSeed(f)
	if err != nil {
		log.Fatalw("cannot read seed", "error", err)
	}

	for _, p := range problems {
		log.Warnw("invalid record", "index", p.Index, "id", p.ID, "errors", p.Errors)
	}
	log.Infow("seed checked", "file", seedPath, "records", total, "invalid", len(problems))

	if len(problems) > 0 {
		_ = log.Sync()
		os.Exit(1)
	}
}

type problem struct {
	Index  int
	ID     string
	Errors []errs.FieldError
}

// checkSeed decodes records as raw documents so that type errors surface the
// same way they would on the API.
func checkSeed(r io.Reader) ([]problem, int, error) {
	var records []map[string]any
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, 0, err
	}

	var problems []problem
	seen := make(map[string]int, len(records))
	for i, rec := range records {
		id, _ := rec["id"].(string)

		var fields []errs.FieldError
		if _, err := movie.ValidateFull(rec); err != nil {
			fields = append(fields, errs.ErrorFields(err)...)
		}
		switch first, dup := seen[id]; {
		case id == "":
			fields = append(fields, errs.FieldError{Field: "id", Message: "Movie id is required."})
		case dup:
			fields = append(fields, errs.FieldError{Field: "id", Message: fmt.Sprintf("duplicate of record %d", first)})
		default:
			seen[id] = i
		}

		if len(fields) > 0 {
			problems = append(problems, problem{Index: i, ID: id, Errors: fields})
		}
	}
	return problems, len(records), nil
}
