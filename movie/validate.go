package movie

import (
	"fmt"

	"moviecatalog/errs"
)

// fieldRule validates one payload attribute. check stores the parsed value
// in the field set only when it reports no violation.
type fieldRule struct {
	name     string
	required string
	fallback func(f *Fields)
	check    func(v any, f *Fields) []string
}

var rules = []fieldRule{
	{name: "title", required: "Movie title is required.", check: checkTitle},
	{name: "year", required: "Required", check: checkYear},
	{name: "duration", required: "Required", check: checkDuration},
	{name: "rate", fallback: defaultRate, check: checkRate},
	{name: "director", required: "Required", check: checkDirector},
	{name: "poster", required: "Required", check: checkPoster},
	{name: "genre", required: "Movie genre is required.", check: checkGenre},
}

// ValidateFull validates a create payload. Every attribute is required
// except rate, which defaults to DefaultRate. Unknown keys, including id,
// are ignored.
func ValidateFull(payload map[string]any) (Fields, error) {
	return validateFields(payload, false)
}

// ValidatePartial validates an update payload. Absent attributes are left
// out of the result; present ones must satisfy the same rules as on create.
func ValidatePartial(payload map[string]any) (Fields, error) {
	return validateFields(payload, true)
}

func validateFields(payload map[string]any, partial bool) (Fields, error) {
	var (
		f          Fields
		violations []errs.FieldError
	)

	for _, r := range rules {
		v, ok := payload[r.name]
		if !ok {
			switch {
			case partial:
			case r.fallback != nil:
				r.fallback(&f)
			default:
				violations = append(violations, errs.FieldError{Field: r.name, Message: r.required})
			}
			continue
		}

		for _, msg := range r.check(v, &f) {
			violations = append(violations, errs.FieldError{Field: r.name, Message: msg})
		}
	}

	if len(violations) > 0 {
		return Fields{}, errs.Invalid(violations...)
	}
	return f, nil
}

func checkTitle(v any, f *Fields) []string {
	s, ok := isString(v)
	if !ok {
		return []string{"Movie title must be a string"}
	}
	if s == "" {
		return []string{"String must contain at least 1 character(s)"}
	}
	f.Title = &s
	return nil
}

func checkYear(v any, f *Fields) []string {
	n, msgs, ok := checkNumber(v, true)
	if !ok {
		return msgs
	}
	if !isAtLeast(n, MinYear) {
		msgs = append(msgs, fmt.Sprintf("Number must be greater than or equal to %d", MinYear))
	}
	if !isAtMost(n, MaxYear) {
		msgs = append(msgs, fmt.Sprintf("Number must be less than or equal to %d", MaxYear))
	}
	if len(msgs) > 0 {
		return msgs
	}
	year := int(n)
	f.Year = &year
	return nil
}

func checkDuration(v any, f *Fields) []string {
	n, msgs, ok := checkNumber(v, true)
	if !ok {
		return msgs
	}
	if !isPositive(n) {
		msgs = append(msgs, "Number must be greater than 0")
	}
	if len(msgs) > 0 {
		return msgs
	}
	duration := int(n)
	f.Duration = &duration
	return nil
}

func checkRate(v any, f *Fields) []string {
	n, msgs, ok := checkNumber(v, false)
	if !ok {
		return msgs
	}
	if !isAtLeast(n, MinRate) {
		msgs = append(msgs, fmt.Sprintf("Number must be greater than or equal to %d", MinRate))
	}
	if !isAtMost(n, MaxRate) {
		msgs = append(msgs, fmt.Sprintf("Number must be less than or equal to %d", MaxRate))
	}
	if len(msgs) > 0 {
		return msgs
	}
	f.Rate = &n
	return nil
}

func defaultRate(f *Fields) {
	rate := DefaultRate
	f.Rate = &rate
}

func checkDirector(v any, f *Fields) []string {
	s, ok := isString(v)
	if !ok {
		return []string{expected("string", v)}
	}
	if !lengthBetween(s, MinDirectorLength, MaxDirectorLength) {
		if lengthBetween(s, 0, MinDirectorLength-1) {
			return []string{fmt.Sprintf("String must contain at least %d character(s)", MinDirectorLength)}
		}
		return []string{fmt.Sprintf("String must contain at most %d character(s)", MaxDirectorLength)}
	}
	f.Director = &s
	return nil
}

func checkPoster(v any, f *Fields) []string {
	s, ok := isString(v)
	if !ok {
		return []string{expected("string", v)}
	}
	if !isURL(s) {
		return []string{"Poster must be a valid URL"}
	}
	f.Poster = &s
	return nil
}

func checkGenre(v any, f *Fields) []string {
	const typeMessage = "Movie genre must be an array of enum Genre"

	items, ok := isList(v)
	if !ok {
		return []string{typeMessage}
	}
	if len(items) == 0 {
		return []string{"Movie genre must contain at least one genre"}
	}

	var msgs []string
	genres := make([]Genre, 0, len(items))
	for _, item := range items {
		s, ok := isString(item)
		switch {
		case !ok:
			msgs = append(msgs, typeMessage)
		case !IsGenre(s):
			msgs = append(msgs, invalidGenre(s))
		default:
			genres = append(genres, Genre(s))
		}
	}
	if len(msgs) > 0 {
		return msgs
	}
	f.Genre = genres
	return nil
}

// checkNumber reports type and integer violations. Integers must fit the
// exactly representable range so the later int conversion is lossless.
// ok is false when v is not a number at all, in which case no range check
// applies.
func checkNumber(v any, integer bool) (n float64, msgs []string, ok bool) {
	n, ok = isNumber(v)
	if !ok {
		return 0, []string{expected("number", v)}, false
	}
	if !integer {
		return n, nil, true
	}
	if !isInteger(n) {
		msgs = append(msgs, "Expected integer, received float")
	}
	if !isAtLeast(n, -maxSafeInteger) {
		msgs = append(msgs, fmt.Sprintf("Number must be greater than or equal to %d", -maxSafeInteger))
	}
	if !isAtMost(n, maxSafeInteger) {
		msgs = append(msgs, fmt.Sprintf("Number must be less than or equal to %d", maxSafeInteger))
	}
	return n, msgs, true
}
