package geocoding

import (
	"errors"
	"regexp"
	"strings"
)

// QueryKind tells how a free-text location should be resolved.
type QueryKind int

const (
	// KindZIP is a five-digit US postal code.
	KindZIP QueryKind = iota + 1
	// KindCity is a city name made of letters and spaces.
	KindCity
)

func (k QueryKind) String() string {
	switch k {
	case KindZIP:
		return "zip"
	case KindCity:
		return "city"
	default:
		return "unknown"
	}
}

// Query is a classified location input.
type Query struct {
	Kind  QueryKind
	Value string
}

var (
	zipPattern  = regexp.MustCompile(`^\d{5}$`)
	cityPattern = regexp.MustCompile(`^[a-zA-Z\s]+$`)
)

// ErrInvalidLocation is returned when the input is neither a ZIP code nor a city name.
var ErrInvalidLocation = errors.New("location is neither a ZIP code nor a city name")

// ParseQuery classifies the user's input as a ZIP code or a city name.
func ParseQuery(input string) (Query, error) {
	value := strings.TrimSpace(input)

	switch {
	case zipPattern.MatchString(value):
		return Query{Kind: KindZIP, Value: value}, nil
	case cityPattern.MatchString(value):
		return Query{Kind: KindCity, Value: value}, nil
	default:
		return Query{}, ErrInvalidLocation
	}
}
