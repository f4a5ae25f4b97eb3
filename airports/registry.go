package airports

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrUnknownAirport is returned when a lookup names an airport code the
// registry does not carry.
var ErrUnknownAirport = errors.New("unknown airport code")

// Registry maps three-letter airport codes to the five-digit FAA chart
// numbers used in diagram URLs. Codes are stored uppercase.
type Registry struct {
	numbers map[string]string
}

// defaultAirports are the airports tracked out of the box.
var defaultAirports = map[string]string{
	"JFK": "00610", // John F. Kennedy International
	"LGA": "00289", // LaGuardia
	"EWR": "00285", // Newark Liberty International
	"TEB": "00890", // Teterboro
	"SWF": "00450", // Stewart International
	"SYR": "00411", // Syracuse Hancock International
	"YIP": "00467", // Willow Run
}

// DefaultRegistry returns a registry populated with the built-in airports.
func DefaultRegistry() *Registry {
	r := &Registry{numbers: make(map[string]string, len(defaultAirports))}
	for code, num := range defaultAirports {
		r.numbers[code] = num
	}
	return r
}

// registryFile is the on-disk TOML shape.
type registryFile struct {
	Airports map[string]string `toml:"airports"`
}

// LoadRegistry reads a registry from a TOML file. The file fully replaces
// the built-in set; merge by hand with Add if both are wanted.
func LoadRegistry(path string) (*Registry, error) {
	var file registryFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("loading airport registry %s: %w", path, err)
	}
	if len(file.Airports) == 0 {
		return nil, fmt.Errorf("airport registry %s: no [airports] entries", path)
	}

	r := &Registry{numbers: make(map[string]string, len(file.Airports))}
	for code, num := range file.Airports {
		r.numbers[strings.ToUpper(code)] = num
	}
	return r, nil
}

// Add registers an airport, replacing any existing entry for the code.
func (r *Registry) Add(code, chartNumber string) {
	r.numbers[strings.ToUpper(code)] = chartNumber
}

// ChartNumber returns the FAA chart number for an airport code. The lookup
// is case-insensitive.
func (r *Registry) ChartNumber(code string) (string, error) {
	num, ok := r.numbers[strings.ToUpper(code)]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownAirport, strings.ToUpper(code))
	}
	return num, nil
}

// Has reports whether the registry carries the given airport code.
func (r *Registry) Has(code string) bool {
	_, ok := r.numbers[strings.ToUpper(code)]
	return ok
}

// Codes returns all registered airport codes in sorted order.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.numbers))
	for code := range r.numbers {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Len returns the number of registered airports.
func (r *Registry) Len() int {
	return len(r.numbers)
}
