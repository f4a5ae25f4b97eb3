package airports

import (
	"fmt"
	"regexp"
	"time"
)

// AIRAC calendar constants. Cycle 2601 began on 2025-12-26; cycles run
// exactly 28 days, 13 per year.
const (
	cycleDays      = 28
	cyclesPerYear  = 13
	referenceYear  = 26
	referenceCycle = 1
)

var referenceStart = time.Date(2025, time.December, 26, 0, 0, 0, 0, time.UTC)

var cyclePattern = regexp.MustCompile(`^\d{4}$`)

// ValidCycle reports whether s is a well-formed YYNN cycle code with a
// cycle number between 01 and 13.
func ValidCycle(s string) bool {
	if !cyclePattern.MatchString(s) {
		return false
	}
	nn := int(s[2]-'0')*10 + int(s[3]-'0')
	return nn >= 1 && nn <= cyclesPerYear
}

// CycleAt returns the YYNN cycle code in effect at the given instant.
func CycleAt(t time.Time) string {
	d := t.Sub(referenceStart)
	days := int(d / (24 * time.Hour))
	if d < 0 && d%(24*time.Hour) != 0 {
		days--
	}
	// Floor division so instants before the reference land in the
	// preceding cycle rather than truncating toward it.
	passed := days / cycleDays
	if days < 0 && days%cycleDays != 0 {
		passed--
	}

	cycle := referenceCycle + passed
	year := referenceYear
	for cycle > cyclesPerYear {
		cycle -= cyclesPerYear
		year++
	}
	for cycle < 1 {
		cycle += cyclesPerYear
		year--
	}
	return fmt.Sprintf("%02d%02d", year, cycle)
}

// CurrentCycle returns the cycle code in effect now.
func CurrentCycle() string {
	return CycleAt(time.Now().UTC())
}

// PreviousCycle returns the cycle code immediately before c, rolling back
// to the prior year's cycle 13 across a year boundary.
func PreviousCycle(c string) (string, error) {
	year, cycle, err := splitCycle(c)
	if err != nil {
		return "", err
	}
	if cycle == 1 {
		return fmt.Sprintf("%02d%02d", year-1, cyclesPerYear), nil
	}
	return fmt.Sprintf("%02d%02d", year, cycle-1), nil
}

// NextCycle returns the cycle code immediately after c.
func NextCycle(c string) (string, error) {
	year, cycle, err := splitCycle(c)
	if err != nil {
		return "", err
	}
	if cycle == cyclesPerYear {
		return fmt.Sprintf("%02d%02d", year+1, 1), nil
	}
	return fmt.Sprintf("%02d%02d", year, cycle+1), nil
}

// HistoricalCycles returns n cycle codes starting at from and walking
// backwards, newest first. With n=13 the list covers roughly one year.
func HistoricalCycles(from string, n int) ([]string, error) {
	if _, _, err := splitCycle(from); err != nil {
		return nil, err
	}
	cycles := make([]string, 0, n)
	c := from
	for i := 0; i < n; i++ {
		cycles = append(cycles, c)
		prev, err := PreviousCycle(c)
		if err != nil {
			return nil, err
		}
		c = prev
	}
	return cycles, nil
}

func splitCycle(c string) (year, cycle int, err error) {
	if !ValidCycle(c) {
		return 0, 0, fmt.Errorf("malformed cycle code %q", c)
	}
	year = int(c[0]-'0')*10 + int(c[1]-'0')
	cycle = int(c[2]-'0')*10 + int(c[3]-'0')
	return year, cycle, nil
}
