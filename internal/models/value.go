package models

import (
	"regexp"
	"strconv"
	"strings"
)

// Resistance proxies for components that are emitted as resistors but carry
// no resistance of their own.
const (
	OpenSwitchOhms   = 1e9  // open switch, effectively infinite
	ClosedSwitchOhms = 1e-3 // closed switch, effectively zero
	DefaultLEDOhms   = 100  // LED with no explicit value set
)

var valuePattern = regexp.MustCompile(`^([0-9.]+)\s*([A-ZΩ]*)`)

// metric prefixes; MEG must be matched before M (milli)
var valueMultipliers = []struct {
	prefix string
	factor float64
}{
	{"MEG", 1e6},
	{"P", 1e-12},
	{"N", 1e-9},
	{"U", 1e-6},
	{"M", 1e-3},
	{"K", 1e3},
	{"G", 1e9},
}

// ParseValue converts a component value string like "1kΩ", "5V", "10mA",
// "Open" or "Closed" to a numeric value in base units (ohms, volts, amps).
// Switch states map to their resistance proxies. Unparseable values degrade
// to 0 so the validator reports them as invalid instead of the parser failing
// the run.
func ParseValue(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	switch raw {
	case "Open":
		return OpenSwitchOhms
	case "Closed":
		return ClosedSwitchOhms
	}

	upper := strings.ToUpper(raw)
	match := valuePattern.FindStringSubmatch(upper)
	if match == nil {
		v, err := strconv.ParseFloat(upper, 64)
		if err != nil {
			return 0
		}
		return v
	}

	number, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0
	}
	unit := match[2]

	for _, m := range valueMultipliers {
		if strings.HasPrefix(unit, m.prefix) {
			return number * m.factor
		}
	}
	return number
}
