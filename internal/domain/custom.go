package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// CustomReference is the citation recorded on every user-supplied event.
const CustomReference = "User-specified posterior sample"

// Parameter keys required on every custom event.
const (
	keyTauMS  = "tau_ms"
	keyFreqHz = "freq_hz"
)

// MissingParamError reports required custom parameters that were not
// supplied. Missing is sorted.
type MissingParamError struct {
	Missing []string
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("missing required parameter(s): %s", strings.Join(e.Missing, ", "))
}

// ParseCustomParams builds one event from key=value parameter tokens. Each
// token splits on the first "=". Both tau_ms and freq_hz are required;
// unknown keys are ignored so callers can forward extra posterior fields
// without breaking. The name defaults to "Custom" when empty.
func ParseCustomParams(tokens []string, name string) (Event, error) {
	params := make(map[string]float64, len(tokens))
	for _, token := range tokens {
		key, rawValue, found := strings.Cut(token, "=")
		if !found {
			return Event{}, fmt.Errorf("malformed custom parameter %q: expected key=value", token)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(rawValue), 64)
		if err != nil {
			return Event{}, fmt.Errorf("parse custom parameter %q: %w", token, err)
		}
		params[strings.TrimSpace(key)] = value
	}

	var missing []string
	for _, key := range []string{keyTauMS, keyFreqHz} {
		if _, ok := params[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return Event{}, &MissingParamError{Missing: missing}
	}

	return NewCustomEvent(name, params[keyTauMS], params[keyFreqHz]), nil
}
