package time

import "strconv"

// Measurement is a derived quantity that may be unavailable.
type Measurement struct {
	Value float64
	Valid bool
}

// Available returns a valid Measurement holding v.
func Available(v float64) Measurement {
	return Measurement{Value: v, Valid: true}
}

// Unavailable is the Measurement reported when a value cannot be derived.
var Unavailable = Measurement{}

// Or returns the value, or fallback when unavailable.
func (m Measurement) Or(fallback float64) float64 {
	if !m.Valid {
		return fallback
	}

	return m.Value
}

// Format renders the value with prec decimals, or "---" when unavailable.
func (m Measurement) Format(prec int) string {
	if !m.Valid {
		return "---"
	}

	return strconv.FormatFloat(m.Value, 'f', prec, 64)
}

// String implements fmt.Stringer.
func (m Measurement) String() string {
	if !m.Valid {
		return "---"
	}

	return strconv.FormatFloat(m.Value, 'g', -1, 64)
}
