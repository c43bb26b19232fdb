package traffic

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
)

const (
	thousand = 1_000
	million  = 1_000_000
	billion  = 1_000_000_000
)

// monthLayout renders the abbreviated month name and four-digit year.
const monthLayout = "Jan 2006"

// FormatVisits scales v to billions, millions or thousands and appends the
// magnitude suffix. Anything below a million is shown in thousands, so 500
// visits render as "0.5k".
func FormatVisits(v float64) string {
	switch {
	case v >= billion:
		return oneDecimal(v/billion) + "B"
	case v >= million:
		return oneDecimal(v/million) + "M"
	default:
		return oneDecimal(v/thousand) + "k"
	}
}

// oneDecimal formats x with one fractional digit. Exact halfway values
// (x*4 an odd integer, so x ends in .25 or .75) round up, as 1.25 -> "1.3";
// everything else rounds to the nearest digit of x's exact binary value.
func oneDecimal(x float64) string {
	q := x * 4
	if q == math.Trunc(q) && math.Mod(math.Abs(q), 2) == 1 {
		return strconv.FormatFloat(math.Ceil(x*10)/10, 'f', 1, 64)
	}
	return strconv.FormatFloat(x, 'f', 1, 64)
}

// ParseMonth parses an API month key such as "2024-01-01" or "2024-01" in UTC.
func ParseMonth(key string) (time.Time, error) {
	t, err := dateparse.ParseIn(key, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing month %q: %w", key, err)
	}
	return t, nil
}

// Label renders one month as "<Mon> <yyyy>: <value><suffix>".
func Label(month string, visits float64) (string, error) {
	t, err := ParseMonth(month)
	if err != nil {
		return "", err
	}
	return t.Format(monthLayout) + ": " + FormatVisits(visits), nil
}
