package rate

import "math"

// Units is the byte-multiple ladder; index i is a multiplier of 1000^i.
var Units = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// Period lengths in seconds. Month and year are calendar approximations
// (30 and 365 days).
const (
	Second float64 = 1
	Minute         = 60 * Second
	Hour           = 60 * Minute
	Day            = 24 * Hour
	Week           = 7 * Day
	Month          = 30 * Day
	Year           = 365 * Day
)

var (
	Periods     = []float64{Second, Minute, Hour, Day, Week, Month, Year}
	PeriodNames = []string{"sec", "min", "hour", "day", "week", "month", "year"}
)

// periodAliases maps accepted spellings (lowercased) to period lengths.
var periodAliases = map[string]float64{
	"s": Second, "sec": Second, "second": Second,
	"m": Minute, "min": Minute, "minute": Minute,
	"h": Hour, "hr": Hour, "hour": Hour,
	"d": Day, "day": Day,
	"w": Week, "wk": Week, "week": Week,
	"mon": Month, "month": Month,
	"y": Year, "yr": Year, "year": Year,
}

// NearestUnit walks bytes down the unit ladder, dividing by 1000 until
// the value fits under 1000, and returns it with its unit label. A value
// that does not fit in yottabytes comes back as (+Inf, "B").
func NearestUnit(bytes float64) (float64, string) {
	for _, unit := range Units {
		if bytes < 1000 {
			return bytes, unit
		}
		bytes /= 1000
	}
	return math.Inf(1), "B"
}
