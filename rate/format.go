package rate

import "fmt"

// Row is one display line: a value scaled to the nearest unit, over a
// named period.
type Row struct {
	Value  float64
	Unit   string
	Period string
}

func (r Row) String() string {
	return fmt.Sprintf("%7.3f %2s / %s", r.Value, r.Unit, r.Period)
}

// Table expands a normalized bytes-per-second rate into one row per
// period, in sec..year order.
func Table(bytesPerSecond float64) []Row {
	rows := make([]Row, len(Periods))
	for i, period := range Periods {
		value, unit := NearestUnit(bytesPerSecond * period)
		rows[i] = Row{Value: value, Unit: unit, Period: PeriodNames[i]}
	}
	return rows
}
