package model

// Interval is a same-day open span on clock time, inclusive of both ends.
// An interval whose end precedes its start never matches (no midnight wrap).
type Interval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DayHours is one weekday's configuration. Open=false, or Open=true with no
// intervals, both mean closed all day.
type DayHours struct {
	Open      bool       `json:"open"`
	Intervals []Interval `json:"intervals"`
}

// WeekHours maps the seven French weekday labels to their day configuration.
// Field order is week order; encoding/json preserves it, so marshalling this
// struct is the canonical serialization and round-trips byte-for-byte.
type WeekHours struct {
	Lun DayHours `json:"Lun"`
	Mar DayHours `json:"Mar"`
	Mer DayHours `json:"Mer"`
	Jeu DayHours `json:"Jeu"`
	Ven DayHours `json:"Ven"`
	Sam DayHours `json:"Sam"`
	Dim DayHours `json:"Dim"`
}

var WeekdayLabels = []string{"Lun", "Mar", "Mer", "Jeu", "Ven", "Sam", "Dim"}

// Day returns the configuration for a weekday label, zero (closed) for
// anything that is not one of the seven labels.
func (w WeekHours) Day(label string) DayHours {
	switch label {
	case "Lun":
		return w.Lun
	case "Mar":
		return w.Mar
	case "Mer":
		return w.Mer
	case "Jeu":
		return w.Jeu
	case "Ven":
		return w.Ven
	case "Sam":
		return w.Sam
	case "Dim":
		return w.Dim
	}
	return DayHours{}
}
