package model

// Event is a single-occurrence, explicitly time-bounded entry. StartDT and
// EndDT are ISO-8601 local date-times carrying the application zone's offset.
type Event struct {
	ID           string `db:"id" json:"id"`
	Title        string `db:"title" json:"title"`
	Location     string `db:"location" json:"location"`
	RainOK       bool   `db:"rain_ok" json:"rain_ok"`
	DurationMin  int    `db:"duration_min" json:"duration_min"`
	Parking      string `db:"parking" json:"parking"`
	Satisfaction int    `db:"satisfaction" json:"satisfaction"`
	StartDT      string `db:"start_dt" json:"start_dt"`
	EndDT        string `db:"end_dt" json:"end_dt"`
	ImagePath    string `db:"image_path" json:"image_path"`
	Notes        string `db:"notes" json:"notes"`
}
