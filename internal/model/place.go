package model

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Parking difficulty categories, in the application's working language.
const (
	ParkingFacile    = "Facile"
	ParkingMoyen     = "Moyen"
	ParkingDifficile = "Difficile"
)

var ParkingOptions = []string{ParkingFacile, ParkingMoyen, ParkingDifficile}

// Place is a recurring-schedule venue entry. HoursJSON carries the weekly
// opening-hours specification as serialized JSON; anything that does not
// parse evaluates as closed.
type Place struct {
	ID           string `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	Location     string `db:"location" json:"location"`
	RainOK       bool   `db:"rain_ok" json:"rain_ok"`
	DurationMin  int    `db:"duration_min" json:"duration_min"`
	Parking      string `db:"parking" json:"parking"`
	Satisfaction int    `db:"satisfaction" json:"satisfaction"`
	HoursJSON    string `db:"hours_json" json:"hours_json"`
	ImagePath    string `db:"image_path" json:"image_path"`
	Notes        string `db:"notes" json:"notes"`
}

func ValidParking(p string) bool {
	for _, opt := range ParkingOptions {
		if p == opt {
			return true
		}
	}
	return false
}

// Stars renders a satisfaction rating as a five-star string, clamping the
// stored value to [0,5] for display.
func Stars(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

var (
	slugStrip    = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	slugCollapse = regexp.MustCompile(`[\s_-]+`)
	slugTrim     = regexp.MustCompile(`^-+|-+$`)
)

// Slugify lowercases and strips a display name down to a URL/file safe slug.
func Slugify(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = slugStrip.ReplaceAllString(text, "")
	text = slugCollapse.ReplaceAllString(text, "-")
	text = slugTrim.ReplaceAllString(text, "")
	if text == "" {
		return "item"
	}
	return text
}

// NewID builds the immutable record identifier from the display name and the
// creation instant. Identifiers are never reassigned.
func NewID(name string, at time.Time) string {
	return fmt.Sprintf("%s-%d", Slugify(name), at.Unix())
}
