package packets

import (
	"time"

	"github.com/Zitatori/Sorties-famille-en-Suisse/internal/model"
	"github.com/Zitatori/Sorties-famille-en-Suisse/internal/schedule"
	"github.com/Zitatori/Sorties-famille-en-Suisse/internal/storage"
)

// PlaceResponse mirrors model.Place plus the live display fields: the
// open-now badge, the weekly schedule summary and the resolved image handle.
type PlaceResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	RainOK       bool     `json:"rain_ok"`
	DurationMin  int      `json:"duration_min"`
	Parking      string   `json:"parking"`
	Satisfaction int      `json:"satisfaction"`
	Stars        string   `json:"stars"`
	OpenNow      bool     `json:"open_now"`
	Hours        []string `json:"hours"`
	ImageURL     string   `json:"image_url"`
	Notes        string   `json:"notes"`
}

type EventResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Location     string `json:"location"`
	RainOK       bool   `json:"rain_ok"`
	DurationMin  int    `json:"duration_min"`
	Parking      string `json:"parking"`
	Satisfaction int    `json:"satisfaction"`
	Stars        string `json:"stars"`
	ActiveNow    bool   `json:"active_now"`
	StartDT      string `json:"start_dt"`
	EndDT        string `json:"end_dt"`
	ImageURL     string `json:"image_url"`
	Notes        string `json:"notes"`
}

func NewPlaceResponse(p model.Place, now time.Time) PlaceResponse {
	img, _ := storage.Resolve(p.ImagePath)
	return PlaceResponse{
		ID:           p.ID,
		Name:         p.Name,
		Location:     p.Location,
		RainOK:       p.RainOK,
		DurationMin:  p.DurationMin,
		Parking:      p.Parking,
		Satisfaction: p.Satisfaction,
		Stars:        model.Stars(p.Satisfaction),
		OpenNow:      schedule.OpenAt(p.HoursJSON, now),
		Hours:        schedule.FormatWeek(p.HoursJSON),
		ImageURL:     img,
		Notes:        p.Notes,
	}
}

func NewEventResponse(e model.Event, now time.Time) EventResponse {
	img, _ := storage.Resolve(e.ImagePath)
	return EventResponse{
		ID:           e.ID,
		Title:        e.Title,
		Location:     e.Location,
		RainOK:       e.RainOK,
		DurationMin:  e.DurationMin,
		Parking:      e.Parking,
		Satisfaction: e.Satisfaction,
		Stars:        model.Stars(e.Satisfaction),
		ActiveNow:    schedule.WithinWindow(e.StartDT, e.EndDT, now),
		StartDT:      e.StartDT,
		EndDT:        e.EndDT,
		ImageURL:     img,
		Notes:        e.Notes,
	}
}
