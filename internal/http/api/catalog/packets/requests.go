package packets

// Multipart form payload for creating a place. The image part travels
// separately as the "image" file field.
type CreatePlaceRequest struct {
	Name         string `form:"name"`
	Location     string `form:"location"`
	RainOK       bool   `form:"rain_ok"`
	DurationMin  int    `form:"duration_min"`
	Parking      string `form:"parking"`
	Satisfaction int    `form:"satisfaction"`
	Hours        string `form:"hours"`
	Notes        string `form:"notes"`
}

type CreateEventRequest struct {
	Title        string `form:"title"`
	Location     string `form:"location"`
	RainOK       bool   `form:"rain_ok"`
	DurationMin  int    `form:"duration_min"`
	Parking      string `form:"parking"`
	Satisfaction int    `form:"satisfaction"`
	StartDT      string `form:"start_dt"`
	EndDT        string `form:"end_dt"`
	Notes        string `form:"notes"`
}
