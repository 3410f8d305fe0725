package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Zitatori/Sorties-famille-en-Suisse/internal/filter"
	"github.com/Zitatori/Sorties-famille-en-Suisse/internal/http/api"
	"github.com/Zitatori/Sorties-famille-en-Suisse/internal/http/api/catalog/packets"
	"github.com/Zitatori/Sorties-famille-en-Suisse/internal/model"
	"github.com/Zitatori/Sorties-famille-en-Suisse/internal/schedule"
	"github.com/Zitatori/Sorties-famille-en-Suisse/internal/storage"
	"github.com/Zitatori/Sorties-famille-en-Suisse/internal/store"
)

type eventsController struct {
	store store.Store
	media storage.Storage
}

// EventModule exposes the event listing and creation endpoints.
func EventModule(st store.Store, media storage.Storage) api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		ctl := &eventsController{store: st, media: media}
		c.Group.GET("/events", api.ResolveEndpoint(ctl.listEvents))
		c.Group.POST("/events", api.ResolveEndpoint(ctl.createEvent))
	})
}

func (c *eventsController) listEvents(ctx *gin.Context) (any, *api.Error) {
	f := filter.EventFilter{
		Location:        ctx.Query("location"),
		RainOK:          queryBoolPtr(ctx, "rain_ok"),
		MinDuration:     queryIntPtr(ctx, "min_duration"),
		MaxDuration:     queryIntPtr(ctx, "max_duration"),
		Parking:         ctx.Query("parking"),
		MinSatisfaction: queryInt(ctx, "min_satisfaction"),
		ActiveNow:       queryFlag(ctx, "open_now"),
	}

	events, err := c.store.ListEvents()
	if err != nil {
		log.Error().Err(err).Msg("event fetch failed, rendering empty catalog")
		events = nil
	}

	now := schedule.Now()
	matched := filter.Events(events, f, now)
	out := make([]packets.EventResponse, len(matched))
	for i, e := range matched {
		out[i] = packets.NewEventResponse(e, now)
	}
	return out, nil
}

func (c *eventsController) createEvent(ctx *gin.Context) (any, *api.Error) {
	var req packets.CreateEventRequest
	if err := ctx.ShouldBind(&req); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if req.Title == "" || req.Location == "" {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: "Titre et Lieu sont requis."}
	}
	if req.Parking != "" && !model.ValidParking(req.Parking) {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: "Parking invalide."}
	}
	if req.DurationMin < 0 {
		req.DurationMin = 0
	}

	start, okStart := schedule.ParseStamp(req.StartDT)
	end, okEnd := schedule.ParseStamp(req.EndDT)
	if !okStart || !okEnd {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: "Dates de début et de fin sont requises."}
	}
	if end.Before(start) {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: "La date de fin précède la date de début."}
	}

	imagePath := ""
	if file, err := ctx.FormFile("image"); err == nil && file != nil {
		ref, err := c.media.SaveFile(file, req.Title)
		if err != nil {
			log.Error().Err(err).Msg("image upload failed, keeping event without image")
		} else {
			imagePath = ref
		}
	}

	e := model.Event{
		ID:           model.NewID(req.Title, time.Now()),
		Title:        req.Title,
		Location:     req.Location,
		RainOK:       req.RainOK,
		DurationMin:  req.DurationMin,
		Parking:      req.Parking,
		Satisfaction: req.Satisfaction,
		StartDT:      schedule.FormatStamp(start),
		EndDT:        schedule.FormatStamp(end),
		ImagePath:    imagePath,
		Notes:        req.Notes,
	}
	if err := c.store.InsertEvent(e); err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not save event"}
	}
	return packets.NewEventResponse(e, schedule.Now()), nil
}
