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

type placesController struct {
	store store.Store
	media storage.Storage
}

// PlaceModule exposes the place listing and creation endpoints.
func PlaceModule(st store.Store, media storage.Storage) api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		ctl := &placesController{store: st, media: media}
		c.Group.GET("/places", api.ResolveEndpoint(ctl.listPlaces))
		c.Group.POST("/places", api.ResolveEndpoint(ctl.createPlace))
	})
}

func (c *placesController) listPlaces(ctx *gin.Context) (any, *api.Error) {
	f := filter.PlaceFilter{
		Location:        ctx.Query("location"),
		RainOK:          queryBoolPtr(ctx, "rain_ok"),
		MinDuration:     queryIntPtr(ctx, "min_duration"),
		MaxDuration:     queryIntPtr(ctx, "max_duration"),
		Parking:         ctx.Query("parking"),
		MinSatisfaction: queryInt(ctx, "min_satisfaction"),
		OpenNow:         queryFlag(ctx, "open_now"),
	}

	places, err := c.store.ListPlaces()
	if err != nil {
		log.Error().Err(err).Msg("place fetch failed, rendering empty catalog")
		places = nil
	}

	now := schedule.Now()
	matched := filter.Places(places, f, now)
	out := make([]packets.PlaceResponse, len(matched))
	for i, p := range matched {
		out[i] = packets.NewPlaceResponse(p, now)
	}
	return out, nil
}

func (c *placesController) createPlace(ctx *gin.Context) (any, *api.Error) {
	var req packets.CreatePlaceRequest
	if err := ctx.ShouldBind(&req); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if req.Name == "" || req.Location == "" {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: "Nom et Lieu sont requis."}
	}
	if req.Parking != "" && !model.ValidParking(req.Parking) {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: "Parking invalide."}
	}
	if req.DurationMin < 0 {
		req.DurationMin = 0
	}

	// A specification that parses is stored in its canonical serialization;
	// anything else is stored verbatim and evaluates as closed.
	hours := req.Hours
	if week, ok := schedule.ParseWeek(req.Hours); ok {
		hours = schedule.CanonicalWeek(week)
	}

	imagePath := ""
	if file, err := ctx.FormFile("image"); err == nil && file != nil {
		ref, err := c.media.SaveFile(file, req.Name)
		if err != nil {
			log.Error().Err(err).Msg("image upload failed, keeping place without image")
		} else {
			imagePath = ref
		}
	}

	p := model.Place{
		ID:           model.NewID(req.Name, time.Now()),
		Name:         req.Name,
		Location:     req.Location,
		RainOK:       req.RainOK,
		DurationMin:  req.DurationMin,
		Parking:      req.Parking,
		Satisfaction: req.Satisfaction,
		HoursJSON:    hours,
		ImagePath:    imagePath,
		Notes:        req.Notes,
	}
	if err := c.store.InsertPlace(p); err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not save place"}
	}
	return packets.NewPlaceResponse(p, schedule.Now()), nil
}
