package handler

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
	"github.com/JahnaviYelishala1/eventconnect/internal/handler/dto"
)

func (h *Handler) PredictFood(c *ginext.Context) {
	var req dto.PredictFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	prediction, err := h.eventService.Predict(domain.PredictionInput{
		EventType:     req.EventType,
		Attendees:     req.Attendees,
		DurationHours: req.DurationHours,
		MealStyle:     req.MealStyle,
		LocationType:  req.LocationType,
		Season:        req.Season,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPredictionResponse(prediction))
}

func (h *Handler) CreateEvent(c *ginext.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateEventInput{
		Prediction: domain.PredictionInput{
			EventType:     req.EventType,
			Attendees:     req.Attendees,
			DurationHours: req.DurationHours,
			MealStyle:     req.MealStyle,
			LocationType:  req.LocationType,
			Season:        req.Season,
		},
		Name: req.EventName,
		Venue: domain.Location{
			Address:      req.Address,
			City:         req.City,
			Pincode:      req.Pincode,
			Latitude:     req.Latitude,
			Longitude:    req.Longitude,
			LocationType: req.LocationType,
		},
	}

	event, err := h.eventService.Create(c.Request.Context(), user.ID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) MyEvents(c *ginext.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	events, err := h.eventService.MyEvents(c.Request.Context(), user.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CompleteEvent(c *ginext.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	eventID := c.Param("id")

	var req dto.CompleteEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CompleteEventInput{
		FoodPreparedKg: req.FoodPrepared,
		FoodConsumedKg: req.FoodConsumed,
	}
	if req.SurplusLocation != nil {
		input.SurplusPickup = &domain.Location{
			Address:      req.SurplusLocation.Address,
			City:         req.SurplusLocation.City,
			Pincode:      req.SurplusLocation.Pincode,
			Latitude:     req.SurplusLocation.Latitude,
			Longitude:    req.SurplusLocation.Longitude,
			LocationType: req.SurplusLocation.LocationType,
		}
	}

	event, err := h.eventService.Complete(c.Request.Context(), user.ID, eventID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}
