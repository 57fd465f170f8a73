package handler

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
	"github.com/JahnaviYelishala1/eventconnect/internal/handler/dto"
)

func (h *Handler) RequestBooking(c *ginext.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	eventID := c.Param("eventId")
	catererID := c.Param("catererId")

	booking, err := h.bookingService.Request(c.Request.Context(), user.ID, eventID, catererID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) RespondBooking(c *ginext.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	bookingID := c.Param("bookingId")

	status := domain.BookingStatus(c.Query("status"))
	if status != domain.BookingStatusAccepted && status != domain.BookingStatusRejected {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "status must be ACCEPTED or REJECTED"})
		return
	}

	if err := h.bookingService.Respond(c.Request.Context(), user.ID, bookingID, status); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Status: string(status)})
}

func (h *Handler) CatererRequests(c *ginext.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	requests, err := h.bookingService.CatererRequests(c.Request.Context(), user.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingRequestResponse, 0, len(requests))
	for _, r := range requests {
		resp = append(resp, dto.ToBookingRequestResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) EventBookingStatus(c *ginext.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	eventID := c.Param("eventId")

	status, err := h.bookingService.EventStatus(c.Request.Context(), user.ID, eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventBookingStatusResponse(status))
}
