package handler

import (
	"net/http"
	"strconv"

	"github.com/wb-go/wbf/ginext"

	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
	"github.com/JahnaviYelishala1/eventconnect/internal/handler/dto"
)

func (h *Handler) GetCatererProfile(c *ginext.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	profile, err := h.catererService.Profile(c.Request.Context(), user.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCatererResponse(profile))
}

func (h *Handler) CreateCatererProfile(c *ginext.Context) {
	h.saveCatererProfile(c, true)
}

func (h *Handler) UpdateCatererProfile(c *ginext.Context) {
	h.saveCatererProfile(c, false)
}

func (h *Handler) saveCatererProfile(c *ginext.Context, create bool) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req dto.CatererProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CatererProfileInput{
		BusinessName:    req.BusinessName,
		City:            req.City,
		PricePerPlate:   req.PricePerPlate,
		MinCapacity:     req.MinCapacity,
		MaxCapacity:     req.MaxCapacity,
		VegSupported:    req.VegSupported,
		NonVegSupported: req.NonVegSupported,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		Phone:           req.Phone,
		ImageURL:        req.ImageURL,
		Services:        req.Services,
	}

	var (
		profile *domain.CatererProfile
		err     error
	)
	if create {
		profile, err = h.catererService.CreateProfile(c.Request.Context(), user.ID, input)
	} else {
		profile, err = h.catererService.UpdateProfile(c.Request.Context(), user.ID, input)
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := http.StatusOK
	if create {
		status = http.StatusCreated
	}
	c.JSON(status, dto.ToCatererResponse(profile))
}

func (h *Handler) MatchCaterers(c *ginext.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	eventID := c.Param("eventId")

	filter := domain.MatchFilter{
		VegOnly:    c.Query("veg_only") == "true",
		NonVegOnly: c.Query("nonveg_only") == "true",
		SortBy:     c.DefaultQuery("sort_by", domain.MatchSortDistance),
	}

	var err error
	if filter.MinPrice, err = floatQuery(c, "min_price"); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid min_price"})
		return
	}
	if filter.MaxPrice, err = floatQuery(c, "max_price"); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid max_price"})
		return
	}
	if filter.MinRating, err = floatQuery(c, "min_rating"); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid min_rating"})
		return
	}

	matches, err := h.catererService.Match(c.Request.Context(), user.ID, eventID, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CatererResponse, 0, len(matches))
	for _, m := range matches {
		resp = append(resp, dto.ToMatchResponse(m))
	}

	c.JSON(http.StatusOK, resp)
}

func floatQuery(c *ginext.Context, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
