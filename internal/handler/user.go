package handler

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
	"github.com/JahnaviYelishala1/eventconnect/internal/handler/dto"
)

// Protected is the session probe: it tells the client who the token
// belongs to and which role, if any, the user holds.
func (h *Handler) Protected(c *ginext.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.ProtectedResponse{
		Role:  string(user.Role),
		Email: user.Email,
	})
}

func (h *Handler) SelectRole(c *ginext.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	role := domain.Role(c.Query("role"))
	if !role.Assignable() {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid role"})
		return
	}

	if err := h.userService.SelectRole(c.Request.Context(), user.ID, role); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Status: "role assigned"})
}

func (h *Handler) GetOrganizerProfile(c *ginext.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	profile, err := h.userService.OrganizerProfile(c.Request.Context(), user.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizerProfileResponse(profile))
}

func (h *Handler) SaveOrganizerProfile(c *ginext.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req dto.OrganizerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.OrganizerProfileInput{
		FullName:         req.FullName,
		OrganizationName: req.OrganizationName,
		Phone:            req.Phone,
		City:             req.City,
		ProfileImageURL:  req.ProfileImageURL,
	}

	profile, err := h.userService.SaveOrganizerProfile(c.Request.Context(), user.ID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizerProfileResponse(profile))
}
