package handler

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
	"github.com/JahnaviYelishala1/eventconnect/internal/handler/dto"
)

func (h *Handler) RegisterNGO(c *ginext.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req dto.RegisterNGORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	ngo, err := h.ngoService.Register(c.Request.Context(), user.ID, req.Name, req.RegistrationNumber)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToNgoResponse(ngo))
}

func (h *Handler) NgoMe(c *ginext.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	record, err := h.ngoService.Me(c.Request.Context(), user.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToNgoMeResponse(record))
}

func (h *Handler) SubmitDocument(c *ginext.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req dto.SubmitDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	doc, err := h.ngoService.SubmitDocument(c.Request.Context(), user.ID, req.DocumentType, req.FileURL)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
}

func (h *Handler) ListDocuments(c *ginext.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	docs, err := h.ngoService.Documents(c.Request.Context(), user.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		resp = append(resp, dto.ToDocumentResponse(d))
	}

	c.JSON(http.StatusOK, resp)
}

// DocumentsStatus summarizes the review progress of the caller's
// documents alongside the per-document statuses.
func (h *Handler) DocumentsStatus(c *ginext.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	docs, err := h.ngoService.Documents(c.Request.Context(), user.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	var approved, pending, rejected int
	resp := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		switch d.Status {
		case domain.DocumentStatusApproved:
			approved++
		case domain.DocumentStatusRejected:
			rejected++
		default:
			pending++
		}
		resp = append(resp, dto.ToDocumentResponse(d))
	}

	c.JSON(http.StatusOK, ginext.H{
		"total":     len(docs),
		"approved":  approved,
		"pending":   pending,
		"rejected":  rejected,
		"documents": resp,
	})
}

func (h *Handler) GetNGOProfile(c *ginext.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	profile, err := h.ngoService.Profile(c.Request.Context(), user.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToNGOProfileResponse(profile))
}

func (h *Handler) SaveNGOProfile(c *ginext.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req dto.NGOProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.NGOProfileInput{
		Name:            req.Name,
		EstablishedYear: req.EstablishedYear,
		About:           req.About,
		Email:           req.Email,
		Phone:           req.Phone,
		Address:         req.Address,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		ImageURL:        req.ImageURL,
	}

	profile, err := h.ngoService.SaveProfile(c.Request.Context(), user.ID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToNGOProfileResponse(profile))
}
