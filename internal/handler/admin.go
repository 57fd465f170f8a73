package handler

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
	"github.com/JahnaviYelishala1/eventconnect/internal/handler/dto"
)

func (h *Handler) AdminListNGOs(c *ginext.Context) {
	ngos, err := h.ngoService.ListAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AdminNgoResponse, 0, len(ngos))
	for _, n := range ngos {
		resp = append(resp, dto.ToAdminNgoResponse(n))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) VerifyNGO(c *ginext.Context) {
	h.setNGOStatus(c, domain.NGOStatusVerified)
}

func (h *Handler) RejectNGO(c *ginext.Context) {
	h.setNGOStatus(c, domain.NGOStatusRejected)
}

func (h *Handler) SuspendNGO(c *ginext.Context) {
	h.setNGOStatus(c, domain.NGOStatusSuspended)
}

func (h *Handler) setNGOStatus(c *ginext.Context, status domain.NGOStatus) {
	if err := h.ngoService.SetStatus(c.Request.Context(), c.Param("id"), status); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Status: string(status)})
}

func (h *Handler) ApproveDocument(c *ginext.Context) {
	h.reviewDocument(c, domain.DocumentStatusApproved)
}

func (h *Handler) RejectDocument(c *ginext.Context) {
	h.reviewDocument(c, domain.DocumentStatusRejected)
}

func (h *Handler) reviewDocument(c *ginext.Context, status domain.DocumentStatus) {
	if err := h.ngoService.ReviewDocument(c.Request.Context(), c.Param("id"), status); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Status: string(status)})
}
