package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/wb-go/wbf/ginext"

	"github.com/JahnaviYelishala1/eventconnect/internal/handler/dto"
)

func (h *Handler) UploadNGOImage(c *ginext.Context) {
	h.uploadImage(c, "ngos")
}

func (h *Handler) UploadCatererImage(c *ginext.Context) {
	h.uploadImage(c, "caterers")
}

func (h *Handler) UploadOrganizerImage(c *ginext.Context) {
	h.uploadImage(c, "organizers")
}

func (h *Handler) uploadImage(c *ginext.Context, kind string) {
	if _, ok := h.currentUser(c); !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "no file provided"})
		return
	}

	if !validImageExt(filepath.Ext(file.Filename)) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid image type, supported: jpg, jpeg, png, gif"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to read file"})
		return
	}
	defer src.Close()

	url, err := h.uploadService.UploadImage(c.Request.Context(), kind, src)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ImageResponse{ImageURL: url})
}

func validImageExt(ext string) bool {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg", ".png", ".gif":
		return true
	}
	return false
}
