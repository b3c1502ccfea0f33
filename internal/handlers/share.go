package handlers

import (
	"context"
	"errors"
	"net/http"

	"codetext-backend/internal/config"
	"codetext-backend/internal/models"
	"codetext-backend/internal/services"
	"codetext-backend/internal/utils"
	"codetext-backend/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	notFoundMessage = "Code not found"

	maxEscapeRatio = 6
	bodyOverhead   = 1024
)

type ShareHandler struct {
	shareService *services.ShareService
	config       *config.Config
}

func NewShareHandler(shareService *services.ShareService, cfg *config.Config) *ShareHandler {
	return &ShareHandler{
		shareService: shareService,
		config:       cfg,
	}
}

func (h *ShareHandler) CreateShare(c *gin.Context) {
	// Oversized bodies are rejected without being read into memory. A JSON
	// string escape (\u0001) takes six bytes per content byte; the exact limit
	// is enforced by Share on the decoded text.
	if limit := h.config.Share.MaxContentBytes; limit > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, int64(limit)*maxEscapeRatio+bodyOverhead)
	}

	var req models.ShareCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			utils.Error(c, http.StatusRequestEntityTooLarge, services.ErrContentTooLarge.Error())
			return
		}
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		utils.ValidationError(c, validator.FieldErrors(err))
		return
	}

	code, err := h.shareService.Share(c.Request.Context(), req.Content)
	if err != nil {
		h.writeError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "Text shared successfully!", models.ShareCreateResponse{
		Code:     code,
		ShareURL: h.config.ShareURL(code),
	})
}

func (h *ShareHandler) GetShare(c *gin.Context) {
	record, err := h.shareService.Lookup(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "Text found!", models.ShareResponse{
		Code:    record.Code,
		Content: record.Content,
	})
}

// GetRawShare returns the shared content as plain text.
func (h *ShareHandler) GetRawShare(c *gin.Context) {
	record, err := h.shareService.Lookup(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(record.Content))
}

func (h *ShareHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyContent):
		utils.ValidationError(c, map[string]string{"content": "notblank"})
	case errors.Is(err, services.ErrContentTooLarge):
		utils.Error(c, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, services.ErrEmptyCode):
		utils.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.NotFound(c, notFoundMessage)
	case errors.Is(err, services.ErrCodeSpaceExhausted):
		logrus.WithError(err).Error("share code space exhausted")
		utils.Error(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, context.Canceled):
		// client went away
		c.Status(499)
	default:
		logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("share request failed")
		utils.InternalError(c)
	}
}
