package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/wb-go/wbf/ginext"

	"github.com/nikfrants/biketransfer/internal/domain"
	"github.com/nikfrants/biketransfer/internal/handler/dto"
)

type ApplicationSvc interface {
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	Delete(ctx context.Context, id string) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Application, error)
}

type ProfileSvc interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.ClientProfile, error)
}

type Handler struct {
	applicationService ApplicationSvc
	profileService     ProfileSvc
}

func NewHandler(applicationService ApplicationSvc, profileService ProfileSvc) *Handler {
	return &Handler{
		applicationService: applicationService,
		profileService:     profileService,
	}
}

// Applications

func (h *Handler) GetApplication(c *ginext.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid application id"})
		return
	}

	app, err := h.applicationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToApplicationResponse(app))
}

func (h *Handler) DeleteApplication(c *ginext.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid application id"})
		return
	}

	deleted, err := h.applicationService.Delete(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: domain.ErrApplicationNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) GetUserApplications(c *ginext.Context) {
	userID, ok := h.parseUserID(c)
	if !ok {
		return
	}

	apps, err := h.applicationService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		resp = append(resp, dto.ToApplicationResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

// Profiles

func (h *Handler) GetUserProfile(c *ginext.Context) {
	userID, ok := h.parseUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

func (h *Handler) parseUserID(c *ginext.Context) (int64, bool) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return 0, false
	}
	return userID, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrApplicationNotFound),
		errors.Is(err, domain.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
