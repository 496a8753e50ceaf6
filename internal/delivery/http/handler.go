package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/patriot-thanks/backend/internal/domain"
	"github.com/patriot-thanks/backend/internal/usecase"
)

// ReconcilerService is the slice of the reconciler the handlers depend on
type ReconcilerService interface {
	Search(ctx context.Context, request *domain.SearchRequest) (*usecase.SearchOutcome, error)
	CheckDuplicate(ctx context.Context, place *domain.ExternalPlace) (*domain.DuplicateCheckResult, error)
	ResolvePlace(ctx context.Context, placeID string) (*domain.ExternalPlace, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	reconciler ReconcilerService
}

// NewHandler creates a new HTTP handler
func NewHandler(reconciler ReconcilerService) *Handler {
	return &Handler{reconciler: reconciler}
}

// duplicateCheckRequest is the body of a duplicate-check call. Either a full
// place payload (from a map click the frontend already resolved) or a bare
// place ID (which we resolve against the provider) must be present.
type duplicateCheckRequest struct {
	PlaceID string                `json:"placeId,omitempty"`
	Place   *domain.ExternalPlace `json:"place,omitempty"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "patriot-thanks-backend",
		"version": "1.0.0",
	})
}

// SearchBusinesses handles business search requests and returns the
// classified result list plus the incentive filter view
func (h *Handler) SearchBusinesses(c *gin.Context) {
	if h.reconciler == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "search service unavailable"})
		return
	}

	var request domain.SearchRequest
	if err := c.ShouldBindQuery(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid search parameters"})
		return
	}

	outcome, err := h.reconciler.Search(c.Request.Context(), &request)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "at least one search parameter is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	c.JSON(http.StatusOK, outcome)
}

// CheckDuplicate decides whether a clicked mapping-provider place already
// exists in the directory
func (h *Handler) CheckDuplicate(c *gin.Context) {
	if h.reconciler == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "duplicate-check service unavailable"})
		return
	}

	var request duplicateCheckRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	place := request.Place
	if place == nil {
		if request.PlaceID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "place or placeId is required"})
			return
		}

		resolved, err := h.reconciler.ResolvePlace(c.Request.Context(), request.PlaceID)
		if err != nil {
			h.writePlaceError(c, err)
			return
		}
		place = resolved
	}

	result, err := h.reconciler.CheckDuplicate(c.Request.Context(), place)
	if err != nil {
		h.writePlaceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// writePlaceError maps place-resolution and duplicate-check errors to HTTP
// statuses
func (h *Handler) writePlaceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest), errors.Is(err, domain.ErrPlaceIncomplete):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrPlaceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "place lookup failed"})
	}
}
