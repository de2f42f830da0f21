package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adoteumpet/service-adoption/internal/application"
	"github.com/adoteumpet/service-adoption/internal/errs"
	"github.com/adoteumpet/service-adoption/internal/response"
)

// BreedHandler handles HTTP requests for breed lookups.
type BreedHandler struct {
	service *application.BreedService
}

// NewBreedHandler creates a new BreedHandler.
func NewBreedHandler(service *application.BreedService) *BreedHandler {
	return &BreedHandler{service: service}
}

// RegisterRoutes registers the breed routes.
func (h *BreedHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/breeds/:species", h.GetBreeds)
}

// GetBreeds handles GET /breeds/:species with an optional ?q= name filter.
func (h *BreedHandler) GetBreeds(c *gin.Context) {
	result, err := h.service.GetBreeds(c.Request.Context(), c.Param("species"), c.Query("q"))
	if err != nil {
		var ve *errs.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid species",
				"message": ve.Message,
			})
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
