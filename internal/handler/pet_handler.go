package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/adoteumpet/service-adoption/internal/application"
	"github.com/adoteumpet/service-adoption/internal/response"
)

// PetHandler handles HTTP requests for pet CRUD and listing.
type PetHandler struct {
	service *application.PetService
}

// NewPetHandler creates a new PetHandler.
func NewPetHandler(service *application.PetService) *PetHandler {
	return &PetHandler{service: service}
}

// RegisterRoutes registers all pet routes.
func (h *PetHandler) RegisterRoutes(r *gin.RouterGroup) {
	pets := r.Group("/pets")
	{
		pets.GET("", h.ListPets)
		pets.POST("", h.CreatePet)
		pets.GET("/:id", h.GetPet)
		pets.PUT("/:id", h.UpdatePet)
		pets.DELETE("/:id", h.DeletePet)
	}
}

// ListPets handles GET /pets.
func (h *PetHandler) ListPets(c *gin.Context) {
	params := application.ListPetsParams{
		Name:                c.Query("name"),
		Species:             c.Query("species"),
		Breed:               c.Query("breed"),
		ShelterCity:         c.Query("shelter_city"),
		ShelterState:        c.Query("shelter_state"),
		ShelterNeighborhood: c.Query("shelter_neighborhood"),
		Status:              c.Query("status"),
		Page:                c.Query("page"),
		PerPage:             c.Query("perPage"),
		SortBy:              c.Query("sortBy"),
		Order:               c.Query("order"),
	}

	result, err := h.service.ListPets(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetPet handles GET /pets/:id.
func (h *PetHandler) GetPet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Pet not found",
			"message": "no pet exists with the given id",
		})
		return
	}

	result, err := h.service.GetPet(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// CreatePet handles POST /pets.
func (h *PetHandler) CreatePet(c *gin.Context) {
	var req application.PetPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid data", "request body must be valid JSON")
		return
	}

	result, err := h.service.CreatePet(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Pet created successfully", "pet", result)
}

// UpdatePet handles PUT /pets/:id with merge-patch semantics.
func (h *PetHandler) UpdatePet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Pet not found",
			"message": "no pet exists with the given id",
		})
		return
	}

	var req application.PetPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid data", "request body must be valid JSON")
		return
	}

	result, err := h.service.UpdatePet(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pet updated successfully", "pet": result})
}

// DeletePet handles DELETE /pets/:id.
func (h *PetHandler) DeletePet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Pet not found",
			"message": "no pet exists with the given id",
		})
		return
	}

	result, err := h.service.DeletePet(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pet deleted successfully", "pet": result})
}
