package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	cat "dogstudio/internal/catalog"
	"dogstudio/internal/pkg/response"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/catalog/services", h.ListServices)
	rg.GET("/catalog/pets", h.ListPetOptions)
	rg.GET("/catalog/slots", h.ListTimeSlots)
	rg.GET("/shop", h.GetShop)
}

func (h *Handler) ListServices(c *gin.Context) {
	services := make([]ServiceResponse, 0, len(cat.Services))
	for _, s := range cat.Services {
		services = append(services, toServiceResponse(s))
	}
	response.Success(c, http.StatusOK, gin.H{"services": services})
}

func (h *Handler) ListPetOptions(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"pet_types": cat.PetTypes,
		"pet_sizes": cat.PetSizes,
	})
}

func (h *Handler) ListTimeSlots(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"time_slots": cat.TimeSlots})
}

func (h *Handler) GetShop(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"shop": cat.Shop})
}
