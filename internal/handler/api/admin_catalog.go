package api

import (
	"errors"
	"net/http"

	reqdto "hall-booking/internal/handler/dto/request"
	resdto "hall-booking/internal/handler/dto/response"
	"hall-booking/internal/usecase/commands"
	"hall-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminCatalogHandler struct {
	catalogCommands commands.CatalogCommands
	catalogQueries  queries.CatalogQueries
}

func NewAdminCatalogHandler(catalogCommands commands.CatalogCommands, catalogQueries queries.CatalogQueries) *AdminCatalogHandler {
	return &AdminCatalogHandler{
		catalogCommands: catalogCommands,
		catalogQueries:  catalogQueries,
	}
}

// @Summary Create hall
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateHallRequest true "Hall"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/halls [post]
func (h *AdminCatalogHandler) CreateHall(c *gin.Context) {
	var req reqdto.CreateHallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.catalogCommands.CreateHall(c.Request.Context(), commands.CreateHallParams{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
	})
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Update hall
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Hall ID"
// @Param request body reqdto.UpdateHallRequest true "Fields to update"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/halls/{id} [patch]
func (h *AdminCatalogHandler) UpdateHall(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hall ID",
		})
		return
	}

	var req reqdto.UpdateHallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.catalogCommands.UpdateHall(c.Request.Context(), id, commands.UpdateHallParams{
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
	}); err != nil {
		respondAdminError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete hall
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Hall ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/halls/{id} [delete]
func (h *AdminCatalogHandler) DeleteHall(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hall ID",
		})
		return
	}

	if err := h.catalogCommands.DeleteHall(c.Request.Context(), id); err != nil {
		respondAdminError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create extra service
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateExtraServiceRequest true "Extra service"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/extras [post]
func (h *AdminCatalogHandler) CreateExtra(c *gin.Context) {
	var req reqdto.CreateExtraServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.catalogCommands.CreateExtra(c.Request.Context(), commands.CreateExtraParams{
		Code:     req.Code,
		Name:     req.Name,
		Scheme:   req.Scheme,
		UnitSize: req.UnitSize,
	})
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Update extra service
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Extra service ID"
// @Param request body reqdto.UpdateExtraServiceRequest true "Fields to update"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/extras/{id} [patch]
func (h *AdminCatalogHandler) UpdateExtra(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid extra service ID",
		})
		return
	}

	var req reqdto.UpdateExtraServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.catalogCommands.UpdateExtra(c.Request.Context(), id, commands.UpdateExtraParams{
		Name:     req.Name,
		Scheme:   req.Scheme,
		UnitSize: req.UnitSize,
	}); err != nil {
		respondAdminError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete extra service
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Extra service ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/extras/{id} [delete]
func (h *AdminCatalogHandler) DeleteExtra(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid extra service ID",
		})
		return
	}

	if err := h.catalogCommands.DeleteExtra(c.Request.Context(), id); err != nil {
		respondAdminError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List extra prices
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Extra service ID"
// @Success 200 {array} resdto.ExtraPriceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/extras/{id}/prices [get]
func (h *AdminCatalogHandler) ListExtraPrices(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid extra service ID",
		})
		return
	}

	prices, err := h.catalogQueries.ListExtraPrices(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrExtraNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Extra service not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromExtraPriceViews(prices))
}

// respondAdminError maps the shared write-side sentinels; handlers map
// their endpoint-specific errors before falling back here.
func respondAdminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrHallNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Hall not found",
		})
	case errors.Is(err, commands.ErrExtraNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Extra service not found",
		})
	case errors.Is(err, commands.ErrPriceSetNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Price set not found",
		})
	case errors.Is(err, commands.ErrSeasonRuleNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Season rule not found",
		})
	case errors.Is(err, commands.ErrDuplicateCode):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Code already in use",
		})
	case errors.Is(err, commands.ErrEntityInUse):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Entity is still referenced and cannot be deleted",
		})
	case errors.Is(err, commands.ErrPriceSetInUse):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Price set is still referenced and cannot be deleted",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
