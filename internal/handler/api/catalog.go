package api

import (
	"errors"
	"net/http"

	resdto "hall-booking/internal/handler/dto/response"
	"hall-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries: catalogQueries,
	}
}

// @Summary List halls
// @Description List all halls available for rental
// @Tags halls
// @Produce json
// @Success 200 {array} resdto.HallResponse
// @Router /halls [get]
func (h *CatalogHandler) ListHalls(c *gin.Context) {
	halls, err := h.catalogQueries.ListHalls(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromHallViews(halls))
}

// @Summary Get hall
// @Description Get one hall by its code
// @Tags halls
// @Produce json
// @Param code path string true "Hall code"
// @Success 200 {object} resdto.HallResponse
// @Failure 404 {object} map[string]string
// @Router /halls/{code} [get]
func (h *CatalogHandler) GetHall(c *gin.Context) {
	hallView, err := h.catalogQueries.GetHallByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, queries.ErrHallNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Hall not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromHallView(hallView))
}

// @Summary List extra services
// @Description List all bookable extra services
// @Tags extras
// @Produce json
// @Success 200 {array} resdto.ExtraServiceResponse
// @Router /extras [get]
func (h *CatalogHandler) ListExtras(c *gin.Context) {
	extras, err := h.catalogQueries.ListExtras(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromExtraServiceViews(extras))
}
