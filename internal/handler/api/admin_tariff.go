package api

import (
	"net/http"
	"strconv"

	reqdto "hall-booking/internal/handler/dto/request"
	resdto "hall-booking/internal/handler/dto/response"
	"hall-booking/internal/usecase/commands"
	"hall-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminTariffHandler struct {
	tariffCommands commands.TariffCommands
	catalogQueries queries.CatalogQueries
}

func NewAdminTariffHandler(tariffCommands commands.TariffCommands, catalogQueries queries.CatalogQueries) *AdminTariffHandler {
	return &AdminTariffHandler{
		tariffCommands: tariffCommands,
		catalogQueries: catalogQueries,
	}
}

// @Summary List price sets
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.PriceSetResponse
// @Router /admin/price-sets [get]
func (h *AdminTariffHandler) ListPriceSets(c *gin.Context) {
	sets, err := h.catalogQueries.ListPriceSets(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromPriceSetViews(sets))
}

// @Summary Create price set
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePriceSetRequest true "Price set"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/price-sets [post]
func (h *AdminTariffHandler) CreatePriceSet(c *gin.Context) {
	var req reqdto.CreatePriceSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.tariffCommands.CreatePriceSet(c.Request.Context(), commands.CreatePriceSetParams{
		Code: req.Code,
		Name: req.Name,
	})
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Delete price set
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Price set ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/price-sets/{id} [delete]
func (h *AdminTariffHandler) DeletePriceSet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid price set ID",
		})
		return
	}

	if err := h.tariffCommands.DeletePriceSet(c.Request.Context(), id); err != nil {
		respondAdminError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List season rules
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.SeasonRuleResponse
// @Router /admin/season-rules [get]
func (h *AdminTariffHandler) ListSeasonRules(c *gin.Context) {
	rules, err := h.catalogQueries.ListSeasonRules(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromSeasonRuleViews(rules))
}

// @Summary Create season rule
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateSeasonRuleRequest true "Season rule"
// @Success 201 {object} map[string]int64
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/season-rules [post]
func (h *AdminTariffHandler) CreateSeasonRule(c *gin.Context) {
	var req reqdto.CreateSeasonRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	id, err := h.tariffCommands.CreateSeasonRule(c.Request.Context(), params)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary Delete season rule
// @Tags admin
// @Security BearerAuth
// @Param id path int true "Season rule ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/season-rules/{id} [delete]
func (h *AdminTariffHandler) DeleteSeasonRule(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid season rule ID",
		})
		return
	}

	if err := h.tariffCommands.DeleteSeasonRule(c.Request.Context(), id); err != nil {
		respondAdminError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List rate cards for a hall
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Hall ID"
// @Success 200 {array} resdto.RateCardResponse
// @Failure 400 {object} map[string]string
// @Router /admin/halls/{id}/rates [get]
func (h *AdminTariffHandler) ListRateCards(c *gin.Context) {
	hallID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hall ID",
		})
		return
	}

	cards, err := h.catalogQueries.ListRateCards(c.Request.Context(), hallID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromRateCardViews(cards))
}

// @Summary Put rate card
// @Description Create or replace the rate card for a hall under a price set
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Hall ID"
// @Param request body reqdto.PutRateCardRequest true "Rate card"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/halls/{id}/rates [put]
func (h *AdminTariffHandler) PutRateCard(c *gin.Context) {
	hallID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hall ID",
		})
		return
	}

	var req reqdto.PutRateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.tariffCommands.PutRateCard(c.Request.Context(), req.ToParams(hallID))
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id.String()})
}

// @Summary Delete rate card
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Hall ID"
// @Param priceSetId path string true "Price set ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/halls/{id}/rates/{priceSetId} [delete]
func (h *AdminTariffHandler) DeleteRateCard(c *gin.Context) {
	hallID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hall ID",
		})
		return
	}
	priceSetID, err := uuid.Parse(c.Param("priceSetId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid price set ID",
		})
		return
	}

	if err := h.tariffCommands.DeleteRateCard(c.Request.Context(), hallID, priceSetID); err != nil {
		respondAdminError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Put extra price
// @Description Create or replace the price of an extra service under a price set
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Extra service ID"
// @Param request body reqdto.PutExtraPriceRequest true "Extra price"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/extras/{id}/prices [put]
func (h *AdminTariffHandler) PutExtraPrice(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid extra service ID",
		})
		return
	}

	var req reqdto.PutExtraPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.tariffCommands.PutExtraPrice(c.Request.Context(), commands.PutExtraPriceParams{
		ServiceID:           serviceID,
		PriceSetID:          req.PriceSetID,
		BasePrice:           req.BasePrice,
		AdditionalUnitPrice: req.AdditionalUnitPrice,
		UnitLabel:           req.UnitLabel,
	})
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id.String()})
}

// @Summary Delete extra price
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Extra service ID"
// @Param priceSetId path string true "Price set ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/extras/{id}/prices/{priceSetId} [delete]
func (h *AdminTariffHandler) DeleteExtraPrice(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid extra service ID",
		})
		return
	}
	priceSetID, err := uuid.Parse(c.Param("priceSetId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid price set ID",
		})
		return
	}

	if err := h.tariffCommands.DeleteExtraPrice(c.Request.Context(), serviceID, priceSetID); err != nil {
		respondAdminError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
