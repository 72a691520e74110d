package employee

import (
	"net/http"

	"github.com/mohamedibrahim3/employees-manger/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) CreatePenalty(c *gin.Context) {
	var req PenaltyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create penalty validation failed", zap.Error(err))
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.CreatePenalty(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) UpdatePenalty(c *gin.Context) {
	var req PenaltyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.UpdatePenalty(c.Request.Context(), c.Param("penaltyId"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) DeletePenalty(c *gin.Context) {
	if err := h.service.DeletePenalty(c.Request.Context(), c.Param("penaltyId"), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) CreateBonus(c *gin.Context) {
	var req BonusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create bonus validation failed", zap.Error(err))
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.CreateBonus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) UpdateBonus(c *gin.Context) {
	var req BonusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.UpdateBonus(c.Request.Context(), c.Param("bonusId"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) DeleteBonus(c *gin.Context) {
	if err := h.service.DeleteBonus(c.Request.Context(), c.Param("bonusId"), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) CreateEfficiencyReport(c *gin.Context) {
	var req EfficiencyReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create efficiency report validation failed", zap.Error(err))
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.CreateEfficiencyReport(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) UpdateEfficiencyReport(c *gin.Context) {
	var req EfficiencyReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.UpdateEfficiencyReport(c.Request.Context(), c.Param("reportId"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) DeleteEfficiencyReport(c *gin.Context) {
	if err := h.service.DeleteEfficiencyReport(c.Request.Context(), c.Param("reportId"), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
