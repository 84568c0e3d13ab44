package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/Jay-Lhomme/levelup-server/internal/domain"
	"github.com/Jay-Lhomme/levelup-server/internal/handler/dto"
)

func (h *Handler) CreateAttendance(c *ginext.Context) {
	var req dto.CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateAttendanceInput{
		EventID: req.EventID,
		GamerID: req.GamerID,
	}

	att, err := h.attendanceService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAttendanceResponse(att))
}

func (h *Handler) GetAttendance(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid attendance id"})
		return
	}

	att, err := h.attendanceService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendanceResponse(att))
}

func (h *Handler) ListAttendances(c *ginext.Context) {
	atts, err := h.attendanceService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AttendanceResponse, 0, len(atts))
	for _, a := range atts {
		resp = append(resp, dto.ToAttendanceResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateAttendance(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid attendance id"})
		return
	}

	var req dto.UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateAttendanceInput{
		EventID: req.EventID,
		GamerID: req.GamerID,
	}

	if err := h.attendanceService.Update(c.Request.Context(), id, input); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteAttendance(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid attendance id"})
		return
	}

	if err := h.attendanceService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
