package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/Jay-Lhomme/levelup-server/internal/domain"
	"github.com/Jay-Lhomme/levelup-server/internal/handler/dto"
)

func (h *Handler) RegisterGamer(c *ginext.Context) {
	var req dto.CreateGamerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateGamerInput{
		UID:            req.UID,
		Bio:            req.Bio,
		TelegramChatID: req.TelegramChatID,
	}

	gamer, err := h.gamerService.Register(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToGamerResponse(gamer))
}

func (h *Handler) GetGamer(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid gamer id"})
		return
	}

	gamer, err := h.gamerService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGamerResponse(gamer))
}

func (h *Handler) ListGamers(c *ginext.Context) {
	gamers, err := h.gamerService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.GamerResponse, 0, len(gamers))
	for _, g := range gamers {
		resp = append(resp, dto.ToGamerResponse(g))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateGamer(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid gamer id"})
		return
	}

	var req dto.UpdateGamerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateGamerInput{
		UID:            req.UID,
		Bio:            req.Bio,
		TelegramChatID: req.TelegramChatID,
	}

	if err := h.gamerService.Update(c.Request.Context(), id, input); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteGamer(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid gamer id"})
		return
	}

	if err := h.gamerService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
