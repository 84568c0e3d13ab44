package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/Jay-Lhomme/levelup-server/internal/domain"
	"github.com/Jay-Lhomme/levelup-server/internal/handler/dto"
)

// Games

func (h *Handler) CreateGame(c *ginext.Context) {
	var req dto.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateGameInput{
		Title:           req.Title,
		Maker:           req.Maker,
		NumberOfPlayers: req.NumberOfPlayers,
		SkillLevel:      req.SkillLevel,
		GameTypeID:      req.GameTypeID,
		GamerID:         req.GamerID,
	}

	game, err := h.gameService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToGameResponse(game))
}

func (h *Handler) GetGame(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid game id"})
		return
	}

	game, err := h.gameService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGameResponse(game))
}

func (h *Handler) ListGames(c *ginext.Context) {
	games, err := h.gameService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.GameResponse, 0, len(games))
	for _, g := range games {
		resp = append(resp, dto.ToGameResponse(g))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateGame(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid game id"})
		return
	}

	var req dto.UpdateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateGameInput{
		Title:           req.Title,
		Maker:           req.Maker,
		NumberOfPlayers: req.NumberOfPlayers,
		SkillLevel:      req.SkillLevel,
		GameTypeID:      req.GameTypeID,
		GamerID:         req.GamerID,
	}

	if err := h.gameService.Update(c.Request.Context(), id, input); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteGame(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid game id"})
		return
	}

	if err := h.gameService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Game types

func (h *Handler) CreateGameType(c *ginext.Context) {
	var req dto.GameTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	gt, err := h.gameTypeService.Create(c.Request.Context(), req.Label)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToGameTypeResponse(gt))
}

func (h *Handler) GetGameType(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid game type id"})
		return
	}

	gt, err := h.gameTypeService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGameTypeResponse(gt))
}

func (h *Handler) ListGameTypes(c *ginext.Context) {
	types, err := h.gameTypeService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.GameTypeResponse, 0, len(types))
	for _, gt := range types {
		resp = append(resp, dto.ToGameTypeResponse(gt))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateGameType(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid game type id"})
		return
	}

	var req dto.GameTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.gameTypeService.Update(c.Request.Context(), id, req.Label); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteGameType(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid game type id"})
		return
	}

	if err := h.gameTypeService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
