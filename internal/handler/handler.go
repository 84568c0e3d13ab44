package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/Jay-Lhomme/levelup-server/internal/domain"
	"github.com/Jay-Lhomme/levelup-server/internal/handler/dto"
)

type EventSvc interface {
	List(ctx context.Context, gameID, uid string) ([]*domain.Event, error)
	Get(ctx context.Context, id, uid string) (*domain.Event, error)
	Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	Update(ctx context.Context, id string, input domain.UpdateEventInput) error
	Delete(ctx context.Context, id string) error
	Signup(ctx context.Context, eventID, uid string) (*domain.Attendance, error)
	Leave(ctx context.Context, eventID, uid string) error
}

type GamerSvc interface {
	Register(ctx context.Context, input domain.CreateGamerInput) (*domain.Gamer, error)
	GetByID(ctx context.Context, id string) (*domain.Gamer, error)
	List(ctx context.Context) ([]*domain.Gamer, error)
	Update(ctx context.Context, id string, input domain.UpdateGamerInput) error
	Delete(ctx context.Context, id string) error
}

type GameSvc interface {
	Create(ctx context.Context, input domain.CreateGameInput) (*domain.Game, error)
	GetByID(ctx context.Context, id string) (*domain.Game, error)
	List(ctx context.Context) ([]*domain.Game, error)
	Update(ctx context.Context, id string, input domain.UpdateGameInput) error
	Delete(ctx context.Context, id string) error
}

type GameTypeSvc interface {
	Create(ctx context.Context, label string) (*domain.GameType, error)
	GetByID(ctx context.Context, id string) (*domain.GameType, error)
	List(ctx context.Context) ([]*domain.GameType, error)
	Update(ctx context.Context, id, label string) error
	Delete(ctx context.Context, id string) error
}

type AttendanceSvc interface {
	Create(ctx context.Context, input domain.CreateAttendanceInput) (*domain.Attendance, error)
	GetByID(ctx context.Context, id string) (*domain.Attendance, error)
	List(ctx context.Context) ([]*domain.Attendance, error)
	Update(ctx context.Context, id string, input domain.UpdateAttendanceInput) error
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	eventService      EventSvc
	gamerService      GamerSvc
	gameService       GameSvc
	gameTypeService   GameTypeSvc
	attendanceService AttendanceSvc
}

func NewHandler(
	eventService EventSvc,
	gamerService GamerSvc,
	gameService GameSvc,
	gameTypeService GameTypeSvc,
	attendanceService AttendanceSvc,
) *Handler {
	return &Handler{
		eventService:      eventService,
		gamerService:      gamerService,
		gameService:       gameService,
		gameTypeService:   gameTypeService,
		attendanceService: attendanceService,
	}
}

// identity returns the caller-supplied external identifier. Reads and write
// actions alike take it from the Authorization header; body-supplied ids are
// not trusted.
func identity(c *ginext.Context) string {
	return c.GetHeader("Authorization")
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrGamerNotFound),
		errors.Is(err, domain.ErrGameNotFound),
		errors.Is(err, domain.ErrGameTypeNotFound),
		errors.Is(err, domain.ErrAttendanceNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyAttending),
		errors.Is(err, domain.ErrUIDTaken),
		errors.Is(err, domain.ErrInUse):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrMissingIdentity),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
