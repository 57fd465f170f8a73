package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
	"github.com/JahnaviYelishala1/eventconnect/internal/handler/dto"
	"github.com/JahnaviYelishala1/eventconnect/internal/middleware"
)

type UserSvc interface {
	SelectRole(ctx context.Context, userID string, role domain.Role) error
	OrganizerProfile(ctx context.Context, userID string) (*domain.OrganizerProfile, error)
	SaveOrganizerProfile(ctx context.Context, userID string, input domain.OrganizerProfileInput) (*domain.OrganizerProfile, error)
}

type EventSvc interface {
	Predict(input domain.PredictionInput) (*domain.Prediction, error)
	Create(ctx context.Context, organizerID string, input domain.CreateEventInput) (*domain.Event, error)
	MyEvents(ctx context.Context, organizerID string) ([]*domain.Event, error)
	Complete(ctx context.Context, organizerID, eventID string, input domain.CompleteEventInput) (*domain.Event, error)
}

type CatererSvc interface {
	Profile(ctx context.Context, userID string) (*domain.CatererProfile, error)
	CreateProfile(ctx context.Context, userID string, input domain.CatererProfileInput) (*domain.CatererProfile, error)
	UpdateProfile(ctx context.Context, userID string, input domain.CatererProfileInput) (*domain.CatererProfile, error)
	Match(ctx context.Context, organizerID, eventID string, filter domain.MatchFilter) ([]domain.MatchResult, error)
}

type BookingSvc interface {
	Request(ctx context.Context, organizerID, eventID, catererID string) (*domain.Booking, error)
	Respond(ctx context.Context, catererUserID, bookingID string, status domain.BookingStatus) error
	CatererRequests(ctx context.Context, catererUserID string) ([]*domain.BookingRequest, error)
	EventStatus(ctx context.Context, organizerID, eventID string) (*domain.EventBookingStatus, error)
}

type NGOSvc interface {
	Register(ctx context.Context, userID, name, registrationNumber string) (*domain.NGO, error)
	Me(ctx context.Context, userID string) (*domain.NGORecord, error)
	SubmitDocument(ctx context.Context, userID, docType, fileURL string) (*domain.NGODocument, error)
	Documents(ctx context.Context, userID string) ([]*domain.NGODocument, error)
	Profile(ctx context.Context, userID string) (*domain.NGOProfile, error)
	SaveProfile(ctx context.Context, userID string, input domain.NGOProfileInput) (*domain.NGOProfile, error)
	ListAll(ctx context.Context) ([]*domain.AdminNGO, error)
	SetStatus(ctx context.Context, ngoID string, status domain.NGOStatus) error
	ReviewDocument(ctx context.Context, docID string, status domain.DocumentStatus) error
}

type UploadSvc interface {
	UploadImage(ctx context.Context, kind string, r io.Reader) (string, error)
}

type Handler struct {
	userService    UserSvc
	eventService   EventSvc
	catererService CatererSvc
	bookingService BookingSvc
	ngoService     NGOSvc
	uploadService  UploadSvc
}

func NewHandler(
	userService UserSvc,
	eventService EventSvc,
	catererService CatererSvc,
	bookingService BookingSvc,
	ngoService NGOSvc,
	uploadService UploadSvc,
) *Handler {
	return &Handler{
		userService:    userService,
		eventService:   eventService,
		catererService: catererService,
		bookingService: bookingService,
		ngoService:     ngoService,
		uploadService:  uploadService,
	}
}

func (h *Handler) currentUser(c *ginext.Context) (*domain.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrUnauthenticated.Error()})
		return nil, false
	}
	return user, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrCatererNotFound),
		errors.Is(err, domain.ErrNGONotFound),
		errors.Is(err, domain.ErrDocumentNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrRoleAlreadySet),
		errors.Is(err, domain.ErrNGOAlreadyExists),
		errors.Is(err, domain.ErrAlreadyRequested),
		errors.Is(err, domain.ErrBookingNotPending),
		errors.Is(err, domain.ErrEventNotBookable),
		errors.Is(err, domain.ErrEventNotOpen):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
