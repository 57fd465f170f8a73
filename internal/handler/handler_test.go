package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
	"github.com/JahnaviYelishala1/eventconnect/internal/handler/dto"
	hmocks "github.com/JahnaviYelishala1/eventconnect/internal/handler/mocks"
	"github.com/JahnaviYelishala1/eventconnect/internal/router"
)

type svcMocks struct {
	user    *hmocks.MockUserSvc
	event   *hmocks.MockEventSvc
	caterer *hmocks.MockCatererSvc
	booking *hmocks.MockBookingSvc
	ngo     *hmocks.MockNGOSvc
	upload  *hmocks.MockUploadSvc
}

// setupRouter builds the real routing table with the auth middleware
// replaced by one that injects the given user into the context.
func setupRouter(t *testing.T, user *domain.User) (*svcMocks, http.Handler) {
	t.Helper()

	m := &svcMocks{
		user:    hmocks.NewMockUserSvc(t),
		event:   hmocks.NewMockEventSvc(t),
		caterer: hmocks.NewMockCatererSvc(t),
		booking: hmocks.NewMockBookingSvc(t),
		ngo:     hmocks.NewMockNGOSvc(t),
		upload:  hmocks.NewMockUploadSvc(t),
	}

	h := NewHandler(m.user, m.event, m.caterer, m.booking, m.ngo, m.upload)

	inject := func(c *ginext.Context) {
		c.Set("currentUser", user)
		c.Next()
	}

	return m, router.InitRouter("test", h, inject)
}

func testUser(role domain.Role) *domain.User {
	return &domain.User{
		ID:      uuid.New().String(),
		Subject: "auth0|" + uuid.New().String(),
		Email:   "user@example.com",
		Role:    role,
	}
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Session ---

func TestHandler_Protected(t *testing.T) {
	user := testUser(domain.RoleCaterer)
	_, r := setupRouter(t, user)

	w := doJSON(r, http.MethodGet, "/api/protected", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ProtectedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "caterer", resp.Role)
	assert.Equal(t, user.Email, resp.Email)
}

func TestHandler_SelectRole_Success(t *testing.T) {
	user := testUser(domain.RoleUnassigned)
	m, r := setupRouter(t, user)

	m.user.EXPECT().SelectRole(mock.Anything, user.ID, domain.RoleNGO).Return(nil)

	w := doJSON(r, http.MethodPost, "/api/users/select-role?role=ngo", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_SelectRole_InvalidRole(t *testing.T) {
	_, r := setupRouter(t, testUser(domain.RoleUnassigned))

	w := doJSON(r, http.MethodPost, "/api/users/select-role?role=admin", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SelectRole_AlreadyAssigned(t *testing.T) {
	user := testUser(domain.RoleCaterer)
	m, r := setupRouter(t, user)

	m.user.EXPECT().SelectRole(mock.Anything, user.ID, domain.RoleOrganizer).
		Return(domain.ErrRoleAlreadySet)

	w := doJSON(r, http.MethodPost, "/api/users/select-role?role=event_organizer", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Organizer profile ---

func TestHandler_SaveOrganizerProfile_Success(t *testing.T) {
	user := testUser(domain.RoleOrganizer)
	m, r := setupRouter(t, user)

	profile := &domain.OrganizerProfile{
		UserID:   user.ID,
		FullName: "Priya Sharma",
		Phone:    "+91 98765 43210",
		City:     "Hyderabad",
	}
	m.user.EXPECT().SaveOrganizerProfile(mock.Anything, user.ID, mock.Anything).
		Return(profile, nil)

	w := doJSON(r, http.MethodPost, "/api/organizers/profile", dto.OrganizerProfileRequest{
		FullName: "Priya Sharma",
		Phone:    "+91 98765 43210",
		City:     "Hyderabad",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.OrganizerProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Priya Sharma", resp.FullName)
}

func TestHandler_OrganizerRoutes_WrongRole(t *testing.T) {
	_, r := setupRouter(t, testUser(domain.RoleCaterer))

	w := doJSON(r, http.MethodGet, "/api/organizers/profile", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Events ---

func TestHandler_PredictFood_Success(t *testing.T) {
	m, r := setupRouter(t, testUser(domain.RoleOrganizer))

	m.event.EXPECT().Predict(mock.Anything).
		Return(&domain.Prediction{EstimatedFoodKg: 66.83, Unit: "kg"}, nil)

	w := doJSON(r, http.MethodPost, "/api/events/predict-food", dto.PredictFoodRequest{
		EventType:     "corporate",
		Attendees:     150,
		DurationHours: 4,
		MealStyle:     "buffet",
		LocationType:  "indoor",
		Season:        "summer",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.PredictionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 66.83, resp.EstimatedFoodQuantity)
	assert.Equal(t, "kg", resp.Unit)
}

func TestHandler_PredictFood_BadRequest(t *testing.T) {
	_, r := setupRouter(t, testUser(domain.RoleOrganizer))

	w := doJSON(r, http.MethodPost, "/api/events/predict-food", ginext.H{"attendees": 10})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_Success(t *testing.T) {
	user := testUser(domain.RoleOrganizer)
	m, r := setupRouter(t, user)

	event := &domain.Event{
		ID:              uuid.New().String(),
		OrganizerID:     user.ID,
		Name:            "Annual Tech Summit",
		Type:            "conference",
		Attendees:       300,
		DurationHours:   6,
		MealStyle:       "buffet",
		LocationType:    "indoor",
		Season:          "winter",
		EstimatedFoodKg: 155.93,
		Unit:            "kg",
		Status:          domain.EventStatusCreated,
		CreatedAt:       time.Now(),
	}
	m.event.EXPECT().Create(mock.Anything, user.ID, mock.Anything).Return(event, nil)

	w := doJSON(r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		EventName:     "Annual Tech Summit",
		EventType:     "conference",
		Attendees:     300,
		DurationHours: 6,
		MealStyle:     "buffet",
		LocationType:  "indoor",
		Season:        "winter",
		Address:       "HICC, Madhapur",
		City:          "Hyderabad",
		Pincode:       "500081",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, event.ID, resp.ID)
	assert.Equal(t, "CREATED", resp.Status)
}

func TestHandler_MyEvents(t *testing.T) {
	user := testUser(domain.RoleOrganizer)
	m, r := setupRouter(t, user)

	m.event.EXPECT().MyEvents(mock.Anything, user.ID).Return([]*domain.Event{
		{ID: "e1", Name: "Wedding", Status: domain.EventStatusBooked},
		{ID: "e2", Name: "Birthday", Status: domain.EventStatusCreated},
	}, nil)

	w := doJSON(r, http.MethodGet, "/api/events/my-events", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "BOOKED", resp[0].Status)
}

func TestHandler_CompleteEvent_Success(t *testing.T) {
	user := testUser(domain.RoleOrganizer)
	m, r := setupRouter(t, user)

	prepared, consumed := 80.0, 60.0
	event := &domain.Event{
		ID:             "e1",
		OrganizerID:    user.ID,
		Status:         domain.EventStatusSurplusAvailable,
		FoodPreparedKg: &prepared,
		FoodConsumedKg: &consumed,
		SurplusPickup:  &domain.Location{Address: "Gate 2, HICC"},
	}
	m.event.EXPECT().Complete(mock.Anything, user.ID, "e1", mock.Anything).Return(event, nil)

	w := doJSON(r, http.MethodPatch, "/api/events/e1/complete", dto.CompleteEventRequest{
		FoodPrepared:    80,
		FoodConsumed:    60,
		SurplusLocation: &dto.LocationRequest{Address: "Gate 2, HICC"},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SURPLUS_AVAILABLE", resp.Status)
	require.NotNil(t, resp.SurplusLocation)
	assert.Equal(t, "Gate 2, HICC", resp.SurplusLocation.Address)
}

func TestHandler_CompleteEvent_AlreadyCompleted(t *testing.T) {
	user := testUser(domain.RoleOrganizer)
	m, r := setupRouter(t, user)

	m.event.EXPECT().Complete(mock.Anything, user.ID, "e1", mock.Anything).
		Return(nil, domain.ErrEventNotOpen)

	w := doJSON(r, http.MethodPatch, "/api/events/e1/complete", dto.CompleteEventRequest{
		FoodPrepared: 50,
		FoodConsumed: 50,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Caterers ---

func TestHandler_CreateCatererProfile_Success(t *testing.T) {
	user := testUser(domain.RoleCaterer)
	m, r := setupRouter(t, user)

	profile := &domain.CatererProfile{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		BusinessName: "Spice Route Catering",
		City:         "Hyderabad",
	}
	m.caterer.EXPECT().CreateProfile(mock.Anything, user.ID, mock.Anything).
		Return(profile, nil)

	w := doJSON(r, http.MethodPost, "/api/caterers/profile", dto.CatererProfileRequest{
		BusinessName:  "Spice Route Catering",
		City:          "Hyderabad",
		PricePerPlate: 250,
		MaxCapacity:   500,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CatererResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, profile.ID, resp.ID)
}

func TestHandler_UpdateCatererProfile_NotFound(t *testing.T) {
	user := testUser(domain.RoleCaterer)
	m, r := setupRouter(t, user)

	m.caterer.EXPECT().UpdateProfile(mock.Anything, user.ID, mock.Anything).
		Return(nil, domain.ErrProfileNotFound)

	w := doJSON(r, http.MethodPut, "/api/caterers/profile", dto.CatererProfileRequest{
		BusinessName:  "Spice Route Catering",
		City:          "Hyderabad",
		PricePerPlate: 250,
		MaxCapacity:   500,
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_MatchCaterers_PassesFilter(t *testing.T) {
	user := testUser(domain.RoleOrganizer)
	m, r := setupRouter(t, user)

	var got domain.MatchFilter
	m.caterer.EXPECT().Match(mock.Anything, user.ID, "e1", mock.Anything).
		RunAndReturn(func(_ context.Context, _, _ string, filter domain.MatchFilter) ([]domain.MatchResult, error) {
			got = filter
			return []domain.MatchResult{
				{Caterer: domain.CatererProfile{ID: "c1", BusinessName: "Spice Route"}, DistanceKm: 3.2},
			}, nil
		})

	w := doJSON(r, http.MethodGet,
		"/api/caterers/match/e1?min_price=100&max_price=400&veg_only=true&sort_by=price", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got.MinPrice)
	assert.Equal(t, 100.0, *got.MinPrice)
	require.NotNil(t, got.MaxPrice)
	assert.Equal(t, 400.0, *got.MaxPrice)
	assert.True(t, got.VegOnly)
	assert.Equal(t, domain.MatchSortPrice, got.SortBy)

	var resp []dto.CatererResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	require.NotNil(t, resp[0].DistanceKm)
	assert.Equal(t, 3.2, *resp[0].DistanceKm)
}

func TestHandler_MatchCaterers_DefaultSortIsDistance(t *testing.T) {
	user := testUser(domain.RoleOrganizer)
	m, r := setupRouter(t, user)

	var got domain.MatchFilter
	m.caterer.EXPECT().Match(mock.Anything, user.ID, "e1", mock.Anything).
		RunAndReturn(func(_ context.Context, _, _ string, filter domain.MatchFilter) ([]domain.MatchResult, error) {
			got = filter
			return nil, nil
		})

	w := doJSON(r, http.MethodGet, "/api/caterers/match/e1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.MatchSortDistance, got.SortBy)
}

func TestHandler_MatchCaterers_InvalidPrice(t *testing.T) {
	_, r := setupRouter(t, testUser(domain.RoleOrganizer))

	w := doJSON(r, http.MethodGet, "/api/caterers/match/e1?min_price=cheap", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Bookings ---

func TestHandler_RequestBooking_Success(t *testing.T) {
	user := testUser(domain.RoleOrganizer)
	m, r := setupRouter(t, user)

	booking := &domain.Booking{
		ID:        uuid.New().String(),
		EventID:   "e1",
		CatererID: "c1",
		Status:    domain.BookingStatusPending,
		CreatedAt: time.Now(),
	}
	m.booking.EXPECT().Request(mock.Anything, user.ID, "e1", "c1").Return(booking, nil)

	w := doJSON(r, http.MethodPost, "/api/caterers/book/e1/c1", nil)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PENDING", resp.Status)
}

func TestHandler_RequestBooking_Duplicate(t *testing.T) {
	user := testUser(domain.RoleOrganizer)
	m, r := setupRouter(t, user)

	m.booking.EXPECT().Request(mock.Anything, user.ID, "e1", "c1").
		Return(nil, domain.ErrAlreadyRequested)

	w := doJSON(r, http.MethodPost, "/api/caterers/book/e1/c1", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_RespondBooking_Success(t *testing.T) {
	user := testUser(domain.RoleCaterer)
	m, r := setupRouter(t, user)

	m.booking.EXPECT().Respond(mock.Anything, user.ID, "b1", domain.BookingStatusAccepted).
		Return(nil)

	w := doJSON(r, http.MethodPatch, "/api/bookings/respond/b1?status=ACCEPTED", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_RespondBooking_InvalidStatus(t *testing.T) {
	_, r := setupRouter(t, testUser(domain.RoleCaterer))

	w := doJSON(r, http.MethodPatch, "/api/bookings/respond/b1?status=MAYBE", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CatererRequests(t *testing.T) {
	user := testUser(domain.RoleCaterer)
	m, r := setupRouter(t, user)

	m.booking.EXPECT().CatererRequests(mock.Anything, user.ID).Return([]*domain.BookingRequest{
		{
			Booking: domain.Booking{ID: "b1", Status: domain.BookingStatusPending},
			Event:   domain.Event{ID: "e1", Name: "Wedding", Attendees: 200},
		},
	}, nil)

	w := doJSON(r, http.MethodGet, "/api/bookings/caterer-requests", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingRequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Wedding", resp[0].Event.EventName)
}

func TestHandler_EventBookingStatus_NotFound(t *testing.T) {
	user := testUser(domain.RoleOrganizer)
	m, r := setupRouter(t, user)

	m.booking.EXPECT().EventStatus(mock.Anything, user.ID, "e1").
		Return(nil, domain.ErrBookingNotFound)

	w := doJSON(r, http.MethodGet, "/api/bookings/event/e1", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- NGOs ---

func TestHandler_RegisterNGO_Success(t *testing.T) {
	user := testUser(domain.RoleNGO)
	m, r := setupRouter(t, user)

	ngo := &domain.NGO{
		ID:                 uuid.New().String(),
		UserID:             user.ID,
		Name:               "Feeding Hands",
		RegistrationNumber: "NGO/2020/0042",
		Status:             domain.NGOStatusPending,
		CreatedAt:          time.Now(),
	}
	m.ngo.EXPECT().Register(mock.Anything, user.ID, "Feeding Hands", "NGO/2020/0042").
		Return(ngo, nil)

	w := doJSON(r, http.MethodPost, "/api/ngos/register", dto.RegisterNGORequest{
		Name:               "Feeding Hands",
		RegistrationNumber: "NGO/2020/0042",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.NgoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PENDING", resp.Status)
}

func TestHandler_NgoMe_Unregistered(t *testing.T) {
	user := testUser(domain.RoleNGO)
	m, r := setupRouter(t, user)

	m.ngo.EXPECT().Me(mock.Anything, user.ID).Return(&domain.NGORecord{Exists: false}, nil)

	w := doJSON(r, http.MethodGet, "/api/ngos/me", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.NgoMeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Exists)
}

func TestHandler_SubmitDocument_UnknownType(t *testing.T) {
	user := testUser(domain.RoleNGO)
	m, r := setupRouter(t, user)

	m.ngo.EXPECT().SubmitDocument(mock.Anything, user.ID, "AADHAAR", "https://cdn/doc.pdf").
		Return(nil, domain.ErrValidation)

	w := doJSON(r, http.MethodPost, "/api/ngos/documents", dto.SubmitDocumentRequest{
		DocumentType: "AADHAAR",
		FileURL:      "https://cdn/doc.pdf",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DocumentsStatus(t *testing.T) {
	user := testUser(domain.RoleNGO)
	m, r := setupRouter(t, user)

	m.ngo.EXPECT().Documents(mock.Anything, user.ID).Return([]*domain.NGODocument{
		{ID: "d1", Type: "REG_CERT", Status: domain.DocumentStatusApproved},
		{ID: "d2", Type: "PAN", Status: domain.DocumentStatusPending},
		{ID: "d3", Type: "80G", Status: domain.DocumentStatusRejected},
	}, nil)

	w := doJSON(r, http.MethodGet, "/api/ngos/documents/status", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Total     int                    `json:"total"`
		Approved  int                    `json:"approved"`
		Pending   int                    `json:"pending"`
		Rejected  int                    `json:"rejected"`
		Documents []dto.DocumentResponse `json:"documents"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 1, resp.Approved)
	assert.Equal(t, 1, resp.Pending)
	assert.Equal(t, 1, resp.Rejected)
	assert.Len(t, resp.Documents, 3)
}

// --- Admin ---

func TestHandler_AdminListNGOs(t *testing.T) {
	m, r := setupRouter(t, testUser(domain.RoleAdmin))

	m.ngo.EXPECT().ListAll(mock.Anything).Return([]*domain.AdminNGO{
		{
			NGO: domain.NGO{ID: "n1", Name: "Feeding Hands", Status: domain.NGOStatusPending},
			Documents: []domain.NGODocument{
				{ID: "d1", Type: "REG_CERT", Status: domain.DocumentStatusPending},
			},
		},
	}, nil)

	w := doJSON(r, http.MethodGet, "/api/admin/ngos", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.AdminNgoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Feeding Hands", resp[0].Name)
	require.Len(t, resp[0].Documents, 1)
}

func TestHandler_VerifyNGO(t *testing.T) {
	m, r := setupRouter(t, testUser(domain.RoleAdmin))

	m.ngo.EXPECT().SetStatus(mock.Anything, "n1", domain.NGOStatusVerified).Return(nil)

	w := doJSON(r, http.MethodPatch, "/api/admin/ngos/n1/verify", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ApproveDocument_NotFound(t *testing.T) {
	m, r := setupRouter(t, testUser(domain.RoleAdmin))

	m.ngo.EXPECT().ReviewDocument(mock.Anything, "d1", domain.DocumentStatusApproved).
		Return(domain.ErrDocumentNotFound)

	w := doJSON(r, http.MethodPatch, "/api/admin/documents/d1/approve", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_AdminRoutes_WrongRole(t *testing.T) {
	_, r := setupRouter(t, testUser(domain.RoleNGO))

	w := doJSON(r, http.MethodGet, "/api/admin/ngos", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Uploads ---

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestHandler_UploadCatererImage_Success(t *testing.T) {
	m, r := setupRouter(t, testUser(domain.RoleCaterer))

	m.upload.EXPECT().UploadImage(mock.Anything, "caterers", mock.Anything).
		Return("http://minio:9000/eventconnect/caterers/abc.jpg", nil)

	body, contentType := multipartBody(t, "file", "kitchen.jpg", []byte("fake image"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/caterers/upload-image", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ImageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.ImageURL, "caterers/")
}

func TestHandler_UploadCatererImage_NoFile(t *testing.T) {
	_, r := setupRouter(t, testUser(domain.RoleCaterer))

	w := doJSON(r, http.MethodPost, "/api/caterers/upload-image", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UploadCatererImage_BadExtension(t *testing.T) {
	_, r := setupRouter(t, testUser(domain.RoleCaterer))

	body, contentType := multipartBody(t, "file", "resume.pdf", []byte("not an image"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/caterers/upload-image", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
