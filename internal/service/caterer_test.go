package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
	"github.com/JahnaviYelishala1/eventconnect/internal/service/ports/mocks"
)

func newCatererService(t *testing.T) (*CatererService, *mocks.MockCatererRepo, *mocks.MockEventRepo, *mocks.MockMatchCache) {
	t.Helper()
	repo := mocks.NewMockCatererRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	cache := mocks.NewMockMatchCache(t)
	svc := NewCatererService(repo, eventRepo, cache, newTestLogger(t))
	return svc, repo, eventRepo, cache
}

func validCatererInput() domain.CatererProfileInput {
	return domain.CatererProfileInput{
		BusinessName:  "Spice Route Catering",
		City:          "Bengaluru",
		PricePerPlate: 250,
		MinCapacity:   50,
		MaxCapacity:   500,
		VegSupported:  true,
	}
}

func TestCatererService_CreateProfile_Success(t *testing.T) {
	svc, repo, _, _ := newCatererService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	profile, err := svc.CreateProfile(context.Background(), "u1", validCatererInput())

	require.NoError(t, err)
	assert.Equal(t, "u1", profile.UserID)
	assert.NotEmpty(t, profile.ID)
}

func TestCatererService_CreateProfile_Validation(t *testing.T) {
	svc, _, _, _ := newCatererService(t)

	cases := []struct {
		name   string
		mutate func(*domain.CatererProfileInput)
	}{
		{"missing business name", func(in *domain.CatererProfileInput) { in.BusinessName = "" }},
		{"missing city", func(in *domain.CatererProfileInput) { in.City = "" }},
		{"zero price", func(in *domain.CatererProfileInput) { in.PricePerPlate = 0 }},
		{"inverted capacity", func(in *domain.CatererProfileInput) { in.MinCapacity = 500; in.MaxCapacity = 50 }},
		{"no cuisine supported", func(in *domain.CatererProfileInput) { in.VegSupported = false; in.NonVegSupported = false }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validCatererInput()
			tc.mutate(&input)

			_, err := svc.CreateProfile(context.Background(), "u1", input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCatererService_UpdateProfile_NotFound(t *testing.T) {
	svc, repo, _, _ := newCatererService(t)

	repo.EXPECT().GetByUser(mock.Anything, "u1").Return(nil, domain.ErrCatererNotFound)

	_, err := svc.UpdateProfile(context.Background(), "u1", validCatererInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCatererNotFound)
}

func fp(v float64) *float64 { return &v }

func TestCatererService_Match_SortedByDistance(t *testing.T) {
	svc, repo, eventRepo, cache := newCatererService(t)

	event := &domain.Event{
		ID: "e1", OrganizerID: "org1", Attendees: 100,
		Venue: domain.Location{Latitude: fp(12.9716), Longitude: fp(77.5946)},
	}
	near := &domain.CatererProfile{ID: "near", Latitude: fp(12.98), Longitude: fp(77.60), VegSupported: true}
	far := &domain.CatererProfile{ID: "far", Latitude: fp(13.35), Longitude: fp(74.75), VegSupported: true}
	unknown := &domain.CatererProfile{ID: "unknown", VegSupported: true}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	cache.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, false)
	repo.EXPECT().ListCandidates(mock.Anything, 100, mock.Anything).
		Return([]*domain.CatererProfile{far, unknown, near}, nil)
	cache.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything).Return()

	results, err := svc.Match(context.Background(), "org1", "e1", domain.MatchFilter{})

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "near", results[0].Caterer.ID)
	assert.Equal(t, "far", results[1].Caterer.ID)
	assert.Equal(t, "unknown", results[2].Caterer.ID)
	assert.Negative(t, results[2].DistanceKm)
}

func TestCatererService_Match_SortedByPrice(t *testing.T) {
	svc, repo, eventRepo, cache := newCatererService(t)

	event := &domain.Event{ID: "e1", OrganizerID: "org1", Attendees: 100}
	cheap := &domain.CatererProfile{ID: "cheap", PricePerPlate: 150}
	pricey := &domain.CatererProfile{ID: "pricey", PricePerPlate: 400}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	cache.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, false)
	repo.EXPECT().ListCandidates(mock.Anything, 100, mock.Anything).
		Return([]*domain.CatererProfile{pricey, cheap}, nil)
	cache.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything).Return()

	results, err := svc.Match(context.Background(), "org1", "e1",
		domain.MatchFilter{SortBy: domain.MatchSortPrice})

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "cheap", results[0].Caterer.ID)
}

func TestCatererService_Match_CacheHit(t *testing.T) {
	svc, _, eventRepo, cache := newCatererService(t)

	event := &domain.Event{ID: "e1", OrganizerID: "org1", Attendees: 100}
	cached := []domain.MatchResult{{Caterer: domain.CatererProfile{ID: "c1"}, DistanceKm: 2.5}}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	cache.EXPECT().Get(mock.Anything, mock.Anything).Return(cached, true)

	results, err := svc.Match(context.Background(), "org1", "e1", domain.MatchFilter{})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "c1", results[0].Caterer.ID)
}

func TestCatererService_Match_NotOwner(t *testing.T) {
	svc, _, eventRepo, _ := newCatererService(t)

	event := &domain.Event{ID: "e1", OrganizerID: "someone-else", Attendees: 100}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.Match(context.Background(), "org1", "e1", domain.MatchFilter{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCatererService_Match_FilterValidation(t *testing.T) {
	svc, _, _, _ := newCatererService(t)

	cases := []struct {
		name   string
		filter domain.MatchFilter
	}{
		{"inverted price range", domain.MatchFilter{MinPrice: fp(500), MaxPrice: fp(100)}},
		{"exclusive flags", domain.MatchFilter{VegOnly: true, NonVegOnly: true}},
		{"unknown sort", domain.MatchFilter{SortBy: "popularity"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Match(context.Background(), "org1", "e1", tc.filter)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}
