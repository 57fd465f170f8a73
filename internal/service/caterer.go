package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
	"github.com/JahnaviYelishala1/eventconnect/internal/service/ports"
)

type CatererService struct {
	repo      ports.CatererRepo
	eventRepo ports.EventRepo
	cache     ports.MatchCache
	logger    logger.Logger
}

func NewCatererService(
	repo ports.CatererRepo,
	eventRepo ports.EventRepo,
	cache ports.MatchCache,
	logger logger.Logger,
) *CatererService {
	return &CatererService{
		repo:      repo,
		eventRepo: eventRepo,
		cache:     cache,
		logger:    logger,
	}
}

func (s *CatererService) Profile(ctx context.Context, userID string) (*domain.CatererProfile, error) {
	return s.repo.GetByUser(ctx, userID)
}

func (s *CatererService) CreateProfile(ctx context.Context, userID string, input domain.CatererProfileInput) (*domain.CatererProfile, error) {
	if err := validateCatererInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	profile := &domain.CatererProfile{
		ID:              uuid.New().String(),
		UserID:          userID,
		BusinessName:    input.BusinessName,
		City:            input.City,
		PricePerPlate:   input.PricePerPlate,
		MinCapacity:     input.MinCapacity,
		MaxCapacity:     input.MaxCapacity,
		VegSupported:    input.VegSupported,
		NonVegSupported: input.NonVegSupported,
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		Phone:           input.Phone,
		ImageURL:        input.ImageURL,
		Services:        input.Services,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("create caterer profile: %w", err)
	}

	return profile, nil
}

func (s *CatererService) UpdateProfile(ctx context.Context, userID string, input domain.CatererProfileInput) (*domain.CatererProfile, error) {
	if err := validateCatererInput(input); err != nil {
		return nil, err
	}

	profile, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get caterer profile: %w", err)
	}

	profile.BusinessName = input.BusinessName
	profile.City = input.City
	profile.PricePerPlate = input.PricePerPlate
	profile.MinCapacity = input.MinCapacity
	profile.MaxCapacity = input.MaxCapacity
	profile.VegSupported = input.VegSupported
	profile.NonVegSupported = input.NonVegSupported
	profile.Latitude = input.Latitude
	profile.Longitude = input.Longitude
	profile.Phone = input.Phone
	profile.ImageURL = input.ImageURL
	profile.Services = input.Services
	profile.UpdatedAt = time.Now().UTC()

	if err = s.repo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("update caterer profile: %w", err)
	}

	return profile, nil
}

// Match ranks caterers for the organizer's event. Results are cached
// per event and filter for a short TTL; a stale entry is at worst a
// slightly outdated ranking.
func (s *CatererService) Match(ctx context.Context, organizerID, eventID string, filter domain.MatchFilter) ([]domain.MatchResult, error) {
	if err := validateMatchFilter(filter); err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.OrganizerID != organizerID {
		return nil, domain.ErrForbidden
	}

	key := matchCacheKey(eventID, filter)
	if cached, ok := s.cache.Get(ctx, key); ok {
		return cached, nil
	}

	candidates, err := s.repo.ListCandidates(ctx, event.Attendees, filter)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	results := make([]domain.MatchResult, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, domain.MatchResult{
			Caterer:    *c,
			DistanceKm: distanceKm(event.Venue, c),
		})
	}
	sortMatches(results, filter.SortBy)

	s.cache.Set(ctx, key, results)

	s.logger.Debug("caterer match computed",
		logger.String("event_id", eventID),
		logger.Int("candidates", len(results)),
	)

	return results, nil
}

func validateCatererInput(input domain.CatererProfileInput) error {
	if input.BusinessName == "" {
		return fmt.Errorf("%w: business_name is required", domain.ErrValidation)
	}
	if input.City == "" {
		return fmt.Errorf("%w: city is required", domain.ErrValidation)
	}
	if input.PricePerPlate <= 0 {
		return fmt.Errorf("%w: price_per_plate must be positive", domain.ErrValidation)
	}
	if input.MinCapacity <= 0 || input.MaxCapacity < input.MinCapacity {
		return fmt.Errorf("%w: capacity range is invalid", domain.ErrValidation)
	}
	if !input.VegSupported && !input.NonVegSupported {
		return fmt.Errorf("%w: at least one of veg_supported or nonveg_supported must be set", domain.ErrValidation)
	}
	return nil
}

func validateMatchFilter(f domain.MatchFilter) error {
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return fmt.Errorf("%w: min_price exceeds max_price", domain.ErrValidation)
	}
	if f.VegOnly && f.NonVegOnly {
		return fmt.Errorf("%w: veg_only and nonveg_only are mutually exclusive", domain.ErrValidation)
	}
	switch f.SortBy {
	case "", domain.MatchSortPrice, domain.MatchSortRating, domain.MatchSortDistance:
		return nil
	}
	return fmt.Errorf("%w: unknown sort_by %q", domain.ErrValidation, f.SortBy)
}

func matchCacheKey(eventID string, f domain.MatchFilter) string {
	return fmt.Sprintf("match:%s:%v:%v:%v:%t:%t:%s",
		eventID, fptr(f.MinPrice), fptr(f.MaxPrice), fptr(f.MinRating),
		f.VegOnly, f.NonVegOnly, f.SortBy,
	)
}

func fptr(p *float64) float64 {
	if p == nil {
		return -1
	}
	return *p
}

func sortMatches(results []domain.MatchResult, sortBy string) {
	switch sortBy {
	case domain.MatchSortPrice:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Caterer.PricePerPlate < results[j].Caterer.PricePerPlate
		})
	case domain.MatchSortRating:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Caterer.Rating > results[j].Caterer.Rating
		})
	default:
		sort.SliceStable(results, func(i, j int) bool {
			return sortableDistance(results[i].DistanceKm) < sortableDistance(results[j].DistanceKm)
		})
	}
}

func sortableDistance(d float64) float64 {
	if d < 0 {
		return math.MaxFloat64
	}
	return d
}

const earthRadiusKm = 6371.0

// distanceKm is the haversine distance between the venue and the
// caterer, or -1 when either side has no coordinates. Unknown
// distances rank last.
func distanceKm(venue domain.Location, c *domain.CatererProfile) float64 {
	if venue.Latitude == nil || venue.Longitude == nil || c.Latitude == nil || c.Longitude == nil {
		return -1
	}

	lat1 := *venue.Latitude * math.Pi / 180
	lat2 := *c.Latitude * math.Pi / 180
	dLat := lat2 - lat1
	dLon := (*c.Longitude - *venue.Longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
