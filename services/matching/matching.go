package matching

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	trainerRepo "fitlink/database/repository/trainer"
	"fitlink/models"

	"github.com/go-redis/redis/v8"
)

// MaxResults caps the ranked list returned to the client.
const MaxResults = 20

// MatchingService ranks trainers against an athlete's search criteria.
type MatchingService interface {
	MatchTrainers(ctx context.Context, criteria models.MatchCriteria) ([]models.TrainerDTO, error)
}

// DefaultMatchingService scores repository search hits and caches the
// ranked result in Redis.
type DefaultMatchingService struct {
	Trainers    trainerRepo.TrainerRepository
	CacheClient *redis.Client
}

// Scoring constants.
const (
	baseProximityScore = 100.0
	distancePenaltyKm  = 2.0
	ratingWeight       = 10.0
	sessionWeight      = 5.0
	verifiedBonus      = 15.0
	proximityWeight    = 0.4
	historyWeight      = 0.6
)

// MatchTrainers retrieves a ranked list of trainers matching the criteria.
// Results are cached for 5 minutes keyed on the criteria payload.
func (s *DefaultMatchingService) MatchTrainers(ctx context.Context, criteria models.MatchCriteria) ([]models.TrainerDTO, error) {
	var cacheKey string
	if s.CacheClient != nil {
		criteriaBytes, err := json.Marshal(criteria)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal match criteria: %w", err)
		}
		cacheKey = fmt.Sprintf("match:%x", criteriaBytes)

		cached, err := s.CacheClient.Get(ctx, cacheKey).Result()
		if err == nil && cached != "" {
			var ranked []models.TrainerDTO
			if err := json.Unmarshal([]byte(cached), &ranked); err == nil {
				return ranked, nil
			}
			// On unmarshal failure fall through to re-computation.
		}
	}

	trainers, err := s.Trainers.Search(ctx, trainerRepo.TrainerSearchCriteria{
		Specialty:     criteria.Specialty,
		City:          criteria.City,
		LocationGeo:   criteria.LocationGeo,
		MaxDistanceKm: criteria.MaxDistanceKm,
		MaxHourlyRate: criteria.MaxHourlyRate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve trainers: %w", err)
	}

	ranked := RankTrainers(trainers, criteria)
	if len(ranked) > MaxResults {
		ranked = ranked[:MaxResults]
	}

	if s.CacheClient != nil && len(ranked) > 0 {
		if rankedBytes, err := json.Marshal(ranked); err == nil {
			s.CacheClient.Set(ctx, cacheKey, rankedBytes, 5*time.Minute)
		}
	}

	return ranked, nil
}

// RankTrainers scores and sorts trainers for the given criteria. Scoring is
// deterministic: ties break on trainer ID so repeated searches return the
// same order.
func RankTrainers(trainers []models.Trainer, criteria models.MatchCriteria) []models.TrainerDTO {
	type scoredTrainer struct {
		dto   models.TrainerDTO
		score float64
	}
	hasCentre := len(criteria.LocationGeo.Coordinates) == 2
	var scored []scoredTrainer

	for _, t := range trainers {
		if criteria.City != "" && !strings.EqualFold(t.Profile.City, criteria.City) {
			continue
		}
		if criteria.MaxHourlyRate > 0 && t.HourlyRate > criteria.MaxHourlyRate {
			continue
		}

		dto := models.TrainerDTO{
			ID:         t.ID,
			Profile:    t.Profile,
			HourlyRate: t.HourlyRate,
			Currency:   t.Currency,
			GymID:      t.GymID,
			Preferred:  t.Profile.Verified,
		}

		proximityScore := baseProximityScore
		if hasCentre && len(t.Profile.LocationGeo.Coordinates) == 2 {
			distanceKm := haversine(
				criteria.LocationGeo.Coordinates[1], criteria.LocationGeo.Coordinates[0],
				t.Profile.LocationGeo.Coordinates[1], t.Profile.LocationGeo.Coordinates[0])
			if criteria.MaxDistanceKm > 0 && distanceKm > criteria.MaxDistanceKm {
				continue
			}
			dto.Proximity = distanceKm * 1000
			proximityScore = baseProximityScore - (distanceKm * distancePenaltyKm)
			if proximityScore < 0 {
				proximityScore = 0
			}
		}

		historyScore := (t.Profile.Rating * ratingWeight) +
			(math.Log(float64(t.CompletedSessions)+1) * sessionWeight)
		if t.Profile.Verified {
			historyScore += verifiedBonus
		}

		finalScore := (proximityWeight * proximityScore) + (historyWeight * historyScore)
		scored = append(scored, scoredTrainer{dto: dto, score: finalScore})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].dto.ID < scored[j].dto.ID
	})

	ranked := make([]models.TrainerDTO, 0, len(scored))
	for _, st := range scored {
		ranked = append(ranked, st.dto)
	}
	return ranked
}

// haversine calculates the great-circle distance (in km) between two lat/lon points.
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}
