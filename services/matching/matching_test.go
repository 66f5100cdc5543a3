package matching

import (
	"testing"

	"fitlink/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trainerFixture(id, city string, rating float64, sessions int, verified bool, rate float64) models.Trainer {
	return models.Trainer{
		ID: id,
		Profile: models.TrainerProfile{
			Name:     "Trainer " + id,
			City:     city,
			Rating:   rating,
			Verified: verified,
		},
		HourlyRate:        rate,
		Currency:          "USD",
		CompletedSessions: sessions,
	}
}

func TestRankTrainersOrdersByScore(t *testing.T) {
	trainers := []models.Trainer{
		trainerFixture("low", "Berlin", 3.0, 5, false, 40),
		trainerFixture("high", "Berlin", 4.9, 200, true, 60),
		trainerFixture("mid", "Berlin", 4.2, 50, false, 45),
	}

	ranked := RankTrainers(trainers, models.MatchCriteria{City: "Berlin"})
	require.Len(t, ranked, 3)
	assert.Equal(t, "high", ranked[0].ID)
	assert.Equal(t, "mid", ranked[1].ID)
	assert.Equal(t, "low", ranked[2].ID)
	assert.True(t, ranked[0].Preferred, "verified trainers are flagged preferred")
}

func TestRankTrainersFiltersCityAndRate(t *testing.T) {
	trainers := []models.Trainer{
		trainerFixture("local", "Berlin", 4.0, 10, false, 40),
		trainerFixture("remote", "Hamburg", 5.0, 500, true, 40),
		trainerFixture("pricey", "Berlin", 5.0, 500, true, 95),
	}

	ranked := RankTrainers(trainers, models.MatchCriteria{City: "berlin", MaxHourlyRate: 50})
	require.Len(t, ranked, 1)
	assert.Equal(t, "local", ranked[0].ID, "city match is case-insensitive")
}

func TestRankTrainersDistanceCutoff(t *testing.T) {
	near := trainerFixture("near", "", 4.0, 10, false, 40)
	near.Profile.LocationGeo = models.NewGeoPoint(13.41, 52.52) // central Berlin
	far := trainerFixture("far", "", 4.0, 10, false, 40)
	far.Profile.LocationGeo = models.NewGeoPoint(10.0, 53.55) // Hamburg

	criteria := models.MatchCriteria{
		LocationGeo:   models.NewGeoPoint(13.40, 52.52),
		MaxDistanceKm: 25,
	}
	ranked := RankTrainers([]models.Trainer{near, far}, criteria)
	require.Len(t, ranked, 1)
	assert.Equal(t, "near", ranked[0].ID)
	assert.Greater(t, ranked[0].Proximity, 0.0, "proximity reported in metres")
	assert.Less(t, ranked[0].Proximity, 5000.0)
}

func TestRankTrainersDeterministicTieBreak(t *testing.T) {
	a := trainerFixture("aaa", "Berlin", 4.0, 10, false, 40)
	b := trainerFixture("bbb", "Berlin", 4.0, 10, false, 40)

	first := RankTrainers([]models.Trainer{b, a}, models.MatchCriteria{})
	second := RankTrainers([]models.Trainer{a, b}, models.MatchCriteria{})
	require.Len(t, first, 2)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, "aaa", first[0].ID, "equal scores fall back to ID order")
}

func TestHaversineKnownDistance(t *testing.T) {
	// Berlin to Hamburg is roughly 255 km.
	d := haversine(52.52, 13.405, 53.551, 9.993)
	assert.InDelta(t, 255, d, 10)
}
