package profile

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTimeBucketOf(t *testing.T) {
	tests := []struct {
		hour     int
		expected TimeBucket
	}{
		{0, BucketNight},
		{5, BucketNight},
		{6, BucketMorning},
		{10, BucketMorning},
		{11, BucketMidday},
		{14, BucketMidday},
		{15, BucketAfternoon},
		{18, BucketAfternoon},
		{19, BucketEvening},
		{22, BucketEvening},
		{23, BucketNight},
	}

	for _, tt := range tests {
		at := time.Date(2026, 3, 10, tt.hour, 0, 0, 0, time.UTC)
		assert.Equal(t, tt.expected, TimeBucketOf(at), "hour %d", tt.hour)
	}
}

func TestTimingKey(t *testing.T) {
	assert.Equal(t, "dinner|evening", TimingKey("Dinner", BucketEvening))
	assert.Equal(t, "breakfast|morning", TimingKey("breakfast", BucketMorning))
}

func TestNewPreferenceModel(t *testing.T) {
	userID := uuid.New()

	m := NewPreferenceModel(userID)

	assert.Equal(t, userID, m.UserID)
	assert.InDelta(t, 0.5, m.ComplexityComfort, 1e-9)
	assert.InDelta(t, 0.5, m.NoveltyAppetite, 1e-9)
	assert.InDelta(t, 1.0, m.LearningRate, 1e-9)
	assert.Zero(t, m.Confidence)
	assert.Equal(t, int64(1), m.Version)
}

func TestPreferenceModelClone(t *testing.T) {
	m := NewPreferenceModel(uuid.New())
	m.IngredientAffinity["kale"] = 0.5

	clone := m.Clone()
	clone.IngredientAffinity["kale"] = -0.5
	clone.TimingWeights["dinner|evening"] = 1

	assert.InDelta(t, 0.5, m.IngredientAffinity["kale"], 1e-9)
	assert.Empty(t, m.TimingWeights)
}

func TestStrongDislikes(t *testing.T) {
	m := NewPreferenceModel(uuid.New())
	m.IngredientAffinity["cilantro"] = -0.8
	m.IngredientAffinity["olives"] = -0.4
	m.IngredientAffinity["kale"] = 0.6

	dislikes := m.StrongDislikes(-0.3)

	assert.ElementsMatch(t, []string{"cilantro", "olives"}, dislikes)
}
