package profile

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TimeBucket is one of five fixed day segments used to bucket meal timing.
type TimeBucket string

const (
	BucketMorning   TimeBucket = "morning"   // 06-11h
	BucketMidday    TimeBucket = "midday"    // 11-15h
	BucketAfternoon TimeBucket = "afternoon" // 15-19h
	BucketEvening   TimeBucket = "evening"   // 19-23h
	BucketNight     TimeBucket = "night"
)

// TimeBucketOf maps a wall-clock time to its bucket.
func TimeBucketOf(t time.Time) TimeBucket {
	switch h := t.Hour(); {
	case h >= 6 && h < 11:
		return BucketMorning
	case h >= 11 && h < 15:
		return BucketMidday
	case h >= 15 && h < 19:
		return BucketAfternoon
	case h >= 19 && h < 23:
		return BucketEvening
	default:
		return BucketNight
	}
}

// TimingKey composes a (meal slot, time bucket) pair into the map key used
// by the timing frequency weights.
func TimingKey(mealType string, bucket TimeBucket) string {
	return fmt.Sprintf("%s|%s", strings.ToLower(mealType), bucket)
}

// PreferenceModel is the learned per-user preference state. It is only
// ever superseded by a new value, never mutated in place; the Version
// field supports optimistic concurrency at the persistence boundary.
type PreferenceModel struct {
	UserID uuid.UUID `json:"user_id"`

	// IngredientAffinity maps lowercased ingredient name to a learned
	// affinity score in [-1,1].
	IngredientAffinity map[string]float64 `json:"ingredient_affinity"`

	// TasteAffinity maps cuisine, flavor, and cooking-method names to
	// affinity scores in [-1,1].
	TasteAffinity map[string]float64 `json:"taste_affinity"`

	// TimingWeights maps TimingKey(mealType, bucket) to a frequency
	// weight, renormalized whenever the maximum exceeds 2.
	TimingWeights map[string]float64 `json:"timing_weights"`

	ComplexityComfort float64 `json:"complexity_comfort"` // [0,1]
	NoveltyAppetite   float64 `json:"novelty_appetite"`   // [0,1]

	Interactions  int     `json:"interactions"`
	FeedbackCount int     `json:"feedback_count"`
	Confidence    float64 `json:"confidence"`    // [0,1]
	LearningRate  float64 `json:"learning_rate"` // [0.1,1]

	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPreferenceModel creates the initial model for a user. It is created
// on the user's first feedback event; the neutral midpoints mean the first
// few events dominate the learned state.
func NewPreferenceModel(userID uuid.UUID) PreferenceModel {
	return PreferenceModel{
		UserID:             userID,
		IngredientAffinity: make(map[string]float64),
		TasteAffinity:      make(map[string]float64),
		TimingWeights:      make(map[string]float64),
		ComplexityComfort:  0.5,
		NoveltyAppetite:    0.5,
		Confidence:         0,
		LearningRate:       1,
		Version:            1,
		UpdatedAt:          time.Now(),
	}
}

// Clone returns a deep copy so updates never alias the caller's maps.
func (m PreferenceModel) Clone() PreferenceModel {
	out := m
	out.IngredientAffinity = make(map[string]float64, len(m.IngredientAffinity))
	for k, v := range m.IngredientAffinity {
		out.IngredientAffinity[k] = v
	}
	out.TasteAffinity = make(map[string]float64, len(m.TasteAffinity))
	for k, v := range m.TasteAffinity {
		out.TasteAffinity[k] = v
	}
	out.TimingWeights = make(map[string]float64, len(m.TimingWeights))
	for k, v := range m.TimingWeights {
		out.TimingWeights[k] = v
	}
	return out
}

// AffinityFor returns the learned affinity for an ingredient name, zero
// when the ingredient has never been seen.
func (m PreferenceModel) AffinityFor(ingredient string) float64 {
	return m.IngredientAffinity[strings.ToLower(ingredient)]
}

// StrongDislikes returns ingredients with affinity below the threshold.
func (m PreferenceModel) StrongDislikes(threshold float64) []string {
	var out []string
	for name, score := range m.IngredientAffinity {
		if score < threshold {
			out = append(out, name)
		}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
