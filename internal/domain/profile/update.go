package profile

import (
	"math"
	"strings"
	"time"

	"github.com/nutricoach/engine/internal/domain/recipe"
)

// Learning constants. Confidence grows logarithmically with accumulated
// feedback and the learning rate decays with it, so early feedback moves
// the model faster than later feedback.
const (
	confidenceLogDivisor = 5.0
	learningRateFloor    = 0.1
	learningRateDecay    = 0.7

	complexityStep      = 0.05
	timingIncrement     = 0.1
	timingRenormCeiling = 2.0
	highSatisfaction    = 7
	lowSatisfaction     = 5
)

// FeedbackSignal converts one feedback event into a scalar preference
// adjustment in [-1,1]. Rating, satisfaction, and repeat intent each
// contribute a centered, scaled term.
func FeedbackSignal(f FeedbackEvent) float64 {
	repeat := -0.2
	if f.RepeatIntent {
		repeat = 0.2
	}
	signal := (float64(f.Rating-3)/2 + (float64(f.Satisfaction)-5.5)/4.5 + repeat) / 3
	return clamp(signal, -1, 1)
}

// ApplyFeedback folds one feedback event into the model and returns the
// successor model value. The input model is never mutated.
func ApplyFeedback(m PreferenceModel, f FeedbackEvent, r recipe.Recipe) (PreferenceModel, error) {
	if err := f.Validate(); err != nil {
		return PreferenceModel{}, err
	}

	out := m.Clone()
	signal := FeedbackSignal(f)

	// Exponential smoothing toward the signal; the (1-|old|) term damps
	// movement as a score approaches either bound.
	for _, ing := range r.Ingredients {
		name := strings.ToLower(ing.Name)
		old := out.IngredientAffinity[name]
		out.IngredientAffinity[name] = clamp(old+signal*out.LearningRate*(1-math.Abs(old)), -1, 1)
	}
	if r.Cuisine != "" {
		key := strings.ToLower(string(r.Cuisine))
		old := out.TasteAffinity[key]
		out.TasteAffinity[key] = clamp(old+signal*out.LearningRate*(1-math.Abs(old)), -1, 1)
	}

	// Perceived difficulty shifts the comfort scalar: an easy, satisfying
	// meal invites more complexity, a hard disappointing one less.
	switch {
	case f.Difficulty == DifficultyEasier && f.Satisfaction > highSatisfaction:
		out.ComplexityComfort = clamp(out.ComplexityComfort+complexityStep, 0, 1)
	case f.Difficulty == DifficultyHarder && f.Satisfaction < lowSatisfaction:
		out.ComplexityComfort = clamp(out.ComplexityComfort-complexityStep, 0, 1)
	}

	if f.Satisfaction > highSatisfaction {
		key := TimingKey(f.MealType, TimeBucketOf(f.ConsumedAt))
		out.TimingWeights[key] += timingIncrement
		renormalizeTimings(out.TimingWeights)
	}

	out.Interactions++
	out.FeedbackCount++
	out.Confidence = math.Min(1, math.Log(float64(out.FeedbackCount)+1)/confidenceLogDivisor)
	out.LearningRate = math.Max(learningRateFloor, 1-out.Confidence*learningRateDecay)

	out.Version = m.Version + 1
	out.UpdatedAt = time.Now()
	return out, nil
}

// renormalizeTimings divides every weight by the current maximum whenever
// that maximum exceeds the ceiling, bounding unbounded growth while
// preserving relative order.
func renormalizeTimings(weights map[string]float64) {
	var max float64
	for _, w := range weights {
		if w > max {
			max = w
		}
	}
	if max <= timingRenormCeiling {
		return
	}
	for k, w := range weights {
		weights[k] = w / max
	}
}
