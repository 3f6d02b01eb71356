package profile

import "sort"

// AdaptationType names a category of behavioral adjustment.
type AdaptationType string

const (
	AdaptationIngredientExploration AdaptationType = "ingredient_exploration"
	AdaptationDifficultyIncrease    AdaptationType = "difficulty_increase"
	AdaptationCuisineExploration    AdaptationType = "cuisine_exploration"
	AdaptationTimingOptimization    AdaptationType = "timing_optimization"
)

// ImplementationDifficulty tiers how hard a suggestion is to act on.
type ImplementationDifficulty string

const (
	ImplementationEasy     ImplementationDifficulty = "easy"
	ImplementationModerate ImplementationDifficulty = "moderate"
	ImplementationHard     ImplementationDifficulty = "hard"
)

// AdaptationRecommendation is one suggested behavioral adjustment derived
// from systematic gaps in a preference model.
type AdaptationRecommendation struct {
	Type           AdaptationType
	Rationale      string
	Confidence     float64 // [0,1]
	ExpectedImpact float64 // [0,1]
	Difficulty     ImplementationDifficulty
}

// Advisor heuristic thresholds.
const (
	strongDislikeScore    = -0.3
	strongDislikeCount    = 5
	lowComplexityComfort  = 0.3
	minInteractionHistory = 10
	highNoveltyAppetite   = 0.7
	weakTimingWeight      = 0.3
)

// AnalyzeAdaptations inspects a model for systematic gaps and proposes
// higher-level adjustments, sorted by expected impact descending. It
// performs no mutation; an uninitialized model yields ErrNilModel.
func AnalyzeAdaptations(m PreferenceModel) ([]AdaptationRecommendation, error) {
	if m.IngredientAffinity == nil || m.TimingWeights == nil {
		return nil, ErrNilModel
	}

	var out []AdaptationRecommendation

	if dislikes := m.StrongDislikes(strongDislikeScore); len(dislikes) > strongDislikeCount {
		out = append(out, AdaptationRecommendation{
			Type:           AdaptationIngredientExploration,
			Rationale:      "Many ingredients are strongly disliked; gradually reintroducing them in new preparations can widen the usable recipe pool.",
			Confidence:     m.Confidence,
			ExpectedImpact: 0.8,
			Difficulty:     ImplementationModerate,
		})
	}

	if m.ComplexityComfort < lowComplexityComfort && m.Interactions > minInteractionHistory {
		out = append(out, AdaptationRecommendation{
			Type:           AdaptationDifficultyIncrease,
			Rationale:      "Comfort with complexity is low despite a solid cooking history; slightly harder recipes are likely within reach.",
			Confidence:     m.Confidence,
			ExpectedImpact: 0.6,
			Difficulty:     ImplementationEasy,
		})
	}

	if m.NoveltyAppetite > highNoveltyAppetite {
		out = append(out, AdaptationRecommendation{
			Type:           AdaptationCuisineExploration,
			Rationale:      "High appetite for novelty; unexplored cuisines should keep engagement up.",
			Confidence:     m.Confidence,
			ExpectedImpact: 0.7,
			Difficulty:     ImplementationEasy,
		})
	}

	for key, weight := range m.TimingWeights {
		if weight < weakTimingWeight {
			out = append(out, AdaptationRecommendation{
				Type:           AdaptationTimingOptimization,
				Rationale:      "Meal slot " + key + " shows weak engagement; shifting it or simplifying its meals may help.",
				Confidence:     m.Confidence,
				ExpectedImpact: 0.4,
				Difficulty:     ImplementationModerate,
			})
			break
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ExpectedImpact > out[j].ExpectedImpact
	})
	return out, nil
}
