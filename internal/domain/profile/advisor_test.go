package profile

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adaptationTypes(recs []AdaptationRecommendation) []AdaptationType {
	out := make([]AdaptationType, len(recs))
	for i, r := range recs {
		out[i] = r.Type
	}
	return out
}

func TestAnalyzeAdaptations(t *testing.T) {
	t.Run("uninitialized model is rejected", func(t *testing.T) {
		_, err := AnalyzeAdaptations(PreferenceModel{})

		assert.ErrorIs(t, err, ErrNilModel)
	})

	t.Run("balanced model yields no recommendations", func(t *testing.T) {
		m := NewPreferenceModel(uuid.New())

		recs, err := AnalyzeAdaptations(m)

		require.NoError(t, err)
		assert.Empty(t, recs)
	})

	t.Run("many strong dislikes suggest ingredient exploration", func(t *testing.T) {
		m := NewPreferenceModel(uuid.New())
		for i := 0; i < 6; i++ {
			m.IngredientAffinity[fmt.Sprintf("ingredient-%d", i)] = -0.6
		}

		recs, err := AnalyzeAdaptations(m)

		require.NoError(t, err)
		assert.Contains(t, adaptationTypes(recs), AdaptationIngredientExploration)
	})

	t.Run("exactly five strong dislikes is not enough", func(t *testing.T) {
		m := NewPreferenceModel(uuid.New())
		for i := 0; i < 5; i++ {
			m.IngredientAffinity[fmt.Sprintf("ingredient-%d", i)] = -0.6
		}

		recs, err := AnalyzeAdaptations(m)

		require.NoError(t, err)
		assert.NotContains(t, adaptationTypes(recs), AdaptationIngredientExploration)
	})

	t.Run("low comfort with history suggests harder recipes", func(t *testing.T) {
		m := NewPreferenceModel(uuid.New())
		m.ComplexityComfort = 0.2
		m.Interactions = 11

		recs, err := AnalyzeAdaptations(m)

		require.NoError(t, err)
		assert.Contains(t, adaptationTypes(recs), AdaptationDifficultyIncrease)
	})

	t.Run("low comfort without history stays quiet", func(t *testing.T) {
		m := NewPreferenceModel(uuid.New())
		m.ComplexityComfort = 0.2
		m.Interactions = 5

		recs, err := AnalyzeAdaptations(m)

		require.NoError(t, err)
		assert.Empty(t, recs)
	})

	t.Run("high novelty appetite suggests cuisine exploration", func(t *testing.T) {
		m := NewPreferenceModel(uuid.New())
		m.NoveltyAppetite = 0.9

		recs, err := AnalyzeAdaptations(m)

		require.NoError(t, err)
		assert.Contains(t, adaptationTypes(recs), AdaptationCuisineExploration)
	})

	t.Run("weak timing slot suggests timing optimization", func(t *testing.T) {
		m := NewPreferenceModel(uuid.New())
		m.TimingWeights["lunch|midday"] = 0.1

		recs, err := AnalyzeAdaptations(m)

		require.NoError(t, err)
		assert.Contains(t, adaptationTypes(recs), AdaptationTimingOptimization)
	})

	t.Run("recommendations sort by expected impact descending", func(t *testing.T) {
		m := NewPreferenceModel(uuid.New())
		for i := 0; i < 6; i++ {
			m.IngredientAffinity[fmt.Sprintf("ingredient-%d", i)] = -0.6
		}
		m.ComplexityComfort = 0.2
		m.Interactions = 11
		m.NoveltyAppetite = 0.9
		m.TimingWeights["lunch|midday"] = 0.1

		recs, err := AnalyzeAdaptations(m)

		require.NoError(t, err)
		require.Len(t, recs, 4)
		for i := 1; i < len(recs); i++ {
			assert.GreaterOrEqual(t, recs[i-1].ExpectedImpact, recs[i].ExpectedImpact)
		}
		assert.Equal(t, AdaptationIngredientExploration, recs[0].Type)
	})
}
