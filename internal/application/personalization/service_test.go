package personalization

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/nutricoach/engine/internal/domain/profile"
	"github.com/nutricoach/engine/internal/domain/recipe"
	"github.com/nutricoach/engine/internal/infrastructure/catalog/memory"
	"github.com/nutricoach/engine/internal/infrastructure/monitoring"
	"github.com/nutricoach/engine/internal/ports/inbound"
	"github.com/nutricoach/engine/pkg/errors"
)

// fakeProfileRepo is an in-memory ProfileRepository with the same
// version-check semantics as the Redis adapter.
type fakeProfileRepo struct {
	models map[uuid.UUID]profile.PreferenceModel
	saves  int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{models: make(map[uuid.UUID]profile.PreferenceModel)}
}

func (f *fakeProfileRepo) FindByUser(ctx context.Context, userID uuid.UUID) (*profile.PreferenceModel, error) {
	m, ok := f.models[userID]
	if !ok {
		return nil, errors.NewProfileNotFoundError(userID.String())
	}
	clone := m.Clone()
	return &clone, nil
}

func (f *fakeProfileRepo) Save(ctx context.Context, model profile.PreferenceModel) error {
	f.models[model.UserID] = model.Clone()
	f.saves++
	return nil
}

func (f *fakeProfileRepo) SaveWithVersion(ctx context.Context, model profile.PreferenceModel, expectedVersion int64) error {
	current, ok := f.models[model.UserID]
	if !ok {
		if expectedVersion != 0 {
			return errors.NewVersionConflictError(model.UserID.String(), expectedVersion)
		}
	} else if current.Version != expectedVersion {
		return errors.NewVersionConflictError(model.UserID.String(), expectedVersion)
	}
	f.models[model.UserID] = model.Clone()
	f.saves++
	return nil
}

type PersonalizationServiceTestSuite struct {
	suite.Suite
	catalog  *memory.Catalog
	profiles *fakeProfileRepo
	registry *prometheus.Registry
	service  inbound.PersonalizationService
	recipeID uuid.UUID
}

func (s *PersonalizationServiceTestSuite) SetupTest() {
	s.catalog = memory.NewCatalog()
	s.profiles = newFakeProfileRepo()

	bowl := recipe.Recipe{
		ID:       uuid.New(),
		Title:    "Kale and Quinoa Bowl",
		MealType: recipe.MealTypeDinner,
		Cuisine:  recipe.CuisineTypeMediterranean,
		Ingredients: []recipe.RecipeIngredient{
			{Name: "kale", Category: recipe.CategoryVegetable, Quantity: 100, Unit: recipe.MeasurementUnitGram},
			{Name: "quinoa", Category: recipe.CategoryGrain, Quantity: 150, Unit: recipe.MeasurementUnitGram},
		},
		Nutrition:  recipe.NutritionInfo{Calories: 520, Protein: 18, Carbs: 62, Fat: 22},
		Difficulty: recipe.DifficultyLevelEasy,
		Servings:   2,
	}
	s.recipeID = bowl.ID
	s.Require().NoError(s.catalog.AddRecipe(bowl))

	for i := 0; i < 5; i++ {
		s.Require().NoError(s.catalog.AddRecipe(recipe.Recipe{
			ID:       uuid.New(),
			Title:    fmt.Sprintf("Dinner Option %d", i),
			MealType: recipe.MealTypeDinner,
			Ingredients: []recipe.RecipeIngredient{
				{Name: "lentils", Category: recipe.CategoryLegume, Quantity: 200, Unit: recipe.MeasurementUnitGram},
			},
			Difficulty: recipe.DifficultyLevelMedium,
			Servings:   2,
		}))
	}

	s.registry = prometheus.NewRegistry()
	metrics := monitoring.NewMetricsCollector(s.registry)
	s.service = NewService(s.catalog, s.profiles, metrics, zap.NewNop(), 3, 14)
}

func (s *PersonalizationServiceTestSuite) feedback(userID uuid.UUID) profile.FeedbackEvent {
	return profile.FeedbackEvent{
		ID:           uuid.New(),
		UserID:       userID,
		RecipeID:     s.recipeID,
		Rating:       5,
		Satisfaction: 9,
		Difficulty:   profile.DifficultyAsExpected,
		RepeatIntent: true,
		ConsumedAt:   time.Date(2026, 3, 10, 19, 0, 0, 0, time.UTC),
		MealType:     "dinner",
	}
}

func (s *PersonalizationServiceTestSuite) TestProcessFeedbackCreatesModelOnFirstEvent() {
	userID := uuid.New()

	updated, err := s.service.ProcessFeedback(context.Background(), s.feedback(userID))

	s.Require().NoError(err)
	s.Equal(userID, updated.UserID)
	s.Equal(1, updated.FeedbackCount)
	s.Greater(updated.AffinityFor("kale"), 0.0)

	stored, err := s.profiles.FindByUser(context.Background(), userID)
	s.Require().NoError(err)
	s.Equal(updated.Version, stored.Version)
}

func (s *PersonalizationServiceTestSuite) TestProcessFeedbackAccumulates() {
	userID := uuid.New()

	first, err := s.service.ProcessFeedback(context.Background(), s.feedback(userID))
	s.Require().NoError(err)
	second, err := s.service.ProcessFeedback(context.Background(), s.feedback(userID))
	s.Require().NoError(err)

	s.Equal(2, second.FeedbackCount)
	s.Equal(first.Version+1, second.Version)
	s.Greater(second.Confidence, first.Confidence)
}

func (s *PersonalizationServiceTestSuite) TestProcessFeedbackUnknownRecipeFailsBeforeUpdate() {
	f := s.feedback(uuid.New())
	f.RecipeID = uuid.New()

	_, err := s.service.ProcessFeedback(context.Background(), f)

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Zero(s.profiles.saves)
}

func (s *PersonalizationServiceTestSuite) TestProcessFeedbackInvalidEvent() {
	f := s.feedback(uuid.New())
	f.Rating = 0

	_, err := s.service.ProcessFeedback(context.Background(), f)

	s.Require().Error(err)
	s.Equal(errors.CodeValidationFailed, errors.GetCode(err))
	s.Zero(s.profiles.saves)
}

func (s *PersonalizationServiceTestSuite) TestProcessFeedbackVersionConflictSurfaces() {
	userID := uuid.New()
	_, err := s.service.ProcessFeedback(context.Background(), s.feedback(userID))
	s.Require().NoError(err)

	// another writer bumps the stored version underneath us
	stored := s.profiles.models[userID]
	stored.Version += 3
	s.profiles.models[userID] = stored
	conflicted := &conflictingRepo{fakeProfileRepo: s.profiles, staleVersion: stored.Version - 3}

	metrics := monitoring.NewMetricsCollector(prometheus.NewRegistry())
	service := NewService(s.catalog, conflicted, metrics, zap.NewNop(), 3, 14)

	_, err = service.ProcessFeedback(context.Background(), s.feedback(userID))

	s.Require().Error(err)
	s.Equal(errors.CodeVersionConflict, errors.GetCode(err))
}

// conflictingRepo serves reads at a stale version so the subsequent
// versioned save collides.
type conflictingRepo struct {
	*fakeProfileRepo
	staleVersion int64
}

func (c *conflictingRepo) FindByUser(ctx context.Context, userID uuid.UUID) (*profile.PreferenceModel, error) {
	m, err := c.fakeProfileRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	m.Version = c.staleVersion
	return m, nil
}

func (s *PersonalizationServiceTestSuite) TestGenerateRecommendationsUnknownUser() {
	_, err := s.service.GenerateRecommendations(context.Background(), uuid.New(), profile.MealContext{MealType: "dinner"})

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *PersonalizationServiceTestSuite) TestGenerateRecommendations() {
	userID := uuid.New()
	_, err := s.service.ProcessFeedback(context.Background(), s.feedback(userID))
	s.Require().NoError(err)

	batch, err := s.service.GenerateRecommendations(context.Background(), userID, profile.MealContext{
		MealType: "dinner",
		At:       time.Date(2026, 3, 11, 19, 0, 0, 0, time.UTC),
	})

	s.Require().NoError(err)
	s.Len(batch.Recipes, 3) // six dinner candidates, batch size three
	s.Len(batch.Reasoning, 3)
	for i := 1; i < len(batch.Recipes); i++ {
		s.GreaterOrEqual(batch.Recipes[i-1].Total, batch.Recipes[i].Total)
	}
	// the liked recipe should lead the batch
	s.Equal("Kale and Quinoa Bowl", batch.Recipes[0].Recipe.Title)
	s.GreaterOrEqual(batch.Confidence, 0.0)
	s.LessOrEqual(batch.Confidence, 1.0)
}

func (s *PersonalizationServiceTestSuite) TestGenerateRecommendationsObservesReturnedBatchSize() {
	userID := uuid.New()
	_, err := s.service.ProcessFeedback(context.Background(), s.feedback(userID))
	s.Require().NoError(err)

	batch, err := s.service.GenerateRecommendations(context.Background(), userID, profile.MealContext{
		MealType: "dinner",
		At:       time.Date(2026, 3, 11, 19, 0, 0, 0, time.UTC),
	})
	s.Require().NoError(err)
	s.Require().Len(batch.Recipes, 3) // six dinner candidates, truncated to batch size

	families, err := s.registry.Gather()
	s.Require().NoError(err)
	for _, family := range families {
		if family.GetName() != "recommendation_batch_size" {
			continue
		}
		hist := family.GetMetric()[0].GetHistogram()
		s.Equal(uint64(1), hist.GetSampleCount())
		// the histogram tracks what was returned, not the candidate pool
		s.InDelta(float64(len(batch.Recipes)), hist.GetSampleSum(), 1e-9)
		return
	}
	s.Fail("recommendation_batch_size was not collected")
}

func (s *PersonalizationServiceTestSuite) TestAnalyzeAdaptationOpportunities() {
	userID := uuid.New()
	model := profile.NewPreferenceModel(userID)
	model.NoveltyAppetite = 0.9
	s.Require().NoError(s.profiles.Save(context.Background(), model))

	recs, err := s.service.AnalyzeAdaptationOpportunities(context.Background(), userID)

	s.Require().NoError(err)
	s.NotEmpty(recs)
}

func (s *PersonalizationServiceTestSuite) TestAnalyzeAdaptationOpportunitiesUnknownUser() {
	_, err := s.service.AnalyzeAdaptationOpportunities(context.Background(), uuid.New())

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func TestPersonalizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PersonalizationServiceTestSuite))
}
