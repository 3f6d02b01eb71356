// Package personalization provides the application layer for preference
// learning: folding feedback into a user's model, ranking recipe
// candidates, and deriving adaptation advice.
package personalization

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nutricoach/engine/internal/domain/profile"
	"github.com/nutricoach/engine/internal/infrastructure/monitoring"
	"github.com/nutricoach/engine/internal/ports/inbound"
	"github.com/nutricoach/engine/internal/ports/outbound"
	"github.com/nutricoach/engine/pkg/errors"
)

// Service implements the personalization use cases.
type Service struct {
	recipes      outbound.RecipeCatalog
	profiles     outbound.ProfileRepository
	metrics      *monitoring.MetricsCollector
	logger       *zap.Logger
	batchSize    int
	recentWindow int
}

// NewService creates a new personalization service. batchSize bounds the
// top-N slice returned by GenerateRecommendations; recentWindow caps how
// many recent recipes feed the novelty component, most recent first.
func NewService(
	recipes outbound.RecipeCatalog,
	profiles outbound.ProfileRepository,
	metrics *monitoring.MetricsCollector,
	logger *zap.Logger,
	batchSize int,
	recentWindow int,
) inbound.PersonalizationService {
	if batchSize <= 0 {
		batchSize = 10
	}
	if recentWindow <= 0 {
		recentWindow = 14
	}
	return &Service{
		recipes:      recipes,
		profiles:     profiles,
		metrics:      metrics,
		logger:       logger.Named("personalization-service"),
		batchSize:    batchSize,
		recentWindow: recentWindow,
	}
}

// ProcessFeedback folds one feedback event into the user's stored model.
// The referenced recipe is resolved first; a missing recipe fails the whole
// operation before any update is attempted. The successor model is
// persisted with an optimistic version check so concurrent feedback for
// the same user cannot silently lose an update.
func (s *Service) ProcessFeedback(ctx context.Context, feedback profile.FeedbackEvent) (profile.PreferenceModel, error) {
	s.logger.Info("Processing feedback",
		zap.String("user_id", feedback.UserID.String()),
		zap.String("recipe_id", feedback.RecipeID.String()),
		zap.Int("rating", feedback.Rating),
	)

	if err := feedback.Validate(); err != nil {
		s.metrics.RecordFeedbackFailed(string(errors.CodeValidationFailed))
		return profile.PreferenceModel{}, errors.NewValidationError(err.Error())
	}

	recipeValue, err := s.recipes.GetRecipeByID(ctx, feedback.RecipeID)
	if err != nil {
		s.metrics.RecordFeedbackFailed(string(errors.CodeProcessingFailure))
		return profile.PreferenceModel{}, errors.NewProcessingError("recipe lookup", err)
	}
	if recipeValue == nil {
		s.metrics.RecordFeedbackFailed(string(errors.CodeRecipeNotFound))
		return profile.PreferenceModel{}, errors.NewRecipeNotFoundError(feedback.RecipeID.String())
	}

	current, err := s.profiles.FindByUser(ctx, feedback.UserID)
	if err != nil && !errors.IsNotFound(err) {
		s.metrics.RecordFeedbackFailed(string(errors.CodeProcessingFailure))
		return profile.PreferenceModel{}, errors.NewProcessingError("profile load", err)
	}

	var model profile.PreferenceModel
	var expectedVersion int64
	if current == nil {
		model = profile.NewPreferenceModel(feedback.UserID)
		expectedVersion = 0
	} else {
		model = *current
		expectedVersion = current.Version
	}

	updated, err := profile.ApplyFeedback(model, feedback, *recipeValue)
	if err != nil {
		s.metrics.RecordFeedbackFailed(string(errors.CodeValidationFailed))
		return profile.PreferenceModel{}, errors.NewValidationError(err.Error())
	}

	if err := s.profiles.SaveWithVersion(ctx, updated, expectedVersion); err != nil {
		s.metrics.RecordFeedbackFailed(string(errors.GetCode(err)))
		return profile.PreferenceModel{}, errors.Wrap(err, "failed to persist preference model")
	}

	s.metrics.RecordFeedbackProcessed()
	s.logger.Info("Feedback processed",
		zap.String("user_id", feedback.UserID.String()),
		zap.Int("feedback_count", updated.FeedbackCount),
		zap.Float64("confidence", updated.Confidence),
	)

	return updated, nil
}

// GenerateRecommendations ranks catalog candidates for the user's context.
func (s *Service) GenerateRecommendations(ctx context.Context, userID uuid.UUID, mealCtx profile.MealContext) (*inbound.RecommendationBatch, error) {
	start := time.Now()

	model, err := s.loadModel(ctx, userID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.recipes.GetCandidateRecipes(ctx, mealTypeOf(mealCtx.MealType))
	if err != nil {
		return nil, errors.NewProcessingError("candidate lookup", err)
	}

	if len(mealCtx.RecentRecipeIDs) > s.recentWindow {
		mealCtx.RecentRecipeIDs = mealCtx.RecentRecipeIDs[:s.recentWindow]
	}

	ranked := profile.RankRecipes(candidates, model, mealCtx)
	if len(ranked) > s.batchSize {
		ranked = ranked[:s.batchSize]
	}

	reasoning := make([]string, 0, len(ranked))
	for _, score := range ranked {
		reasoning = append(reasoning, describeScore(score))
	}

	batch := &inbound.RecommendationBatch{
		Recipes:    ranked,
		Reasoning:  reasoning,
		Confidence: profile.BatchConfidence(model),
	}

	s.metrics.RecordRecommendation(time.Since(start), len(ranked))
	s.logger.Info("Recommendations generated",
		zap.String("user_id", userID.String()),
		zap.Int("candidates", len(candidates)),
		zap.Int("returned", len(ranked)),
		zap.Float64("confidence", batch.Confidence),
	)

	return batch, nil
}

// AnalyzeAdaptationOpportunities derives behavioral suggestions from the
// user's preference model.
func (s *Service) AnalyzeAdaptationOpportunities(ctx context.Context, userID uuid.UUID) ([]profile.AdaptationRecommendation, error) {
	model, err := s.loadModel(ctx, userID)
	if err != nil {
		return nil, err
	}

	recommendations, err := profile.AnalyzeAdaptations(model)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	s.logger.Info("Adaptation analysis complete",
		zap.String("user_id", userID.String()),
		zap.Int("recommendations", len(recommendations)),
	)

	return recommendations, nil
}

func (s *Service) loadModel(ctx context.Context, userID uuid.UUID) (profile.PreferenceModel, error) {
	model, err := s.profiles.FindByUser(ctx, userID)
	if err != nil && !errors.IsNotFound(err) {
		return profile.PreferenceModel{}, errors.NewProcessingError("profile load", err)
	}
	if model == nil {
		return profile.PreferenceModel{}, errors.NewProfileNotFoundError(userID.String())
	}
	return *model, nil
}
