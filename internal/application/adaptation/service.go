// Package adaptation provides the application layer for recipe rewriting:
// allergen, diet, and dislike substitution passes, goal-driven
// optimization, and portion adjustment.
package adaptation

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/nutricoach/engine/internal/domain/profile"
	"github.com/nutricoach/engine/internal/domain/recipe"
	"github.com/nutricoach/engine/internal/infrastructure/monitoring"
	"github.com/nutricoach/engine/internal/ports/inbound"
	"github.com/nutricoach/engine/internal/ports/outbound"
	"github.com/nutricoach/engine/pkg/errors"
)

// profileDislikeThreshold marks an ingredient affinity low enough that the
// dislike pass treats it like an explicit dislike.
const profileDislikeThreshold = -0.5

// Service implements the recipe adaptation use cases.
type Service struct {
	ingredients         outbound.IngredientCatalog
	metrics             *monitoring.MetricsCollector
	logger              *zap.Logger
	methodTable         *recipe.MethodCompatibilityTable
	optimizers          map[recipe.OptimizationGoal]recipe.GoalOptimizer
	confidenceThreshold float64
}

// NewService creates a new adaptation service. A zero confidenceThreshold
// falls back to the domain default; a nil table uses the built-in
// compatibility data.
func NewService(
	ingredients outbound.IngredientCatalog,
	metrics *monitoring.MetricsCollector,
	logger *zap.Logger,
	table *recipe.MethodCompatibilityTable,
	confidenceThreshold float64,
) inbound.AdaptationService {
	if table == nil {
		table = recipe.DefaultMethodCompatibility
	}
	if confidenceThreshold <= 0 {
		confidenceThreshold = recipe.DefaultConfidenceThreshold
	}

	optimizers := make(map[recipe.OptimizationGoal]recipe.GoalOptimizer)
	for _, opt := range recipe.DefaultOptimizers() {
		optimizers[opt.Goal()] = opt
	}

	return &Service{
		ingredients:         ingredients,
		metrics:             metrics,
		logger:              logger.Named("adaptation-service"),
		methodTable:         table,
		optimizers:          optimizers,
		confidenceThreshold: confidenceThreshold,
	}
}

// ModifyRecipe runs the four passes in fixed priority order: allergens,
// dietary restrictions, dislikes, then goal optimizations. A pass that
// cannot resolve a restriction records it on the result rather than
// aborting; zero modifications is a valid result.
func (s *Service) ModifyRecipe(ctx context.Context, r recipe.Recipe, model *profile.PreferenceModel, restrictions recipe.RestrictionSet, goals []recipe.OptimizationGoal) (*recipe.RecipeModification, error) {
	s.logger.Info("Modifying recipe",
		zap.String("recipe_id", r.ID.String()),
		zap.String("title", r.Title),
		zap.Int("allergens", len(restrictions.Allergens)),
		zap.Int("diets", len(restrictions.DietaryRestrictions)),
		zap.Int("goals", len(goals)),
	)

	if err := r.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	mod := &recipe.RecipeModification{
		Original: r,
		Modified: r.Clone(),
	}

	effective := withProfileDislikes(restrictions, model)

	if err := s.allergenPass(ctx, mod, effective); err != nil {
		return nil, err
	}
	if err := s.dietPass(ctx, mod, effective); err != nil {
		return nil, err
	}
	if err := s.dislikePass(ctx, mod, effective); err != nil {
		return nil, err
	}
	s.goalPass(mod, goals)

	mod.UnresolvedRestrictions = dedupeUnresolved(mod.UnresolvedRestrictions)
	mod.ComputeImpact()
	s.metrics.RecordRecipeModified()

	s.logger.Info("Recipe modified",
		zap.String("recipe_id", r.ID.String()),
		zap.Int("modifications", len(mod.Records)),
		zap.Strings("unresolved", mod.UnresolvedRestrictions),
		zap.Float64("success_probability", mod.SuccessProbability),
	)

	return mod, nil
}

// AdjustPortions rescales the recipe to targetServings, honoring an
// optional per-serving calorie ceiling.
func (s *Service) AdjustPortions(ctx context.Context, r recipe.Recipe, targetServings int, constraints recipe.PortionConstraints) (recipe.Recipe, error) {
	adjusted, err := recipe.AdjustPortions(r, targetServings, constraints)
	if err != nil {
		return recipe.Recipe{}, errors.NewValidationError(err.Error())
	}

	s.logger.Info("Portions adjusted",
		zap.String("recipe_id", r.ID.String()),
		zap.Int("from", r.Servings),
		zap.Int("to", targetServings),
	)

	return adjusted, nil
}

// allergenPass substitutes every ingredient whose name or category matches
// a declared allergen. An allergen with no viable substitute stays in the
// recipe but is recorded as unresolved so the caller can distinguish
// "could not fully satisfy your restriction" from success.
func (s *Service) allergenPass(ctx context.Context, mod *recipe.RecipeModification, restrictions recipe.RestrictionSet) error {
	if len(restrictions.Allergens) == 0 {
		return nil
	}

	for i, line := range mod.Modified.Ingredients {
		if !restrictions.MatchesAllergen(line.Name, line.Category) {
			continue
		}

		original, err := s.ingredients.GetIngredientByName(ctx, line.Name)
		if err != nil {
			return errors.NewProcessingError("allergen ingredient lookup", err)
		}
		if original == nil {
			mod.UnresolvedRestrictions = append(mod.UnresolvedRestrictions, line.Name)
			continue
		}

		sub, err := s.resolve(ctx, *original, restrictions, methodOf(mod.Original), recipe.NutritionPriorityMaintain)
		if err != nil {
			return err
		}
		if sub == nil {
			s.metrics.RecordSubstitution("no_candidate")
			mod.UnresolvedRestrictions = append(mod.UnresolvedRestrictions, line.Name)
			continue
		}
		s.metrics.RecordSubstitution("resolved")

		mod.Records = append(mod.Records, recipe.ModificationRecord{
			Type:        recipe.ModificationSubstitution,
			Impact:      recipe.ImpactMajor,
			Ingredient:  line.Name,
			ReplacedBy:  sub.Substitute.Name,
			Reason:      "allergen",
			Restriction: line.Name,
		})
		applySubstitution(&mod.Modified.Ingredients[i], *sub)
	}
	return nil
}

// dietPass replaces exclusion-set matches with their table-assigned
// substitute, but only when that substitute exists in the catalog. Lines
// that already are the rule's substitute are left alone so a compliant
// recipe is not rewritten into itself.
func (s *Service) dietPass(ctx context.Context, mod *recipe.RecipeModification, restrictions recipe.RestrictionSet) error {
	for _, diet := range restrictions.DietaryRestrictions {
		for _, rule := range recipe.DietRules[diet] {
			for i, line := range mod.Modified.Ingredients {
				if !rule.MatchesExclusion(line.Name) || rule.IsSubstitute(line.Name) {
					continue
				}

				substitute, err := s.ingredients.GetIngredientByName(ctx, rule.Substitute)
				if err != nil {
					return errors.NewProcessingError("diet substitute lookup", err)
				}
				if substitute == nil {
					mod.UnresolvedRestrictions = append(mod.UnresolvedRestrictions, string(diet)+": "+rule.Substitute+" unavailable")
					continue
				}

				mod.Records = append(mod.Records, recipe.ModificationRecord{
					Type:        recipe.ModificationSubstitution,
					Impact:      recipe.ImpactModerate,
					Ingredient:  line.Name,
					ReplacedBy:  substitute.Name,
					Reason:      "dietary restriction",
					Restriction: string(diet),
				})
				mod.Modified.Ingredients[i].Name = substitute.Name
				mod.Modified.Ingredients[i].Category = substitute.Category
			}
		}
	}
	return nil
}

// dislikePass replaces disliked ingredients, preferring a user-supplied
// override substitute over the resolver's suggestion.
func (s *Service) dislikePass(ctx context.Context, mod *recipe.RecipeModification, restrictions recipe.RestrictionSet) error {
	if len(restrictions.Dislikes) == 0 {
		return nil
	}

	for i, line := range mod.Modified.Ingredients {
		dislike, matched := matchedDislike(line.Name, restrictions.Dislikes)
		if !matched {
			continue
		}

		if override, ok := restrictions.SubstituteOverrides[dislike]; ok {
			substitute, err := s.ingredients.GetIngredientByName(ctx, override)
			if err != nil {
				return errors.NewProcessingError("override substitute lookup", err)
			}
			if substitute != nil {
				mod.Records = append(mod.Records, recipe.ModificationRecord{
					Type:        recipe.ModificationSubstitution,
					Impact:      recipe.ImpactMinor,
					Ingredient:  line.Name,
					ReplacedBy:  substitute.Name,
					Reason:      "user preference (override)",
					Restriction: dislike,
				})
				mod.Modified.Ingredients[i].Name = substitute.Name
				mod.Modified.Ingredients[i].Category = substitute.Category
				continue
			}
		}

		original, err := s.ingredients.GetIngredientByName(ctx, line.Name)
		if err != nil {
			return errors.NewProcessingError("disliked ingredient lookup", err)
		}
		if original == nil {
			continue
		}

		sub, err := s.resolve(ctx, *original, restrictions, methodOf(mod.Original), recipe.NutritionPriorityMaintain)
		if err != nil {
			return err
		}
		if sub == nil {
			s.metrics.RecordSubstitution("no_candidate")
			continue
		}
		s.metrics.RecordSubstitution("resolved")

		mod.Records = append(mod.Records, recipe.ModificationRecord{
			Type:        recipe.ModificationSubstitution,
			Impact:      recipe.ImpactModerate,
			Ingredient:  line.Name,
			ReplacedBy:  sub.Substitute.Name,
			Reason:      "user preference",
			Restriction: dislike,
		})
		applySubstitution(&mod.Modified.Ingredients[i], *sub)
	}
	return nil
}

// goalPass invokes the registered optimizer for each requested goal.
// Unknown goals are skipped with a warning rather than failing the run.
func (s *Service) goalPass(mod *recipe.RecipeModification, goals []recipe.OptimizationGoal) {
	for _, goal := range goals {
		optimizer, ok := s.optimizers[goal]
		if !ok {
			s.logger.Warn("No optimizer registered for goal", zap.String("goal", string(goal)))
			continue
		}
		optimized, records := optimizer.Optimize(mod.Modified)
		mod.Modified = optimized
		mod.Records = append(mod.Records, records...)
	}
}

// applySubstitution rewrites one ingredient line in place, scaling the
// quantity by the calorie-preserving ratio.
func applySubstitution(line *recipe.RecipeIngredient, sub recipe.IngredientSubstitution) {
	line.Name = sub.Substitute.Name
	line.Category = sub.Substitute.Category
	line.Quantity *= sub.Ratio
}

// withProfileDislikes folds the model's strong dislikes into the
// restriction set so learned aversions feed the dislike pass.
func withProfileDislikes(restrictions recipe.RestrictionSet, model *profile.PreferenceModel) recipe.RestrictionSet {
	if model == nil {
		return restrictions
	}
	learned := model.StrongDislikes(profileDislikeThreshold)
	if len(learned) == 0 {
		return restrictions
	}
	out := restrictions
	out.Dislikes = append(append([]string{}, restrictions.Dislikes...), learned...)
	return out
}

// dedupeUnresolved collapses repeated unresolved entries, keeping
// first-seen order. Several lines tripping the same missing substitute
// should surface as one entry for review.
func dedupeUnresolved(entries []string) []string {
	if len(entries) < 2 {
		return entries
	}
	seen := make(map[string]struct{}, len(entries))
	out := entries[:0]
	for _, entry := range entries {
		if _, ok := seen[entry]; ok {
			continue
		}
		seen[entry] = struct{}{}
		out = append(out, entry)
	}
	return out
}

// matchedDislike reports which declared dislike an ingredient name trips.
func matchedDislike(name string, dislikes []string) (string, bool) {
	lower := strings.ToLower(name)
	for _, dislike := range dislikes {
		d := strings.ToLower(dislike)
		if d != "" && strings.Contains(lower, d) {
			return dislike, true
		}
	}
	return "", false
}

// methodOf guesses the dominant cooking method from the instruction text.
// The compatibility table default covers recipes that mention none.
func methodOf(r recipe.Recipe) recipe.CookingMethod {
	text := strings.ToLower(r.Instructions)
	for _, method := range []recipe.CookingMethod{
		recipe.CookingMethodBaking,
		recipe.CookingMethodGrilling,
		recipe.CookingMethodFrying,
		recipe.CookingMethodSteaming,
		recipe.CookingMethodBoiling,
		recipe.CookingMethodRoasting,
	} {
		if strings.Contains(text, strings.TrimSuffix(string(method), "ing")) {
			return method
		}
	}
	return recipe.CookingMethodBaking
}
