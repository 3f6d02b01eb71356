package recipe

// OptimizationGoal names a goal-driven recipe transform.
type OptimizationGoal string

const (
	GoalReduceSodium     OptimizationGoal = "reduce_sodium"
	GoalIncreaseProtein  OptimizationGoal = "increase_protein"
	GoalReduceCalories   OptimizationGoal = "reduce_calories"
	GoalAntiInflammatory OptimizationGoal = "anti_inflammatory"
)

// GoalOptimizer is the extension point for goal-driven recipe
// optimization. An optimizer receives the recipe after all substitution
// passes and returns the (possibly unchanged) recipe together with the
// modification records describing what it did. Returning the input recipe
// with no records is a valid outcome.
//
// The four named goals currently ship as identity optimizers: the intended
// algorithms are an open product question, and the contract here is the
// agreed extension seam rather than a guessed implementation.
type GoalOptimizer interface {
	Goal() OptimizationGoal
	Optimize(r Recipe) (Recipe, []ModificationRecord)
}

// IdentityOptimizer satisfies the GoalOptimizer contract without changing
// the recipe.
type IdentityOptimizer struct {
	ForGoal OptimizationGoal
}

// Goal returns the goal this optimizer serves.
func (o IdentityOptimizer) Goal() OptimizationGoal { return o.ForGoal }

// Optimize returns the recipe unchanged with zero records.
func (o IdentityOptimizer) Optimize(r Recipe) (Recipe, []ModificationRecord) {
	return r, nil
}

// DefaultOptimizers returns the built-in optimizer set, one identity
// optimizer per named goal.
func DefaultOptimizers() []GoalOptimizer {
	return []GoalOptimizer{
		IdentityOptimizer{ForGoal: GoalReduceSodium},
		IdentityOptimizer{ForGoal: GoalIncreaseProtein},
		IdentityOptimizer{ForGoal: GoalReduceCalories},
		IdentityOptimizer{ForGoal: GoalAntiInflammatory},
	}
}
