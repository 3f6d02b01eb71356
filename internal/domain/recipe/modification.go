package recipe

// ImpactLevel tags how disruptive a single modification is.
type ImpactLevel string

const (
	ImpactMinor    ImpactLevel = "minor"
	ImpactModerate ImpactLevel = "moderate"
	ImpactMajor    ImpactLevel = "major"
)

// difficultyWeight is the contribution of one record to the difficulty delta.
func (l ImpactLevel) difficultyWeight() float64 {
	switch l {
	case ImpactMinor:
		return 0.1
	case ImpactModerate:
		return 0.3
	case ImpactMajor:
		return 0.5
	default:
		return 0
	}
}

// ModificationType classifies what kind of change a record describes.
type ModificationType string

const (
	ModificationSubstitution ModificationType = "substitution"
	ModificationPortion      ModificationType = "portion"
	ModificationMethod       ModificationType = "method"
	ModificationPreparation  ModificationType = "preparation"
)

// timeDelta is the fixed per-type time increment in minutes.
func (t ModificationType) timeDelta() int {
	switch t {
	case ModificationSubstitution:
		return 2
	case ModificationMethod:
		return 5
	case ModificationPreparation:
		return 3
	default:
		return 0
	}
}

// ModificationRecord is one atomic change applied during a modification pass.
type ModificationRecord struct {
	Type        ModificationType
	Impact      ImpactLevel
	Ingredient  string
	ReplacedBy  string
	Reason      string
	Restriction string
}

// RecipeModification is the full result of a ModifyRecipe run: the original
// and modified recipe values, the ordered change list, and the aggregate
// impact of all changes.
type RecipeModification struct {
	Original Recipe
	Modified Recipe
	Records  []ModificationRecord

	NutritionImpact    NutritionInfo // per-serving deltas, modified − original
	DifficultyDelta    float64
	TimeDeltaMinutes   int
	CostDelta          float64
	SuccessProbability float64 // [50,100]

	// UnresolvedRestrictions lists allergens or exclusions that no catalog
	// substitute could satisfy. The recipe still contains those
	// ingredients; callers must surface this to the user rather than
	// treat the modification as fully safe.
	UnresolvedRestrictions []string
	RequiresReview         bool
}

// ComputeImpact fills the aggregate fields from the original/modified pair
// and the accumulated records.
func (m *RecipeModification) ComputeImpact() {
	m.NutritionImpact = m.Modified.Nutrition.Sub(m.Original.Nutrition)

	m.DifficultyDelta = 0
	m.TimeDeltaMinutes = 0
	majors := 0
	for _, rec := range m.Records {
		m.DifficultyDelta += rec.Impact.difficultyWeight()
		m.TimeDeltaMinutes += rec.Type.timeDelta()
		if rec.Impact == ImpactMajor {
			majors++
		}
	}

	// Placeholder heuristic until ingredient-level pricing exists.
	m.CostDelta = 0.1 * float64(len(m.Records))

	probability := 90.0 - 10.0*float64(majors)
	if m.Original.Difficulty == DifficultyLevelHard {
		probability -= 10
	}
	m.SuccessProbability = clamp(probability, 50, 100)

	m.RequiresReview = len(m.UnresolvedRestrictions) > 0
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
