package recipe

// CookingMethod represents how a recipe is prepared
type CookingMethod string

const (
	CookingMethodBaking   CookingMethod = "baking"
	CookingMethodFrying   CookingMethod = "frying"
	CookingMethodGrilling CookingMethod = "grilling"
	CookingMethodSteaming CookingMethod = "steaming"
	CookingMethodBoiling  CookingMethod = "boiling"
	CookingMethodRoasting CookingMethod = "roasting"
	CookingMethodRaw      CookingMethod = "raw"
)

type methodCategoryKey struct {
	Method   CookingMethod
	Category IngredientCategory
}

// MethodCompatibilityTable scores how well an ingredient category behaves
// under a cooking method. The table carries an explicit version so
// substitution quality can be improved by shipping new data, not new code.
type MethodCompatibilityTable struct {
	Version      string
	scores       map[methodCategoryKey]float64
	defaultScore float64
}

// NewMethodCompatibilityTable builds a table from explicit entries.
func NewMethodCompatibilityTable(version string, defaultScore float64, entries map[CookingMethod]map[IngredientCategory]float64) *MethodCompatibilityTable {
	scores := make(map[methodCategoryKey]float64)
	for method, byCategory := range entries {
		for category, score := range byCategory {
			scores[methodCategoryKey{Method: method, Category: category}] = score
		}
	}
	return &MethodCompatibilityTable{
		Version:      version,
		scores:       scores,
		defaultScore: defaultScore,
	}
}

// Lookup returns the compatibility score in [0,100] for a (method,
// category) pair, falling back to the table default for untabulated pairs.
func (t *MethodCompatibilityTable) Lookup(method CookingMethod, category IngredientCategory) float64 {
	if score, ok := t.scores[methodCategoryKey{Method: method, Category: category}]; ok {
		return score
	}
	return t.defaultScore
}

// DefaultMethodCompatibility is the built-in compatibility data set.
// Untabulated pairs score 75.
var DefaultMethodCompatibility = NewMethodCompatibilityTable("2025.1", 75, map[CookingMethod]map[IngredientCategory]float64{
	CookingMethodBaking: {
		CategoryGrain:     95,
		CategoryDairy:     85,
		CategorySweetener: 90,
		CategoryFruit:     80,
		CategoryVegetable: 70,
	},
	CookingMethodFrying: {
		CategoryProtein:   90,
		CategoryVegetable: 85,
		CategoryFat:       95,
		CategoryDairy:     55,
	},
	CookingMethodGrilling: {
		CategoryProtein:   95,
		CategoryVegetable: 85,
		CategoryFruit:     70,
		CategoryDairy:     40,
	},
	CookingMethodSteaming: {
		CategoryVegetable: 95,
		CategoryProtein:   80,
		CategoryGrain:     85,
		CategoryFat:       50,
	},
	CookingMethodBoiling: {
		CategoryGrain:     90,
		CategoryLegume:    95,
		CategoryVegetable: 85,
	},
	CookingMethodRoasting: {
		CategoryProtein:   90,
		CategoryVegetable: 90,
		CategoryNut:       85,
	},
	CookingMethodRaw: {
		CategoryFruit:     95,
		CategoryVegetable: 90,
		CategoryNut:       85,
		CategoryProtein:   30,
	},
})
