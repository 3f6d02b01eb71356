package recipe

import "github.com/google/uuid"

// Ingredient is a catalog entry describing a single ingredient with its
// per-100g nutrition profile and flavor tags.
type Ingredient struct {
	ID         uuid.UUID
	Name       string
	Category   IngredientCategory
	Nutrition  NutritionPer100g
	FlavorTags []string
}

// Validate validates the catalog entry
func (i Ingredient) Validate() error {
	if i.Name == "" {
		return ErrEmptyIngredientName
	}
	if i.Category == "" {
		return ErrEmptyCategory
	}
	return nil
}

// NutritionPer100g contains nutrition values per 100 grams of an ingredient
type NutritionPer100g struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
}

// metrics returns the comparable nutrition metrics in a fixed order.
func (n NutritionPer100g) metrics() [5]float64 {
	return [5]float64{n.Calories, n.Protein, n.Carbs, n.Fat, n.Fiber}
}

// IngredientCategory groups catalog ingredients for substitution search
type IngredientCategory string

const (
	CategoryProtein   IngredientCategory = "protein"
	CategoryVegetable IngredientCategory = "vegetable"
	CategoryFruit     IngredientCategory = "fruit"
	CategoryGrain     IngredientCategory = "grain"
	CategoryDairy     IngredientCategory = "dairy"
	CategoryLegume    IngredientCategory = "legume"
	CategoryNut       IngredientCategory = "nut"
	CategoryFat       IngredientCategory = "fat"
	CategorySpice     IngredientCategory = "spice"
	CategorySweetener IngredientCategory = "sweetener"
)
