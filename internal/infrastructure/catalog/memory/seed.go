package memory

import (
	"github.com/google/uuid"

	"github.com/nutricoach/engine/internal/domain/recipe"
)

// NewSeededCatalog creates a catalog preloaded with a starter set of
// ingredients and recipes so the engine works out of the box.
func NewSeededCatalog() *Catalog {
	c := NewCatalog()
	for _, ing := range seedIngredients() {
		// seed data is static and valid
		_ = c.AddIngredient(ing)
	}
	for _, r := range seedRecipes() {
		_ = c.AddRecipe(r)
	}
	return c
}

func seedIngredients() []recipe.Ingredient {
	return []recipe.Ingredient{
		{
			ID: uuid.New(), Name: "chicken breast", Category: recipe.CategoryProtein,
			Nutrition:  recipe.NutritionPer100g{Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6},
			FlavorTags: []string{"savory", "mild"},
		},
		{
			ID: uuid.New(), Name: "tofu", Category: recipe.CategoryProtein,
			Nutrition:  recipe.NutritionPer100g{Calories: 76, Protein: 8, Carbs: 1.9, Fat: 4.8},
			FlavorTags: []string{"mild", "neutral"},
		},
		{
			ID: uuid.New(), Name: "tempeh", Category: recipe.CategoryProtein,
			Nutrition:  recipe.NutritionPer100g{Calories: 192, Protein: 20, Carbs: 7.6, Fat: 11, Fiber: 1.4},
			FlavorTags: []string{"nutty", "savory"},
		},
		{
			ID: uuid.New(), Name: "salmon", Category: recipe.CategoryProtein,
			Nutrition:  recipe.NutritionPer100g{Calories: 208, Protein: 20, Fat: 13},
			FlavorTags: []string{"savory", "rich"},
		},
		{
			ID: uuid.New(), Name: "milk", Category: recipe.CategoryDairy,
			Nutrition:  recipe.NutritionPer100g{Calories: 61, Protein: 3.2, Carbs: 4.8, Fat: 3.3},
			FlavorTags: []string{"creamy", "mild"},
		},
		{
			ID: uuid.New(), Name: "oat milk", Category: recipe.CategoryDairy,
			Nutrition:  recipe.NutritionPer100g{Calories: 47, Protein: 1, Carbs: 7.6, Fat: 1.5, Fiber: 0.8},
			FlavorTags: []string{"creamy", "mild", "sweet"},
		},
		{
			ID: uuid.New(), Name: "butter", Category: recipe.CategoryFat,
			Nutrition:  recipe.NutritionPer100g{Calories: 717, Protein: 0.9, Carbs: 0.1, Fat: 81},
			FlavorTags: []string{"rich", "creamy"},
		},
		{
			ID: uuid.New(), Name: "olive oil", Category: recipe.CategoryFat,
			Nutrition:  recipe.NutritionPer100g{Calories: 884, Fat: 100},
			FlavorTags: []string{"rich", "fruity"},
		},
		{
			ID: uuid.New(), Name: "coconut oil", Category: recipe.CategoryFat,
			Nutrition:  recipe.NutritionPer100g{Calories: 862, Fat: 100},
			FlavorTags: []string{"rich", "sweet"},
		},
		{
			ID: uuid.New(), Name: "peanut", Category: recipe.CategoryNut,
			Nutrition:  recipe.NutritionPer100g{Calories: 567, Protein: 26, Carbs: 16, Fat: 49, Fiber: 8.5},
			FlavorTags: []string{"nutty", "savory"},
		},
		{
			ID: uuid.New(), Name: "sunflower seed", Category: recipe.CategoryNut,
			Nutrition:  recipe.NutritionPer100g{Calories: 584, Protein: 21, Carbs: 20, Fat: 51, Fiber: 8.6},
			FlavorTags: []string{"nutty", "mild"},
		},
		{
			ID: uuid.New(), Name: "almond", Category: recipe.CategoryNut,
			Nutrition:  recipe.NutritionPer100g{Calories: 579, Protein: 21, Carbs: 22, Fat: 50, Fiber: 13},
			FlavorTags: []string{"nutty", "sweet"},
		},
		{
			ID: uuid.New(), Name: "wheat flour", Category: recipe.CategoryGrain,
			Nutrition:  recipe.NutritionPer100g{Calories: 364, Protein: 10, Carbs: 76, Fat: 1, Fiber: 2.7},
			FlavorTags: []string{"mild", "neutral"},
		},
		{
			ID: uuid.New(), Name: "rice flour", Category: recipe.CategoryGrain,
			Nutrition:  recipe.NutritionPer100g{Calories: 366, Protein: 6, Carbs: 80, Fat: 1.4, Fiber: 2.4},
			FlavorTags: []string{"mild", "neutral"},
		},
		{
			ID: uuid.New(), Name: "quinoa", Category: recipe.CategoryGrain,
			Nutrition:  recipe.NutritionPer100g{Calories: 120, Protein: 4.4, Carbs: 21, Fat: 1.9, Fiber: 2.8},
			FlavorTags: []string{"nutty", "mild"},
		},
		{
			ID: uuid.New(), Name: "kale", Category: recipe.CategoryVegetable,
			Nutrition:  recipe.NutritionPer100g{Calories: 35, Protein: 2.9, Carbs: 4.4, Fat: 1.5, Fiber: 4.1},
			FlavorTags: []string{"bitter", "earthy"},
		},
		{
			ID: uuid.New(), Name: "spinach", Category: recipe.CategoryVegetable,
			Nutrition:  recipe.NutritionPer100g{Calories: 23, Protein: 2.9, Carbs: 3.6, Fat: 0.4, Fiber: 2.2},
			FlavorTags: []string{"earthy", "mild"},
		},
		{
			ID: uuid.New(), Name: "broccoli", Category: recipe.CategoryVegetable,
			Nutrition:  recipe.NutritionPer100g{Calories: 34, Protein: 2.8, Carbs: 6.6, Fat: 0.4, Fiber: 2.6},
			FlavorTags: []string{"earthy", "mild"},
		},
		{
			ID: uuid.New(), Name: "honey", Category: recipe.CategorySweetener,
			Nutrition:  recipe.NutritionPer100g{Calories: 304, Carbs: 82},
			FlavorTags: []string{"sweet", "floral"},
		},
		{
			ID: uuid.New(), Name: "maple syrup", Category: recipe.CategorySweetener,
			Nutrition:  recipe.NutritionPer100g{Calories: 260, Carbs: 67},
			FlavorTags: []string{"sweet", "rich"},
		},
		{
			ID: uuid.New(), Name: "flaxseed", Category: recipe.CategoryNut,
			Nutrition:  recipe.NutritionPer100g{Calories: 534, Protein: 18, Carbs: 29, Fat: 42, Fiber: 27},
			FlavorTags: []string{"nutty", "earthy"},
		},
		{
			ID: uuid.New(), Name: "tamari", Category: recipe.CategorySpice,
			Nutrition:  recipe.NutritionPer100g{Calories: 60, Protein: 10, Carbs: 5.6},
			FlavorTags: []string{"savory", "umami"},
		},
		{
			ID: uuid.New(), Name: "nutritional yeast", Category: recipe.CategorySpice,
			Nutrition:  recipe.NutritionPer100g{Calories: 325, Protein: 45, Carbs: 36, Fiber: 20},
			FlavorTags: []string{"savory", "umami", "nutty"},
		},
		{
			ID: uuid.New(), Name: "chickpeas", Category: recipe.CategoryLegume,
			Nutrition:  recipe.NutritionPer100g{Calories: 164, Protein: 8.9, Carbs: 27, Fat: 2.6, Fiber: 7.6},
			FlavorTags: []string{"nutty", "mild"},
		},
		{
			ID: uuid.New(), Name: "lentils", Category: recipe.CategoryLegume,
			Nutrition:  recipe.NutritionPer100g{Calories: 116, Protein: 9, Carbs: 20, Fat: 0.4, Fiber: 7.9},
			FlavorTags: []string{"earthy", "mild"},
		},
	}
}

func seedRecipes() []recipe.Recipe {
	return []recipe.Recipe{
		{
			ID:       uuid.New(),
			Title:    "Kale and Quinoa Bowl",
			MealType: recipe.MealTypeLunch,
			Cuisine:  recipe.CuisineTypeMediterranean,
			Ingredients: []recipe.RecipeIngredient{
				{Name: "kale", Category: recipe.CategoryVegetable, Quantity: 100, Unit: recipe.MeasurementUnitGram},
				{Name: "quinoa", Category: recipe.CategoryGrain, Quantity: 150, Unit: recipe.MeasurementUnitGram},
				{Name: "olive oil", Category: recipe.CategoryFat, Quantity: 15, Unit: recipe.MeasurementUnitMilliliter},
				{Name: "chickpeas", Category: recipe.CategoryLegume, Quantity: 120, Unit: recipe.MeasurementUnitGram},
			},
			Nutrition:    recipe.NutritionInfo{Calories: 520, Protein: 18, Carbs: 62, Fat: 22, Fiber: 14},
			Difficulty:   recipe.DifficultyLevelEasy,
			Servings:     2,
			Instructions: "Steam the kale. Simmer the quinoa. Toss with olive oil and chickpeas.",
		},
		{
			ID:       uuid.New(),
			Title:    "Grilled Chicken Salad",
			MealType: recipe.MealTypeLunch,
			Cuisine:  recipe.CuisineTypeAmerican,
			Ingredients: []recipe.RecipeIngredient{
				{Name: "chicken breast", Category: recipe.CategoryProtein, Quantity: 200, Unit: recipe.MeasurementUnitGram},
				{Name: "spinach", Category: recipe.CategoryVegetable, Quantity: 80, Unit: recipe.MeasurementUnitGram},
				{Name: "olive oil", Category: recipe.CategoryFat, Quantity: 10, Unit: recipe.MeasurementUnitMilliliter},
			},
			Nutrition:    recipe.NutritionInfo{Calories: 430, Protein: 48, Carbs: 6, Fat: 24, Fiber: 3},
			Difficulty:   recipe.DifficultyLevelEasy,
			Servings:     2,
			Instructions: "Grill the chicken. Toss the spinach with olive oil. Slice and serve.",
		},
		{
			ID:       uuid.New(),
			Title:    "Baked Salmon with Broccoli",
			MealType: recipe.MealTypeDinner,
			Cuisine:  recipe.CuisineTypeAmerican,
			Ingredients: []recipe.RecipeIngredient{
				{Name: "salmon", Category: recipe.CategoryProtein, Quantity: 250, Unit: recipe.MeasurementUnitGram},
				{Name: "broccoli", Category: recipe.CategoryVegetable, Quantity: 150, Unit: recipe.MeasurementUnitGram},
				{Name: "butter", Category: recipe.CategoryFat, Quantity: 20, Unit: recipe.MeasurementUnitGram},
			},
			Nutrition:    recipe.NutritionInfo{Calories: 680, Protein: 52, Carbs: 10, Fat: 48, Fiber: 4},
			Difficulty:   recipe.DifficultyLevelMedium,
			Servings:     2,
			Instructions: "Bake the salmon at 200C. Steam the broccoli. Finish with butter.",
		},
		{
			ID:       uuid.New(),
			Title:    "Lentil Curry",
			MealType: recipe.MealTypeDinner,
			Cuisine:  recipe.CuisineTypeIndian,
			Ingredients: []recipe.RecipeIngredient{
				{Name: "lentils", Category: recipe.CategoryLegume, Quantity: 200, Unit: recipe.MeasurementUnitGram},
				{Name: "coconut oil", Category: recipe.CategoryFat, Quantity: 15, Unit: recipe.MeasurementUnitGram},
				{Name: "spinach", Category: recipe.CategoryVegetable, Quantity: 100, Unit: recipe.MeasurementUnitGram},
			},
			Nutrition:    recipe.NutritionInfo{Calories: 560, Protein: 24, Carbs: 58, Fat: 26, Fiber: 18},
			Difficulty:   recipe.DifficultyLevelMedium,
			Servings:     3,
			Instructions: "Sweat the aromatics in coconut oil. Simmer the lentils until tender. Fold in the spinach.",
		},
		{
			ID:       uuid.New(),
			Title:    "Oat Milk Pancakes",
			MealType: recipe.MealTypeBreakfast,
			Cuisine:  recipe.CuisineTypeAmerican,
			Ingredients: []recipe.RecipeIngredient{
				{Name: "wheat flour", Category: recipe.CategoryGrain, Quantity: 180, Unit: recipe.MeasurementUnitGram},
				{Name: "oat milk", Category: recipe.CategoryDairy, Quantity: 240, Unit: recipe.MeasurementUnitMilliliter},
				{Name: "maple syrup", Category: recipe.CategorySweetener, Quantity: 30, Unit: recipe.MeasurementUnitMilliliter},
			},
			Nutrition:    recipe.NutritionInfo{Calories: 540, Protein: 14, Carbs: 104, Fat: 8, Fiber: 6},
			Difficulty:   recipe.DifficultyLevelEasy,
			Servings:     2,
			Instructions: "Whisk the batter. Fry on a hot griddle. Serve with maple syrup.",
		},
	}
}
