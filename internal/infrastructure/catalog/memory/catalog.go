// Package memory provides an in-memory catalog adapter, used by the demo
// binary and tests in place of the real catalog service.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/nutricoach/engine/internal/domain/recipe"
)

// Catalog is an in-memory implementation of the ingredient and recipe
// catalog ports. Safe for concurrent use.
type Catalog struct {
	mu          sync.RWMutex
	ingredients map[string]recipe.Ingredient // keyed by lowercased name
	recipes     map[uuid.UUID]recipe.Recipe
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		ingredients: make(map[string]recipe.Ingredient),
		recipes:     make(map[uuid.UUID]recipe.Recipe),
	}
}

// AddIngredient registers a catalog ingredient.
func (c *Catalog) AddIngredient(ing recipe.Ingredient) error {
	if err := ing.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ingredients[strings.ToLower(ing.Name)] = ing
	return nil
}

// AddRecipe registers a recipe.
func (c *Catalog) AddRecipe(r recipe.Recipe) error {
	if err := r.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recipes[r.ID] = r
	return nil
}

// GetIngredientsByCategory returns all ingredients in a category.
func (c *Catalog) GetIngredientsByCategory(ctx context.Context, category recipe.IngredientCategory) ([]recipe.Ingredient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []recipe.Ingredient
	for _, ing := range c.ingredients {
		if ing.Category == category {
			out = append(out, ing)
		}
	}
	return out, nil
}

// GetIngredientByName returns the ingredient with the given name, nil when
// absent.
func (c *Catalog) GetIngredientByName(ctx context.Context, name string) (*recipe.Ingredient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	if ing, ok := c.ingredients[strings.ToLower(name)]; ok {
		return &ing, nil
	}
	return nil, nil
}

// GetRecipeByID returns the recipe with the given id, nil when absent.
func (c *Catalog) GetRecipeByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	if r, ok := c.recipes[id]; ok {
		copied := r.Clone()
		return &copied, nil
	}
	return nil, nil
}

// GetCandidateRecipes returns all recipes for a meal slot.
func (c *Catalog) GetCandidateRecipes(ctx context.Context, mealType recipe.MealType) ([]recipe.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []recipe.Recipe
	for _, r := range c.recipes {
		if r.MealType == mealType {
			out = append(out, r.Clone())
		}
	}
	return out, nil
}
