package recipe

import "strings"

// DietaryRestriction represents dietary restrictions
type DietaryRestriction string

const (
	DietaryRestrictionVegetarian DietaryRestriction = "vegetarian"
	DietaryRestrictionVegan      DietaryRestriction = "vegan"
	DietaryRestrictionGlutenFree DietaryRestriction = "gluten_free"
	DietaryRestrictionDairyFree  DietaryRestriction = "dairy_free"
)

// RestrictionSet collects the constraints a recipe adaptation must satisfy.
type RestrictionSet struct {
	Allergens           []string
	DietaryRestrictions []DietaryRestriction
	Dislikes            []string

	// SubstituteOverrides maps a disliked ingredient name to the user's
	// preferred replacement. Overrides win over resolver suggestions.
	SubstituteOverrides map[string]string
}

// IsEmpty reports whether the set imposes no constraints.
func (r RestrictionSet) IsEmpty() bool {
	return len(r.Allergens) == 0 && len(r.DietaryRestrictions) == 0 && len(r.Dislikes) == 0
}

// MatchesAllergen reports whether an ingredient's name or category
// textually matches any declared allergen. Matching is case-insensitive
// substring so "peanut butter" trips a "peanut" restriction.
func (r RestrictionSet) MatchesAllergen(name string, category IngredientCategory) bool {
	lower := strings.ToLower(name)
	cat := strings.ToLower(string(category))
	for _, allergen := range r.Allergens {
		a := strings.ToLower(allergen)
		if a == "" {
			continue
		}
		if strings.Contains(lower, a) || strings.Contains(cat, a) {
			return true
		}
	}
	return false
}

// MatchesDislike reports whether an ingredient name matches a declared
// dislike, case-insensitive substring.
func (r RestrictionSet) MatchesDislike(name string) bool {
	lower := strings.ToLower(name)
	for _, dislike := range r.Dislikes {
		d := strings.ToLower(dislike)
		if d != "" && strings.Contains(lower, d) {
			return true
		}
	}
	return false
}

// BlocksCandidate reports whether a substitution candidate is itself ruled
// out by an allergen or dislike.
func (r RestrictionSet) BlocksCandidate(name string) bool {
	return r.MatchesAllergen(name, "") || r.MatchesDislike(name)
}

// DietRule maps a dietary restriction to its excluded ingredients and the
// preferred replacement for each exclusion.
type DietRule struct {
	Restriction DietaryRestriction
	Excludes    []string
	Substitute  string
}

// DietRules is the fixed table of supported dietary restrictions. A rule
// applies only when its preferred substitute exists in the catalog.
var DietRules = map[DietaryRestriction][]DietRule{
	DietaryRestrictionVegetarian: {
		{Restriction: DietaryRestrictionVegetarian, Excludes: []string{"chicken", "beef", "pork", "fish", "bacon", "turkey"}, Substitute: "tofu"},
	},
	DietaryRestrictionVegan: {
		{Restriction: DietaryRestrictionVegan, Excludes: []string{"chicken", "beef", "pork", "fish", "bacon", "turkey"}, Substitute: "tofu"},
		{Restriction: DietaryRestrictionVegan, Excludes: []string{"milk", "cream"}, Substitute: "oat milk"},
		{Restriction: DietaryRestrictionVegan, Excludes: []string{"butter"}, Substitute: "olive oil"},
		{Restriction: DietaryRestrictionVegan, Excludes: []string{"egg"}, Substitute: "flaxseed"},
		{Restriction: DietaryRestrictionVegan, Excludes: []string{"honey"}, Substitute: "maple syrup"},
	},
	DietaryRestrictionGlutenFree: {
		{Restriction: DietaryRestrictionGlutenFree, Excludes: []string{"wheat flour", "flour", "pasta", "bread"}, Substitute: "rice flour"},
		{Restriction: DietaryRestrictionGlutenFree, Excludes: []string{"soy sauce"}, Substitute: "tamari"},
	},
	DietaryRestrictionDairyFree: {
		{Restriction: DietaryRestrictionDairyFree, Excludes: []string{"milk", "cream"}, Substitute: "oat milk"},
		{Restriction: DietaryRestrictionDairyFree, Excludes: []string{"butter"}, Substitute: "coconut oil"},
		{Restriction: DietaryRestrictionDairyFree, Excludes: []string{"cheese"}, Substitute: "nutritional yeast"},
	},
}

// MatchesExclusion reports whether an ingredient name matches one of the
// rule's excluded names, case-insensitive substring.
func (d DietRule) MatchesExclusion(name string) bool {
	lower := strings.ToLower(name)
	for _, excluded := range d.Excludes {
		if strings.Contains(lower, strings.ToLower(excluded)) {
			return true
		}
	}
	return false
}

// IsSubstitute reports whether an ingredient name is already the rule's
// preferred substitute. The substring check matters because substitutes
// like "oat milk" also match their own rule's "milk" exclusion.
func (d DietRule) IsSubstitute(name string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(d.Substitute))
}
