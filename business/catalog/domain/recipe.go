package domain

// Profession identifies a crafting profession by catalog id and name.
type Profession struct {
	ID   int64
	Name string
}

// RecipeSource is one (recipe, profession) pair able to produce an item.
type RecipeSource struct {
	RecipeID   int64
	Profession Profession
}

// CraftingStatus describes whether an item can be produced by a given
// profession set, and by which recipes.
type CraftingStatus struct {
	ItemID    int64
	Craftable bool
	Sources   []RecipeSource
}

// Reagent is one ingredient of a recipe with its per-craft quantity.
type Reagent struct {
	ItemID   int64
	Name     string
	Quantity int64
}

// OutputQuantity describes how many units one craft produces. Value is used
// when the catalog lists a fixed amount; otherwise Minimum/Maximum bound a
// variable yield.
type OutputQuantity struct {
	Value   int64
	Minimum int64
	Maximum int64
}

// Units returns the guaranteed units per craft (the fixed value, or the
// minimum of a variable yield, never less than 1).
func (o OutputQuantity) Units() int64 {
	if o.Value > 0 {
		return o.Value
	}
	if o.Minimum > 0 {
		return o.Minimum
	}
	return 1
}

// RecipeDefinition is a resolved recipe.
type RecipeDefinition struct {
	ID       int64
	Name     string
	Reagents []Reagent
	Output   OutputQuantity
}
