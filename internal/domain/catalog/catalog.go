// Package catalog holds the static recipe and achievement content.
// The catalog is immutable and loaded once at process start.
package catalog

// Recipe is one playable puzzle unit.
type Recipe struct {
	ID          string
	Name        string
	Ingredients []string
	Difficulty  string // easy, normal, hard
}

// recipeDatabase is the ordered level list. Level unlock order follows slice order.
var recipeDatabase = []Recipe{
	{ID: "pancakes", Name: "Fluffy Pancakes", Ingredients: []string{"flour", "egg", "milk", "butter"}, Difficulty: "easy"},
	{ID: "scrambled_eggs", Name: "Scrambled Eggs", Ingredients: []string{"egg", "butter", "salt"}, Difficulty: "easy"},
	{ID: "fruit_salad", Name: "Fruit Salad", Ingredients: []string{"apple", "banana", "orange", "honey"}, Difficulty: "easy"},
	{ID: "tomato_soup", Name: "Tomato Soup", Ingredients: []string{"tomato", "onion", "garlic", "basil"}, Difficulty: "easy"},
	{ID: "grilled_cheese", Name: "Grilled Cheese", Ingredients: []string{"bread", "cheese", "butter"}, Difficulty: "easy"},
	{ID: "caesar_salad", Name: "Caesar Salad", Ingredients: []string{"lettuce", "crouton", "parmesan", "chicken"}, Difficulty: "normal"},
	{ID: "spaghetti", Name: "Spaghetti Bolognese", Ingredients: []string{"pasta", "tomato", "beef", "onion", "garlic"}, Difficulty: "normal"},
	{ID: "veggie_stirfry", Name: "Veggie Stir-Fry", Ingredients: []string{"broccoli", "carrot", "pepper", "soy_sauce", "rice"}, Difficulty: "normal"},
	{ID: "fish_tacos", Name: "Fish Tacos", Ingredients: []string{"fish", "tortilla", "cabbage", "lime", "cream"}, Difficulty: "normal"},
	{ID: "mushroom_risotto", Name: "Mushroom Risotto", Ingredients: []string{"rice", "mushroom", "onion", "parmesan", "stock"}, Difficulty: "normal"},
	{ID: "chicken_curry", Name: "Chicken Curry", Ingredients: []string{"chicken", "curry", "coconut_milk", "onion", "rice"}, Difficulty: "normal"},
	{ID: "margherita_pizza", Name: "Margherita Pizza", Ingredients: []string{"dough", "tomato", "mozzarella", "basil"}, Difficulty: "normal"},
	{ID: "beef_stew", Name: "Beef Stew", Ingredients: []string{"beef", "potato", "carrot", "onion", "stock", "thyme"}, Difficulty: "hard"},
	{ID: "sushi_rolls", Name: "Sushi Rolls", Ingredients: []string{"rice", "nori", "salmon", "avocado", "cucumber", "wasabi"}, Difficulty: "hard"},
	{ID: "ramen_bowl", Name: "Ramen Bowl", Ingredients: []string{"noodles", "pork", "egg", "scallion", "stock", "nori"}, Difficulty: "hard"},
	{ID: "paella", Name: "Seafood Paella", Ingredients: []string{"rice", "shrimp", "mussel", "saffron", "pepper", "peas"}, Difficulty: "hard"},
	{ID: "beef_wellington", Name: "Beef Wellington", Ingredients: []string{"beef", "pastry", "mushroom", "prosciutto", "mustard", "egg"}, Difficulty: "hard"},
	{ID: "chocolate_souffle", Name: "Chocolate Souffle", Ingredients: []string{"chocolate", "egg", "sugar", "butter", "flour"}, Difficulty: "hard"},
	{ID: "apple_pie", Name: "Apple Pie", Ingredients: []string{"apple", "pastry", "sugar", "cinnamon", "butter"}, Difficulty: "normal"},
	{ID: "tiramisu", Name: "Tiramisu", Ingredients: []string{"mascarpone", "coffee", "ladyfinger", "cocoa", "egg"}, Difficulty: "hard"},
}

// recipeIndex maps recipe id to its database slot.
var recipeIndex = func() map[string]int {
	idx := make(map[string]int, len(recipeDatabase))
	for i, r := range recipeDatabase {
		idx[r.ID] = i
	}
	return idx
}()

// Recipes returns the full ordered level list.
func Recipes() []Recipe {
	out := make([]Recipe, len(recipeDatabase))
	copy(out, recipeDatabase)
	return out
}

// RecipeIDs returns every level id in catalog order.
func RecipeIDs() []string {
	ids := make([]string, len(recipeDatabase))
	for i, r := range recipeDatabase {
		ids[i] = r.ID
	}
	return ids
}

// RecipeCount returns the number of levels in the catalog.
func RecipeCount() int {
	return len(recipeDatabase)
}

// FindRecipe returns the recipe for id, and whether it exists.
func FindRecipe(id string) (Recipe, bool) {
	i, ok := recipeIndex[id]
	if !ok {
		return Recipe{}, false
	}
	return recipeDatabase[i], true
}
