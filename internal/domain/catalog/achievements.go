package catalog

// AchievementDefinition is a static, never-persisted achievement descriptor.
type AchievementDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Requirement int    `json:"requirement"`
	Icon        string `json:"icon"`
}

// Achievement ids referenced by the unlock rule table.
const (
	AchievementFirstRecipe    = "first_recipe"
	AchievementFiveStar       = "five_star"
	AchievementTenStar        = "ten_star"
	AchievementTwentyFiveStar = "twenty_five_star"
	AchievementFiftyStar      = "fifty_star"
	AchievementAllStar        = "all_star"
	AchievementSpeedDemon     = "speed_demon"
	AchievementNoMistakes     = "no_mistakes"
	AchievementComboMaster    = "combo_master"
	AchievementWeeklyStreak   = "weekly_streak"
	AchievementCenturyClub    = "century_club"
)

// achievementCatalog lists every unlockable milestone. The all_star
// requirement tracks the recipe catalog size so the badge stays reachable
// as recipes are added or removed.
var achievementCatalog = []AchievementDefinition{
	{ID: AchievementFirstRecipe, Name: "First Recipe", Description: "Complete your first recipe", Requirement: 1, Icon: "🎖️"},
	{ID: AchievementFiveStar, Name: "Five Star Chef", Description: "Get 3 stars on 5 recipes", Requirement: 5, Icon: "⭐"},
	{ID: AchievementTenStar, Name: "Master Chef", Description: "Get 3 stars on 10 recipes", Requirement: 10, Icon: "👨‍🍳"},
	{ID: AchievementTwentyFiveStar, Name: "Culinary Expert", Description: "Get 3 stars on 25 recipes", Requirement: 25, Icon: "🏆"},
	{ID: AchievementFiftyStar, Name: "Kitchen Legend", Description: "Get 3 stars on 50 recipes", Requirement: 50, Icon: "🌟"},
	{ID: AchievementAllStar, Name: "Perfect Chef", Description: "Get 3 stars on all recipes", Requirement: len(recipeDatabase), Icon: "💎"},
	{ID: AchievementSpeedDemon, Name: "Speed Demon", Description: "Complete 10 levels in under 30 seconds each", Requirement: 10, Icon: "⚡"},
	{ID: AchievementNoMistakes, Name: "Perfectionist", Description: "Complete 5 levels with no mistakes", Requirement: 5, Icon: "✨"},
	{ID: AchievementComboMaster, Name: "Combo Master", Description: "Achieve a 10x combo", Requirement: 10, Icon: "🔥"},
	{ID: AchievementWeeklyStreak, Name: "Dedication", Description: "Play for 7 days in a row", Requirement: 7, Icon: "📅"},
	{ID: AchievementCenturyClub, Name: "Century Club", Description: "Play 100 games", Requirement: 100, Icon: "💯"},
}

// achievementIndex maps achievement id to its catalog slot.
var achievementIndex = func() map[string]int {
	idx := make(map[string]int, len(achievementCatalog))
	for i, a := range achievementCatalog {
		idx[a.ID] = i
	}
	return idx
}()

// Achievements returns the full ordered definition list.
func Achievements() []AchievementDefinition {
	out := make([]AchievementDefinition, len(achievementCatalog))
	copy(out, achievementCatalog)
	return out
}

// AchievementIDs returns every achievement id in catalog order.
func AchievementIDs() []string {
	ids := make([]string, len(achievementCatalog))
	for i, a := range achievementCatalog {
		ids[i] = a.ID
	}
	return ids
}

// FindAchievement returns the definition for id, and whether it exists.
func FindAchievement(id string) (AchievementDefinition, bool) {
	i, ok := achievementIndex[id]
	if !ok {
		return AchievementDefinition{}, false
	}
	return achievementCatalog[i], true
}
