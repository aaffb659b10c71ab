package repository

// Record keys in the key-value store. The "@chef_quest:" prefix is part of
// the persisted format and must not change, or existing save data is lost.
const (
	KeyProgress     = "@chef_quest:user_progress"
	KeyStats        = "@chef_quest:user_stats"
	KeyAchievements = "@chef_quest:user_achievements"
	KeySession      = "@chef_quest:user_session"
	KeySettings     = "@chef_quest:user_settings"
)

// RecordKeys returns every persisted record key.
func RecordKeys() []string {
	return []string{KeyProgress, KeyStats, KeyAchievements, KeySession, KeySettings}
}
