package achievement

// Type classifies how an achievement's requirement is measured.
type Type string

const (
	TypeTime     Type = "time"     // total focused seconds, completed or not
	TypeSessions Type = "sessions" // count of completed sessions
	TypeStreak   Type = "streak"   // current consecutive-day streak
	TypeSpecial  Type = "special"  // condition-based, requirement unused
)

// Achievement is a static catalog entry. Requirement is seconds, a session
// count, or streak days depending on Type, and 0 for special achievements.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Requirement int    `json:"requirement"`
	Type        Type   `json:"type"`
}

// Special achievement ids, each evaluated by its own predicate.
const (
	NoDistraction = "no_distraction"
	EarlyBird     = "early_bird"
	NightOwl      = "night_owl"
)

// Catalog is the fixed, ordered achievement catalog. It never changes at
// runtime; the rule engine re-evaluates it in full on every check.
var Catalog = []Achievement{
	{ID: "first_hour", Title: "First Step", Description: "Focus for 1 hour in total", Icon: "baby-face", Requirement: 3600, Type: TypeTime},
	{ID: "five_hours", Title: "Persistent", Description: "Focus for 5 hours in total", Icon: "trophy", Requirement: 18000, Type: TypeTime},
	{ID: "ten_hours", Title: "Determined", Description: "Focus for 10 hours in total", Icon: "medal", Requirement: 36000, Type: TypeTime},
	{ID: "twenty_hours", Title: "Expert", Description: "Focus for 20 hours in total", Icon: "star", Requirement: 72000, Type: TypeTime},
	{ID: "fifty_hours", Title: "Master", Description: "Focus for 50 hours in total", Icon: "diamond", Requirement: 180000, Type: TypeTime},
	{ID: "hundred_hours", Title: "Legend", Description: "Focus for 100 hours in total", Icon: "crown", Requirement: 360000, Type: TypeTime},

	{ID: "first_session", Title: "Getting Started", Description: "Complete your first session", Icon: "flag", Requirement: 1, Type: TypeSessions},
	{ID: "ten_sessions", Title: "Habit Forming", Description: "Complete 10 sessions", Icon: "hand-okay", Requirement: 10, Type: TypeSessions},
	{ID: "fifty_sessions", Title: "Regular", Description: "Complete 50 sessions", Icon: "check-all", Requirement: 50, Type: TypeSessions},
	{ID: "hundred_sessions", Title: "Disciplined", Description: "Complete 100 sessions", Icon: "medal-outline", Requirement: 100, Type: TypeSessions},

	{ID: "three_day_streak", Title: "3-Day Streak", Description: "Reach your goal 3 days in a row", Icon: "fire", Requirement: 3, Type: TypeStreak},
	{ID: "week_streak", Title: "Week Streak", Description: "Reach your goal 7 days in a row", Icon: "fire-circle", Requirement: 7, Type: TypeStreak},
	{ID: "two_week_streak", Title: "Two-Week Streak", Description: "Reach your goal 14 days in a row", Icon: "flame", Requirement: 14, Type: TypeStreak},
	{ID: "month_streak", Title: "Month Streak", Description: "Reach your goal 30 days in a row", Icon: "fire-alert", Requirement: 30, Type: TypeStreak},

	{ID: NoDistraction, Title: "Laser Focus", Description: "Complete a session without a single distraction", Icon: "bullseye-arrow", Requirement: 0, Type: TypeSpecial},
	{ID: EarlyBird, Title: "Early Bird", Description: "Focus before 7 AM", Icon: "weather-sunset-up", Requirement: 0, Type: TypeSpecial},
	{ID: NightOwl, Title: "Night Owl", Description: "Focus after 10 PM", Icon: "weather-night", Requirement: 0, Type: TypeSpecial},
}

// Lookup finds a catalog entry by id.
func Lookup(id string) (Achievement, bool) {
	for _, a := range Catalog {
		if a.ID == id {
			return a, true
		}
	}

	return Achievement{}, false
}
