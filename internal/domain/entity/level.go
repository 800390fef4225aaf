package entity

// Level is one rung of the points ladder.
type Level struct {
	Rank      int    `json:"rank"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	MinPoints int    `json:"min_points"`
}

// Levels is ordered by strictly increasing MinPoints and starts at zero.
var Levels = []Level{
	{Rank: 1, Name: "Seeker", Icon: "🌱", MinPoints: 0},
	{Rank: 2, Name: "Beginner", Icon: "🌿", MinPoints: 100},
	{Rank: 3, Name: "Devoted", Icon: "🌙", MinPoints: 300},
	{Rank: 4, Name: "Steadfast", Icon: "⭐", MinPoints: 700},
	{Rank: 5, Name: "Committed", Icon: "🕌", MinPoints: 1500},
	{Rank: 6, Name: "Guardian", Icon: "🛡️", MinPoints: 3000},
	{Rank: 7, Name: "Illuminated", Icon: "✨", MinPoints: 6000},
	{Rank: 8, Name: "Muhsin", Icon: "👑", MinPoints: 10000},
}

// CurrentLevel returns the last level whose threshold is reached.
// Reaching a threshold exactly counts as being on that level.
func CurrentLevel(points int) Level {
	current := Levels[0]
	for _, level := range Levels {
		if points >= level.MinPoints {
			current = level
		}
	}
	return current
}

// NextLevel returns the level after the current one, or false at the top of the ladder.
func NextLevel(points int) (Level, bool) {
	for _, level := range Levels {
		if level.MinPoints > points {
			return level, true
		}
	}
	return Level{}, false
}

// LevelProgress describes how far a points total is into its current level.
type LevelProgress struct {
	Current       Level  `json:"current"`
	Next          *Level `json:"next,omitempty"`
	PointsToNext  int    `json:"points_to_next"`
	PercentToNext int    `json:"percent_to_next"`
}

// ProgressFor computes the level progress of a points total.
func ProgressFor(points int) LevelProgress {
	if points < 0 {
		points = 0
	}
	progress := LevelProgress{Current: CurrentLevel(points), PercentToNext: 100}
	next, ok := NextLevel(points)
	if !ok {
		return progress
	}
	span := next.MinPoints - progress.Current.MinPoints
	progress.Next = &next
	progress.PointsToNext = next.MinPoints - points
	progress.PercentToNext = (points - progress.Current.MinPoints) * 100 / span
	return progress
}
