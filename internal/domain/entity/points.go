package entity

// Action is a rewarded kind of activity.
type Action string

const (
	ActionPrayerOnTime  Action = "prayer_ontime"
	ActionPrayerLate    Action = "prayer_late"
	ActionPrayerMissed  Action = "prayer_missed"
	ActionHabit         Action = "habit"
	ActionHadithRead    Action = "hadith_read"
	ActionSurahRead     Action = "surah_read"
	ActionSeerahChapter Action = "seerah_chapter"
	ActionZakatLogged   Action = "zakat_logged"
	ActionIbadahTimer   Action = "ibadah_timer"
)

// PointsTable is the constant reward per action.
var PointsTable = map[Action]int{
	ActionPrayerOnTime:  10,
	ActionPrayerLate:    5,
	ActionPrayerMissed:  0,
	ActionHabit:         3,
	ActionHadithRead:    2,
	ActionSurahRead:     5,
	ActionSeerahChapter: 10,
	ActionZakatLogged:   15,
	ActionIbadahTimer:   5,
}

// PrayerStatusPoints returns the reward a prayer earns in the given status.
func PrayerStatusPoints(status PrayerStatus) int {
	switch status {
	case PrayerStatusOnTime:
		return PointsTable[ActionPrayerOnTime]
	case PrayerStatusLate:
		return PointsTable[ActionPrayerLate]
	case PrayerStatusMissed:
		return PointsTable[ActionPrayerMissed]
	}
	return 0
}

// RewardKind is a one-off rewarded action that is never represented as a day log.
type RewardKind string

const (
	RewardHadithRead    RewardKind = "hadith_read"
	RewardSurahRead     RewardKind = "surah_read"
	RewardSeerahChapter RewardKind = "seerah_chapter"
	RewardZakatLogged   RewardKind = "zakat_logged"
	RewardIbadahTimer   RewardKind = "ibadah_timer"
)

// RewardKinds lists every one-off reward kind.
var RewardKinds = []RewardKind{RewardHadithRead, RewardSurahRead, RewardSeerahChapter, RewardZakatLogged, RewardIbadahTimer}

// IsValid reports whether k is a known reward kind.
func (k RewardKind) IsValid() bool {
	for _, known := range RewardKinds {
		if k == known {
			return true
		}
	}
	return false
}

// DefaultPoints returns the table reward for the kind.
func (k RewardKind) DefaultPoints() int {
	return PointsTable[Action(k)]
}

// RewardSet records which identifiers of one kind were already rewarded and how much each paid.
type RewardSet map[string]int

// Total returns the sum of all awarded points in the set.
func (s RewardSet) Total() int {
	total := 0
	for _, p := range s {
		if p > 0 {
			total += p
		}
	}
	return total
}

// PointsArchive keeps the contribution of day logs removed by retention cleanup.
type PointsArchive struct {
	Points      int    `json:"points"`
	ThroughDate string `json:"through_date"`
	PrunedDays  int    `json:"pruned_days"`
}

// Covers reports whether the day was folded into the archive.
func (a PointsArchive) Covers(date string) bool {
	return a.ThroughDate != "" && date <= a.ThroughDate
}

// Supersedes reports whether a reflects a later retention pass than other.
func (a PointsArchive) Supersedes(other PointsArchive) bool {
	if a.ThroughDate != other.ThroughDate {
		return a.ThroughDate > other.ThroughDate
	}
	return a.Points > other.Points
}
