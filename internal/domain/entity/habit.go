package entity

// HabitName identifies one of the tracked devotional habits.
type HabitName string

const (
	HabitQuran         HabitName = "quran"
	HabitMorningAdhkar HabitName = "morning_adhkar"
	HabitEveningAdhkar HabitName = "evening_adhkar"
	HabitDua           HabitName = "dua"
	HabitSadaqah       HabitName = "sadaqah"
	HabitFasting       HabitName = "fasting"
)

// Habits lists the tracked habits in display order.
var Habits = []HabitName{HabitQuran, HabitMorningAdhkar, HabitEveningAdhkar, HabitDua, HabitSadaqah, HabitFasting}

// IsValid reports whether h is a tracked habit.
func (h HabitName) IsValid() bool {
	for _, known := range Habits {
		if h == known {
			return true
		}
	}
	return false
}

// HabitLog is the record of habit completion for one calendar day.
type HabitLog struct {
	Date          string `json:"date"`
	Quran         bool   `json:"quran"`
	MorningAdhkar bool   `json:"morning_adhkar"`
	EveningAdhkar bool   `json:"evening_adhkar"`
	Dua           bool   `json:"dua"`
	Sadaqah       bool   `json:"sadaqah"`
	Fasting       bool   `json:"fasting"`
}

// NewHabitLog creates the default day record with every habit unchecked.
func NewHabitLog(date string) *HabitLog {
	return &HabitLog{Date: date}
}

// Done reports whether the habit is checked.
func (l *HabitLog) Done(name HabitName) bool {
	if p := l.slot(name); p != nil {
		return *p
	}
	return false
}

// Set updates the habit flag. Unknown habits are ignored.
func (l *HabitLog) Set(name HabitName, done bool) {
	if p := l.slot(name); p != nil {
		*p = done
	}
}

// Toggle flips the habit flag and returns the new value.
func (l *HabitLog) Toggle(name HabitName) bool {
	p := l.slot(name)
	if p == nil {
		return false
	}
	*p = !*p
	return *p
}

func (l *HabitLog) slot(name HabitName) *bool {
	switch name {
	case HabitQuran:
		return &l.Quran
	case HabitMorningAdhkar:
		return &l.MorningAdhkar
	case HabitEveningAdhkar:
		return &l.EveningAdhkar
	case HabitDua:
		return &l.Dua
	case HabitSadaqah:
		return &l.Sadaqah
	case HabitFasting:
		return &l.Fasting
	}
	return nil
}

// CompletedCount returns how many habits are checked.
func (l *HabitLog) CompletedCount() int {
	count := 0
	for _, name := range Habits {
		if l.Done(name) {
			count++
		}
	}
	return count
}

// Points returns the reward the day's habits currently earn.
func (l *HabitLog) Points() int {
	return l.CompletedCount() * PointsTable[ActionHabit]
}
