// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// PrayerName identifies one of the five mandatory daily prayers.
type PrayerName string

const (
	PrayerFajr    PrayerName = "fajr"
	PrayerDhuhr   PrayerName = "dhuhr"
	PrayerAsr     PrayerName = "asr"
	PrayerMaghrib PrayerName = "maghrib"
	PrayerIsha    PrayerName = "isha"
)

// Prayers lists the mandatory prayers in daily order.
var Prayers = []PrayerName{PrayerFajr, PrayerDhuhr, PrayerAsr, PrayerMaghrib, PrayerIsha}

// IsValid reports whether p is one of the five mandatory prayers.
func (p PrayerName) IsValid() bool {
	switch p {
	case PrayerFajr, PrayerDhuhr, PrayerAsr, PrayerMaghrib, PrayerIsha:
		return true
	}
	return false
}

// PrayerStatus is the logged state of a prayer on a given day.
type PrayerStatus string

const (
	PrayerStatusNone   PrayerStatus = "none"
	PrayerStatusOnTime PrayerStatus = "ontime"
	PrayerStatusLate   PrayerStatus = "late"
	PrayerStatusMissed PrayerStatus = "missed"
)

// IsValid reports whether s is a known status.
func (s PrayerStatus) IsValid() bool {
	switch s {
	case PrayerStatusNone, PrayerStatusOnTime, PrayerStatusLate, PrayerStatusMissed:
		return true
	}
	return false
}

// IsPrayed reports whether the status counts the prayer as performed.
func (s PrayerStatus) IsPrayed() bool {
	return s == PrayerStatusOnTime || s == PrayerStatusLate
}

// PrayerEntry is the state of a single prayer within a day.
type PrayerEntry struct {
	Status    PrayerStatus `json:"status"`
	Timestamp *time.Time   `json:"timestamp"`
}

// PrayerLog is the record of all five prayers for one calendar day.
type PrayerLog struct {
	Date    string      `json:"date"`
	Fajr    PrayerEntry `json:"fajr"`
	Dhuhr   PrayerEntry `json:"dhuhr"`
	Asr     PrayerEntry `json:"asr"`
	Maghrib PrayerEntry `json:"maghrib"`
	Isha    PrayerEntry `json:"isha"`
}

// NewPrayerLog creates the default day record with every prayer in status none.
func NewPrayerLog(date string) *PrayerLog {
	empty := PrayerEntry{Status: PrayerStatusNone}
	return &PrayerLog{
		Date:    date,
		Fajr:    empty,
		Dhuhr:   empty,
		Asr:     empty,
		Maghrib: empty,
		Isha:    empty,
	}
}

// Entry returns the entry for the given prayer.
func (l *PrayerLog) Entry(name PrayerName) PrayerEntry {
	if p := l.slot(name); p != nil {
		return *p
	}
	return PrayerEntry{Status: PrayerStatusNone}
}

// SetEntry replaces the entry for the given prayer. Unknown prayers are ignored.
func (l *PrayerLog) SetEntry(name PrayerName, entry PrayerEntry) {
	if p := l.slot(name); p != nil {
		*p = entry
	}
}

func (l *PrayerLog) slot(name PrayerName) *PrayerEntry {
	switch name {
	case PrayerFajr:
		return &l.Fajr
	case PrayerDhuhr:
		return &l.Dhuhr
	case PrayerAsr:
		return &l.Asr
	case PrayerMaghrib:
		return &l.Maghrib
	case PrayerIsha:
		return &l.Isha
	}
	return nil
}

// Normalize repairs fields left empty by older or partial records.
func (l *PrayerLog) Normalize(date string) {
	if l.Date == "" {
		l.Date = date
	}
	for _, name := range Prayers {
		p := l.slot(name)
		if !p.Status.IsValid() {
			p.Status = PrayerStatusNone
			p.Timestamp = nil
		}
	}
}

// IsComplete reports whether all five prayers were performed (on time or late).
func (l *PrayerLog) IsComplete() bool {
	for _, name := range Prayers {
		if !l.Entry(name).Status.IsPrayed() {
			return false
		}
	}
	return true
}

// CountStatus returns how many prayers of the day are in the given status.
func (l *PrayerLog) CountStatus(status PrayerStatus) int {
	count := 0
	for _, name := range Prayers {
		if l.Entry(name).Status == status {
			count++
		}
	}
	return count
}

// Points returns the reward the day's prayers currently earn.
func (l *PrayerLog) Points() int {
	total := 0
	for _, name := range Prayers {
		total += PrayerStatusPoints(l.Entry(name).Status)
	}
	return total
}

// PrayerSchedule maps each prayer to its local "HH:MM" time for one day.
type PrayerSchedule map[PrayerName]string
