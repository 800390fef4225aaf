package adapters

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
	"github.com/ibadah-tracker/backend/internal/domain/valueobject"
)

//go:embed schedules/default.yaml
var defaultScheduleFS embed.FS

type yamlScheduleFile struct {
	Version int                 `yaml:"version"`
	Default yamlTimes           `yaml:"default"`
	Cities  map[string]yamlCity `yaml:"cities"`
}

type yamlCity struct {
	Times yamlTimes            `yaml:"times"`
	Dates map[string]yamlTimes `yaml:"dates"`
}

type yamlTimes map[string]string

// ScheduleFileProvider serves prayer times from a YAML schedule file.
type ScheduleFileProvider struct {
	defaults entity.PrayerSchedule
	cities   map[string]citySchedule
}

type citySchedule struct {
	times entity.PrayerSchedule
	dates map[string]entity.PrayerSchedule
}

// NewScheduleFileProvider loads the schedule at path, or the bundled schedule when path is empty.
func NewScheduleFileProvider(path string) (*ScheduleFileProvider, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = defaultScheduleFS.ReadFile("schedules/default.yaml")
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read prayer schedule: %w", err)
	}
	return NewScheduleProviderFromYAML(data)
}

// NewScheduleProviderFromYAML parses a schedule document.
func NewScheduleProviderFromYAML(data []byte) (*ScheduleFileProvider, error) {
	var file yamlScheduleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse prayer schedule: %w", err)
	}

	provider := &ScheduleFileProvider{
		defaults: toSchedule(file.Default),
		cities:   make(map[string]citySchedule, len(file.Cities)),
	}
	for name, city := range file.Cities {
		cs := citySchedule{
			times: toSchedule(city.Times),
			dates: make(map[string]entity.PrayerSchedule, len(city.Dates)),
		}
		for date, times := range city.Dates {
			if !valueobject.IsDateKey(date) {
				slog.Warn("Ignoring schedule override with malformed date", "city", name, "date", date)
				continue
			}
			cs.dates[date] = toSchedule(times)
		}
		provider.cities[normalizeCity(name)] = cs
	}
	return provider, nil
}

// Schedule returns the prayer times for the location's city on date, layered over the defaults.
func (p *ScheduleFileProvider) Schedule(ctx context.Context, location adapter.ScheduleLocation, date string) (entity.PrayerSchedule, error) {
	schedule := make(entity.PrayerSchedule, len(entity.Prayers))
	for name, at := range p.defaults {
		schedule[name] = at
	}

	city, ok := p.cities[normalizeCity(location.City)]
	if !ok {
		return schedule, nil
	}
	for name, at := range city.times {
		schedule[name] = at
	}
	for name, at := range city.dates[date] {
		schedule[name] = at
	}
	return schedule, nil
}

func toSchedule(times yamlTimes) entity.PrayerSchedule {
	schedule := make(entity.PrayerSchedule, len(times))
	for key, at := range times {
		name := entity.PrayerName(strings.ToLower(strings.TrimSpace(key)))
		if !name.IsValid() {
			slog.Warn("Ignoring schedule entry for unknown prayer", "prayer", key)
			continue
		}
		if _, _, ok := valueobject.ParseClock(at); !ok {
			slog.Warn("Ignoring unparsable schedule time", "prayer", key, "time", at)
			continue
		}
		schedule[name] = strings.TrimSpace(at)
	}
	return schedule
}

func normalizeCity(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}
