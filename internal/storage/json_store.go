package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/julianstephens/tend/internal/models"
)

type Settings struct {
	InsightsEnabled bool `json:"insights_enabled"`
}

type Store struct {
	Version   int                              `json:"version"`
	Settings  Settings                         `json:"settings"`
	Habits    map[string]models.Habit          `json:"habits"`
	Logs      map[string]models.HabitLog       `json:"logs"`      // keyed by habitID@day
	Gratitude map[string]models.GratitudeEntry `json:"gratitude"` // keyed by day
}

// logKey is the upsert key enforcing one log per (habit, day) pair
func logKey(habitID, day string) string {
	return habitID + "@" + day
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version:   1,
		Settings:  Settings{},
		Habits:    make(map[string]models.Habit),
		Logs:      make(map[string]models.HabitLog),
		Gratitude: make(map[string]models.GratitudeEntry),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'tend init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure maps are initialized
	if s.store.Habits == nil {
		s.store.Habits = make(map[string]models.Habit)
	}
	if s.store.Logs == nil {
		s.store.Logs = make(map[string]models.HabitLog)
	}
	if s.store.Gratitude == nil {
		s.store.Gratitude = make(map[string]models.GratitudeEntry)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (Settings, error) {
	if s.store == nil {
		return Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) AddHabit(habit models.Habit) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Habits[habit.ID] = habit
	return s.save()
}

func (s *JSONStore) GetHabit(id string) (models.Habit, error) {
	if s.store == nil {
		return models.Habit{}, fmt.Errorf("storage not loaded")
	}

	habit, ok := s.store.Habits[id]
	if !ok {
		return models.Habit{}, fmt.Errorf("habit not found: %s", id)
	}

	return habit, nil
}

func (s *JSONStore) GetHabitByName(name string) (models.Habit, error) {
	if s.store == nil {
		return models.Habit{}, fmt.Errorf("storage not loaded")
	}

	for _, habit := range s.store.Habits {
		if habit.Name == name {
			return habit, nil
		}
	}

	return models.Habit{}, fmt.Errorf("habit not found: %s", name)
}

func (s *JSONStore) GetAllHabits() ([]models.Habit, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	habits := make([]models.Habit, 0, len(s.store.Habits))
	for _, habit := range s.store.Habits {
		habits = append(habits, habit)
	}

	// Stable creation order so downstream tie-breaking is deterministic
	sort.SliceStable(habits, func(i, j int) bool {
		if !habits[i].CreatedAt.Equal(habits[j].CreatedAt) {
			return habits[i].CreatedAt.Before(habits[j].CreatedAt)
		}
		return habits[i].Name < habits[j].Name
	})

	return habits, nil
}

func (s *JSONStore) UpdateHabit(habit models.Habit) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, ok := s.store.Habits[habit.ID]; !ok {
		return fmt.Errorf("habit not found: %s", habit.ID)
	}

	s.store.Habits[habit.ID] = habit
	return s.save()
}

// DeleteHabit removes the habit only. Its logs are kept; consumers resolve the
// dangling reference to a fallback label.
func (s *JSONStore) DeleteHabit(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, ok := s.store.Habits[id]; !ok {
		return fmt.Errorf("habit not found: %s", id)
	}

	delete(s.store.Habits, id)
	return s.save()
}

// UpsertLog stores the day's log for a habit, replacing any existing one.
// Zero or negative minutes mean "no log" and remove the entry instead.
func (s *JSONStore) UpsertLog(log models.HabitLog) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	key := logKey(log.HabitID, log.Day)
	if log.Minutes <= 0 {
		delete(s.store.Logs, key)
	} else {
		s.store.Logs[key] = log
	}
	return s.save()
}

func (s *JSONStore) DeleteLog(habitID, day string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	key := logKey(habitID, day)
	if _, ok := s.store.Logs[key]; !ok {
		return fmt.Errorf("no log for habit %s on %s", habitID, day)
	}

	delete(s.store.Logs, key)
	return s.save()
}

func (s *JSONStore) GetAllLogs() ([]models.HabitLog, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	logs := make([]models.HabitLog, 0, len(s.store.Logs))
	for _, log := range s.store.Logs {
		logs = append(logs, log)
	}

	sort.SliceStable(logs, func(i, j int) bool {
		if logs[i].Day != logs[j].Day {
			return logs[i].Day < logs[j].Day
		}
		return logs[i].HabitID < logs[j].HabitID
	})

	return logs, nil
}

func (s *JSONStore) UpsertGratitude(entry models.GratitudeEntry) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Gratitude[entry.Day] = entry
	return s.save()
}

func (s *JSONStore) DeleteGratitude(day string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, ok := s.store.Gratitude[day]; !ok {
		return fmt.Errorf("no gratitude entry for %s", day)
	}

	delete(s.store.Gratitude, day)
	return s.save()
}

func (s *JSONStore) GetAllGratitude() ([]models.GratitudeEntry, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	entries := make([]models.GratitudeEntry, 0, len(s.store.Gratitude))
	for _, entry := range s.store.Gratitude {
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Day < entries[j].Day
	})

	return entries, nil
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple tend processes that share the same storage path at the
//     same time is not supported; the whole-file write is last-write-wins.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
