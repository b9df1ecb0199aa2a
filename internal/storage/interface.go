package storage

import "github.com/julianstephens/tend/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (Settings, error)
	SaveSettings(Settings) error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(name string) (models.Habit, error)
	GetAllHabits() ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	DeleteHabit(id string) error

	// Habit logs (one per habit per day, upsert-by-key)
	UpsertLog(models.HabitLog) error
	DeleteLog(habitID, day string) error
	GetAllLogs() ([]models.HabitLog, error)

	// Gratitude entries (one per day, upsert-by-key)
	UpsertGratitude(models.GratitudeEntry) error
	DeleteGratitude(day string) error
	GetAllGratitude() ([]models.GratitudeEntry, error)

	// Utils
	GetConfigPath() string
}
