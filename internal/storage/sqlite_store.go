package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/julianstephens/tend/internal/models"
	_ "modernc.org/sqlite"
)

// schemaVersion is written to PRAGMA user_version after the schema is created.
// Bump it together with any schema change below.
const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS habits (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	importance INTEGER NOT NULL,
	target_minutes INTEGER,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS habit_logs (
	habit_id TEXT NOT NULL,
	day TEXT NOT NULL,
	minutes INTEGER NOT NULL,
	PRIMARY KEY (habit_id, day)
);

CREATE TABLE IF NOT EXISTS gratitude_entries (
	day TEXT PRIMARY KEY,
	prompt_id TEXT NOT NULL,
	response TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS settings (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.ensureSchema(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'tend init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return s.validateSchemaVersion()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) ensureSchema() error {
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	_, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion))
	return err
}

func (s *SQLiteStore) validateSchemaVersion() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version > schemaVersion {
		return fmt.Errorf("storage schema version %d is newer than this build supports (%d)", version, schemaVersion)
	}
	if version < schemaVersion {
		// Older or fresh file: the schema is additive, so ensure it in place
		return s.ensureSchema()
	}
	return nil
}

func (s *SQLiteStore) GetSettings() (Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return Settings{}, err
	}
	defer rows.Close()

	settings := Settings{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return Settings{}, err
		}
		switch key {
		case "insights_enabled":
			settings.InsightsEnabled = value == "true"
		}
	}

	return settings, rows.Err()
}

func (s *SQLiteStore) SaveSettings(settings Settings) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (key, value) VALUES ('insights_enabled', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		strconv.FormatBool(settings.InsightsEnabled))
	return err
}

func (s *SQLiteStore) AddHabit(habit models.Habit) error {
	_, err := s.db.Exec(`
		INSERT INTO habits (id, name, importance, target_minutes, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		habit.ID, habit.Name, habit.Importance, nullableInt(habit.TargetMinutes),
		habit.CreatedAt.UTC().Format(time.RFC3339))
	return err
}

func (s *SQLiteStore) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, importance, target_minutes, created_at
		FROM habits WHERE id = ?`, id)
	habit, err := scanHabit(row)
	if err == sql.ErrNoRows {
		return models.Habit{}, fmt.Errorf("habit not found: %s", id)
	}
	return habit, err
}

func (s *SQLiteStore) GetHabitByName(name string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, importance, target_minutes, created_at
		FROM habits WHERE name = ?`, name)
	habit, err := scanHabit(row)
	if err == sql.ErrNoRows {
		return models.Habit{}, fmt.Errorf("habit not found: %s", name)
	}
	return habit, err
}

func (s *SQLiteStore) GetAllHabits() ([]models.Habit, error) {
	rows, err := s.db.Query(`
		SELECT id, name, importance, target_minutes, created_at
		FROM habits ORDER BY created_at, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	habits := make([]models.Habit, 0)
	for rows.Next() {
		habit, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, habit)
	}

	return habits, rows.Err()
}

func (s *SQLiteStore) UpdateHabit(habit models.Habit) error {
	res, err := s.db.Exec(`
		UPDATE habits SET name = ?, importance = ?, target_minutes = ?
		WHERE id = ?`,
		habit.Name, habit.Importance, nullableInt(habit.TargetMinutes), habit.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("habit not found: %s", habit.ID)
	}
	return nil
}

// DeleteHabit removes the habit row only. Its logs are kept; consumers resolve
// the dangling reference to a fallback label.
func (s *SQLiteStore) DeleteHabit(id string) error {
	res, err := s.db.Exec("DELETE FROM habits WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("habit not found: %s", id)
	}
	return nil
}

// UpsertLog stores the day's log for a habit, replacing any existing one.
// Zero or negative minutes mean "no log" and remove the row instead.
func (s *SQLiteStore) UpsertLog(log models.HabitLog) error {
	if log.Minutes <= 0 {
		_, err := s.db.Exec("DELETE FROM habit_logs WHERE habit_id = ? AND day = ?", log.HabitID, log.Day)
		return err
	}
	_, err := s.db.Exec(`
		INSERT INTO habit_logs (habit_id, day, minutes) VALUES (?, ?, ?)
		ON CONFLICT(habit_id, day) DO UPDATE SET minutes = excluded.minutes`,
		log.HabitID, log.Day, log.Minutes)
	return err
}

func (s *SQLiteStore) DeleteLog(habitID, day string) error {
	res, err := s.db.Exec("DELETE FROM habit_logs WHERE habit_id = ? AND day = ?", habitID, day)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("no log for habit %s on %s", habitID, day)
	}
	return nil
}

func (s *SQLiteStore) GetAllLogs() ([]models.HabitLog, error) {
	rows, err := s.db.Query("SELECT habit_id, day, minutes FROM habit_logs ORDER BY day, habit_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]models.HabitLog, 0)
	for rows.Next() {
		var log models.HabitLog
		if err := rows.Scan(&log.HabitID, &log.Day, &log.Minutes); err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}

	return logs, rows.Err()
}

func (s *SQLiteStore) UpsertGratitude(entry models.GratitudeEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO gratitude_entries (day, prompt_id, response) VALUES (?, ?, ?)
		ON CONFLICT(day) DO UPDATE SET prompt_id = excluded.prompt_id, response = excluded.response`,
		entry.Day, entry.PromptID, entry.Response)
	return err
}

func (s *SQLiteStore) DeleteGratitude(day string) error {
	res, err := s.db.Exec("DELETE FROM gratitude_entries WHERE day = ?", day)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("no gratitude entry for %s", day)
	}
	return nil
}

func (s *SQLiteStore) GetAllGratitude() ([]models.GratitudeEntry, error) {
	rows, err := s.db.Query("SELECT day, prompt_id, response FROM gratitude_entries ORDER BY day")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.GratitudeEntry, 0)
	for rows.Next() {
		var entry models.GratitudeEntry
		if err := rows.Scan(&entry.Day, &entry.PromptID, &entry.Response); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (models.Habit, error) {
	var habit models.Habit
	var target sql.NullInt64
	var createdAt string

	if err := row.Scan(&habit.ID, &habit.Name, &habit.Importance, &target, &createdAt); err != nil {
		return models.Habit{}, err
	}

	if target.Valid {
		v := int(target.Int64)
		habit.TargetMinutes = &v
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		habit.CreatedAt = t
	}

	return habit, nil
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
