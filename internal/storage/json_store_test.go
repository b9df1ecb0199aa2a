package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/tend/internal/models"
)

func newTestStore(t *testing.T) *JSONStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tend.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return store
}

func TestJSONStore_InitTwiceFails(t *testing.T) {
	store := newTestStore(t)
	if err := store.Init(); err == nil {
		t.Error("Expected second Init to fail")
	}
}

func TestJSONStore_LoadBeforeInitFails(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := store.Load(); err == nil {
		t.Error("Expected Load to fail for missing storage")
	}
}

func TestJSONStore_HabitRoundTrip(t *testing.T) {
	store := newTestStore(t)

	target := 30
	habit := models.Habit{
		ID:            "h1",
		Name:          "Read",
		Importance:    5,
		TargetMinutes: &target,
		CreatedAt:     time.Now().UTC(),
	}
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}

	// Reload from disk
	reloaded := NewJSONStore(store.GetConfigPath())
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got, err := reloaded.GetHabit("h1")
	if err != nil {
		t.Fatalf("GetHabit failed: %v", err)
	}
	if got.Name != "Read" || got.Importance != 5 {
		t.Errorf("Habit changed across reload: %+v", got)
	}
	if got.TargetMinutes == nil || *got.TargetMinutes != 30 {
		t.Errorf("Expected target minutes 30, got %v", got.TargetMinutes)
	}

	if _, err := reloaded.GetHabitByName("Read"); err != nil {
		t.Errorf("GetHabitByName failed: %v", err)
	}
	if _, err := reloaded.GetHabitByName("Nope"); err == nil {
		t.Error("Expected error for unknown habit name")
	}
}

func TestJSONStore_GetAllHabitsOrderedByCreation(t *testing.T) {
	store := newTestStore(t)

	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range []string{"Walk", "Read", "Meditate"} {
		habit := models.Habit{
			ID:         name,
			Name:       name,
			Importance: 3,
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
		}
		if err := store.AddHabit(habit); err != nil {
			t.Fatalf("AddHabit failed: %v", err)
		}
	}

	habits, err := store.GetAllHabits()
	if err != nil {
		t.Fatalf("GetAllHabits failed: %v", err)
	}
	want := []string{"Walk", "Read", "Meditate"}
	for i, name := range want {
		if habits[i].Name != name {
			t.Errorf("Position %d: expected %s, got %s", i, name, habits[i].Name)
		}
	}
}

func TestJSONStore_UpdateAndDeleteHabit(t *testing.T) {
	store := newTestStore(t)

	habit := models.Habit{ID: "h1", Name: "Read", Importance: 3, CreatedAt: time.Now()}
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}

	habit.Importance = 5
	habit.Name = "Deep Read"
	if err := store.UpdateHabit(habit); err != nil {
		t.Fatalf("UpdateHabit failed: %v", err)
	}
	got, _ := store.GetHabit("h1")
	if got.Name != "Deep Read" || got.Importance != 5 {
		t.Errorf("Update not applied: %+v", got)
	}

	if err := store.UpdateHabit(models.Habit{ID: "nope"}); err == nil {
		t.Error("Expected update of unknown habit to fail")
	}

	// Deleting the habit keeps its logs (dangling references are legal)
	if err := store.UpsertLog(models.HabitLog{HabitID: "h1", Day: "2024-05-20", Minutes: 30}); err != nil {
		t.Fatalf("UpsertLog failed: %v", err)
	}
	if err := store.DeleteHabit("h1"); err != nil {
		t.Fatalf("DeleteHabit failed: %v", err)
	}
	logs, _ := store.GetAllLogs()
	if len(logs) != 1 {
		t.Errorf("Expected logs to survive habit deletion, got %d", len(logs))
	}
}

func TestJSONStore_LogUpsertByKey(t *testing.T) {
	store := newTestStore(t)

	if err := store.UpsertLog(models.HabitLog{HabitID: "h1", Day: "2024-05-20", Minutes: 30}); err != nil {
		t.Fatalf("UpsertLog failed: %v", err)
	}
	// Second write for the same (habit, day) replaces, never duplicates
	if err := store.UpsertLog(models.HabitLog{HabitID: "h1", Day: "2024-05-20", Minutes: 45}); err != nil {
		t.Fatalf("UpsertLog failed: %v", err)
	}

	logs, err := store.GetAllLogs()
	if err != nil {
		t.Fatalf("GetAllLogs failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("Expected a single log after upsert, got %d", len(logs))
	}
	if logs[0].Minutes != 45 {
		t.Errorf("Expected minutes 45, got %d", logs[0].Minutes)
	}
}

func TestJSONStore_ZeroMinutesRemovesLog(t *testing.T) {
	store := newTestStore(t)

	if err := store.UpsertLog(models.HabitLog{HabitID: "h1", Day: "2024-05-20", Minutes: 30}); err != nil {
		t.Fatalf("UpsertLog failed: %v", err)
	}
	if err := store.UpsertLog(models.HabitLog{HabitID: "h1", Day: "2024-05-20", Minutes: 0}); err != nil {
		t.Fatalf("UpsertLog with zero minutes failed: %v", err)
	}

	logs, _ := store.GetAllLogs()
	if len(logs) != 0 {
		t.Errorf("Expected zero-minute upsert to remove the log, got %d logs", len(logs))
	}
}

func TestJSONStore_DeleteLog(t *testing.T) {
	store := newTestStore(t)

	if err := store.UpsertLog(models.HabitLog{HabitID: "h1", Day: "2024-05-20", Minutes: 30}); err != nil {
		t.Fatalf("UpsertLog failed: %v", err)
	}
	if err := store.DeleteLog("h1", "2024-05-20"); err != nil {
		t.Fatalf("DeleteLog failed: %v", err)
	}
	if err := store.DeleteLog("h1", "2024-05-20"); err == nil {
		t.Error("Expected second delete to fail")
	}
}

func TestJSONStore_GratitudeUpsertByDay(t *testing.T) {
	store := newTestStore(t)

	entry := models.GratitudeEntry{Day: "2024-05-20", PromptID: "small-joy", Response: "coffee"}
	if err := store.UpsertGratitude(entry); err != nil {
		t.Fatalf("UpsertGratitude failed: %v", err)
	}

	entry.Response = "coffee on the porch"
	if err := store.UpsertGratitude(entry); err != nil {
		t.Fatalf("UpsertGratitude failed: %v", err)
	}

	entries, err := store.GetAllGratitude()
	if err != nil {
		t.Fatalf("GetAllGratitude failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected a single entry per day, got %d", len(entries))
	}
	if entries[0].Response != "coffee on the porch" {
		t.Errorf("Expected updated response, got %q", entries[0].Response)
	}

	if err := store.DeleteGratitude("2024-05-20"); err != nil {
		t.Fatalf("DeleteGratitude failed: %v", err)
	}
	if err := store.DeleteGratitude("2024-05-20"); err == nil {
		t.Error("Expected delete of missing entry to fail")
	}
}

func TestJSONStore_Settings(t *testing.T) {
	store := newTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings.InsightsEnabled {
		t.Error("Expected insights to default to disabled")
	}

	settings.InsightsEnabled = true
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	reloaded := NewJSONStore(store.GetConfigPath())
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	settings, _ = reloaded.GetSettings()
	if !settings.InsightsEnabled {
		t.Error("Expected insights flag to persist")
	}
}
