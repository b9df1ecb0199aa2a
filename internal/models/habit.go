package models

import "time"

// Habit represents a recurring practice tracked in minutes per day
type Habit struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Importance    int       `json:"importance"` // 1-5, 5 is highest
	TargetMinutes *int      `json:"target_minutes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// HabitLog records the minutes practiced for one habit on one day.
// At most one log exists per (HabitID, Day) pair; the store upserts by that key.
type HabitLog struct {
	HabitID string `json:"habit_id"`
	Day     string `json:"day"` // YYYY-MM-DD format
	Minutes int    `json:"minutes"`
}
