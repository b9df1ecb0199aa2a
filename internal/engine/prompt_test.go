package engine

import (
	"testing"
	"time"

	"github.com/julianstephens/tend/internal/models"
)

func tenPrompts() []models.Prompt {
	prompts := make([]models.Prompt, 10)
	for i := range prompts {
		prompts[i] = models.Prompt{ID: string(rune('a' + i)), Text: "prompt"}
	}
	return prompts
}

func TestPromptIndex_KnownKey(t *testing.T) {
	// Hand-computed: folding "2024-01-01" character by character with mod 10
	// at every step lands on index 4.
	if got := PromptIndex("2024-01-01", 10); got != 4 {
		t.Errorf("Expected index 4 for 2024-01-01, got %d", got)
	}
}

func TestPromptIndex_Deterministic(t *testing.T) {
	keys := []string{"2024-01-01", "2024-01-02", "2023-12-31", "2025-06-15"}
	for _, key := range keys {
		first := PromptIndex(key, 10)
		for i := 0; i < 5; i++ {
			if got := PromptIndex(key, 10); got != first {
				t.Fatalf("PromptIndex(%s) not stable: %d then %d", key, first, got)
			}
		}
	}
}

func TestPromptIndex_AlwaysInRange(t *testing.T) {
	for _, n := range []int{1, 3, 10, 17} {
		for month := 1; month <= 12; month++ {
			for dayOfMonth := 1; dayOfMonth <= 28; dayOfMonth++ {
				key := DayKey(time.Date(2024, time.Month(month), dayOfMonth, 12, 0, 0, 0, time.Local))
				idx := PromptIndex(key, n)
				if idx < 0 || idx >= n {
					t.Fatalf("PromptIndex(%s, %d) = %d, out of range", key, n, idx)
				}
			}
		}
	}
}

func TestPromptForDay(t *testing.T) {
	prompts := tenPrompts()

	p1 := PromptForDay("2024-01-01", prompts)
	p2 := PromptForDay("2024-01-01", prompts)
	if p1 != p2 {
		t.Errorf("Same key selected different prompts: %+v vs %+v", p1, p2)
	}
	if p1 != prompts[4] {
		t.Errorf("Expected prompt at index 4, got %+v", p1)
	}
}

func TestPromptForDay_EmptyCatalog(t *testing.T) {
	if p := PromptForDay("2024-01-01", nil); p != (models.Prompt{}) {
		t.Errorf("Expected zero prompt for empty catalog, got %+v", p)
	}
}

func TestPromptForDay_SingleEntry(t *testing.T) {
	prompts := []models.Prompt{{ID: "only", Text: "the one"}}
	for _, key := range []string{"2024-01-01", "2024-07-19", "1999-12-31"} {
		if p := PromptForDay(key, prompts); p.ID != "only" {
			t.Errorf("Expected the sole prompt for key %s, got %+v", key, p)
		}
	}
}

func TestDefaultPrompts_StableIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range DefaultPrompts {
		if p.ID == "" || p.Text == "" {
			t.Errorf("Prompt with empty id or text: %+v", p)
		}
		if seen[p.ID] {
			t.Errorf("Duplicate prompt id %q", p.ID)
		}
		seen[p.ID] = true
	}
}
