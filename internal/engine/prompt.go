package engine

import "github.com/julianstephens/tend/internal/models"

// DefaultPrompts is the fixed gratitude prompt catalog. Order matters: the
// day-key hash in PromptForDay indexes into this list, so reordering or
// removing entries changes which prompt a given date maps to.
var DefaultPrompts = []models.Prompt{
	{ID: "small-joy", Text: "What small moment brought you joy today?"},
	{ID: "person", Text: "Who made a difference in your day, and how?"},
	{ID: "place", Text: "What place made you feel at ease today?"},
	{ID: "learned", Text: "What did you learn today that you're thankful for?"},
	{ID: "body", Text: "What did your body let you do today?"},
	{ID: "comfort", Text: "What comfort do you usually take for granted?"},
	{ID: "challenge", Text: "What challenge are you grateful for in hindsight?"},
	{ID: "nature", Text: "What did you notice in nature today?"},
	{ID: "laugh", Text: "What made you laugh or smile today?"},
	{ID: "ahead", Text: "What are you looking forward to tomorrow?"},
}

// PromptIndex maps a day key to an index in [0, n). The hash folds each
// character in with a mod at every step, so the result depends only on the key:
// the same key selects the same index on any machine, any run.
func PromptIndex(key string, n int) int {
	if n <= 0 {
		return 0
	}
	acc := 0
	for _, ch := range key {
		acc = (acc + int(ch)*31) % n
	}
	return acc
}

// PromptForDay deterministically selects the gratitude prompt for a day key.
// An empty prompt list yields a zero Prompt.
func PromptForDay(key string, prompts []models.Prompt) models.Prompt {
	if len(prompts) == 0 {
		return models.Prompt{}
	}
	return prompts[PromptIndex(key, len(prompts))]
}
