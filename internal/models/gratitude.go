package models

// GratitudeEntry is a single day's reflection. At most one entry exists per day.
type GratitudeEntry struct {
	Day      string `json:"day"` // YYYY-MM-DD format
	PromptID string `json:"prompt_id"`
	Response string `json:"response"`
}

// Prompt is one entry in the fixed gratitude prompt catalog
type Prompt struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
