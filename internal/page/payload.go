package page

import (
	"quizgen/internal/question"
	"quizgen/internal/quiz"
)

// Payload is the data injected into the page as JSON.
type Payload struct {
	Title    string          `json:"title"`
	Sources  []SourcePayload `json:"sources"`
	Settings SettingsPayload `json:"settings"`
}

// SourcePayload is one question source.
type SourcePayload struct {
	Key       string              `json:"key"`
	Label     string              `json:"label"`
	Questions []question.Question `json:"questions"`
}

// SettingsPayload carries the runtime constants for the browser runtime.
type SettingsPayload struct {
	PrimarySource   string `json:"primary_source"`
	FixedCount      int    `json:"fixed_count"`
	RandomCount     int    `json:"random_count"`
	TimerSeconds    int    `json:"timer_seconds"`
	PassThreshold   int    `json:"pass_threshold"`
	WarningSeconds  int    `json:"warning_seconds"`
	CriticalSeconds int    `json:"critical_seconds"`
}

// NewPayload builds the page payload from a pool and runtime settings.
func NewPayload(title string, pool question.Pool, settings quiz.Settings) Payload {
	payload := Payload{
		Title:   title,
		Sources: make([]SourcePayload, 0, len(pool.Sources)),
		Settings: SettingsPayload{
			PrimarySource:   settings.PrimarySource,
			FixedCount:      settings.FixedCount,
			RandomCount:     settings.RandomCount,
			TimerSeconds:    settings.TimerSeconds,
			PassThreshold:   quiz.PassThreshold(settings),
			WarningSeconds:  quiz.WarningSeconds,
			CriticalSeconds: quiz.CriticalSeconds,
		},
	}
	for _, source := range pool.Sources {
		questions := source.Questions
		if questions == nil {
			questions = []question.Question{}
		}
		payload.Sources = append(payload.Sources, SourcePayload{
			Key:       source.Key,
			Label:     source.Label,
			Questions: questions,
		})
	}
	return payload
}
