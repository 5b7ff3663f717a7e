package domain

const (
	NudgeWarning = "warning"
	NudgeInfo    = "info"
)

// Nudge reports an input that was clamped or deserves attention.
type Nudge struct {
	Field   string `json:"field"`
	Level   string `json:"level"`
	Message string `json:"message"`
}
