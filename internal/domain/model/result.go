package model

// LevelResult is a single resolved level attempt reported by the game layer.
type LevelResult struct {
	// ResultID is an optional unique id used for duplicate suppression when
	// the same result is submitted more than once (e.g. an HTTP retry).
	ResultID string `json:"resultId,omitempty"`

	LevelID   string  `json:"levelId"`
	Completed bool    `json:"completed"`
	Mistakes  int     `json:"mistakes"`
	Duration  float64 `json:"duration"` // seconds spent on the attempt
	MaxCombo  int     `json:"maxCombo"`
}

// Validate checks the result payload before it is applied to any record.
func (r LevelResult) Validate() error {
	if r.LevelID == "" {
		return ErrUnknownLevel
	}
	if r.Mistakes < 0 || r.MaxCombo < 0 {
		return ErrNegativeCounter
	}
	if r.Duration < 0 {
		return ErrNegativeDuration
	}
	return nil
}
