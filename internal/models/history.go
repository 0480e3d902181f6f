package models

// HistoryEntry records one wheel result
type HistoryEntry struct {
	// Result is the text of the selected option
	Result string `json:"result"`

	// Time is the wall clock time the result was recorded (HH:MM:SS)
	Time string `json:"time"`

	// Timestamp is the same moment in Unix milliseconds
	Timestamp int64 `json:"timestamp"`

	// Angle is the final wheel angle, nil when it was not captured
	Angle *float64 `json:"angle"`
}
