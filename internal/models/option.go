package models

// Option is one entry of the wheel's option list
type Option struct {
	// Text is the non-empty, trimmed label shown on the segment
	Text string `json:"text"`

	// Enabled reports whether the option takes a segment on the wheel
	Enabled bool `json:"enabled"`
}

// EnabledOptions returns the enabled options in list order. The returned
// slice never aliases the input.
func EnabledOptions(options []Option) []Option {
	enabled := make([]Option, 0, len(options))
	for _, option := range options {
		if option.Enabled {
			enabled = append(enabled, option)
		}
	}
	return enabled
}

// OptionsFromLines builds an enabled option per line
func OptionsFromLines(lines []string) []Option {
	options := make([]Option, len(lines))
	for i, line := range lines {
		options[i] = Option{Text: line, Enabled: true}
	}
	return options
}
