package models

import "time"

// DefaultNotificationDuration is how long a notification stays visible
// when no duration is given
const DefaultNotificationDuration = 3 * time.Second

// Notification is a transient error or status message
type Notification struct {
	// Message is the text to display
	Message string

	// Duration is how long the message stays visible
	Duration time.Duration

	// Target routes the message to a surface, e.g. a Discord channel ID.
	// Empty means the default surface of the display.
	Target string
}
