package models

// AssignmentStatistics summarises one assignment run
type AssignmentStatistics struct {
	TotalRoles     int
	TotalUsernames int
	Assignments    int

	// RoleDistribution counts assignments per role
	RoleDistribution map[string]int

	// UsernameDistribution counts assignments per username
	UsernameDistribution map[string]int
}

// NewAssignmentStatistics computes the statistics of a run
func NewAssignmentStatistics(roles, usernames []string, assignments []Assignment) *AssignmentStatistics {
	stats := &AssignmentStatistics{
		TotalRoles:           len(roles),
		TotalUsernames:       len(usernames),
		Assignments:          len(assignments),
		RoleDistribution:     make(map[string]int),
		UsernameDistribution: make(map[string]int),
	}

	for _, a := range assignments {
		stats.RoleDistribution[a.Role]++
		stats.UsernameDistribution[a.Username]++
	}

	return stats
}

// HistoryStatistics counts how often each result appears in a history
func HistoryStatistics(entries []*HistoryEntry) map[string]int {
	stats := make(map[string]int)
	for _, entry := range entries {
		stats[entry.Result]++
	}
	return stats
}
