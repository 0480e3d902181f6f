// Package assign maps roles to usernames and plays the timed, sequential
// reveal of the result.
package assign

import (
	"github.com/KirkDiggler/spinwheel/internal/models"
	"github.com/KirkDiggler/spinwheel/internal/random"
)

// Assign shuffles a copy of usernames and hands them to roles in role order.
// When there are more roles than usernames the shuffled usernames wrap
// around, so every username is used at least once.
func Assign(src random.Source, roles, usernames []string) ([]models.Assignment, error) {
	if len(roles) == 0 {
		return nil, ErrNoRoles
	}
	if len(usernames) == 0 {
		return nil, ErrNoUsernames
	}

	shuffled := append([]string(nil), usernames...)
	random.Shuffle(src, shuffled)

	assignments := make([]models.Assignment, len(roles))
	for k, role := range roles {
		assignments[k] = models.Assignment{
			Role:     role,
			Username: shuffled[k%len(shuffled)],
			Index:    k,
		}
	}

	return assignments, nil
}
