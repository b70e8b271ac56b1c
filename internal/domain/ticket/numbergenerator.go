package ticket

import (
	"fmt"
	"time"

	"campusdesk/internal/shared/id"
)

// GenerateNumber builds a ticket number like TKT-20260830-4F7K2M from the
// creation date plus a random base62 suffix. Deriving uniqueness from
// crypto-random material keeps concurrent creates safe; a count-then-insert
// sequence would hand two simultaneous creates the same number. The unique
// index on tickets.number backstops the (negligible) collision chance.
func GenerateNumber(createdAt time.Time) (string, error) {
	suffix, err := id.GenerateUpper(6)
	if err != nil {
		return "", fmt.Errorf("failed to generate ticket number: %w", err)
	}
	return fmt.Sprintf("TKT-%s-%s", createdAt.Format("20060102"), suffix), nil
}
