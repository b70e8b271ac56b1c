package valueobjects

import "time"

// Priority ranks a ticket P1 (most urgent) through P4. Each priority carries
// fixed SLA response and resolution windows.
type Priority string

const (
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
	PriorityP3 Priority = "P3"
	PriorityP4 Priority = "P4"
)

// DefaultPriority is applied when a ticket arrives without a recognized
// priority.
const DefaultPriority = PriorityP4

type slaWindow struct {
	response   time.Duration
	resolution time.Duration
}

var slaTable = map[Priority]slaWindow{
	PriorityP1: {response: 4 * time.Hour, resolution: 24 * time.Hour},
	PriorityP2: {response: 8 * time.Hour, resolution: 48 * time.Hour},
	PriorityP3: {response: 24 * time.Hour, resolution: 120 * time.Hour},
	PriorityP4: {response: 48 * time.Hour, resolution: 240 * time.Hour},
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	_, ok := slaTable[p]
	return ok
}

// ResponseWindow returns the SLA response window for the priority.
func (p Priority) ResponseWindow() time.Duration {
	return slaTable[p].response
}

// ResolutionWindow returns the SLA resolution window for the priority.
func (p Priority) ResolutionWindow() time.Duration {
	return slaTable[p].resolution
}

// NormalizePriority maps an arbitrary input string to a valid priority,
// falling back to the default for absent or unrecognized values.
func NormalizePriority(s string) Priority {
	p := Priority(s)
	if p.IsValid() {
		return p
	}
	return DefaultPriority
}
