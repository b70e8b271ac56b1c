package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	vo "campusdesk/internal/domain/ticket/valueobjects"
)

func TestNewSLA(t *testing.T) {
	created := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	sla := NewSLA(vo.PriorityP2, created)
	assert.Equal(t, created.Add(8*time.Hour), sla.ResponseDeadline)
	assert.Equal(t, created.Add(48*time.Hour), sla.ResolutionDeadline)
}

func TestSLA_ResponseMet(t *testing.T) {
	created := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	sla := NewSLA(vo.PriorityP1, created) // response due 13:00

	early := created.Add(2 * time.Hour)
	late := created.Add(6 * time.Hour)

	// no response yet: compliant until the deadline passes
	assert.True(t, sla.ResponseMet(nil, early))
	assert.False(t, sla.ResponseMet(nil, late))

	// responded in time: compliant forever after
	assert.True(t, sla.ResponseMet(&early, late))

	// responded late: non-compliant even before later reads
	assert.False(t, sla.ResponseMet(&late, late.Add(time.Hour)))
}

func TestSLA_ResolutionMet(t *testing.T) {
	created := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	sla := NewSLA(vo.PriorityP1, created) // resolution due +24h

	inTime := created.Add(20 * time.Hour)
	tooLate := created.Add(30 * time.Hour)

	assert.True(t, sla.ResolutionMet(&inTime, tooLate))
	assert.False(t, sla.ResolutionMet(&tooLate, tooLate))
	assert.True(t, sla.ResolutionMet(nil, inTime))
	assert.False(t, sla.ResolutionMet(nil, tooLate))
}
