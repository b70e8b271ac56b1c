package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "campusdesk/internal/domain/ticket/valueobjects"
)

func newTestTicket(t *testing.T, priority vo.Priority) *Ticket {
	t.Helper()
	tk, err := NewTicket(1, nil, vo.CategoryHardware, "Projector flickers", "The projector in room 4 flickers during lessons", priority, Contact{Name: "A. Reyes", Email: "reyes@example.edu"})
	require.NoError(t, err)
	return tk
}

func TestNewTicket(t *testing.T) {
	before := time.Now()
	tk := newTestTicket(t, vo.PriorityP1)

	assert.Equal(t, vo.StatusNew, tk.Status())
	assert.Equal(t, vo.PriorityP1, tk.Priority())
	assert.True(t, strings.HasPrefix(tk.Number(), "TKT-"))
	assert.Equal(t, 1, tk.Version())

	// P1: 4h response, 24h resolution from creation
	assert.WithinDuration(t, before.Add(4*time.Hour), tk.SLA().ResponseDeadline, 2*time.Second)
	assert.WithinDuration(t, before.Add(24*time.Hour), tk.SLA().ResolutionDeadline, 2*time.Second)
}

func TestNewTicket_DefaultsPriority(t *testing.T) {
	tk, err := NewTicket(1, nil, vo.CategoryOther, "t", "d", vo.Priority("urgent"), Contact{})
	require.NoError(t, err)
	assert.Equal(t, vo.PriorityP4, tk.Priority())

	before := time.Now()
	assert.WithinDuration(t, before.Add(48*time.Hour), tk.SLA().ResponseDeadline, 2*time.Second)
	assert.WithinDuration(t, before.Add(240*time.Hour), tk.SLA().ResolutionDeadline, 2*time.Second)
}

func TestNewTicket_Validation(t *testing.T) {
	tests := []struct {
		name        string
		schoolID    uint
		category    vo.Category
		title       string
		description string
	}{
		{name: "missing school", schoolID: 0, category: vo.CategoryLMS, title: "t", description: "d"},
		{name: "invalid category", schoolID: 1, category: vo.Category("misc"), title: "t", description: "d"},
		{name: "missing title", schoolID: 1, category: vo.CategoryLMS, title: "", description: "d"},
		{name: "missing description", schoolID: 1, category: vo.CategoryLMS, title: "t", description: ""},
		{name: "title too long", schoolID: 1, category: vo.CategoryLMS, title: strings.Repeat("x", 201), description: "d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTicket(tt.schoolID, nil, tt.category, tt.title, tt.description, vo.PriorityP3, Contact{})
			assert.Error(t, err)
		})
	}
}

func TestTicket_SetStatus(t *testing.T) {
	tk := newTestTicket(t, vo.PriorityP2)

	require.NoError(t, tk.SetStatus(vo.StatusInProgress))
	assert.Equal(t, vo.StatusInProgress, tk.Status())
	assert.NotNil(t, tk.FirstResponseAt())
	assert.Equal(t, 2, tk.Version())

	require.NoError(t, tk.SetStatus(vo.StatusResolved))
	assert.NotNil(t, tk.ResolvedAt())

	require.NoError(t, tk.SetStatus(vo.StatusClosed))
	assert.NotNil(t, tk.ClosedAt())

	// any valid status may be written, including moving backward
	require.NoError(t, tk.SetStatus(vo.StatusNew))
	assert.Equal(t, vo.StatusNew, tk.Status())

	assert.Error(t, tk.SetStatus(vo.TicketStatus("archived")))
}

func TestTicket_DirectResolve(t *testing.T) {
	tk := newTestTicket(t, vo.PriorityP3)

	require.NoError(t, tk.SetStatus(vo.StatusResolved))
	assert.NotNil(t, tk.FirstResponseAt())
	assert.NotNil(t, tk.ResolvedAt())
}

func TestTicket_AssignTo(t *testing.T) {
	tk := newTestTicket(t, vo.PriorityP2)

	require.NoError(t, tk.AssignTo(9))
	require.NotNil(t, tk.AssigneeID())
	assert.Equal(t, uint(9), *tk.AssigneeID())
	assert.Equal(t, vo.StatusAssigned, tk.Status())

	assert.Error(t, tk.AssignTo(0))
}

func TestTicket_ChangePriority_KeepsSLA(t *testing.T) {
	tk := newTestTicket(t, vo.PriorityP1)
	deadlines := tk.SLA()

	require.NoError(t, tk.ChangePriority(vo.PriorityP4))
	assert.Equal(t, vo.PriorityP4, tk.Priority())
	assert.Equal(t, deadlines, tk.SLA())
}

func TestTicket_SLACompliance(t *testing.T) {
	tk := newTestTicket(t, vo.PriorityP1)

	now := time.Now()
	assert.True(t, tk.ResponseMet(now))
	assert.True(t, tk.ResolutionMet(now))
	assert.False(t, tk.IsOverdue(now))

	// past the resolution deadline with the ticket still open
	late := now.Add(25 * time.Hour)
	assert.False(t, tk.ResponseMet(late))
	assert.False(t, tk.ResolutionMet(late))
	assert.True(t, tk.IsOverdue(late))

	// responding and resolving in time fixes compliance regardless of when
	// the report is computed
	require.NoError(t, tk.SetStatus(vo.StatusResolved))
	assert.True(t, tk.ResponseMet(late))
	assert.True(t, tk.ResolutionMet(late))
	assert.False(t, tk.IsOverdue(late))
}
