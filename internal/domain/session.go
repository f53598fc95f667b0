package domain

import (
	"time"

	"github.com/heyfarai/simplyteams/pkg/types"
)

// Session represents one materialized occurrence of a program on a concrete
// calendar date. Sessions are owned by their program: regeneration replaces
// the full set atomically.
type Session struct {
	ID        int64
	ProgramID int64

	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString

	FacilityID *int64

	// DropInPrice overrides the program's drop-in price for this session.
	DropInPrice *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SameDate reports whether the session falls on the given calendar date.
func (s *Session) SameDate(date time.Time) bool {
	y1, m1, d1 := s.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
