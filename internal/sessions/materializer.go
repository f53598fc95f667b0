package sessions

import (
	"fmt"

	"github.com/heyfarai/simplyteams/internal/domain"
	"github.com/heyfarai/simplyteams/internal/recurrence"
)

// Plan describes the batch of session operations a regeneration run must
// apply. The plan is computed up front so the persistence layer can execute
// it inside a single transaction: either the full replace commits or nothing
// does.
type Plan struct {
	// DeleteExisting instructs the store to remove every session owned by
	// the program before applying Creates.
	DeleteExisting bool
	Creates        []domain.Session

	// ReplacesCustom flags a custom -> generated transition: the deleted
	// sessions were operator-managed, which call sites should log loudly.
	ReplacesCustom bool
}

// IsNoop reports whether the plan changes nothing.
func (p Plan) IsNoop() bool {
	return !p.DeleteExisting && len(p.Creates) == 0
}

// BuildPlan computes the session operations for a program create or update.
//
// wasCustom is the program's CustomSessions value before the triggering
// update (false on create).
//
//   - customSessions=true: operator-managed sessions are never touched.
//   - generated mode: the owned session set is replaced wholesale
//     (delete-then-recreate), so regenerating twice with identical
//     parameters yields the same final set and repeated edits never
//     accumulate duplicates.
func BuildPlan(program *domain.Program, wasCustom bool) (Plan, error) {
	if program.CustomSessions {
		return Plan{}, nil
	}

	occurrences, err := recurrence.Expand(recurrence.Params{
		StartDate:         program.StartDate,
		EndDate:           program.EndDate,
		StartTime:         program.StartTime,
		EndTime:           program.EndTime,
		Repeats:           program.Repeats,
		Frequency:         program.Frequency,
		DaysOfWeek:        program.DaysOfWeek,
		RecurrenceEnds:    program.RecurrenceEnds,
		RecurrenceEndDate: program.RecurrenceEndDate,
		RecurrenceCount:   program.RecurrenceCount,
	})
	if err != nil {
		return Plan{}, fmt.Errorf("sessions: expand recurrence for program id=%d: %w", program.ID, err)
	}

	creates := make([]domain.Session, 0, len(occurrences))
	for _, occ := range occurrences {
		creates = append(creates, domain.Session{
			ProgramID:  program.ID,
			Date:       occ.Date,
			StartTime:  occ.StartTime,
			EndTime:    occ.EndTime,
			FacilityID: program.FacilityID,
		})
	}

	// Generated mode always replaces the full owned set, which also covers
	// the custom -> generated transition: operator sessions are purged.
	return Plan{
		DeleteExisting: true,
		Creates:        creates,
		ReplacesCustom: wasCustom,
	}, nil
}
