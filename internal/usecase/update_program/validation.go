package update_program

import (
	"fmt"

	"github.com/heyfarai/simplyteams/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if len(req.Name) > domain.MaxProgramNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxProgramNameLength)
	}

	switch req.Type {
	case domain.ProgramCamp, domain.ProgramClinic, domain.ProgramTraining, domain.ProgramOpenGym:
	default:
		return fmt.Errorf("%w: unknown program type %q", ErrInvalidInput, req.Type)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: endDate before startDate", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	if err := validateRecurrence(req); err != nil {
		return err
	}

	if req.Capacity < 0 {
		return fmt.Errorf("%w: capacity must not be negative", ErrInvalidInput)
	}

	if req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	return nil
}

// validateRecurrence валидирует параметры повторения
func validateRecurrence(req *Request) error {
	if !req.Repeats {
		return nil
	}

	switch req.Frequency {
	case domain.FrequencyDaily, domain.FrequencyWeekly:
	default:
		return fmt.Errorf("%w: unknown frequency %q", ErrInvalidRecurrence, req.Frequency)
	}

	for _, day := range req.DaysOfWeek {
		if day.ToTimeWeekday() < 0 {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidRecurrence, day)
		}
	}

	switch req.RecurrenceEnds {
	case domain.RecurrenceEndsNever, "":
	case domain.RecurrenceEndsOnDate:
		if req.RecurrenceEndDate == nil {
			return fmt.Errorf("%w: recurrenceEndDate is required for onDate", ErrInvalidRecurrence)
		}
	case domain.RecurrenceEndsAfterN:
		if req.RecurrenceCount == nil || *req.RecurrenceCount <= 0 {
			return fmt.Errorf("%w: recurrenceCount must be positive for afterN", ErrInvalidRecurrence)
		}
		if *req.RecurrenceCount > domain.MaxRecurrenceCount {
			return fmt.Errorf("%w: recurrenceCount exceeds %d", ErrInvalidRecurrence, domain.MaxRecurrenceCount)
		}
	default:
		return fmt.Errorf("%w: unknown recurrenceEnds %q", ErrInvalidRecurrence, req.RecurrenceEnds)
	}

	return nil
}
