package create_rental

import (
	"fmt"
	"time"

	"github.com/heyfarai/simplyteams/internal/domain"
	"github.com/heyfarai/simplyteams/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.FacilityID <= 0 {
		return fmt.Errorf("%w: facilityID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if !req.StartTime.Before(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	// Аренда не может пересекать полночь: часы работы и скан сессий
	// работают в рамках одного календарного дня
	if !isSameDay(req.StartTime, req.EndTime) {
		return fmt.Errorf("%w: rental must start and end on the same day", ErrInvalidInput)
	}

	return nil
}

// validateNotInPast проверяет, что начало аренды еще не прошло
func validateNotInPast(start, now time.Time) error {
	if start.Before(now) {
		return ErrStartInPast
	}
	return nil
}

// validateDuration проверяет длительность против политики площадки
func validateDuration(facility *domain.Facility, start, end time.Time) error {
	durationMinutes := int(end.Sub(start) / time.Minute)

	if durationMinutes < domain.MinBookingDurationMinutes || durationMinutes > domain.MaxBookingDurationMinutes {
		return fmt.Errorf("%w: duration %d minutes", ErrDurationOutOfBounds, durationMinutes)
	}

	if !facility.DurationWithinBounds(durationMinutes) {
		return fmt.Errorf("%w: duration %d minutes, allowed %d-%d",
			ErrDurationOutOfBounds, durationMinutes,
			facility.MinBookingDurationMinutes, facility.MaxBookingDurationMinutes)
	}

	return nil
}

// validateOperatingHours проверяет, что интервал лежит в часах работы площадки
func validateOperatingHours(facility *domain.Facility, start, end time.Time, defaultOpen, defaultClose types.TimeString) error {
	open, close := facility.OperatingHours(defaultOpen, defaultClose)

	startTS := types.NewTimeString(start)
	if startTS.IsBefore(open) {
		return fmt.Errorf("%w: starts at %s, opens at %s", ErrOutsideOperatingHours, startTS, open)
	}

	endTS := types.NewTimeString(end)
	if endTS.IsAfter(close) {
		return fmt.Errorf("%w: ends at %s, closes at %s", ErrOutsideOperatingHours, endTS, close)
	}

	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
