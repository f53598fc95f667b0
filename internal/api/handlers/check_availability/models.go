package check_availability

import (
	"fmt"
	"time"

	"github.com/heyfarai/simplyteams/internal/domain"
	checkAvailability "github.com/heyfarai/simplyteams/internal/usecase/check_availability"
	"github.com/heyfarai/simplyteams/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Available    bool    `json:"available"`
	Reason       *string `json:"reason,omitempty"`
	ConflictKind *string `json:"conflictKind,omitempty"`
	ConflictID   *int64  `json:"conflictId,omitempty"`
}

// toUseCaseRequest собирает запрос use case из query параметров
func toUseCaseRequest(facilityID int64, date, startTime, endTime string) (*checkAvailability.Request, error) {
	day, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	start, err := types.NewTimeStringFromString(startTime)
	if err != nil {
		return nil, fmt.Errorf("invalid startTime %q: %w", startTime, err)
	}

	end, err := types.NewTimeStringFromString(endTime)
	if err != nil {
		return nil, fmt.Errorf("invalid endTime %q: %w", endTime, err)
	}

	return &checkAvailability.Request{
		FacilityID: facilityID,
		StartTime:  combine(day, start),
		EndTime:    combine(day, end),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	result := &AvailabilityResponse{
		Available:    resp.Available,
		ConflictKind: resp.ConflictKind,
		ConflictID:   resp.ConflictID,
	}
	if resp.Reason != nil {
		reason := string(*resp.Reason)
		result.Reason = &reason
	}
	return result
}

func combine(day time.Time, t types.TimeString) time.Time {
	parsed, _ := time.Parse(domain.TimeFormat, t.String())
	return time.Date(day.Year(), day.Month(), day.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, time.UTC)
}
