package create_rental

import (
	"fmt"
	"time"

	"github.com/heyfarai/simplyteams/internal/domain"
	createRental "github.com/heyfarai/simplyteams/internal/usecase/create_rental"
	"github.com/heyfarai/simplyteams/pkg/types"
)

// CreateRentalRequest HTTP request model
type CreateRentalRequest struct {
	FacilityID int64  `json:"facilityId"`
	Date       string `json:"date"`      // "2025-07-15"
	StartTime  string `json:"startTime"` // "10:00"
	EndTime    string `json:"endTime"`   // "11:30"
}

// CreateRentalResponse HTTP response model
type CreateRentalResponse struct {
	ID              int64      `json:"id"`
	Reference       string     `json:"reference"`
	FacilityID      int64      `json:"facilityId"`
	CustomerID      int64      `json:"customerId"`
	StartTime       time.Time  `json:"startTime"`
	EndTime         time.Time  `json:"endTime"`
	DurationMinutes int        `json:"durationMinutes"`
	Status          string     `json:"status"`
	HoldExpiresAt   *time.Time `json:"holdExpiresAt,omitempty"`
	CustomerName    *string    `json:"customerName,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateRentalRequest) ToUseCaseRequest(customerID int64) (*createRental.Request, error) {
	day, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", r.Date, err)
	}

	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid startTime %q: %w", r.StartTime, err)
	}

	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid endTime %q: %w", r.EndTime, err)
	}

	return &createRental.Request{
		CustomerID: customerID,
		FacilityID: r.FacilityID,
		StartTime:  combine(day, start),
		EndTime:    combine(day, end),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createRental.Response) *CreateRentalResponse {
	return &CreateRentalResponse{
		ID:              resp.ID,
		Reference:       resp.Reference,
		FacilityID:      resp.FacilityID,
		CustomerID:      resp.CustomerID,
		StartTime:       resp.StartTime,
		EndTime:         resp.EndTime,
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		HoldExpiresAt:   resp.HoldExpiresAt,
		CustomerName:    resp.CustomerName,
		CreatedAt:       resp.CreatedAt,
		UpdatedAt:       resp.UpdatedAt,
	}
}

func combine(day time.Time, t types.TimeString) time.Time {
	parsed, _ := time.Parse(domain.TimeFormat, t.String())
	return time.Date(day.Year(), day.Month(), day.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, time.UTC)
}
