package create_program

import (
	"fmt"
	"time"

	"github.com/heyfarai/simplyteams/internal/domain"
	programModels "github.com/heyfarai/simplyteams/internal/service/programs/models"
	createProgram "github.com/heyfarai/simplyteams/internal/usecase/create_program"
	"github.com/heyfarai/simplyteams/pkg/types"
)

// CreateProgramRequest HTTP request model
type CreateProgramRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"`

	StartDate string `json:"startDate"` // "2025-07-01"
	EndDate   string `json:"endDate"`   // "2025-08-31"
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "12:00"

	Repeats           bool     `json:"repeats"`
	Frequency         string   `json:"frequency,omitempty"`
	DaysOfWeek        []string `json:"daysOfWeek,omitempty"`
	RecurrenceEnds    string   `json:"recurrenceEnds,omitempty"`
	RecurrenceEndDate *string  `json:"recurrenceEndDate,omitempty"`
	RecurrenceCount   *int     `json:"recurrenceCount,omitempty"`

	CustomSessions bool   `json:"customSessions,omitempty"`
	FacilityID     *int64 `json:"facilityId,omitempty"`

	Capacity    int      `json:"capacity"`
	Price       float64  `json:"price"`
	AllowDropIn bool     `json:"allowDropIn,omitempty"`
	DropInPrice *float64 `json:"dropInPrice,omitempty"`
	IsActive    *bool    `json:"isActive,omitempty"`
}

// CreateProgramResponse HTTP response model
type CreateProgramResponse struct {
	Program         *programModels.ProgramResponse `json:"program"`
	SessionsCreated int                            `json:"sessionsCreated"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateProgramRequest) ToUseCaseRequest() (*createProgram.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid startDate %q: %w", r.StartDate, err)
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid endDate %q: %w", r.EndDate, err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid startTime %q: %w", r.StartTime, err)
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid endTime %q: %w", r.EndTime, err)
	}

	var recurrenceEndDate *time.Time
	if r.RecurrenceEndDate != nil {
		parsed, err := time.Parse(domain.DateFormat, *r.RecurrenceEndDate)
		if err != nil {
			return nil, fmt.Errorf("invalid recurrenceEndDate %q: %w", *r.RecurrenceEndDate, err)
		}
		recurrenceEndDate = &parsed
	}

	days := make([]domain.Weekday, 0, len(r.DaysOfWeek))
	for _, d := range r.DaysOfWeek {
		days = append(days, domain.Weekday(d))
	}

	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	return &createProgram.Request{
		Name:              r.Name,
		Description:       r.Description,
		Type:              domain.ProgramType(r.Type),
		StartDate:         startDate,
		EndDate:           endDate,
		StartTime:         startTime,
		EndTime:           endTime,
		Repeats:           r.Repeats,
		Frequency:         domain.Frequency(r.Frequency),
		DaysOfWeek:        days,
		RecurrenceEnds:    domain.RecurrenceEnds(r.RecurrenceEnds),
		RecurrenceEndDate: recurrenceEndDate,
		RecurrenceCount:   r.RecurrenceCount,
		CustomSessions:    r.CustomSessions,
		FacilityID:        r.FacilityID,
		Capacity:          r.Capacity,
		Price:             r.Price,
		AllowDropIn:       r.AllowDropIn,
		DropInPrice:       r.DropInPrice,
		IsActive:          isActive,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createProgram.Response) *CreateProgramResponse {
	return &CreateProgramResponse{
		Program:         programModels.FromDomainProgram(resp.Program, nil),
		SessionsCreated: resp.SessionsCreated,
	}
}
