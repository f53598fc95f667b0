package models

import (
	"time"

	"github.com/heyfarai/simplyteams/internal/domain"
)

// Request модели

// AddSessionRequest запрос на ручное добавление сессии.
// Разрешено только для программ с customSessions=true.
type AddSessionRequest struct {
	Date        string   `json:"date"`      // "2025-07-15"
	StartTime   string   `json:"startTime"` // "10:00"
	EndTime     string   `json:"endTime"`   // "11:30"
	FacilityID  *int64   `json:"facilityId,omitempty"`
	DropInPrice *float64 `json:"dropInPrice,omitempty"`
}

// Response модели

// SessionResponse ответ с данными сессии
type SessionResponse struct {
	ID          int64    `json:"id"`
	ProgramID   int64    `json:"programId"`
	Date        string   `json:"date"`      // "2025-07-15"
	StartTime   string   `json:"startTime"` // "10:00"
	EndTime     string   `json:"endTime"`   // "11:30"
	FacilityID  *int64   `json:"facilityId,omitempty"`
	DropInPrice *float64 `json:"dropInPrice,omitempty"`
}

// ProgramResponse ответ с данными программы
type ProgramResponse struct {
	ID          int64  `json:"id"`
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

	CustomSessions bool   `json:"customSessions"`
	FacilityID     *int64 `json:"facilityId,omitempty"`

	Capacity    int      `json:"capacity"`
	Price       float64  `json:"price"`
	AllowDropIn bool     `json:"allowDropIn"`
	DropInPrice *float64 `json:"dropInPrice,omitempty"`
	IsActive    bool     `json:"isActive"`

	Sessions []SessionResponse `json:"sessions,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProgramListResponse ответ со списком программ
type ProgramListResponse struct {
	Programs []ProgramResponse `json:"programs"`
}

// Методы конвертации

// FromDomainProgram конвертирует domain модель в DTO
func FromDomainProgram(p *domain.Program, sessions []*domain.Session) *ProgramResponse {
	if p == nil {
		return nil
	}

	resp := &ProgramResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Type:           string(p.Type),
		StartDate:      p.StartDate.Format(domain.DateFormat),
		EndDate:        p.EndDate.Format(domain.DateFormat),
		StartTime:      p.StartTime.String(),
		EndTime:        p.EndTime.String(),
		Repeats:        p.Repeats,
		Frequency:      string(p.Frequency),
		RecurrenceEnds: string(p.RecurrenceEnds),
		CustomSessions: p.CustomSessions,
		FacilityID:     p.FacilityID,
		Capacity:       p.Capacity,
		Price:          p.Price,
		AllowDropIn:    p.AllowDropIn,
		DropInPrice:    p.DropInPrice,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}

	if len(p.DaysOfWeek) > 0 {
		days := make([]string, 0, len(p.DaysOfWeek))
		for _, d := range p.DaysOfWeek {
			days = append(days, string(d))
		}
		resp.DaysOfWeek = days
	}

	if p.RecurrenceEndDate != nil {
		formatted := p.RecurrenceEndDate.Format(domain.DateFormat)
		resp.RecurrenceEndDate = &formatted
	}
	resp.RecurrenceCount = p.RecurrenceCount

	if len(sessions) > 0 {
		result := make([]SessionResponse, 0, len(sessions))
		for _, s := range sessions {
			result = append(result, *FromDomainSession(s))
		}
		resp.Sessions = result
	}

	return resp
}

// FromDomainSession конвертирует domain модель сессии в DTO
func FromDomainSession(s *domain.Session) *SessionResponse {
	if s == nil {
		return nil
	}

	return &SessionResponse{
		ID:          s.ID,
		ProgramID:   s.ProgramID,
		Date:        s.Date.Format(domain.DateFormat),
		StartTime:   s.StartTime.String(),
		EndTime:     s.EndTime.String(),
		FacilityID:  s.FacilityID,
		DropInPrice: s.DropInPrice,
	}
}

// FromDomainProgramList конвертирует список domain моделей в DTO
func FromDomainProgramList(programs []*domain.Program) *ProgramListResponse {
	result := make([]ProgramResponse, 0, len(programs))
	for _, p := range programs {
		result = append(result, *FromDomainProgram(p, nil))
	}
	return &ProgramListResponse{Programs: result}
}
