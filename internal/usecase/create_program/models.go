package create_program

import (
	"time"

	"github.com/heyfarai/simplyteams/internal/domain"
	"github.com/heyfarai/simplyteams/pkg/types"
)

// Request модель запроса на создание программы
type Request struct {
	Name        string
	Description string
	Type        domain.ProgramType

	StartDate time.Time
	EndDate   time.Time
	StartTime types.TimeString
	EndTime   types.TimeString

	Repeats           bool
	Frequency         domain.Frequency
	DaysOfWeek        []domain.Weekday
	RecurrenceEnds    domain.RecurrenceEnds
	RecurrenceEndDate *time.Time
	RecurrenceCount   *int

	CustomSessions bool
	FacilityID     *int64

	Capacity    int
	Price       float64
	AllowDropIn bool
	DropInPrice *float64
	IsActive    bool
}

// Response модель ответа с созданной программой
type Response struct {
	Program *domain.Program

	// SessionsCreated число сессий, материализованных при создании
	SessionsCreated int
}
