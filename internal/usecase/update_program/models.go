package update_program

import (
	"time"

	"github.com/heyfarai/simplyteams/internal/domain"
	"github.com/heyfarai/simplyteams/pkg/types"
)

// Request модель запроса на обновление программы.
// Обновление заменяет программу целиком: частичных патчей нет, клиент
// присылает полное определение.
type Request struct {
	ID int64

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

// Response модель ответа с обновленной программой
type Response struct {
	Program *domain.Program

	// SessionsDeleted число сессий, удаленных перед регенерацией
	SessionsDeleted int

	// SessionsCreated число заново материализованных сессий
	SessionsCreated int

	// ReplacedCustomSessions означает переход custom -> generated:
	// удаленные сессии были созданы оператором вручную
	ReplacedCustomSessions bool
}
