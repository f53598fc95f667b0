package check_availability

import "time"

// Request модель запроса проверки доступности площадки
type Request struct {
	FacilityID int64     // ID площадки
	StartTime  time.Time // Начало интервала
	EndTime    time.Time // Конец интервала (полуоткрытый)
}

// Reason причина недоступности площадки
type Reason string

const (
	ReasonNotBookable           Reason = "not_bookable"
	ReasonOutsideOperatingHours Reason = "outside_operating_hours"
	ReasonDurationOutOfBounds   Reason = "duration_out_of_bounds"
	ReasonConflict              Reason = "conflict"
)

// Response модель ответа проверки доступности.
// При Available=false заполнена Reason; при конфликте дополнительно
// указаны тип и ID пересекающейся записи.
type Response struct {
	Available    bool
	Reason       *Reason
	ConflictKind *string
	ConflictID   *int64
}
