package create_rental

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда площадка не найдена
	ErrFacilityNotFound = errors.New("create_rental: facility not found")

	// ErrFacilityNotBookable возвращается, когда площадка закрыта для бронирования
	ErrFacilityNotBookable = errors.New("create_rental: facility is not bookable")

	// ErrCustomerNotFound возвращается, когда пользователь не найден
	ErrCustomerNotFound = errors.New("create_rental: customer not found")

	// ErrOutsideOperatingHours возвращается, когда интервал выходит за часы работы площадки
	ErrOutsideOperatingHours = errors.New("create_rental: outside operating hours")

	// ErrDurationOutOfBounds возвращается, когда длительность нарушает политику площадки
	ErrDurationOutOfBounds = errors.New("create_rental: duration out of bounds")

	// ErrTimeConflict возвращается, когда интервал пересекается с арендой или сессией
	ErrTimeConflict = errors.New("create_rental: requested time conflicts with an existing booking")

	// ErrStartInPast возвращается, когда время начала уже прошло
	ErrStartInPast = errors.New("create_rental: start time is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_rental: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_rental: internal error")
)
