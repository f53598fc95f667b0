package create_program

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда указанная площадка не найдена
	ErrFacilityNotFound = errors.New("create_program: facility not found")

	// ErrInvalidRecurrence возвращается при некорректных параметрах повторения
	ErrInvalidRecurrence = errors.New("create_program: invalid recurrence parameters")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_program: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_program: internal error")
)
