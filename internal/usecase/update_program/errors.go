package update_program

import "errors"

var (
	// ErrProgramNotFound возвращается, когда программа не найдена
	ErrProgramNotFound = errors.New("update_program: program not found")

	// ErrFacilityNotFound возвращается, когда указанная площадка не найдена
	ErrFacilityNotFound = errors.New("update_program: facility not found")

	// ErrInvalidRecurrence возвращается при некорректных параметрах повторения
	ErrInvalidRecurrence = errors.New("update_program: invalid recurrence parameters")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_program: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_program: internal error")
)
