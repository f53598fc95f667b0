package recurrence

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных параметрах рекуррентности
	ErrInvalidInput = errors.New("recurrence: invalid input")
)
