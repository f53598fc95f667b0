package programs

import "errors"

var (
	// ErrProgramNotFound возвращается, когда программа не найдена
	ErrProgramNotFound = errors.New("program not found")

	// ErrNotCustomSessions возвращается при попытке вручную добавить сессию
	// в программу с автоматической генерацией расписания
	ErrNotCustomSessions = errors.New("program sessions are generated automatically")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
