package rentals

import "errors"

var (
	// ErrRentalNotFound возвращается, когда аренда не найдена
	ErrRentalNotFound = errors.New("rental not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrHoldExpired возвращается при попытке подтвердить аренду с истекшим холдом
	ErrHoldExpired = errors.New("rental hold has expired")

	// ErrCannotConfirm возвращается, когда аренда не может быть подтверждена
	ErrCannotConfirm = errors.New("rental cannot be confirmed")

	// ErrCannotCancel возвращается, когда аренда не может быть отменена
	ErrCannotCancel = errors.New("rental cannot be cancelled")

	// ErrInvalidStatus возвращается при некорректном статусе в фильтре
	ErrInvalidStatus = errors.New("invalid rental status")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
