package identityservice

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда пользователь не найден
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("identityservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("identityservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что IdentityService недоступен и аренда создается без имени клиента
	ErrServiceDegraded = errors.New("identityservice unavailable: graceful degradation applied")
)
