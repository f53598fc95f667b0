package create_rental

import "time"

// Request модель запроса на создание аренды площадки
type Request struct {
	CustomerID int64     // ID пользователя
	FacilityID int64     // ID площадки
	StartTime  time.Time // Начало аренды
	EndTime    time.Time // Конец аренды (полуоткрытый интервал)
}

// Response модель ответа с созданной арендой
type Response struct {
	ID              int64      // ID созданной аренды
	Reference       string     // Публичный референс-код
	FacilityID      int64      // ID площадки
	CustomerID      int64      // ID пользователя
	StartTime       time.Time  // Начало аренды
	EndTime         time.Time  // Конец аренды
	DurationMinutes int        // Длительность в минутах
	Status          string     // Статус аренды
	HoldExpiresAt   *time.Time // Срок действия холда

	// Денормализованные данные пользователя
	CustomerName *string

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
