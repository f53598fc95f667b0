package models

import (
	"errors"
	"time"

	"github.com/heyfarai/simplyteams/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid rental status")
)

// Request модели

// GetCustomerRentalsRequest запрос на получение аренд пользователя
type GetCustomerRentalsRequest struct {
	CustomerID int64   `json:"customerId"`
	Status     *string `json:"status,omitempty"`
}

// Response модели

// RentalResponse ответ с данными аренды
type RentalResponse struct {
	ID              int64      `json:"id"`
	Reference       string     `json:"reference"`
	FacilityID      int64      `json:"facilityId"`
	CustomerID      int64      `json:"customerId"`
	StartTime       time.Time  `json:"startTime"`
	EndTime         time.Time  `json:"endTime"`
	DurationMinutes int        `json:"durationMinutes"`
	Status          string     `json:"status"`
	HoldExpiresAt   *time.Time `json:"holdExpiresAt,omitempty"`
	CustomerName    *string    `json:"customerName,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RentalListResponse ответ со списком аренд
type RentalListResponse struct {
	Rentals []RentalResponse `json:"rentals"`
}

// Методы конвертации

// FromDomainRental конвертирует domain модель в DTO
func FromDomainRental(r *domain.FacilityRental) *RentalResponse {
	if r == nil {
		return nil
	}

	return &RentalResponse{
		ID:              r.ID,
		Reference:       r.Reference,
		FacilityID:      r.FacilityID,
		CustomerID:      r.CustomerID,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		DurationMinutes: r.DurationMinutes(),
		Status:          string(r.Status),
		HoldExpiresAt:   r.HoldExpiresAt,
		CustomerName:    r.CustomerName,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// FromDomainRentalList конвертирует список domain моделей в DTO
func FromDomainRentalList(rentals []*domain.FacilityRental) *RentalListResponse {
	result := make([]RentalResponse, 0, len(rentals))
	for _, r := range rentals {
		result = append(result, *FromDomainRental(r))
	}
	return &RentalListResponse{Rentals: result}
}

// ToDomainRentalStatus конвертирует строку в domain статус
func ToDomainRentalStatus(status string) (domain.RentalStatus, error) {
	switch domain.RentalStatus(status) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled, domain.StatusExpired:
		return domain.RentalStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}
