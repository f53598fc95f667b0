package list_rentals

import (
	"context"

	"github.com/heyfarai/simplyteams/internal/service/rentals/models"
)

type RentalsService interface {
	GetCustomerRentals(ctx context.Context, req *models.GetCustomerRentalsRequest) (*models.RentalListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
