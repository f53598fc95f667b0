package get_rental

import (
	"context"

	"github.com/heyfarai/simplyteams/internal/service/rentals/models"
)

type RentalsService interface {
	GetByID(ctx context.Context, id int64, customerID int64) (*models.RentalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
