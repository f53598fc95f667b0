package list_facilities

import (
	"context"

	"github.com/heyfarai/simplyteams/internal/service/facilities/models"
)

type FacilityService interface {
	List(ctx context.Context, bookableOnly bool) (*models.FacilityListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
