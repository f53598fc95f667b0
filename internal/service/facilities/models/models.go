package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/heyfarai/simplyteams/internal/domain"
	"github.com/heyfarai/simplyteams/pkg/types"
)

var (
	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = errors.New("invalid time format")
)

// Request модели

// CreateFacilityRequest запрос на создание площадки
type CreateFacilityRequest struct {
	Name                      string  `json:"name"`
	Sport                     string  `json:"sport"`
	FacilityType              string  `json:"facilityType"`
	Bookable                  *bool   `json:"bookable,omitempty"`
	AllowClashes              bool    `json:"allowClashes,omitempty"`
	MinBookingDurationMinutes int     `json:"minBookingDurationMinutes,omitempty"`
	MaxBookingDurationMinutes int     `json:"maxBookingDurationMinutes,omitempty"`
	OpenTime                  *string `json:"openTime,omitempty"`
	CloseTime                 *string `json:"closeTime,omitempty"`
}

// ToDomain конвертирует запрос в domain модель с дефолтами
func (r *CreateFacilityRequest) ToDomain() (*domain.Facility, error) {
	facility := &domain.Facility{
		Name:                      r.Name,
		Sport:                     domain.Sport(r.Sport),
		FacilityType:              domain.FacilityType(r.FacilityType),
		Bookable:                  true,
		AllowClashes:              r.AllowClashes,
		MinBookingDurationMinutes: r.MinBookingDurationMinutes,
		MaxBookingDurationMinutes: r.MaxBookingDurationMinutes,
	}

	if r.Bookable != nil {
		facility.Bookable = *r.Bookable
	}
	if facility.MinBookingDurationMinutes == 0 {
		facility.MinBookingDurationMinutes = domain.DefaultMinBookingDurationMinutes
	}
	if facility.MaxBookingDurationMinutes == 0 {
		facility.MaxBookingDurationMinutes = domain.DefaultMaxBookingDurationMinutes
	}

	openTime, err := parseOptionalTime(r.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("%w: openTime: %v", ErrInvalidTime, err)
	}
	closeTime, err := parseOptionalTime(r.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("%w: closeTime: %v", ErrInvalidTime, err)
	}
	facility.OpenTime = openTime
	facility.CloseTime = closeTime

	return facility, nil
}

// UpdateFacilityRequest запрос на обновление площадки.
// Указанные поля заменяют текущие значения, отсутствующие не трогаются.
type UpdateFacilityRequest struct {
	Name                      *string `json:"name,omitempty"`
	Sport                     *string `json:"sport,omitempty"`
	FacilityType              *string `json:"facilityType,omitempty"`
	Bookable                  *bool   `json:"bookable,omitempty"`
	AllowClashes              *bool   `json:"allowClashes,omitempty"`
	MinBookingDurationMinutes *int    `json:"minBookingDurationMinutes,omitempty"`
	MaxBookingDurationMinutes *int    `json:"maxBookingDurationMinutes,omitempty"`
	OpenTime                  *string `json:"openTime,omitempty"`
	CloseTime                 *string `json:"closeTime,omitempty"`
}

// ApplyTo накладывает изменения на существующую площадку
func (r *UpdateFacilityRequest) ApplyTo(facility *domain.Facility) error {
	if r.Name != nil {
		facility.Name = *r.Name
	}
	if r.Sport != nil {
		facility.Sport = domain.Sport(*r.Sport)
	}
	if r.FacilityType != nil {
		facility.FacilityType = domain.FacilityType(*r.FacilityType)
	}
	if r.Bookable != nil {
		facility.Bookable = *r.Bookable
	}
	if r.AllowClashes != nil {
		facility.AllowClashes = *r.AllowClashes
	}
	if r.MinBookingDurationMinutes != nil {
		facility.MinBookingDurationMinutes = *r.MinBookingDurationMinutes
	}
	if r.MaxBookingDurationMinutes != nil {
		facility.MaxBookingDurationMinutes = *r.MaxBookingDurationMinutes
	}

	if r.OpenTime != nil {
		openTime, err := parseOptionalTime(r.OpenTime)
		if err != nil {
			return fmt.Errorf("%w: openTime: %v", ErrInvalidTime, err)
		}
		facility.OpenTime = openTime
	}
	if r.CloseTime != nil {
		closeTime, err := parseOptionalTime(r.CloseTime)
		if err != nil {
			return fmt.Errorf("%w: closeTime: %v", ErrInvalidTime, err)
		}
		facility.CloseTime = closeTime
	}

	return nil
}

// Response модели

// FacilityResponse ответ с данными площадки
type FacilityResponse struct {
	ID                        int64   `json:"id"`
	Name                      string  `json:"name"`
	Sport                     string  `json:"sport"`
	FacilityType              string  `json:"facilityType"`
	Bookable                  bool    `json:"bookable"`
	AllowClashes              bool    `json:"allowClashes"`
	MinBookingDurationMinutes int     `json:"minBookingDurationMinutes"`
	MaxBookingDurationMinutes int     `json:"maxBookingDurationMinutes"`
	OpenTime                  *string `json:"openTime,omitempty"`
	CloseTime                 *string `json:"closeTime,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FacilityListResponse ответ со списком площадок
type FacilityListResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
}

// FromDomainFacility конвертирует domain модель в DTO
func FromDomainFacility(f *domain.Facility) *FacilityResponse {
	if f == nil {
		return nil
	}

	resp := &FacilityResponse{
		ID:                        f.ID,
		Name:                      f.Name,
		Sport:                     string(f.Sport),
		FacilityType:              string(f.FacilityType),
		Bookable:                  f.Bookable,
		AllowClashes:              f.AllowClashes,
		MinBookingDurationMinutes: f.MinBookingDurationMinutes,
		MaxBookingDurationMinutes: f.MaxBookingDurationMinutes,
		CreatedAt:                 f.CreatedAt,
		UpdatedAt:                 f.UpdatedAt,
	}

	if f.OpenTime != nil {
		open := f.OpenTime.String()
		resp.OpenTime = &open
	}
	if f.CloseTime != nil {
		close := f.CloseTime.String()
		resp.CloseTime = &close
	}

	return resp
}

// FromDomainFacilityList конвертирует список domain моделей в DTO
func FromDomainFacilityList(facilities []*domain.Facility) *FacilityListResponse {
	result := make([]FacilityResponse, 0, len(facilities))
	for _, f := range facilities {
		result = append(result, *FromDomainFacility(f))
	}
	return &FacilityListResponse{Facilities: result}
}

func parseOptionalTime(value *string) (*types.TimeString, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	ts, err := types.NewTimeStringFromString(*value)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}
