package facility

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/heyfarai/simplyteams/internal/domain"
	"github.com/heyfarai/simplyteams/pkg/psqlbuilder"
	"github.com/heyfarai/simplyteams/pkg/txmanager"
	"github.com/heyfarai/simplyteams/pkg/types"
)

var facilityColumns = []string{
	"id",
	"name",
	"sport",
	"facility_type",
	"bookable",
	"allow_clashes",
	"min_booking_duration_minutes",
	"max_booking_duration_minutes",
	"open_time",
	"close_time",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с площадками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую площадку
func (r *Repository) Create(ctx context.Context, facility *domain.Facility) (*domain.Facility, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("facilities").
		Columns(
			"name",
			"sport",
			"facility_type",
			"bookable",
			"allow_clashes",
			"min_booking_duration_minutes",
			"max_booking_duration_minutes",
			"open_time",
			"close_time",
		).
		Values(
			facility.Name,
			facility.Sport,
			facility.FacilityType,
			facility.Bookable,
			facility.AllowClashes,
			facility.MinBookingDurationMinutes,
			facility.MaxBookingDurationMinutes,
			timeStringPtrToNull(facility.OpenTime),
			timeStringPtrToNull(facility.CloseTime),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&facility.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	facility.CreatedAt = createdAt.Time
	facility.UpdatedAt = updatedAt.Time

	return facility, nil
}

// GetByID получает площадку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Facility, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(facilityColumns...).
		From("facilities").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	facility, err := scanFacility(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrFacilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan facility: %v", ErrScanRow, err)
	}

	return facility, nil
}

// List получает список всех площадок, опционально только бронируемых
func (r *Repository) List(ctx context.Context, bookableOnly bool) ([]*domain.Facility, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(facilityColumns...).
		From("facilities").
		OrderBy("name ASC")

	if bookableOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"bookable": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	facilities := make([]*domain.Facility, 0)
	for rows.Next() {
		facility, err := scanFacility(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		facilities = append(facilities, facility)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return facilities, nil
}

// Update обновляет площадку
func (r *Repository) Update(ctx context.Context, facility *domain.Facility) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("facilities").
		Set("name", facility.Name).
		Set("sport", facility.Sport).
		Set("facility_type", facility.FacilityType).
		Set("bookable", facility.Bookable).
		Set("allow_clashes", facility.AllowClashes).
		Set("min_booking_duration_minutes", facility.MinBookingDurationMinutes).
		Set("max_booking_duration_minutes", facility.MaxBookingDurationMinutes).
		Set("open_time", timeStringPtrToNull(facility.OpenTime)).
		Set("close_time", timeStringPtrToNull(facility.CloseTime)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": facility.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrFacilityNotFound
	}

	return nil
}

// scanFacility сканирует одну строку в domain.Facility
func scanFacility(scan func(dest ...interface{}) error) (*domain.Facility, error) {
	var facility domain.Facility
	var openTime, closeTime sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&facility.ID,
		&facility.Name,
		&facility.Sport,
		&facility.FacilityType,
		&facility.Bookable,
		&facility.AllowClashes,
		&facility.MinBookingDurationMinutes,
		&facility.MaxBookingDurationMinutes,
		&openTime,
		&closeTime,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	facility.OpenTime = nullToTimeStringPtr(openTime)
	facility.CloseTime = nullToTimeStringPtr(closeTime)
	facility.CreatedAt = createdAt.Time
	facility.UpdatedAt = updatedAt.Time

	return &facility, nil
}

func timeStringPtrToNull(ts *types.TimeString) sql.NullString {
	if ts == nil || ts.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: ts.String(), Valid: true}
}

func nullToTimeStringPtr(ns sql.NullString) *types.TimeString {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	ts := types.TimeString(ns.String)
	return &ts
}
