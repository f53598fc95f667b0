package rental

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/heyfarai/simplyteams/internal/domain"
	"github.com/heyfarai/simplyteams/pkg/psqlbuilder"
	"github.com/heyfarai/simplyteams/pkg/txmanager"
)

var rentalColumns = []string{
	"id",
	"reference",
	"facility_id",
	"customer_id",
	"start_time",
	"end_time",
	"status",
	"hold_expires_at",
	"customer_name",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с арендами площадок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория аренд
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую аренду
func (r *Repository) Create(ctx context.Context, rental *domain.FacilityRental) (*domain.FacilityRental, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("facility_rentals").
		Columns(
			"reference",
			"facility_id",
			"customer_id",
			"start_time",
			"end_time",
			"status",
			"hold_expires_at",
			"customer_name",
		).
		Values(
			rental.Reference,
			rental.FacilityID,
			rental.CustomerID,
			rental.StartTime,
			rental.EndTime,
			rental.Status,
			rental.HoldExpiresAt,
			rental.CustomerName,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rental.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rental.CreatedAt = createdAt.Time
	rental.UpdatedAt = updatedAt.Time

	return rental, nil
}

// GetByID получает аренду по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.FacilityRental, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(rentalColumns...).
		From("facility_rentals").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	rental, err := scanRental(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrRentalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan rental: %v", ErrScanRow, err)
	}

	return rental, nil
}

// GetCountedByFacilityAndRange получает аренды площадки, занимающие её в
// указанном интервале: confirmed, либо pending с ещё живым холдом.
// Истечение холда проверяется по now, переданному вызывающей стороной, а не
// по хранимому статусу: фоновая очистка может отставать.
//
// В транзакции блокирует строки (FOR UPDATE): скан и последующая вставка
// должны выполняться как одна атомарная единица.
func (r *Repository) GetCountedByFacilityAndRange(
	ctx context.Context,
	facilityID int64,
	start, end time.Time,
	now time.Time,
) ([]*domain.FacilityRental, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(rentalColumns...).
		From("facility_rentals").
		Where(squirrel.Eq{"facility_id": facilityID}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start}).
		Where(squirrel.Or{
			squirrel.Eq{"status": domain.StatusConfirmed},
			squirrel.And{
				squirrel.Eq{"status": domain.StatusPending},
				squirrel.Or{
					squirrel.Eq{"hold_expires_at": nil},
					squirrel.Gt{"hold_expires_at": now},
				},
			},
		}).
		OrderBy("start_time ASC")

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCountedByFacilityAndRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetCountedByFacilityAndRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRentals(rows)
}

// GetByCustomerID получает аренды пользователя, опционально по статусу
func (r *Repository) GetByCustomerID(ctx context.Context, customerID int64, status *domain.RentalStatus) ([]*domain.FacilityRental, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(rentalColumns...).
		From("facility_rentals").
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("start_time DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRentals(rows)
}

// UpdateStatus обновляет статус аренды
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.RentalStatus) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("facility_rentals").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRentalNotFound
	}

	return nil
}

// ExpireLapsedHolds переводит в expired все pending аренды с истекшим холдом.
// Возвращает количество затронутых аренд. Корректность конфликт-скана от
// этой очистки не зависит, она нужна только для наглядности данных.
func (r *Repository) ExpireLapsedHolds(ctx context.Context, now time.Time) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("facility_rentals").
		Set("status", domain.StatusExpired).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.StatusPending}).
		Where(squirrel.NotEq{"hold_expires_at": nil}).
		Where(squirrel.LtOrEq{"hold_expires_at": now}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: ExpireLapsedHolds - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: ExpireLapsedHolds - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: ExpireLapsedHolds - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// scanRental сканирует одну строку в domain.FacilityRental
func scanRental(scan func(dest ...interface{}) error) (*domain.FacilityRental, error) {
	var rental domain.FacilityRental
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&rental.ID,
		&rental.Reference,
		&rental.FacilityID,
		&rental.CustomerID,
		&rental.StartTime,
		&rental.EndTime,
		&rental.Status,
		&rental.HoldExpiresAt,
		&rental.CustomerName,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rental.CreatedAt = createdAt.Time
	rental.UpdatedAt = updatedAt.Time

	return &rental, nil
}

// scanRentals сканирует результаты запроса в слайс аренд
func (r *Repository) scanRentals(rows *sql.Rows) ([]*domain.FacilityRental, error) {
	rentals := make([]*domain.FacilityRental, 0)

	for rows.Next() {
		rental, err := scanRental(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRentals - scan row: %v", ErrScanRow, err)
		}
		rentals = append(rentals, rental)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRentals - rows error: %v", ErrScanRow, err)
	}

	return rentals, nil
}
