package program

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/heyfarai/simplyteams/internal/domain"
	"github.com/heyfarai/simplyteams/pkg/psqlbuilder"
	"github.com/heyfarai/simplyteams/pkg/txmanager"
)

var programColumns = []string{
	"id",
	"name",
	"description",
	"type",
	"start_date",
	"end_date",
	"start_time",
	"end_time",
	"repeats",
	"frequency",
	"days_of_week",
	"recurrence_ends",
	"recurrence_end_date",
	"recurrence_count",
	"custom_sessions",
	"facility_id",
	"capacity",
	"price",
	"allow_drop_in",
	"drop_in_price",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с программами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория программ
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую программу
func (r *Repository) Create(ctx context.Context, program *domain.Program) (*domain.Program, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("programs").
		Columns(
			"name",
			"description",
			"type",
			"start_date",
			"end_date",
			"start_time",
			"end_time",
			"repeats",
			"frequency",
			"days_of_week",
			"recurrence_ends",
			"recurrence_end_date",
			"recurrence_count",
			"custom_sessions",
			"facility_id",
			"capacity",
			"price",
			"allow_drop_in",
			"drop_in_price",
			"is_active",
		).
		Values(
			program.Name,
			program.Description,
			program.Type,
			program.StartDate,
			program.EndDate,
			program.StartTime,
			program.EndTime,
			program.Repeats,
			program.Frequency,
			pq.Array(weekdaysToStrings(program.DaysOfWeek)),
			program.RecurrenceEnds,
			program.RecurrenceEndDate,
			program.RecurrenceCount,
			program.CustomSessions,
			program.FacilityID,
			program.Capacity,
			program.Price,
			program.AllowDropIn,
			program.DropInPrice,
			program.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&program.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	program.CreatedAt = createdAt.Time
	program.UpdatedAt = updatedAt.Time

	return program, nil
}

// GetByID получает программу по ID
// В транзакции добавляет FOR UPDATE для защиты от конкурентной регенерации сессий
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Program, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(programColumns...).
		From("programs").
		Where(squirrel.Eq{"id": id})

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	program, err := scanProgram(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrProgramNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan program: %v", ErrScanRow, err)
	}

	return program, nil
}

// List получает список программ, опционально только активных
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]*domain.Program, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(programColumns...).
		From("programs").
		OrderBy("start_date ASC, name ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
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

	programs := make([]*domain.Program, 0)
	for rows.Next() {
		program, err := scanProgram(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		programs = append(programs, program)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return programs, nil
}

// Update обновляет программу
func (r *Repository) Update(ctx context.Context, program *domain.Program) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("programs").
		Set("name", program.Name).
		Set("description", program.Description).
		Set("type", program.Type).
		Set("start_date", program.StartDate).
		Set("end_date", program.EndDate).
		Set("start_time", program.StartTime).
		Set("end_time", program.EndTime).
		Set("repeats", program.Repeats).
		Set("frequency", program.Frequency).
		Set("days_of_week", pq.Array(weekdaysToStrings(program.DaysOfWeek))).
		Set("recurrence_ends", program.RecurrenceEnds).
		Set("recurrence_end_date", program.RecurrenceEndDate).
		Set("recurrence_count", program.RecurrenceCount).
		Set("custom_sessions", program.CustomSessions).
		Set("facility_id", program.FacilityID).
		Set("capacity", program.Capacity).
		Set("price", program.Price).
		Set("allow_drop_in", program.AllowDropIn).
		Set("drop_in_price", program.DropInPrice).
		Set("is_active", program.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": program.ID}).
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
		return ErrProgramNotFound
	}

	return nil
}

// scanProgram сканирует одну строку в domain.Program
func scanProgram(scan func(dest ...interface{}) error) (*domain.Program, error) {
	var program domain.Program
	var days pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&program.ID,
		&program.Name,
		&program.Description,
		&program.Type,
		&program.StartDate,
		&program.EndDate,
		&program.StartTime,
		&program.EndTime,
		&program.Repeats,
		&program.Frequency,
		&days,
		&program.RecurrenceEnds,
		&program.RecurrenceEndDate,
		&program.RecurrenceCount,
		&program.CustomSessions,
		&program.FacilityID,
		&program.Capacity,
		&program.Price,
		&program.AllowDropIn,
		&program.DropInPrice,
		&program.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	program.DaysOfWeek = stringsToWeekdays(days)
	program.CreatedAt = createdAt.Time
	program.UpdatedAt = updatedAt.Time

	return &program, nil
}

func weekdaysToStrings(days []domain.Weekday) []string {
	result := make([]string, len(days))
	for i, d := range days {
		result[i] = string(d)
	}
	return result
}

func stringsToWeekdays(days []string) []domain.Weekday {
	result := make([]domain.Weekday, len(days))
	for i, d := range days {
		result[i] = domain.Weekday(d)
	}
	return result
}
