package session

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

var sessionColumns = []string{
	"id",
	"program_id",
	"date",
	"start_time",
	"end_time",
	"facility_id",
	"drop_in_price",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с сессиями программ
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// BatchCreate создает пакет сессий одним запросом.
// Вызывается только внутри транзакции регенерации: либо весь пакет
// коммитится, либо ничего.
func (r *Repository) BatchCreate(ctx context.Context, sessions []domain.Session) error {
	if len(sessions) == 0 {
		return nil
	}

	executor := txmanager.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("sessions").
		Columns(
			"program_id",
			"date",
			"start_time",
			"end_time",
			"facility_id",
			"drop_in_price",
		)

	for _, s := range sessions {
		insertBuilder = insertBuilder.Values(
			s.ProgramID,
			s.Date,
			s.StartTime,
			s.EndTime,
			s.FacilityID,
			s.DropInPrice,
		)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: BatchCreate - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: BatchCreate - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Create создает одну сессию (ручное управление при custom_sessions)
func (r *Repository) Create(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("sessions").
		Columns(
			"program_id",
			"date",
			"start_time",
			"end_time",
			"facility_id",
			"drop_in_price",
		).
		Values(
			session.ProgramID,
			session.Date,
			session.StartTime,
			session.EndTime,
			session.FacilityID,
			session.DropInPrice,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&session.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	session.CreatedAt = createdAt.Time
	session.UpdatedAt = updatedAt.Time

	return session, nil
}

// DeleteByProgramID удаляет все сессии программы.
// Возвращает количество удаленных сессий.
func (r *Repository) DeleteByProgramID(ctx context.Context, programID int64) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("sessions").
		Where(squirrel.Eq{"program_id": programID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByProgramID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByProgramID - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByProgramID - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// GetByProgramID получает все сессии программы в хронологическом порядке
func (r *Repository) GetByProgramID(ctx context.Context, programID int64) ([]*domain.Session, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(sessionColumns...).
		From("sessions").
		Where(squirrel.Eq{"program_id": programID}).
		OrderBy("date ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProgramID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProgramID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSessions(rows)
}

// GetByFacilityAndDate получает все сессии площадки на конкретную дату.
// Используется сканом конфликтов; в транзакции блокирует строки (FOR UPDATE),
// чтобы параллельная проверка бронирования не прошла по тем же данным.
func (r *Repository) GetByFacilityAndDate(ctx context.Context, facilityID int64, date time.Time) ([]*domain.Session, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(sessionColumns...).
		From("sessions").
		Where(squirrel.Eq{"facility_id": facilityID}).
		Where(squirrel.Eq{"date": date}).
		OrderBy("start_time ASC")

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFacilityAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFacilityAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSessions(rows)
}

// scanSessions сканирует результаты запроса в слайс сессий
func (r *Repository) scanSessions(rows *sql.Rows) ([]*domain.Session, error) {
	sessions := make([]*domain.Session, 0)

	for rows.Next() {
		var session domain.Session
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&session.ID,
			&session.ProgramID,
			&session.Date,
			&session.StartTime,
			&session.EndTime,
			&session.FacilityID,
			&session.DropInPrice,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanSessions - scan row: %v", ErrScanRow, err)
		}

		session.CreatedAt = createdAt.Time
		session.UpdatedAt = updatedAt.Time

		sessions = append(sessions, &session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSessions - rows error: %v", ErrScanRow, err)
	}

	return sessions, nil
}
