package create_program

import (
	"context"
	"errors"
	"fmt"

	"github.com/heyfarai/simplyteams/internal/domain"
	"github.com/heyfarai/simplyteams/internal/recurrence"
	"github.com/heyfarai/simplyteams/internal/sessions"
)

// UseCase use case для создания программы с материализацией сессий
type UseCase struct {
	programRepo  ProgramRepository
	sessionRepo  SessionRepository
	facilityRepo FacilityRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	programRepo ProgramRepository,
	sessionRepo SessionRepository,
	facilityRepo FacilityRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		programRepo:  programRepo,
		sessionRepo:  sessionRepo,
		facilityRepo: facilityRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case создания программы.
// Создание записи и материализация сессий выполняются в одной
// сериализуемой транзакции: либо программа появляется вместе со всем
// расписанием, либо не появляется вовсе.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateProgram: name=%q, type=%s, custom_sessions=%t",
		req.Name, req.Type, req.CustomSessions)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateProgram: validation failed: %v", err)
		return nil, err
	}

	program := &domain.Program{
		Name:              req.Name,
		Description:       req.Description,
		Type:              req.Type,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		Repeats:           req.Repeats,
		Frequency:         req.Frequency,
		DaysOfWeek:        req.DaysOfWeek,
		RecurrenceEnds:    req.RecurrenceEnds,
		RecurrenceEndDate: req.RecurrenceEndDate,
		RecurrenceCount:   req.RecurrenceCount,
		CustomSessions:    req.CustomSessions,
		FacilityID:        req.FacilityID,
		Capacity:          req.Capacity,
		Price:             req.Price,
		AllowDropIn:       req.AllowDropIn,
		DropInPrice:       req.DropInPrice,
		IsActive:          req.IsActive,
	}

	var sessionsCreated int

	// 2. Создаем программу и сессии в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Проверяем существование площадки, если она указана
		if program.FacilityID != nil {
			if _, err := uc.facilityRepo.GetByID(txCtx, *program.FacilityID); err != nil {
				uc.logger.Warn("CreateProgram: facility id=%d not found: %v", *program.FacilityID, err)
				return ErrFacilityNotFound
			}
		}

		// 2.2. Сохраняем программу
		created, err := uc.programRepo.Create(txCtx, program)
		if err != nil {
			uc.logger.Error("CreateProgram: failed to create program: %v", err)
			return fmt.Errorf("%w: failed to create program: %v", ErrInternal, err)
		}
		program = created

		// 2.3. Материализуем сессии
		plan, err := sessions.BuildPlan(program, false)
		if err != nil {
			if errors.Is(err, recurrence.ErrInvalidInput) {
				uc.logger.Warn("CreateProgram: recurrence expansion failed: %v", err)
				return fmt.Errorf("%w: %v", ErrInvalidRecurrence, err)
			}
			uc.logger.Error("CreateProgram: failed to build session plan: %v", err)
			return fmt.Errorf("%w: failed to build session plan: %v", ErrInternal, err)
		}

		if len(plan.Creates) > 0 {
			if err := uc.sessionRepo.BatchCreate(txCtx, plan.Creates); err != nil {
				uc.logger.Error("CreateProgram: failed to create sessions: %v", err)
				return fmt.Errorf("%w: failed to create sessions: %v", ErrInternal, err)
			}
		}

		sessionsCreated = len(plan.Creates)
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateProgram: successfully created program id=%d with %d sessions",
		program.ID, sessionsCreated)

	return &Response{
		Program:         program,
		SessionsCreated: sessionsCreated,
	}, nil
}
