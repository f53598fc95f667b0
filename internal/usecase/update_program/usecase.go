package update_program

import (
	"context"
	"errors"
	"fmt"

	programRepo "github.com/heyfarai/simplyteams/internal/infra/storage/program"
	"github.com/heyfarai/simplyteams/internal/recurrence"
	"github.com/heyfarai/simplyteams/internal/sessions"
)

// UseCase use case для обновления программы с регенерацией сессий
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

// Execute выполняет use case обновления программы.
// Чтение с блокировкой, обновление и регенерация сессий проходят в одной
// сериализуемой транзакции: параллельное обновление той же программы
// дождется завершения первой регенерации.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateProgram: id=%d, name=%q, custom_sessions=%t",
		req.ID, req.Name, req.CustomSessions)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateProgram: validation failed: %v", err)
		return nil, err
	}

	var resp *Response

	// 2. Обновляем программу и регенерируем сессии в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Читаем текущую версию с блокировкой (FOR UPDATE)
		existing, err := uc.programRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, programRepo.ErrProgramNotFound) {
				uc.logger.Warn("UpdateProgram: program id=%d not found", req.ID)
				return ErrProgramNotFound
			}
			uc.logger.Error("UpdateProgram: failed to get program id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get program: %v", ErrInternal, err)
		}

		wasCustom := existing.CustomSessions

		// 2.2. Проверяем существование площадки, если она указана
		if req.FacilityID != nil {
			if _, err := uc.facilityRepo.GetByID(txCtx, *req.FacilityID); err != nil {
				uc.logger.Warn("UpdateProgram: facility id=%d not found: %v", *req.FacilityID, err)
				return ErrFacilityNotFound
			}
		}

		// 2.3. Полная замена полей программы
		program := existing
		program.Name = req.Name
		program.Description = req.Description
		program.Type = req.Type
		program.StartDate = req.StartDate
		program.EndDate = req.EndDate
		program.StartTime = req.StartTime
		program.EndTime = req.EndTime
		program.Repeats = req.Repeats
		program.Frequency = req.Frequency
		program.DaysOfWeek = req.DaysOfWeek
		program.RecurrenceEnds = req.RecurrenceEnds
		program.RecurrenceEndDate = req.RecurrenceEndDate
		program.RecurrenceCount = req.RecurrenceCount
		program.CustomSessions = req.CustomSessions
		program.FacilityID = req.FacilityID
		program.Capacity = req.Capacity
		program.Price = req.Price
		program.AllowDropIn = req.AllowDropIn
		program.DropInPrice = req.DropInPrice
		program.IsActive = req.IsActive

		if err := uc.programRepo.Update(txCtx, program); err != nil {
			uc.logger.Error("UpdateProgram: failed to update program id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update program: %v", ErrInternal, err)
		}

		// 2.4. Строим план регенерации сессий
		plan, err := sessions.BuildPlan(program, wasCustom)
		if err != nil {
			if errors.Is(err, recurrence.ErrInvalidInput) {
				uc.logger.Warn("UpdateProgram: recurrence expansion failed: %v", err)
				return fmt.Errorf("%w: %v", ErrInvalidRecurrence, err)
			}
			uc.logger.Error("UpdateProgram: failed to build session plan: %v", err)
			return fmt.Errorf("%w: failed to build session plan: %v", ErrInternal, err)
		}

		resp = &Response{Program: program, ReplacedCustomSessions: plan.ReplacesCustom}

		// 2.5. Применяем план: сначала полное удаление, потом вставка
		if plan.IsNoop() {
			uc.logger.Info("UpdateProgram: program id=%d has custom sessions, schedule untouched", program.ID)
			return nil
		}

		if plan.ReplacesCustom {
			uc.logger.Warn("UpdateProgram: program id=%d switched custom -> generated, operator sessions will be replaced", program.ID)
		}

		deleted, err := uc.sessionRepo.DeleteByProgramID(txCtx, program.ID)
		if err != nil {
			uc.logger.Error("UpdateProgram: failed to delete sessions for program id=%d: %v", program.ID, err)
			return fmt.Errorf("%w: failed to delete sessions: %v", ErrInternal, err)
		}

		if len(plan.Creates) > 0 {
			if err := uc.sessionRepo.BatchCreate(txCtx, plan.Creates); err != nil {
				uc.logger.Error("UpdateProgram: failed to create sessions for program id=%d: %v", program.ID, err)
				return fmt.Errorf("%w: failed to create sessions: %v", ErrInternal, err)
			}
		}

		resp.SessionsDeleted = int(deleted)
		resp.SessionsCreated = len(plan.Creates)
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateProgram: successfully updated program id=%d, deleted=%d, created=%d",
		resp.Program.ID, resp.SessionsDeleted, resp.SessionsCreated)

	return resp, nil
}
