package programs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/heyfarai/simplyteams/internal/domain"
	programRepo "github.com/heyfarai/simplyteams/internal/infra/storage/program"
	"github.com/heyfarai/simplyteams/internal/service/programs/models"
	"github.com/heyfarai/simplyteams/pkg/types"
)

// Service сервис для чтения программ и ручного управления сессиями.
// Создание и обновление программ идет через usecase слой, где
// материализация сессий выполняется транзакционно.
type Service struct {
	programRepo ProgramRepository
	sessionRepo SessionRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса программ
func NewService(programRepo ProgramRepository, sessionRepo SessionRepository, logger Logger) *Service {
	return &Service{
		programRepo: programRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// GetByID получает программу вместе с её расписанием
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ProgramResponse, error) {
	program, err := s.programRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, programRepo.ErrProgramNotFound) {
			s.logger.Warn("GetByID: program id=%d not found", id)
			return nil, ErrProgramNotFound
		}
		s.logger.Error("GetByID: repository error for program id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	sessions, err := s.sessionRepo.GetByProgramID(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to get sessions for program id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - sessions error: %v", ErrInternal, err)
	}

	return models.FromDomainProgram(program, sessions), nil
}

// List получает список программ, опционально только активных
func (s *Service) List(ctx context.Context, activeOnly bool) (*models.ProgramListResponse, error) {
	programs, err := s.programRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d programs (activeOnly=%t)", len(programs), activeOnly)
	return models.FromDomainProgramList(programs), nil
}

// AddSession вручную добавляет сессию в программу с customSessions=true.
// Для генерируемых программ расписание принадлежит материализатору.
func (s *Service) AddSession(ctx context.Context, programID int64, req *models.AddSessionRequest) (*models.SessionResponse, error) {
	s.logger.Info("AddSession: program id=%d, date=%s", programID, req.Date)

	program, err := s.programRepo.GetByID(ctx, programID)
	if err != nil {
		if errors.Is(err, programRepo.ErrProgramNotFound) {
			s.logger.Warn("AddSession: program id=%d not found", programID)
			return nil, ErrProgramNotFound
		}
		s.logger.Error("AddSession: repository error for program id=%d: %v", programID, err)
		return nil, fmt.Errorf("%w: AddSession - repository error: %v", ErrInternal, err)
	}

	if program.IsGenerated() {
		s.logger.Warn("AddSession: program id=%d sessions are generated", programID)
		return nil, ErrNotCustomSessions
	}

	session, err := toDomainSession(programID, req)
	if err != nil {
		s.logger.Warn("AddSession: invalid request for program id=%d: %v", programID, err)
		return nil, err
	}

	created, err := s.sessionRepo.Create(ctx, session)
	if err != nil {
		s.logger.Error("AddSession: failed to create session for program id=%d: %v", programID, err)
		return nil, fmt.Errorf("%w: AddSession - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddSession: successfully created session id=%d for program id=%d", created.ID, programID)
	return models.FromDomainSession(created), nil
}

// toDomainSession собирает и валидирует domain модель сессии
func toDomainSession(programID int64, req *models.AddSessionRequest) (*domain.Session, error) {
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, req.Date)
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime %q", ErrInvalidInput, req.StartTime)
	}

	endTime, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endTime %q", ErrInvalidInput, req.EndTime)
	}

	if !startTime.IsBefore(endTime) {
		return nil, fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	if req.DropInPrice != nil && *req.DropInPrice < 0 {
		return nil, fmt.Errorf("%w: dropInPrice must not be negative", ErrInvalidInput)
	}

	return &domain.Session{
		ProgramID:   programID,
		Date:        date,
		StartTime:   startTime,
		EndTime:     endTime,
		FacilityID:  req.FacilityID,
		DropInPrice: req.DropInPrice,
	}, nil
}
