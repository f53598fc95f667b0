package update_program

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heyfarai/simplyteams/internal/domain"
	programRepo "github.com/heyfarai/simplyteams/internal/infra/storage/program"
	"github.com/heyfarai/simplyteams/pkg/ptr"
	"github.com/heyfarai/simplyteams/pkg/types"
)

type stubProgramRepo struct {
	program *domain.Program
	getErr  error
	updated *domain.Program
}

func (s *stubProgramRepo) GetByID(ctx context.Context, id int64) (*domain.Program, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	copied := *s.program
	return &copied, nil
}

func (s *stubProgramRepo) Update(ctx context.Context, program *domain.Program) error {
	s.updated = program
	return nil
}

type stubSessionRepo struct {
	existing     int64
	deletedCalls int
	created      []domain.Session
}

func (s *stubSessionRepo) BatchCreate(ctx context.Context, sessions []domain.Session) error {
	s.created = sessions
	return nil
}

func (s *stubSessionRepo) DeleteByProgramID(ctx context.Context, programID int64) (int64, error) {
	s.deletedCalls++
	return s.existing, nil
}

type stubFacilityRepo struct {
	err error
}

func (s *stubFacilityRepo) GetByID(ctx context.Context, id int64) (*domain.Facility, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Facility{ID: id}, nil
}

type stubTxManager struct{}

func (s *stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func storedProgram() *domain.Program {
	return &domain.Program{
		ID:             5,
		Name:           "Morning Clinic",
		Type:           domain.ProgramClinic,
		StartDate:      time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC),
		StartTime:      types.TimeString("09:00"),
		EndTime:        types.TimeString("10:00"),
		Repeats:        true,
		Frequency:      domain.FrequencyDaily,
		RecurrenceEnds: domain.RecurrenceEndsNever,
		IsActive:       true,
	}
}

func updateRequest() *Request {
	return &Request{
		ID:             5,
		Name:           "Morning Clinic",
		Type:           domain.ProgramClinic,
		StartDate:      time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC),
		StartTime:      types.TimeString("09:00"),
		EndTime:        types.TimeString("10:00"),
		Repeats:        true,
		Frequency:      domain.FrequencyDaily,
		RecurrenceEnds: domain.RecurrenceEndsNever,
		IsActive:       true,
	}
}

func TestExecute_RegeneratesSessions(t *testing.T) {
	programs := &stubProgramRepo{program: storedProgram()}
	sessions := &stubSessionRepo{existing: 5}
	uc := NewUseCase(programs, sessions, &stubFacilityRepo{}, &stubTxManager{}, nopLogger{})

	req := updateRequest()
	req.EndDate = time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 5, resp.SessionsDeleted)
	assert.Equal(t, 3, resp.SessionsCreated)
	assert.False(t, resp.ReplacedCustomSessions)
	assert.Equal(t, 1, sessions.deletedCalls)
	require.NotNil(t, programs.updated)
	assert.Equal(t, req.EndDate, programs.updated.EndDate)
}

func TestExecute_CustomSessionsUntouched(t *testing.T) {
	stored := storedProgram()
	stored.CustomSessions = true
	programs := &stubProgramRepo{program: stored}
	sessions := &stubSessionRepo{existing: 4}
	uc := NewUseCase(programs, sessions, &stubFacilityRepo{}, &stubTxManager{}, nopLogger{})

	req := updateRequest()
	req.CustomSessions = true

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 0, resp.SessionsDeleted)
	assert.Equal(t, 0, resp.SessionsCreated)
	assert.Equal(t, 0, sessions.deletedCalls)
}

func TestExecute_CustomToGeneratedReplacesOperatorSessions(t *testing.T) {
	stored := storedProgram()
	stored.CustomSessions = true
	programs := &stubProgramRepo{program: stored}
	sessions := &stubSessionRepo{existing: 2}
	uc := NewUseCase(programs, sessions, &stubFacilityRepo{}, &stubTxManager{}, nopLogger{})

	req := updateRequest()
	req.CustomSessions = false

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, resp.ReplacedCustomSessions)
	assert.Equal(t, 2, resp.SessionsDeleted)
	assert.Equal(t, 5, resp.SessionsCreated)
}

func TestExecute_ProgramNotFound(t *testing.T) {
	programs := &stubProgramRepo{getErr: programRepo.ErrProgramNotFound}
	uc := NewUseCase(programs, &stubSessionRepo{}, &stubFacilityRepo{}, &stubTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), updateRequest())

	require.ErrorIs(t, err, ErrProgramNotFound)
}

func TestExecute_FacilityNotFound(t *testing.T) {
	programs := &stubProgramRepo{program: storedProgram()}
	uc := NewUseCase(programs, &stubSessionRepo{}, &stubFacilityRepo{err: assert.AnError}, &stubTxManager{}, nopLogger{})

	req := updateRequest()
	req.FacilityID = ptr.Ptr(int64(9))

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestExecute_InvalidRecurrenceRejected(t *testing.T) {
	programs := &stubProgramRepo{program: storedProgram()}
	uc := NewUseCase(programs, &stubSessionRepo{}, &stubFacilityRepo{}, &stubTxManager{}, nopLogger{})

	req := updateRequest()
	req.Frequency = "monthly"

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidRecurrence)
}
