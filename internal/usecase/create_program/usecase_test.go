package create_program

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heyfarai/simplyteams/internal/domain"
	"github.com/heyfarai/simplyteams/pkg/ptr"
	"github.com/heyfarai/simplyteams/pkg/types"
)

type stubProgramRepo struct {
	nextID int64
}

func (s *stubProgramRepo) Create(ctx context.Context, program *domain.Program) (*domain.Program, error) {
	s.nextID++
	program.ID = s.nextID
	return program, nil
}

type stubSessionRepo struct {
	created []domain.Session
}

func (s *stubSessionRepo) BatchCreate(ctx context.Context, sessions []domain.Session) error {
	s.created = sessions
	return nil
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

func validRequest() *Request {
	return &Request{
		Name:           "Summer Camp",
		Type:           domain.ProgramCamp,
		StartDate:      time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC),
		StartTime:      types.TimeString("09:00"),
		EndTime:        types.TimeString("12:00"),
		Repeats:        true,
		Frequency:      domain.FrequencyDaily,
		RecurrenceEnds: domain.RecurrenceEndsNever,
		Capacity:       20,
		Price:          150,
		IsActive:       true,
	}
}

func TestExecute_CreatesProgramWithSessions(t *testing.T) {
	sessions := &stubSessionRepo{}
	uc := NewUseCase(&stubProgramRepo{}, sessions, &stubFacilityRepo{}, &stubTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Program.ID)
	assert.Equal(t, 5, resp.SessionsCreated)
	require.Len(t, sessions.created, 5)
	assert.Equal(t, resp.Program.ID, sessions.created[0].ProgramID)
	assert.Equal(t, types.TimeString("09:00"), sessions.created[0].StartTime)
}

func TestExecute_CustomSessionsSkipMaterialization(t *testing.T) {
	sessions := &stubSessionRepo{}
	uc := NewUseCase(&stubProgramRepo{}, sessions, &stubFacilityRepo{}, &stubTxManager{}, nopLogger{})

	req := validRequest()
	req.CustomSessions = true

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 0, resp.SessionsCreated)
	assert.Empty(t, sessions.created)
}

func TestExecute_WeeklyWithDayFilter(t *testing.T) {
	sessions := &stubSessionRepo{}
	uc := NewUseCase(&stubProgramRepo{}, sessions, &stubFacilityRepo{}, &stubTxManager{}, nopLogger{})

	req := validRequest()
	// 2024-07-01 is a Monday
	req.EndDate = time.Date(2024, 7, 14, 0, 0, 0, 0, time.UTC)
	req.Frequency = domain.FrequencyWeekly
	req.DaysOfWeek = []domain.Weekday{domain.WeekdayMon, domain.WeekdayWed}

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 4, resp.SessionsCreated)
}

func TestExecute_FacilityNotFound(t *testing.T) {
	uc := NewUseCase(&stubProgramRepo{}, &stubSessionRepo{}, &stubFacilityRepo{err: assert.AnError}, &stubTxManager{}, nopLogger{})

	req := validRequest()
	req.FacilityID = ptr.Ptr(int64(3))

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&stubProgramRepo{}, &stubSessionRepo{}, &stubFacilityRepo{}, &stubTxManager{}, nopLogger{})

	cases := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "empty name", mutate: func(r *Request) { r.Name = "" }},
		{name: "unknown type", mutate: func(r *Request) { r.Type = "league" }},
		{name: "end before start", mutate: func(r *Request) { r.EndDate = r.StartDate.AddDate(0, 0, -1) }},
		{name: "negative capacity", mutate: func(r *Request) { r.Capacity = -1 }},
		{name: "times inverted", mutate: func(r *Request) {
			r.StartTime = types.TimeString("12:00")
			r.EndTime = types.TimeString("09:00")
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_InvalidRecurrence(t *testing.T) {
	uc := NewUseCase(&stubProgramRepo{}, &stubSessionRepo{}, &stubFacilityRepo{}, &stubTxManager{}, nopLogger{})

	req := validRequest()
	req.RecurrenceEnds = domain.RecurrenceEndsAfterN
	req.RecurrenceCount = nil

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidRecurrence)
}
