package service

import (
	"context"
	"testing"
	"time"

	"campus-pulse/core/constants"
	coreEntity "campus-pulse/core/entity"
	"campus-pulse/core/errors"
	"campus-pulse/core/params"
	"campus-pulse/modules/attendance/dto"
	"campus-pulse/modules/attendance/entity"

	eventEntity "campus-pulse/modules/event/entity"
	rsvpEntity "campus-pulse/modules/rsvp/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type attendanceKey struct {
	userID  uuid.UUID
	eventID uuid.UUID
}

type fakeAttendanceRepo struct {
	rows map[attendanceKey]*entity.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{rows: make(map[attendanceKey]*entity.Attendance)}
}

func (f *fakeAttendanceRepo) GetByUserAndEvent(_ context.Context, userID uuid.UUID, eventID uuid.UUID) (*entity.Attendance, error) {
	row, ok := f.rows[attendanceKey{userID, eventID}]
	if !ok {
		return nil, nil
	}
	copied := *row
	return &copied, nil
}

func (f *fakeAttendanceRepo) CheckIn(_ context.Context, userID uuid.UUID, eventID uuid.UUID) (*entity.Attendance, error) {
	key := attendanceKey{userID, eventID}
	now := time.Now()
	if row, ok := f.rows[key]; ok {
		if row.CheckedInAt == nil {
			row.CheckedInAt = &now
		}
		copied := *row
		return &copied, nil
	}
	row := &entity.Attendance{UserID: userID, EventID: eventID, CheckedInAt: &now, CreatedAt: now}
	f.rows[key] = row
	copied := *row
	return &copied, nil
}

func (f *fakeAttendanceRepo) SubmitSurvey(_ context.Context, userID uuid.UUID, eventID uuid.UUID, rating int, feedback string, improvement string) (bool, error) {
	row, ok := f.rows[attendanceKey{userID, eventID}]
	if !ok || row.CheckedInAt == nil || row.SurveySubmittedAt != nil {
		return false, nil
	}
	now := time.Now()
	row.SurveyRating = &rating
	row.SurveyFeedback = &feedback
	row.SurveyImprovement = &improvement
	row.SurveySubmittedAt = &now
	if row.AttendedAt == nil {
		row.AttendedAt = &now
	}
	return true, nil
}

func (f *fakeAttendanceRepo) GetRoster(_ context.Context, _ uuid.UUID, queryParams params.QueryParams) (*coreEntity.Pagination[entity.RosterEntry], error) {
	return &coreEntity.Pagination[entity.RosterEntry]{
		Items:      []entity.RosterEntry{},
		PageNumber: queryParams.PageNumber,
		PageSize:   queryParams.PageSize,
	}, nil
}

type fakeRsvpChecker struct {
	reserved map[attendanceKey]bool
}

func newFakeRsvpChecker() *fakeRsvpChecker {
	return &fakeRsvpChecker{reserved: make(map[attendanceKey]bool)}
}

func (f *fakeRsvpChecker) reserve(userID uuid.UUID, eventID uuid.UUID) {
	f.reserved[attendanceKey{userID, eventID}] = true
}

func (f *fakeRsvpChecker) GetByUserAndEvent(_ context.Context, userID uuid.UUID, eventID uuid.UUID) (*rsvpEntity.Rsvp, error) {
	if !f.reserved[attendanceKey{userID, eventID}] {
		return nil, nil
	}
	return &rsvpEntity.Rsvp{
		ID:      uuid.New(),
		UserID:  userID,
		EventID: eventID,
		Status:  "going",
	}, nil
}

type fakeEventCatalog struct {
	events map[uuid.UUID]*eventEntity.Event
}

func (f *fakeEventCatalog) GetByID(_ context.Context, id uuid.UUID) (*eventEntity.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, nil
	}
	return e, nil
}

type awardCall struct {
	userID uuid.UUID
	points int
}

type fakeAwarder struct {
	calls []awardCall
}

func (f *fakeAwarder) AwardPoints(_ context.Context, userID uuid.UUID, _ uuid.UUID, _ string, points int) *errors.AppError {
	f.calls = append(f.calls, awardCall{userID: userID, points: points})
	return nil
}

type fakeAttendanceNotifier struct {
	checkins int
	points   []int
}

func (f *fakeAttendanceNotifier) NotifyCheckin(_ context.Context, _ uuid.UUID, _ uuid.UUID, _ string) error {
	f.checkins++
	return nil
}

func (f *fakeAttendanceNotifier) NotifyPoints(_ context.Context, _ uuid.UUID, _ uuid.UUID, points int, _ string) error {
	f.points = append(f.points, points)
	return nil
}

func liveEvent(points int) *eventEntity.Event {
	return &eventEntity.Event{
		ID:          uuid.New(),
		Title:       "Career Fair",
		Status:      eventEntity.EventStatusApproved,
		Points:      points,
		CheckinCode: "SECRET123456",
		StartTime:   time.Now(),
	}
}

type attendanceFixture struct {
	svc      AttendanceServiceInterface
	rsvps    *fakeRsvpChecker
	awarder  *fakeAwarder
	notifier *fakeAttendanceNotifier
}

func newTestAttendanceService(t *testing.T, events ...*eventEntity.Event) *attendanceFixture {
	t.Helper()
	catalog := &fakeEventCatalog{events: make(map[uuid.UUID]*eventEntity.Event)}
	for _, e := range events {
		catalog.events[e.ID] = e
	}
	f := &attendanceFixture{
		rsvps:    newFakeRsvpChecker(),
		awarder:  &fakeAwarder{},
		notifier: &fakeAttendanceNotifier{},
	}
	f.svc = NewAttendanceService(newFakeAttendanceRepo(), catalog, f.rsvps, f.awarder, f.notifier)
	return f
}

func TestCheckIn(t *testing.T) {
	ctx := context.Background()

	t.Run("valid code records attendance and notifies", func(t *testing.T) {
		event := liveEvent(25)
		f := newTestAttendanceService(t, event)

		got, appErr := f.svc.CheckIn(ctx, uuid.New(), event.ID, "SECRET123456")
		require.Nil(t, appErr)
		assert.NotNil(t, got.CheckedInAt)
		assert.Equal(t, 1, f.notifier.checkins)
	})

	t.Run("rescanning keeps the first timestamp and stays quiet", func(t *testing.T) {
		event := liveEvent(25)
		f := newTestAttendanceService(t, event)
		userID := uuid.New()

		first, appErr := f.svc.CheckIn(ctx, userID, event.ID, "SECRET123456")
		require.Nil(t, appErr)
		second, appErr := f.svc.CheckIn(ctx, userID, event.ID, "SECRET123456")
		require.Nil(t, appErr)

		assert.Equal(t, first.CheckedInAt.Unix(), second.CheckedInAt.Unix())
		assert.Equal(t, 1, f.notifier.checkins)
	})

	t.Run("wrong code rejected", func(t *testing.T) {
		event := liveEvent(25)
		f := newTestAttendanceService(t, event)

		_, appErr := f.svc.CheckIn(ctx, uuid.New(), event.ID, "WRONG")
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	})

	t.Run("empty code rejected even if the event code were empty", func(t *testing.T) {
		event := liveEvent(25)
		event.CheckinCode = ""
		f := newTestAttendanceService(t, event)

		_, appErr := f.svc.CheckIn(ctx, uuid.New(), event.ID, "")
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	})

	t.Run("pending event not open for check-in", func(t *testing.T) {
		event := liveEvent(25)
		event.Status = eventEntity.EventStatusPending
		f := newTestAttendanceService(t, event)

		_, appErr := f.svc.CheckIn(ctx, uuid.New(), event.ID, "SECRET123456")
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrPreconditionFailed, appErr.Code)
	})

	t.Run("unknown event", func(t *testing.T) {
		f := newTestAttendanceService(t)

		_, appErr := f.svc.CheckIn(ctx, uuid.New(), uuid.New(), "SECRET123456")
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrNotFound, appErr.Code)
	})
}

func TestSubmitSurvey(t *testing.T) {
	ctx := context.Background()
	survey := &dto.SurveyRequest{Rating: 4, Feedback: "Great talks"}

	t.Run("awards the event's points exactly once", func(t *testing.T) {
		event := liveEvent(25)
		f := newTestAttendanceService(t, event)
		userID := uuid.New()
		f.rsvps.reserve(userID, event.ID)

		_, appErr := f.svc.CheckIn(ctx, userID, event.ID, "SECRET123456")
		require.Nil(t, appErr)

		got, appErr := f.svc.SubmitSurvey(ctx, userID, event.ID, survey)
		require.Nil(t, appErr)
		assert.Equal(t, 25, got.PointsAwarded)
		require.Len(t, f.awarder.calls, 1)
		assert.Equal(t, 25, f.awarder.calls[0].points)
		assert.Equal(t, []int{25}, f.notifier.points)

		// Second submission earns nothing.
		_, appErr = f.svc.SubmitSurvey(ctx, userID, event.ID, survey)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrPreconditionFailed, appErr.Code)
		assert.Equal(t, "Survey already submitted", appErr.Message)
		assert.Len(t, f.awarder.calls, 1)
	})

	t.Run("zero-point event falls back to the default award", func(t *testing.T) {
		event := liveEvent(0)
		f := newTestAttendanceService(t, event)
		userID := uuid.New()
		f.rsvps.reserve(userID, event.ID)

		_, appErr := f.svc.CheckIn(ctx, userID, event.ID, "SECRET123456")
		require.Nil(t, appErr)

		got, appErr := f.svc.SubmitSurvey(ctx, userID, event.ID, survey)
		require.Nil(t, appErr)
		assert.Equal(t, constants.DefaultSurveyPoints, got.PointsAwarded)
		require.Len(t, f.awarder.calls, 1)
		assert.Equal(t, constants.DefaultSurveyPoints, f.awarder.calls[0].points)
	})

	t.Run("survey requires an RSVP", func(t *testing.T) {
		event := liveEvent(25)
		f := newTestAttendanceService(t, event)
		userID := uuid.New()

		// Checked in (e.g. walked in with a friend's QR) but never RSVP'd.
		_, appErr := f.svc.CheckIn(ctx, userID, event.ID, "SECRET123456")
		require.Nil(t, appErr)

		_, appErr = f.svc.SubmitSurvey(ctx, userID, event.ID, survey)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrPreconditionFailed, appErr.Code)
		assert.Equal(t, "You must RSVP to this event before taking the survey", appErr.Message)
		assert.Empty(t, f.awarder.calls)
	})

	t.Run("survey requires check-in first", func(t *testing.T) {
		event := liveEvent(25)
		f := newTestAttendanceService(t, event)
		userID := uuid.New()
		f.rsvps.reserve(userID, event.ID)

		_, appErr := f.svc.SubmitSurvey(ctx, userID, event.ID, survey)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrPreconditionFailed, appErr.Code)
		assert.Equal(t, "You must check in before taking the survey", appErr.Message)
		assert.Empty(t, f.awarder.calls)
	})

	t.Run("rating out of range", func(t *testing.T) {
		event := liveEvent(25)
		f := newTestAttendanceService(t, event)

		_, appErr := f.svc.SubmitSurvey(ctx, uuid.New(), event.ID, &dto.SurveyRequest{Rating: 6})
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	})

	t.Run("unknown event", func(t *testing.T) {
		f := newTestAttendanceService(t)

		_, appErr := f.svc.SubmitSurvey(ctx, uuid.New(), uuid.New(), survey)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrNotFound, appErr.Code)
	})
}
