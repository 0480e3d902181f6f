package assign

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/spinwheel/internal/assign/mocks"
	"github.com/KirkDiggler/spinwheel/internal/common/clock"
	"github.com/KirkDiggler/spinwheel/internal/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SchedulerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	clock     *clock.Fake
	presenter *mocks.MockPresenter
	scheduler *Scheduler

	assignments []models.Assignment
}

func (s *SchedulerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.clock = clock.NewFake(time.Unix(0, 0))
	s.presenter = mocks.NewMockPresenter(s.ctrl)

	var err error
	s.scheduler, err = NewScheduler(&SchedulerConfig{Clock: s.clock})
	s.Require().NoError(err)

	s.assignments = []models.Assignment{
		{Role: "A", Username: "Y", Index: 0},
		{Role: "B", Username: "X", Index: 1},
		{Role: "C", Username: "Z", Index: 2},
	}
}

func (s *SchedulerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SchedulerTestSuite) reveal(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- s.scheduler.Reveal(ctx, s.assignments, s.presenter)
	}()
	return done
}

func (s *SchedulerTestSuite) advance(d time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Require().NoError(s.clock.BlockUntil(ctx, 1))
	s.clock.Advance(d)
}

func (s *SchedulerTestSuite) wait(done <-chan error) error {
	select {
	case err := <-done:
		return err
	case <-time.After(time.Second):
		s.FailNow("reveal did not finish")
		return nil
	}
}

func (s *SchedulerTestSuite) expectItem(i int) []any {
	a := s.assignments[i]
	return []any{
		s.presenter.EXPECT().Reveal(gomock.Any(), i, a).Return(nil),
		s.presenter.EXPECT().Highlight(gomock.Any(), i, true).Return(nil),
		s.presenter.EXPECT().Highlight(gomock.Any(), i, false).Return(nil),
	}
}

func (s *SchedulerTestSuite) TestReveal_ShowsEntriesInRoleOrder() {
	var calls []any
	for i := range s.assignments {
		calls = append(calls, s.expectItem(i)...)
	}
	gomock.InOrder(calls...)

	done := s.reveal(context.Background())

	s.advance(DefaultItemDelay)
	s.advance(DefaultGapDelay)
	s.advance(DefaultItemDelay)
	s.advance(DefaultGapDelay)
	s.advance(DefaultItemDelay)

	s.NoError(s.wait(done))
	s.False(s.scheduler.Revealing())
	s.Zero(s.clock.Sleepers(), "no gap after the last entry")
}

func (s *SchedulerTestSuite) TestReveal_RejectsSecondRevealWithoutInterleaving() {
	var calls []any
	for i := range s.assignments {
		calls = append(calls, s.expectItem(i)...)
	}
	gomock.InOrder(calls...)

	done := s.reveal(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Require().NoError(s.clock.BlockUntil(ctx, 1))
	s.True(s.scheduler.Revealing())

	other := mocks.NewMockPresenter(s.ctrl)
	err := s.scheduler.Reveal(context.Background(), s.assignments, other)
	s.ErrorIs(err, ErrAlreadyRevealing)

	s.clock.Advance(DefaultItemDelay)
	s.advance(DefaultGapDelay)
	s.advance(DefaultItemDelay)
	s.advance(DefaultGapDelay)
	s.advance(DefaultItemDelay)

	s.NoError(s.wait(done))
}

func (s *SchedulerTestSuite) TestReveal_CancelStopsSequence() {
	ctx, cancel := context.WithCancel(context.Background())

	s.presenter.EXPECT().Reveal(gomock.Any(), 0, s.assignments[0]).Return(nil)
	s.presenter.EXPECT().Highlight(gomock.Any(), 0, true).Return(nil)

	done := s.reveal(ctx)

	waitCtx, waitCancel := context.WithTimeout(context.Background(), time.Second)
	defer waitCancel()
	s.Require().NoError(s.clock.BlockUntil(waitCtx, 1))
	cancel()

	s.ErrorIs(s.wait(done), context.Canceled)
	s.False(s.scheduler.Revealing())
}

func (s *SchedulerTestSuite) TestReveal_PresenterErrorEndsReveal() {
	boom := errors.New("message deleted")
	s.presenter.EXPECT().Reveal(gomock.Any(), 0, s.assignments[0]).Return(boom)

	err := s.scheduler.Reveal(context.Background(), s.assignments, s.presenter)
	s.ErrorIs(err, boom)
	s.False(s.scheduler.Revealing())
}

func (s *SchedulerTestSuite) TestReveal_EmptyIsNoop() {
	s.NoError(s.scheduler.Reveal(context.Background(), nil, s.presenter))
}

func (s *SchedulerTestSuite) TestNewScheduler_Validation() {
	_, err := NewScheduler(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = NewScheduler(&SchedulerConfig{})
	s.ErrorIs(err, ErrNilClock)

	s.ErrorIs(s.scheduler.Reveal(context.Background(), s.assignments, nil), ErrNilPresenter)
}

func TestSchedulerSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}
