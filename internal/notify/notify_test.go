package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/spinwheel/internal/common/clock"
	"github.com/KirkDiggler/spinwheel/internal/models"
	"github.com/KirkDiggler/spinwheel/internal/notify/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type recordingDisplay struct {
	events chan string
}

func (d *recordingDisplay) Show(_ context.Context, n models.Notification) error {
	d.events <- "show:" + n.Message
	return nil
}

func (d *recordingDisplay) Hide(_ context.Context, n models.Notification) error {
	d.events <- "hide:" + n.Message
	return nil
}

type QueueTestSuite struct {
	suite.Suite
	clock   *clock.Fake
	display *recordingDisplay
	queue   *Queue
}

func (s *QueueTestSuite) SetupTest() {
	s.clock = clock.NewFake(time.Unix(0, 0))
	s.display = &recordingDisplay{events: make(chan string, 32)}

	var err error
	s.queue, err = New(&Config{
		Clock:   s.clock,
		Display: s.display,
	})
	s.Require().NoError(err)
}

func (s *QueueTestSuite) TearDownTest() {
	s.queue.Close()
}

func (s *QueueTestSuite) expectEvents(want ...string) {
	for _, w := range want {
		select {
		case got := <-s.display.events:
			s.Require().Equal(w, got)
		case <-time.After(time.Second):
			s.FailNow("timed out waiting for " + w)
		}
	}
}

func (s *QueueTestSuite) advance(d time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Require().NoError(s.clock.BlockUntil(ctx, 1))
	s.clock.Advance(d)
}

func (s *QueueTestSuite) TestShow_DisplaysInFIFOOrderOneAtATime() {
	s.queue.ShowMessage("m1")
	s.queue.ShowMessage("m2")
	s.queue.ShowMessage("m3")

	s.expectEvents("show:m1")
	s.advance(models.DefaultNotificationDuration)
	s.expectEvents("hide:m1", "show:m2")
	s.advance(models.DefaultNotificationDuration)
	s.expectEvents("hide:m2", "show:m3")
	s.advance(models.DefaultNotificationDuration)
	s.expectEvents("hide:m3")

	_, shown := s.queue.Displayed()
	s.False(shown)
	s.Zero(s.queue.Pending())
}

func (s *QueueTestSuite) TestShow_UsesEntryDuration() {
	s.queue.Show(models.Notification{Message: "quick", Duration: time.Second})
	s.expectEvents("show:quick")

	s.advance(999 * time.Millisecond)
	current, shown := s.queue.Displayed()
	s.True(shown)
	s.Equal("quick", current.Message)
	s.Equal(time.Second, current.Duration)

	s.clock.Advance(time.Millisecond)
	s.expectEvents("hide:quick")
}

func (s *QueueTestSuite) TestShow_DuplicatesAreKept() {
	s.queue.ShowMessage("same")
	s.queue.ShowMessage("same")

	s.expectEvents("show:same")
	s.advance(models.DefaultNotificationDuration)
	s.expectEvents("hide:same", "show:same")
}

func (s *QueueTestSuite) TestClearAll_HidesCurrentAndDropsQueue() {
	s.queue.ShowMessage("m1")
	s.queue.ShowMessage("m2")
	s.expectEvents("show:m1")

	s.queue.ClearAll()
	s.expectEvents("hide:m1")
	s.Zero(s.queue.Pending())

	s.queue.ShowMessage("m3")
	s.expectEvents("show:m3")
}

func (s *QueueTestSuite) TestClose_IgnoresLaterShows() {
	s.queue.Close()
	s.queue.ShowMessage("late")
	s.Zero(s.queue.Pending())
}

func (s *QueueTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Display: s.display})
	s.ErrorIs(err, ErrNilClock)

	_, err = New(&Config{Clock: s.clock})
	s.ErrorIs(err, ErrNilDisplay)
}

func TestQueueSuite(t *testing.T) {
	suite.Run(t, new(QueueTestSuite))
}

func TestQueue_DisplayErrorsDoNotStall(t *testing.T) {
	ctrl := gomock.NewController(t)
	display := mocks.NewMockDisplay(ctrl)
	fake := clock.NewFake(time.Unix(0, 0))

	hidden := make(chan struct{})
	display.EXPECT().Show(gomock.Any(), models.Notification{Message: "bad", Duration: time.Second}).Return(errors.New("gone"))
	display.EXPECT().Hide(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, models.Notification) error {
		close(hidden)
		return errors.New("gone")
	})

	q, err := New(&Config{Clock: fake, Display: display})
	if err != nil {
		t.Fatal(err)
	}
	defer q.Close()

	q.Show(models.Notification{Message: "bad", Duration: time.Second})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := fake.BlockUntil(ctx, 1); err != nil {
		t.Fatal(err)
	}
	fake.Advance(time.Second)

	select {
	case <-hidden:
	case <-time.After(time.Second):
		t.Fatal("notification was never hidden")
	}
}
