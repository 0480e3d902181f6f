package terminal

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/spinwheel/internal/models"
	"github.com/KirkDiggler/spinwheel/internal/services/messaging"
	messagingMocks "github.com/KirkDiggler/spinwheel/internal/services/messaging/mocks"
	"github.com/KirkDiggler/spinwheel/internal/services/roulette"
	rouletteMocks "github.com/KirkDiggler/spinwheel/internal/services/roulette/mocks"
	"github.com/KirkDiggler/spinwheel/internal/wheel"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeScreen records cells and replays queued events
type fakeScreen struct {
	mu     sync.Mutex
	width  int
	height int
	cells  map[[2]int]rune
	shows  int
	events chan tcell.Event
}

func newFakeScreen(width, height int) *fakeScreen {
	return &fakeScreen{
		width:  width,
		height: height,
		cells:  make(map[[2]int]rune),
		events: make(chan tcell.Event, 8),
	}
}

func (s *fakeScreen) SetContent(x, y int, primary rune, _ []rune, _ tcell.Style) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cells[[2]int{x, y}] = primary
}

func (s *fakeScreen) Size() (int, int) {
	return s.width, s.height
}

func (s *fakeScreen) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cells = make(map[[2]int]rune)
}

func (s *fakeScreen) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shows++
}

func (s *fakeScreen) PollEvent() tcell.Event {
	ev, ok := <-s.events
	if !ok {
		return nil
	}
	return ev
}

func (s *fakeScreen) showCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shows
}

func (s *fakeScreen) at(x, y int) rune {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cells[[2]int{x, y}]
}

// row returns line y as text, blanks for unset cells
func (s *fakeScreen) row(y int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]rune, s.width)
	for x := range out {
		r, ok := s.cells[[2]int{x, y}]
		if !ok {
			r = ' '
		}
		out[x] = r
	}
	return string(out)
}

type AppTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	screen    *fakeScreen
	roulette  *rouletteMocks.MockService
	messaging *messagingMocks.MockService
	notifier  *rouletteMocks.MockNotifier
	status    *StatusLine
	app       *App
	ctx       context.Context
}

func (s *AppTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.screen = newFakeScreen(80, 24)
	s.roulette = rouletteMocks.NewMockService(s.ctrl)
	s.messaging = messagingMocks.NewMockService(s.ctrl)
	s.notifier = rouletteMocks.NewMockNotifier(s.ctrl)
	s.status = NewStatusLine()
	s.ctx = context.Background()

	app, err := New(&Config{
		Screen:    s.screen,
		Roulette:  s.roulette,
		Messaging: s.messaging,
		Status:    s.status,
		Notifier:  s.notifier,
	})
	s.Require().NoError(err)
	s.app = app
}

func (s *AppTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAppTestSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}

func (s *AppTestSuite) liveFrame(texts ...string) *wheel.Frame {
	options := models.OptionsFromLines(texts)
	return &wheel.Frame{Options: options, Colors: wheel.Colors(len(options))}
}

func (s *AppTestSuite) typeLine(text string) {
	for _, r := range text {
		s.False(s.app.handleKey(s.ctx, tcell.KeyRune, r, tcell.ModNone))
	}
}

func (s *AppTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{})
	s.Equal(ErrNilScreen, err)

	_, err = New(&Config{Screen: s.screen})
	s.Equal(ErrNilRoulette, err)

	_, err = New(&Config{Screen: s.screen, Roulette: s.roulette})
	s.Equal(ErrNilMessaging, err)

	_, err = New(&Config{Screen: s.screen, Roulette: s.roulette, Messaging: s.messaging})
	s.Equal(ErrNilStatus, err)
}

func (s *AppTestSuite) TestEnterAddsOption() {
	s.roulette.EXPECT().GetOptions(gomock.Any()).Return(&roulette.GetOptionsOutput{
		Options: models.OptionsFromLines([]string{"Pizza"}),
		Text:    "Pizza",
	}, nil)
	s.roulette.EXPECT().UpdateOptions(gomock.Any(), &roulette.UpdateOptionsInput{Text: "Pizza\nTacos"}).
		Return(&roulette.UpdateOptionsOutput{
			Options: models.OptionsFromLines([]string{"Pizza", "Tacos"}),
		}, nil)
	s.roulette.EXPECT().Frame().Return(s.liveFrame("Pizza", "Tacos"))

	s.typeLine(" Tacos ")
	s.False(s.app.handleKey(s.ctx, tcell.KeyEnter, 0, tcell.ModNone))

	s.Empty(s.app.line)
	s.Len(s.app.options, 2)
	s.Equal(1, s.app.cursor)
}

func (s *AppTestSuite) TestEnterIgnoresBlankLine() {
	s.typeLine("   ")
	s.False(s.app.handleKey(s.ctx, tcell.KeyEnter, 0, tcell.ModNone))
}

func (s *AppTestSuite) TestBackspaceTrimsLine() {
	s.typeLine("abc")
	s.app.handleKey(s.ctx, tcell.KeyBackspace2, 0, tcell.ModNone)
	s.app.handleKey(s.ctx, tcell.KeyBackspace, 0, tcell.ModNone)

	s.Equal("a", string(s.app.line))
}

func (s *AppTestSuite) TestDeferredEditIsAnnounced() {
	s.roulette.EXPECT().GetOptions(gomock.Any()).Return(&roulette.GetOptionsOutput{}, nil)
	s.roulette.EXPECT().UpdateOptions(gomock.Any(), &roulette.UpdateOptionsInput{Text: "Pizza"}).
		Return(&roulette.UpdateOptionsOutput{
			Options:  models.OptionsFromLines([]string{"Pizza"}),
			Deferred: true,
		}, nil)
	s.roulette.EXPECT().Frame().Return(s.liveFrame())
	s.notifier.EXPECT().Show(models.Notification{Message: "Saved. The wheel updates after this spin."})

	s.typeLine("Pizza")
	s.app.handleKey(s.ctx, tcell.KeyEnter, 0, tcell.ModNone)
}

func (s *AppTestSuite) TestCtrlXRemovesLastOption() {
	s.roulette.EXPECT().GetOptions(gomock.Any()).Return(&roulette.GetOptionsOutput{
		Options: models.OptionsFromLines([]string{"Pizza", "Sushi", "Tacos"}),
	}, nil)
	s.roulette.EXPECT().UpdateOptions(gomock.Any(), &roulette.UpdateOptionsInput{Text: "Pizza\nSushi"}).
		Return(&roulette.UpdateOptionsOutput{
			Options: models.OptionsFromLines([]string{"Pizza", "Sushi"}),
		}, nil)
	s.roulette.EXPECT().Frame().Return(s.liveFrame("Pizza", "Sushi"))

	s.app.handleKey(s.ctx, tcell.KeyCtrlX, 0, tcell.ModNone)

	s.Len(s.app.options, 2)
}

func (s *AppTestSuite) TestCtrlXOnEmptyListDoesNothing() {
	s.roulette.EXPECT().GetOptions(gomock.Any()).Return(&roulette.GetOptionsOutput{}, nil)

	s.app.handleKey(s.ctx, tcell.KeyCtrlX, 0, tcell.ModNone)
}

func (s *AppTestSuite) TestCtrlRuneIsTreatedAsControlKey() {
	s.roulette.EXPECT().GetOptions(gomock.Any()).Return(&roulette.GetOptionsOutput{}, nil)

	s.False(s.app.handleKey(s.ctx, tcell.KeyRune, 'x', tcell.ModCtrl))
	s.Empty(s.app.line)
	s.True(s.app.handleKey(s.ctx, tcell.KeyRune, 'c', tcell.ModCtrl))
}

func (s *AppTestSuite) TestCtrlETogglesSelectedOption() {
	s.app.options = []models.Option{
		{Text: "Pizza", Enabled: true},
		{Text: "Sushi", Enabled: false},
	}
	s.roulette.EXPECT().SetOptionEnabled(gomock.Any(), &roulette.SetOptionEnabledInput{Index: 1, Enabled: true}).
		Return(&roulette.SetOptionEnabledOutput{
			Options: models.OptionsFromLines([]string{"Pizza", "Sushi"}),
		}, nil)
	s.roulette.EXPECT().Frame().Return(s.liveFrame("Pizza", "Sushi"))

	s.app.handleKey(s.ctx, tcell.KeyDown, 0, tcell.ModNone)
	s.app.handleKey(s.ctx, tcell.KeyCtrlE, 0, tcell.ModNone)

	s.True(s.app.options[1].Enabled)
}

func (s *AppTestSuite) TestCursorWraps() {
	s.app.options = models.OptionsFromLines([]string{"a", "b", "c"})

	s.app.handleKey(s.ctx, tcell.KeyUp, 0, tcell.ModNone)
	s.Equal(2, s.app.cursor)

	s.app.handleKey(s.ctx, tcell.KeyDown, 0, tcell.ModNone)
	s.Equal(0, s.app.cursor)
}

func (s *AppTestSuite) TestCtrlTTogglesAutoDisable() {
	s.roulette.EXPECT().SetAutoDisable(gomock.Any(), &roulette.SetAutoDisableInput{Enabled: true}).Return(nil)

	s.app.handleKey(s.ctx, tcell.KeyCtrlT, 0, tcell.ModNone)

	s.True(s.app.autoDisable)
}

func (s *AppTestSuite) TestCtrlZRemovesLastResult() {
	s.roulette.EXPECT().RemoveLastResult(gomock.Any()).Return(&roulette.RemoveLastResultOutput{
		Entry: &models.HistoryEntry{Result: "Pizza", Time: "12:00:01"},
	}, nil)
	s.roulette.EXPECT().GetOptions(gomock.Any()).Return(&roulette.GetOptionsOutput{}, nil)
	s.roulette.EXPECT().GetHistory(gomock.Any()).Return(&roulette.GetHistoryOutput{
		Entries: []*models.HistoryEntry{{Result: "Sushi", Time: "12:00:00"}},
	}, nil)
	s.roulette.EXPECT().Frame().Return(s.liveFrame())
	s.notifier.EXPECT().Show(models.Notification{Message: "Removed Pizza from the history."})

	s.app.handleKey(s.ctx, tcell.KeyCtrlZ, 0, tcell.ModNone)

	s.Require().Len(s.app.history, 1)
	s.Equal("Sushi", s.app.history[0].Result)
}

func (s *AppTestSuite) TestCtrlZOnEmptyHistoryDoesNothing() {
	s.roulette.EXPECT().RemoveLastResult(gomock.Any()).Return(&roulette.RemoveLastResultOutput{}, nil)

	s.app.handleKey(s.ctx, tcell.KeyRune, 'z', tcell.ModCtrl)
	s.Empty(s.app.line)
}

func (s *AppTestSuite) TestFailedEditShowsMessage() {
	storeErr := errors.New("redis down")
	s.roulette.EXPECT().SetAutoDisable(gomock.Any(), gomock.Any()).Return(storeErr)
	s.messaging.EXPECT().GetErrorMessage(gomock.Any(), &messaging.GetErrorMessageInput{Err: storeErr}).
		Return(&messaging.GetErrorMessageOutput{Message: "Something went wrong."}, nil)
	s.notifier.EXPECT().Show(models.Notification{Message: "Something went wrong."})

	s.app.handleKey(s.ctx, tcell.KeyCtrlT, 0, tcell.ModNone)

	s.False(s.app.autoDisable)
}

func (s *AppTestSuite) TestSpinShowsResult() {
	s.roulette.EXPECT().Spin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, in *roulette.SpinInput) (*roulette.SpinOutput, error) {
			s.Equal(s.app, in.Renderer)
			return &roulette.SpinOutput{Result: "Pizza", Disabled: true}, nil
		})
	s.messaging.EXPECT().GetSpinResultMessage(gomock.Any(), &messaging.GetSpinResultMessageInput{
		Result: "Pizza",
		Tone:   messaging.ToneCelebration,
	}).Return(&messaging.GetSpinResultMessageOutput{Message: "🎉 Pizza!"}, nil)
	s.roulette.EXPECT().GetOptions(gomock.Any()).Return(&roulette.GetOptionsOutput{AutoDisable: true}, nil)
	s.roulette.EXPECT().GetHistory(gomock.Any()).Return(&roulette.GetHistoryOutput{
		Entries: []*models.HistoryEntry{{Result: "Pizza", Time: "12:00:00"}},
	}, nil)
	s.roulette.EXPECT().Frame().Return(s.liveFrame())

	s.app.handleKey(s.ctx, tcell.KeyCtrlS, 0, tcell.ModNone)
	s.app.spins.Wait()

	s.Equal("🎉 Pizza! (Pizza is now disabled)", s.app.result)
	s.Len(s.app.history, 1)
}

func (s *AppTestSuite) TestCtrlEnterSpins() {
	s.roulette.EXPECT().Spin(gomock.Any(), gomock.Any()).Return(nil, roulette.ErrAlreadySpinning)

	s.False(s.app.handleKey(s.ctx, tcell.KeyEnter, 0, tcell.ModCtrl))
	s.app.spins.Wait()

	s.Empty(s.app.result)
}

func (s *AppTestSuite) TestEscapeQuits() {
	s.True(s.app.handleKey(s.ctx, tcell.KeyEscape, 0, tcell.ModNone))
	s.True(s.app.handleKey(s.ctx, tcell.KeyCtrlC, 0, tcell.ModNone))
}

func (s *AppTestSuite) TestDrawShowsWheelAndOptions() {
	frame := s.liveFrame("Pizza", "Sushi", "Tacos")
	s.app.options = frame.Options
	s.app.result = "🎉 Pizza!"
	s.Require().NoError(s.app.Draw(s.ctx, frame))

	s.app.draw()

	disc := Rasterise(frame, 40, 21)
	px, py := disc.Pointer()
	s.Equal(pointerRune, s.screen.at(px, 1+py))
	s.Equal(segmentRune, s.screen.at(px, 2+py))

	s.Contains(s.screen.row(2), "[x] Pizza")
	s.Contains(s.screen.row(4), "[x] Tacos")
	s.Contains(s.screen.row(23), "Pizza!")
	s.Equal('🎉', s.screen.at(0, 23))
}

func (s *AppTestSuite) TestDrawGlowMarksSelectedSegment() {
	frame := s.liveFrame("Pizza", "Sushi")
	s.Require().NoError(s.app.DrawGlow(s.ctx, frame, frame.Selected(), 0.5))

	s.app.draw()

	disc := Rasterise(frame, 40, 21)
	px, py := disc.Pointer()
	s.Equal(glowRune, s.screen.at(px, 2+py))
}

func (s *AppTestSuite) TestStatusLineWinsOverResult() {
	s.app.result = "🎉 Pizza!"
	s.Require().NoError(s.status.Show(s.ctx, models.Notification{Message: "Please enable at least 2 options."}))

	s.app.draw()

	s.Contains(s.screen.row(23), "Please enable at least 2 options.")
}

func (s *AppTestSuite) TestRunReturnsWhenScreenCloses() {
	s.roulette.EXPECT().GetOptions(gomock.Any()).Return(&roulette.GetOptionsOutput{}, nil)
	s.roulette.EXPECT().GetHistory(gomock.Any()).Return(&roulette.GetHistoryOutput{}, nil)
	s.roulette.EXPECT().Frame().Return(s.liveFrame())
	s.roulette.EXPECT().Close()

	close(s.screen.events)

	done := make(chan error, 1)
	go func() { done <- s.app.Run(s.ctx) }()

	select {
	case err := <-done:
		s.NoError(err)
	case <-time.After(2 * time.Second):
		s.Fail("run did not return")
	}
	s.Greater(s.screen.showCount(), 0)
}

func (s *AppTestSuite) TestRunFailsWhenOptionsCannotLoad() {
	s.roulette.EXPECT().GetOptions(gomock.Any()).Return(nil, errors.New("boom"))

	err := s.app.Run(s.ctx)
	s.ErrorContains(err, "failed to get options")
}
