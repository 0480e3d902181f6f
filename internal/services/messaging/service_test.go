package messaging

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/KirkDiggler/spinwheel/internal/assign"
	"github.com/KirkDiggler/spinwheel/internal/models"
	"github.com/KirkDiggler/spinwheel/internal/phase"
	"github.com/KirkDiggler/spinwheel/internal/random/mocks"
	"github.com/KirkDiggler/spinwheel/internal/wheel"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type kindedError string

func (e kindedError) Error() string    { return string(e) }
func (e kindedError) Kind() ErrorKind { return KindValidation }

type MessagingServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRandom *mocks.MockSource
	service    Service
	ctx        context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRandom = mocks.NewMockSource(s.mockCtrl)
	s.ctx = context.Background()

	var err error
	s.service, err = NewService(&ServiceConfig{Random: s.mockRandom})
	s.Require().NoError(err)
}

func (s *MessagingServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMessagingServiceSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestKindOf() {
	s.Equal(KindValidation, KindOf(fmt.Errorf("wrapped: %w", kindedError("please enable at least 2 options"))))
	s.Equal(KindCanceled, KindOf(context.Canceled))
	s.Equal(KindConcurrency, KindOf(wheel.ErrAlreadyRunning))
	s.Equal(KindConcurrency, KindOf(wheel.ErrAlreadyLocked))
	s.Equal(KindConcurrency, KindOf(assign.ErrAlreadyRevealing))
	s.Equal(KindConcurrency, KindOf(phase.ErrBusy))
	s.Equal(KindResolution, KindOf(wheel.ErrNoOptions))
	s.Equal(KindValidation, KindOf(assign.ErrNoRoles))
	s.Equal(KindUnknown, KindOf(errors.New("redis down")))
	s.Equal(ErrorKind(""), KindOf(nil))

	s.True(IsValidation(kindedError("x")))
	s.True(IsConcurrency(phase.ErrBusy))
	s.False(IsConcurrency(kindedError("x")))
}

func (s *MessagingServiceTestSuite) TestGetErrorMessage_Validation() {
	out, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{
		Err: kindedError("please enable at least 2 options"),
	})
	s.Require().NoError(err)
	s.Equal(KindValidation, out.Kind)
	s.False(out.Silent)
	s.Equal("Please enable at least 2 options.", out.Message)
}

func (s *MessagingServiceTestSuite) TestGetErrorMessage_FunnyTitle() {
	s.mockRandom.EXPECT().Intn(3).Return(2)

	out, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{
		Err:  kindedError("duplicate usernames"),
		Tone: ToneFunny,
	})
	s.Require().NoError(err)
	s.Equal("The wheel refuses!", out.Title)
	s.Equal("Duplicate usernames.", out.Message)
}

func (s *MessagingServiceTestSuite) TestGetErrorMessage_SilentKinds() {
	out, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{Err: context.Canceled})
	s.Require().NoError(err)
	s.True(out.Silent)

	out, err = s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{Err: wheel.ErrAlreadyRunning})
	s.Require().NoError(err)
	s.True(out.Silent)
	s.Equal(KindConcurrency, out.Kind)
}

func (s *MessagingServiceTestSuite) TestGetErrorMessage_GenericFailure() {
	out, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{Err: wheel.ErrNoOptions})
	s.Require().NoError(err)
	s.Equal(KindResolution, out.Kind)
	s.False(out.Silent)
	s.Equal("The operation failed. Please try again.", out.Message)

	_, err = s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestGetSpinResultMessage() {
	out, err := s.service.GetSpinResultMessage(s.ctx, &GetSpinResultMessageInput{Result: "pizza", Tone: ToneNeutral})
	s.Require().NoError(err)
	s.Equal("Result: pizza", out.Message)

	s.mockRandom.EXPECT().Intn(3).Return(1)
	out, err = s.service.GetSpinResultMessage(s.ctx, &GetSpinResultMessageInput{Result: "tacos"})
	s.Require().NoError(err)
	s.Equal(ToneCelebration, out.Tone)
	s.Equal("And the winner is... **tacos**!", out.Message)

	_, err = s.service.GetSpinResultMessage(s.ctx, &GetSpinResultMessageInput{})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestGetAssignmentCompleteMessage() {
	stats := models.NewAssignmentStatistics(
		[]string{"lead", "notes", "timer"},
		[]string{"ann", "bob"},
		[]models.Assignment{
			{Role: "lead", Username: "ann"},
			{Role: "notes", Username: "bob"},
			{Role: "timer", Username: "ann", Index: 2},
		},
	)

	out, err := s.service.GetAssignmentCompleteMessage(s.ctx, &GetAssignmentCompleteMessageInput{Statistics: stats})
	s.Require().NoError(err)
	s.Equal("Assigned 3 roles to 2 people. Some people got more than one role.", out.Message)

	single := models.NewAssignmentStatistics([]string{"lead"}, []string{"ann"}, []models.Assignment{{Role: "lead", Username: "ann"}})
	s.mockRandom.EXPECT().Intn(3).Return(0)
	out, err = s.service.GetAssignmentCompleteMessage(s.ctx, &GetAssignmentCompleteMessageInput{Statistics: single, Tone: ToneCelebration})
	s.Require().NoError(err)
	s.Equal("Assigned 1 role to 1 person. Good luck!", out.Message)
}

func (s *MessagingServiceTestSuite) TestLimitError() {
	sentinel := errors.New("too many")
	err := fmt.Errorf("spin: %w", &LimitError{Err: sentinel, Limit: 100, What: "enabled options"})

	s.ErrorIs(err, sentinel)
	s.True(IsValidation(err))

	out, msgErr := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{Err: &LimitError{Err: sentinel, Limit: 100, What: "enabled options"}})
	s.Require().NoError(msgErr)
	s.Equal("You can have up to 100 enabled options.", out.Message)
}
