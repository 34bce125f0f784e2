package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"activity_discovery/internal/config"
	"activity_discovery/internal/domain"
	"activity_discovery/internal/gesture"
	"activity_discovery/internal/service/mocks"
)

const testUser = domain.UserID(7)

var (
	home  = domain.Location{Latitude: 40.7128, Longitude: -74.0060}
	other = domain.Location{Latitude: 40.7306, Longitude: -73.9352}
)

func act(id domain.ActivityID, images ...string) domain.Activity {
	if len(images) == 0 {
		images = []string{"cover.jpg"}
	}
	return domain.Activity{ID: id, Name: "activity", Images: images}
}

type EngineTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	feed      *mocks.MockFeedSource
	resetter  *mocks.MockDeclinedResetter
	decisions *mocks.MockDecisions
	radius    *mocks.MockRadiusStore
	navigator *mocks.MockNavigator

	cfg    config.DiscoveryConfig
	logger *slog.Logger
	ctx    context.Context
	engine *Engine
}

func (s *EngineTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.feed = mocks.NewMockFeedSource(s.ctrl)
	s.resetter = mocks.NewMockDeclinedResetter(s.ctrl)
	s.decisions = mocks.NewMockDecisions(s.ctrl)
	s.radius = mocks.NewMockRadiusStore(s.ctrl)
	s.navigator = mocks.NewMockNavigator(s.ctrl)

	cfg := config.Defaults()
	s.cfg = cfg.Discovery
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.ctx = context.Background()

	s.radius.EXPECT().Radius(gomock.Any(), gomock.Any()).Return(50, nil).AnyTimes()

	s.engine = s.newEngine(s.cfg)
}

func (s *EngineTestSuite) TearDownTest() {
	s.engine.Close()
	s.ctrl.Finish()
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) newEngine(cfg config.DiscoveryConfig) *Engine {
	return NewEngine(Deps{
		Feed:      s.feed,
		Resetter:  s.resetter,
		Decisions: s.decisions,
		Radius:    s.radius,
		Navigator: s.navigator,
	}, cfg, s.logger)
}

func (s *EngineTestSuite) awaitResult() FetchResult {
	select {
	case res := <-s.engine.Results():
		return res
	case <-time.After(2 * time.Second):
		s.FailNow("timed out waiting for fetch result")
		return FetchResult{}
	}
}

// start signs in, provides a location and applies the first fetch.
func (s *EngineTestSuite) start(activities ...domain.Activity) {
	s.feed.EXPECT().FetchActivities(gomock.Any(), testUser, home, 50).Return(activities, nil)

	s.engine.Login(s.ctx, testUser)
	s.engine.UpdateLocation(home)

	res := s.awaitResult()
	s.Equal(TriggerFirstLocation, res.Trigger)
	s.engine.ApplyResult(res)
	s.assertInvariants()
}

func (s *EngineTestSuite) assertInvariants() {
	s.Require().NoError(s.engine.Queue().Validate())
	if s.engine.Queue().Len() == 0 && s.engine.State() != StateSignedOut {
		s.NotEqual(StatePopulated, s.engine.State())
	}
}

func (s *EngineTestSuite) ids() []domain.ActivityID {
	return s.engine.Queue().IDs()
}

func (s *EngineTestSuite) TestLogin_WaitsForLocation() {
	s.engine.Login(s.ctx, testUser)
	s.Equal(StateAwaitingLocation, s.engine.State())

	s.feed.EXPECT().FetchActivities(gomock.Any(), testUser, home, 50).Return([]domain.Activity{act(1), act(2)}, nil)
	s.engine.UpdateLocation(home)
	s.Equal(StateLoading, s.engine.State())

	s.engine.ApplyResult(s.awaitResult())

	s.Equal(StatePopulated, s.engine.State())
	s.Equal([]domain.ActivityID{1, 2}, s.ids())
}

func (s *EngineTestSuite) TestLogin_WithKnownLocationFetchesImmediately() {
	s.engine.UpdateLocation(home)
	s.Equal(StateSignedOut, s.engine.State())

	s.feed.EXPECT().FetchActivities(gomock.Any(), testUser, home, 50).Return([]domain.Activity{act(1)}, nil)
	s.engine.Login(s.ctx, testUser)

	res := s.awaitResult()
	s.Equal(TriggerIdentity, res.Trigger)
	s.engine.ApplyResult(res)
	s.Equal([]domain.ActivityID{1}, s.ids())
}

func (s *EngineTestSuite) TestTap_OpensDetailWithoutMutating() {
	a := act(1, "a-1.jpg", "a-2.jpg")
	s.start(a, act(2), act(3))

	s.navigator.EXPECT().ShowDetail(a, "a-1.jpg")

	in := s.engine.Release(3, -4)

	s.Equal(gesture.Tap, in.Kind)
	s.Equal(domain.ActivityID(1), in.ActivityID)
	s.False(s.engine.ApplyIntent(in).Changed())
	s.Equal([]domain.ActivityID{1, 2, 3}, s.ids())
	active, image := s.engine.Queue().Cursor()
	s.Equal(0, active)
	s.Equal(0, image)
	s.False(s.engine.TransitionPending())
}

func (s *EngineTestSuite) TestCycleImage_ClampsAtLastImage() {
	s.start(act(1, "a.jpg", "b.jpg", "c.jpg"), act(2))

	for i := 0; i < 2; i++ {
		in := s.engine.Release(-150, 0)
		s.Equal(gesture.CycleImage, in.Kind)
		s.True(s.engine.ApplyIntent(in).ImageChanged)
	}
	s.Equal(2, s.engine.View().ImageIndex)

	delta := s.engine.ApplyIntent(s.engine.Release(-150, 0))

	s.False(delta.ImageChanged)
	view := s.engine.View()
	s.Equal(2, view.ImageIndex)
	s.Equal("c.jpg", view.Image)
	s.assertInvariants()
}

func (s *EngineTestSuite) TestCycleImage_RightDragGoesBack() {
	s.start(act(1, "a.jpg", "b.jpg"))

	s.engine.ApplyIntent(s.engine.Release(-150, 0))
	s.engine.ApplyIntent(s.engine.Release(150, 10))

	s.Equal(0, s.engine.View().ImageIndex)
}

func (s *EngineTestSuite) TestVerticalSwipe_RemovesActiveAndDispatchesOnce() {
	s.start(act(1), act(2), act(3))

	var dispatched []domain.Decision
	s.decisions.EXPECT().Dispatch(gomock.Any()).Do(func(d domain.Decision) {
		dispatched = append(dispatched, d)
	}).Times(1)

	in := s.engine.Release(0, -150)
	s.Equal(gesture.Decide, in.Kind)
	s.Equal([]domain.ActivityID{1, 2, 3}, s.ids(), "queue changes only after the animation")

	delta := s.engine.ApplyIntent(in)

	s.Equal([]domain.ActivityID{1}, delta.Removed)
	s.Equal([]domain.ActivityID{2, 3}, s.ids())
	active, image := s.engine.Queue().Cursor()
	s.Equal(0, active)
	s.Equal(0, image)
	s.Require().Len(dispatched, 1)
	s.Equal(testUser, dispatched[0].UserID)
	s.Equal(domain.ActivityID(1), dispatched[0].ActivityID)
	s.True(dispatched[0].Liked)

	s.False(s.engine.ApplyIntent(in).Changed(), "an intent applies once")
	s.Equal([]domain.ActivityID{2, 3}, s.ids())
	s.assertInvariants()
}

func (s *EngineTestSuite) TestDownwardSwipe_Dislikes() {
	s.start(act(1), act(2))

	s.decisions.EXPECT().Dispatch(gomock.Any()).Do(func(d domain.Decision) {
		s.False(d.Liked)
		s.Equal(domain.ActivityID(1), d.ActivityID)
	})

	s.engine.ApplyIntent(s.engine.Release(20, 150))

	s.Equal([]domain.ActivityID{2}, s.ids())
}

func (s *EngineTestSuite) TestRelease_DuringTransitionIsCancelled() {
	s.start(act(1), act(2), act(3))
	s.decisions.EXPECT().Dispatch(gomock.Any()).Times(1)

	first := s.engine.Release(0, -150)
	second := s.engine.Release(0, -150)

	s.Equal(gesture.Cancel, second.Kind)
	s.False(s.engine.ApplyIntent(second).Changed())
	s.engine.ApplyIntent(first)

	s.Equal([]domain.ActivityID{2, 3}, s.ids())
}

func (s *EngineTestSuite) TestRelease_EmptyQueueIsCancelled() {
	s.start()

	in := s.engine.Release(0, -150)

	s.Equal(gesture.Cancel, in.Kind)
	s.Equal(gesture.Offset{}, s.engine.Drag(0, -80))
}

func (s *EngineTestSuite) TestDrag_DominantAxisOnly() {
	s.start(act(1))

	s.Equal(gesture.Offset{X: -90}, s.engine.Drag(-90, 20))
	s.Equal(gesture.Offset{Y: 70}, s.engine.Drag(10, 70))
}

func (s *EngineTestSuite) TestDrag_AmbiguousKeepsLastOffset() {
	s.start(act(1))

	s.Equal(gesture.Offset{X: -90}, s.engine.Drag(-90, 20))
	s.Equal(gesture.Offset{X: -90}, s.engine.Drag(-90, 80))

	s.engine.Release(-90, 80)
	s.Equal(gesture.Offset{}, s.engine.Drag(50, 40))
}

func (s *EngineTestSuite) TestDecision_OnCardReconciledAway() {
	s.start(act(1), act(2))
	in := s.engine.Release(0, 150)

	s.feed.EXPECT().FetchActivities(gomock.Any(), testUser, home, 50).Return([]domain.Activity{act(2), act(3)}, nil)
	s.engine.Refresh()
	s.engine.ApplyResult(s.awaitResult())
	s.Equal([]domain.ActivityID{2, 3}, s.ids())

	s.decisions.EXPECT().Dispatch(gomock.Any()).Do(func(d domain.Decision) {
		s.Equal(domain.ActivityID(1), d.ActivityID)
	})
	delta := s.engine.ApplyIntent(in)

	s.Empty(delta.Removed)
	s.Equal([]domain.ActivityID{2, 3}, s.ids(), "the card now on screen is untouched")
}

func (s *EngineTestSuite) TestQueueEmpty_Refetches() {
	s.start(act(1))
	s.decisions.EXPECT().Dispatch(gomock.Any())
	s.feed.EXPECT().FetchActivities(gomock.Any(), testUser, home, 50).Return(nil, nil)

	delta := s.engine.ApplyIntent(s.engine.Release(0, -150))
	s.True(delta.Empty)
	s.Equal(StateLoading, s.engine.State())

	res := s.awaitResult()
	s.Equal(TriggerQueueEmpty, res.Trigger)
	s.engine.ApplyResult(res)

	view := s.engine.View()
	s.Equal(StateEmpty, view.State)
	s.Nil(view.Active)
	s.Equal([]Action{ActionWidenRadius, ActionResetDeclined}, view.Options)
}

func (s *EngineTestSuite) TestRefillBelow_TopsUpEarly() {
	cfg := s.cfg
	cfg.RefillBelow = 2
	s.engine = s.newEngine(cfg)
	s.start(act(1), act(2))

	s.decisions.EXPECT().Dispatch(gomock.Any())
	s.feed.EXPECT().FetchActivities(gomock.Any(), testUser, home, 50).Return([]domain.Activity{act(2), act(3)}, nil)

	s.engine.ApplyIntent(s.engine.Release(0, -150))
	s.engine.ApplyResult(s.awaitResult())

	s.Equal([]domain.ActivityID{2, 3}, s.ids())
}

func (s *EngineTestSuite) TestStaleFetch_DoesNotResurfaceDecidedActivity() {
	s.start(act(1), act(2))

	gate := make(chan struct{})
	s.feed.EXPECT().FetchActivities(gomock.Any(), testUser, home, 50).DoAndReturn(
		func(ctx context.Context, _ domain.UserID, _ domain.Location, _ int) ([]domain.Activity, error) {
			<-gate
			return []domain.Activity{act(1), act(2), act(3)}, nil
		},
	)
	s.decisions.EXPECT().Dispatch(gomock.Any())

	s.engine.Refresh()
	s.engine.ApplyIntent(s.engine.Release(0, 150))
	close(gate)
	s.engine.ApplyResult(s.awaitResult())

	s.Equal([]domain.ActivityID{2, 3}, s.ids())
	s.assertInvariants()
}

func (s *EngineTestSuite) TestResults_AppliedInArrivalOrder() {
	s.start(act(1))

	slow := make(chan struct{})
	s.feed.EXPECT().FetchActivities(gomock.Any(), testUser, home, 50).DoAndReturn(
		func(ctx context.Context, _ domain.UserID, _ domain.Location, _ int) ([]domain.Activity, error) {
			<-slow
			return []domain.Activity{act(1), act(2)}, nil
		},
	)
	s.engine.Refresh()

	s.feed.EXPECT().FetchActivities(gomock.Any(), testUser, other, 50).Return([]domain.Activity{act(2), act(3)}, nil)
	s.engine.UpdateLocation(other)

	fast := s.awaitResult()
	s.Equal(TriggerLocationMoved, fast.Trigger)
	s.engine.ApplyResult(fast)
	s.Equal([]domain.ActivityID{2, 3}, s.ids())

	close(slow)
	late := s.awaitResult()
	s.Equal(TriggerRefresh, late.Trigger)
	s.engine.ApplyResult(late)

	s.Equal([]domain.ActivityID{2, 1}, s.ids(), "late result reconciles against the current queue")
	s.assertInvariants()
}

func (s *EngineTestSuite) TestLocation_SameSampleDoesNotRefetch() {
	s.start(act(1))

	s.engine.UpdateLocation(home)

	select {
	case res := <-s.engine.Results():
		s.Failf("unexpected fetch", "trigger %s", res.Trigger)
	case <-time.After(50 * time.Millisecond):
	}
}

func (s *EngineTestSuite) TestLocation_ThresholdIgnoresJitter() {
	cfg := s.cfg
	cfg.LocationThresholdMeters = 100
	s.engine = s.newEngine(cfg)
	s.start(act(1))

	s.engine.UpdateLocation(domain.Location{Latitude: home.Latitude + 0.00001, Longitude: home.Longitude})
	s.Zero(s.engine.inFlight)

	s.feed.EXPECT().FetchActivities(gomock.Any(), testUser, other, 50).Return([]domain.Activity{act(1)}, nil)
	s.engine.UpdateLocation(other)
	s.Equal(TriggerLocationMoved, s.awaitResult().Trigger)
}

func (s *EngineTestSuite) TestSetRadius() {
	s.start(act(1))

	s.ErrorIs(s.engine.SetRadius(s.ctx, 0), domain.ErrRadiusOutOfRange)
	s.ErrorIs(s.engine.SetRadius(s.ctx, 3501), domain.ErrRadiusOutOfRange)
	s.NoError(s.engine.SetRadius(s.ctx, 50), "unchanged radius is a no-op")

	s.radius.EXPECT().SetRadius(gomock.Any(), testUser, 200).Return(errors.New("disk full"))
	s.feed.EXPECT().FetchActivities(gomock.Any(), testUser, home, 200).Return([]domain.Activity{act(1), act(9)}, nil)

	s.NoError(s.engine.SetRadius(s.ctx, 200))

	res := s.awaitResult()
	s.Equal(TriggerRadius, res.Trigger)
	s.engine.ApplyResult(res)
	s.Equal(200, s.engine.Radius())
	s.Equal([]domain.ActivityID{1, 9}, s.ids())
}

func (s *EngineTestSuite) TestSetRadius_WithoutLocationOnlyStores() {
	s.engine.Login(s.ctx, testUser)
	s.radius.EXPECT().SetRadius(gomock.Any(), testUser, 10).Return(nil)

	s.NoError(s.engine.SetRadius(s.ctx, 10))

	s.Zero(s.engine.inFlight)
	s.Equal(StateAwaitingLocation, s.engine.State())
}

func (s *EngineTestSuite) TestFetchError_TreatedAsEmpty() {
	s.start(act(1), act(2))
	s.feed.EXPECT().FetchActivities(gomock.Any(), testUser, home, 50).Return(nil, errors.New("connection reset"))

	s.engine.Refresh()
	res := s.awaitResult()
	s.Error(res.Err)
	delta := s.engine.ApplyResult(res)

	s.True(delta.Empty)
	s.Equal(StateEmpty, s.engine.State())
}

func (s *EngineTestSuite) TestInvalidActivitiesSkipped() {
	s.start(act(1), domain.Activity{ID: 2, Name: "no images"}, act(3))

	s.Equal([]domain.ActivityID{1, 3}, s.ids())
}

func (s *EngineTestSuite) TestLogout_ClearsQueueAndDiscardsInFlight() {
	s.start(act(1), act(2))

	stale := FetchResult{Epoch: s.engine.epoch, Seq: 99, Trigger: TriggerRefresh, Activities: []domain.Activity{act(5)}}
	s.engine.Logout()

	s.Equal(StateSignedOut, s.engine.State())
	s.Zero(s.engine.Queue().Len())

	s.feed.EXPECT().FetchActivities(gomock.Any(), domain.UserID(8), home, 50).Return([]domain.Activity{act(3)}, nil)
	s.engine.Login(s.ctx, 8)

	s.False(s.engine.ApplyResult(stale).Changed())
	s.Zero(s.engine.Queue().Len())

	s.engine.ApplyResult(s.awaitResult())
	s.Equal([]domain.ActivityID{3}, s.ids())
}

func (s *EngineTestSuite) TestLogout_CancelsFetchContext() {
	s.start(act(1))

	cancelled := make(chan struct{})
	s.feed.EXPECT().FetchActivities(gomock.Any(), testUser, home, 50).DoAndReturn(
		func(ctx context.Context, _ domain.UserID, _ domain.Location, _ int) ([]domain.Activity, error) {
			<-ctx.Done()
			close(cancelled)
			return nil, ctx.Err()
		},
	)
	s.engine.Refresh()
	s.engine.Logout()

	select {
	case <-cancelled:
	case <-time.After(2 * time.Second):
		s.FailNow("fetch was not cancelled")
	}
}

func (s *EngineTestSuite) TestPermissionDenied() {
	s.engine.Login(s.ctx, testUser)
	s.engine.LocationDenied()

	view := s.engine.View()
	s.Equal(StatePermissionDenied, view.State)
	s.Equal([]Action{ActionRetryLocation}, view.Options)

	s.engine.RetryLocation()
	s.Equal(StateAwaitingLocation, s.engine.State())
}

func (s *EngineTestSuite) TestResetDeclined_RequiresConfirmation() {
	s.start(act(1), act(2))

	s.ErrorIs(s.engine.ConfirmResetDeclined(), ErrResetNotConfirmed)

	s.NoError(s.engine.RequestResetDeclined())
	s.Equal(StateConfirmingReset, s.engine.State())
	s.Equal([]Action{ActionConfirmReset, ActionCancelReset}, s.engine.View().Options)

	s.engine.CancelResetDeclined()
	s.Equal(StatePopulated, s.engine.State())
	s.ErrorIs(s.engine.ConfirmResetDeclined(), ErrResetNotConfirmed)
}

func (s *EngineTestSuite) TestResetDeclined_ResetsBeforeFetching() {
	s.start(act(1), act(2))
	s.decisions.EXPECT().Dispatch(gomock.Any())
	s.engine.ApplyIntent(s.engine.Release(0, 150))
	s.Equal([]domain.ActivityID{2}, s.ids())

	gomock.InOrder(
		s.resetter.EXPECT().ResetDeclined(gomock.Any(), testUser).Return(nil),
		s.feed.EXPECT().FetchActivities(gomock.Any(), testUser, home, 50).Return([]domain.Activity{act(1), act(2)}, nil),
	)

	s.NoError(s.engine.RequestResetDeclined())
	s.NoError(s.engine.ConfirmResetDeclined())

	res := s.awaitResult()
	s.Equal(TriggerResetDeclined, res.Trigger)
	s.engine.ApplyResult(res)

	s.Equal([]domain.ActivityID{2, 1}, s.ids(), "declined activity is eligible again")
	s.assertInvariants()
}

func (s *EngineTestSuite) TestResetDeclined_DecisionDuringResetStaysGone() {
	s.start(act(1), act(2), act(3))

	gomock.InOrder(
		s.resetter.EXPECT().ResetDeclined(gomock.Any(), testUser).Return(nil),
		s.feed.EXPECT().FetchActivities(gomock.Any(), testUser, home, 50).Return([]domain.Activity{act(1), act(2), act(3)}, nil),
	)
	s.NoError(s.engine.RequestResetDeclined())
	s.NoError(s.engine.ConfirmResetDeclined())
	res := s.awaitResult()

	s.decisions.EXPECT().Dispatch(gomock.Any()).Times(2)
	s.engine.ApplyIntent(s.engine.Release(0, -150))
	s.engine.ApplyIntent(s.engine.Release(0, 150))
	s.Equal([]domain.ActivityID{3}, s.ids())

	s.engine.ApplyResult(res)

	s.Equal([]domain.ActivityID{3}, s.ids(), "decisions made after the reset started stay excluded")
	s.False(s.engine.Fetching())
	s.assertInvariants()
}

func (s *EngineTestSuite) TestResetDeclined_KeepsLikesExcluded() {
	s.start(act(1), act(2), act(3))
	s.decisions.EXPECT().Dispatch(gomock.Any()).Times(2)
	s.engine.ApplyIntent(s.engine.Release(0, -150))
	s.engine.ApplyIntent(s.engine.Release(0, 150))
	s.Equal([]domain.ActivityID{3}, s.ids())

	gomock.InOrder(
		s.resetter.EXPECT().ResetDeclined(gomock.Any(), testUser).Return(nil),
		s.feed.EXPECT().FetchActivities(gomock.Any(), testUser, home, 50).Return([]domain.Activity{act(1), act(2), act(3)}, nil),
	)
	s.NoError(s.engine.RequestResetDeclined())
	s.NoError(s.engine.ConfirmResetDeclined())
	s.engine.ApplyResult(s.awaitResult())

	s.Equal([]domain.ActivityID{3, 2}, s.ids(), "only the dislike comes back")
	s.assertInvariants()
}

func (s *EngineTestSuite) TestResetDeclined_FailureStillFetches() {
	s.start()
	s.resetter.EXPECT().ResetDeclined(gomock.Any(), testUser).Return(errors.New("server error"))
	s.feed.EXPECT().FetchActivities(gomock.Any(), testUser, home, 50).Return(nil, nil)

	s.NoError(s.engine.RequestResetDeclined())
	s.NoError(s.engine.ConfirmResetDeclined())
	s.engine.ApplyResult(s.awaitResult())

	s.Equal(StateEmpty, s.engine.State())
}

func (s *EngineTestSuite) TestResetDeclined_RequiresIdentity() {
	s.ErrorIs(s.engine.RequestResetDeclined(), domain.ErrNoIdentity)
	s.ErrorIs(s.engine.ConfirmResetDeclined(), domain.ErrNoIdentity)
}

func (s *EngineTestSuite) TestTick_SkippedWhileFetching() {
	s.engine.Login(s.ctx, testUser)
	s.False(s.engine.Tick(), "no location yet")

	gate := make(chan struct{})
	s.feed.EXPECT().FetchActivities(gomock.Any(), testUser, home, 50).DoAndReturn(
		func(ctx context.Context, _ domain.UserID, _ domain.Location, _ int) ([]domain.Activity, error) {
			<-gate
			return []domain.Activity{act(1)}, nil
		},
	)
	s.engine.UpdateLocation(home)
	s.False(s.engine.Tick())

	close(gate)
	s.engine.ApplyResult(s.awaitResult())

	s.feed.EXPECT().FetchActivities(gomock.Any(), testUser, home, 50).Return([]domain.Activity{act(1)}, nil)
	s.True(s.engine.Tick())
	s.Equal(TriggerScheduled, s.awaitResult().Trigger)
}

func (s *EngineTestSuite) TestLogin_LoadsStoredRadius() {
	ctrl := gomock.NewController(s.T())
	radius := mocks.NewMockRadiusStore(ctrl)
	radius.EXPECT().Radius(gomock.Any(), testUser).Return(120, nil)

	engine := NewEngine(Deps{Feed: s.feed, Resetter: s.resetter, Decisions: s.decisions, Radius: radius}, s.cfg, s.logger)
	defer engine.Close()
	engine.Login(s.ctx, testUser)

	s.Equal(120, engine.Radius())
}
