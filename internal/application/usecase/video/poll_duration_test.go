package video

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	quotaUC "github.com/maslima80/listingshow/internal/application/usecase/quota"
	"github.com/maslima80/listingshow/pkg/logger"
)

func instantSleep(ctx context.Context, d time.Duration) error { return nil }

func newPollerFixture(host *fakeVideoHost) (*DurationPoller, *fakeAssetRepo, *fakeLedger, uuid.UUID, uuid.UUID) {
	teamID := uuid.New()
	prop := testProperty(teamID)
	a := pendingVideo(prop.ID)

	assetRepo := newFakeAssetRepo(a)
	ledger := newFakeLedger()
	quotaUseCase := quotaUC.NewQuotaUseCase(ledger, &fakePlanResolver{cap: 120})
	update := NewUpdateDurationUseCase(assetRepo, newFakePropertyRepo(prop), host, ledger, quotaUseCase, &fakePublisher{}, logger.NewNop())

	poller := NewDurationPoller(update, logger.NewNop())
	poller.sleep = instantSleep
	return poller, assetRepo, ledger, a.ID, teamID
}

func TestDurationPoller_StopsOnceCharged(t *testing.T) {
	// Duration shows up on the third poll.
	host := &fakeVideoHost{metaDurations: []int{0, 0, 125}}
	poller, assetRepo, ledger, assetID, teamID := newPollerFixture(host)

	poller.Run(context.Background(), assetID)

	stored := assetRepo.get(assetID)
	require.NotNil(t, stored.DurationSec)
	assert.Equal(t, 125, *stored.DurationSec)
	assert.Equal(t, 2, ledger.used(teamID))
	assert.Equal(t, 3, host.metaCalls)
}

func TestDurationPoller_GivesUpAfterMaxAttempts(t *testing.T) {
	host := &fakeVideoHost{metaDurations: []int{0}}
	poller, assetRepo, ledger, assetID, teamID := newPollerFixture(host)

	poller.Run(context.Background(), assetID)

	// Still pending; the reconciliation sweep owns it now.
	assert.Nil(t, assetRepo.get(assetID).DurationSec)
	assert.Equal(t, 0, ledger.used(teamID))
	assert.Equal(t, pollMaxAttempts, host.metaCalls)
}

func TestDurationPoller_StopsWhenAssetDeleted(t *testing.T) {
	host := &fakeVideoHost{metaDurations: []int{0}}
	poller, assetRepo, _, assetID, _ := newPollerFixture(host)
	require.NoError(t, assetRepo.Delete(context.Background(), assetID))

	poller.Run(context.Background(), assetID)

	assert.Equal(t, 0, host.metaCalls)
}

func TestDurationPoller_ContextCancelStopsPolling(t *testing.T) {
	host := &fakeVideoHost{metaDurations: []int{0}}
	poller, _, _, assetID, _ := newPollerFixture(host)
	poller.sleep = sleepCtx
	poller.initialDelay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	poller.Run(ctx, assetID)

	assert.Equal(t, 0, host.metaCalls)
}
