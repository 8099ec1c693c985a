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

func TestReconcilePending_ChargesAllReady(t *testing.T) {
	teamID := uuid.New()
	prop := testProperty(teamID)
	first := pendingVideo(prop.ID)
	second := pendingVideo(prop.ID)
	second.ProviderID = "vid-2"

	assetRepo := newFakeAssetRepo(first, second)
	host := &fakeVideoHost{metaDurations: []int{90, 90}}
	ledger := newFakeLedger()
	quotaUseCase := quotaUC.NewQuotaUseCase(ledger, &fakePlanResolver{cap: 120})
	update := NewUpdateDurationUseCase(assetRepo, newFakePropertyRepo(prop), host, ledger, quotaUseCase, &fakePublisher{}, logger.NewNop())

	uc := NewReconcilePendingUseCase(assetRepo, update, newFakeLocker(), logger.NewNop())

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, out.Scanned)
	assert.Equal(t, 2, out.Charged)
	assert.Equal(t, 0, out.Failed)
	assert.Equal(t, 4, ledger.used(teamID))
}

func TestReconcilePending_SkipsLockedAssets(t *testing.T) {
	teamID := uuid.New()
	prop := testProperty(teamID)
	a := pendingVideo(prop.ID)

	assetRepo := newFakeAssetRepo(a)
	locker := newFakeLocker()
	held, err := locker.TryLock(context.Background(), "reconcile:"+a.ID.String(), time.Minute)
	require.NoError(t, err)
	require.True(t, held)

	ledger := newFakeLedger()
	quotaUseCase := quotaUC.NewQuotaUseCase(ledger, &fakePlanResolver{cap: 120})
	update := NewUpdateDurationUseCase(assetRepo, newFakePropertyRepo(prop), &fakeVideoHost{metaDurations: []int{90}}, ledger, quotaUseCase, &fakePublisher{}, logger.NewNop())

	uc := NewReconcilePendingUseCase(assetRepo, update, locker, logger.NewNop())

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, out.Scanned)
	assert.Equal(t, 1, out.Skipped)
	assert.Equal(t, 0, out.Charged)
	assert.Equal(t, 0, ledger.used(teamID))
}

func TestReconcilePending_OneFailureDoesNotAbortSweep(t *testing.T) {
	teamID := uuid.New()
	prop := testProperty(teamID)
	// Orphan: its property row is gone, so team resolution fails mid-charge.
	orphan := pendingVideo(uuid.New())
	healthy := pendingVideo(prop.ID)
	healthy.ProviderID = "vid-ok"

	assetRepo := newFakeAssetRepo(orphan, healthy)
	host := &fakeVideoHost{metaDurations: []int{90, 90}}
	ledger := newFakeLedger()
	quotaUseCase := quotaUC.NewQuotaUseCase(ledger, &fakePlanResolver{cap: 120})
	update := NewUpdateDurationUseCase(assetRepo, newFakePropertyRepo(prop), host, ledger, quotaUseCase, &fakePublisher{}, logger.NewNop())

	uc := NewReconcilePendingUseCase(assetRepo, update, newFakeLocker(), logger.NewNop())

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, out.Scanned)
	assert.Equal(t, 1, out.Charged)
	assert.Equal(t, 1, out.Failed)
	assert.Equal(t, 2, ledger.used(teamID))
}
