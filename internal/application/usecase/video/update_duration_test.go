package video

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maslima80/listingshow/adapters/event"
	quotaUC "github.com/maslima80/listingshow/internal/application/usecase/quota"
	"github.com/maslima80/listingshow/internal/domain/asset"
	"github.com/maslima80/listingshow/internal/domain/property"
	"github.com/maslima80/listingshow/pkg/logger"
)

func pendingVideo(propertyID uuid.UUID) *asset.MediaAsset {
	return &asset.MediaAsset{
		ID:         uuid.New(),
		PropertyID: propertyID,
		Kind:       asset.KindVideo,
		Provider:   asset.ProviderBunny,
		ProviderID: "vid-1",
		URL:        "https://iframe.test/embed/42/vid-1?autoplay=false&preload=true",
		Processing: true,
		CreatedAt:  time.Now().UTC(),
	}
}

func testProperty(teamID uuid.UUID) *property.Property {
	return &property.Property{
		ID:     uuid.New(),
		TeamID: teamID,
		Slug:   "test-listing",
		Title:  "Test Listing",
		Status: property.StatusPublished,
	}
}

func newUpdateDurationFixture(cap int, host *fakeVideoHost) (*UpdateDurationUseCase, *fakeAssetRepo, *fakeLedger, *fakePublisher, *asset.MediaAsset, uuid.UUID) {
	teamID := uuid.New()
	prop := testProperty(teamID)
	a := pendingVideo(prop.ID)

	assetRepo := newFakeAssetRepo(a)
	propertyRepo := newFakePropertyRepo(prop)
	ledger := newFakeLedger()
	publisher := &fakePublisher{}
	quotaUseCase := quotaUC.NewQuotaUseCase(ledger, &fakePlanResolver{cap: cap})

	uc := NewUpdateDurationUseCase(assetRepo, propertyRepo, host, ledger, quotaUseCase, publisher, logger.NewNop())
	return uc, assetRepo, ledger, publisher, a, teamID
}

func TestUpdateDuration_ChargesOnce(t *testing.T) {
	host := &fakeVideoHost{metaDurations: []int{154}}
	uc, assetRepo, ledger, _, a, teamID := newUpdateDurationFixture(120, host)

	out, err := uc.Execute(context.Background(), a.ID)
	require.NoError(t, err)
	assert.True(t, out.Charged)
	assert.False(t, out.AlreadyCharged)
	assert.Equal(t, 154, out.DurationSec)
	assert.Equal(t, 3, out.Minutes)

	stored := assetRepo.get(a.ID)
	require.NotNil(t, stored.DurationSec)
	assert.Equal(t, 154, *stored.DurationSec)
	assert.False(t, stored.Processing)
	assert.Equal(t, 3, ledger.used(teamID))

	// A second call must not bill again.
	out2, err := uc.Execute(context.Background(), a.ID)
	require.NoError(t, err)
	assert.False(t, out2.Charged)
	assert.True(t, out2.AlreadyCharged)
	assert.Equal(t, 3, ledger.used(teamID))
}

func TestUpdateDuration_StillTranscoding(t *testing.T) {
	host := &fakeVideoHost{metaDurations: []int{0}}
	uc, assetRepo, ledger, _, a, teamID := newUpdateDurationFixture(120, host)

	out, err := uc.Execute(context.Background(), a.ID)
	require.NoError(t, err)
	assert.False(t, out.Charged)
	assert.False(t, out.AlreadyCharged)

	assert.Nil(t, assetRepo.get(a.ID).DurationSec)
	assert.Equal(t, 0, ledger.used(teamID))
}

func TestUpdateDuration_OverCapStillCharges(t *testing.T) {
	host := &fakeVideoHost{metaDurations: []int{154}}
	uc, _, ledger, publisher, a, teamID := newUpdateDurationFixture(2, host)

	out, err := uc.Execute(context.Background(), a.ID)
	require.NoError(t, err)
	assert.True(t, out.Charged)
	assert.Equal(t, 3, ledger.used(teamID))

	assert.Eventually(t, func() bool {
		return publisher.has(event.VideoEventTypeQuotaExceeded)
	}, time.Second, 10*time.Millisecond)
}

func TestUpdateDuration_LostRaceSkipsLedger(t *testing.T) {
	host := &fakeVideoHost{metaDurations: []int{154}}
	uc, assetRepo, ledger, _, a, teamID := newUpdateDurationFixture(120, host)
	assetRepo.setReturnsFalse = true

	out, err := uc.Execute(context.Background(), a.ID)
	require.NoError(t, err)
	assert.False(t, out.Charged)
	assert.True(t, out.AlreadyCharged)
	assert.Equal(t, 0, ledger.used(teamID))
}

func TestUpdateDuration_RejectsNonVideo(t *testing.T) {
	teamID := uuid.New()
	prop := testProperty(teamID)
	image := &asset.MediaAsset{
		ID:         uuid.New(),
		PropertyID: prop.ID,
		Kind:       asset.KindImage,
		Provider:   asset.ProviderCloudinary,
		ProviderID: "img-1",
	}

	assetRepo := newFakeAssetRepo(image)
	ledger := newFakeLedger()
	quotaUseCase := quotaUC.NewQuotaUseCase(ledger, &fakePlanResolver{cap: 120})
	uc := NewUpdateDurationUseCase(assetRepo, newFakePropertyRepo(prop), &fakeVideoHost{}, ledger, quotaUseCase, &fakePublisher{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), image.ID)
	assert.Error(t, err)
}
