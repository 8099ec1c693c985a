package video

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maslima80/listingshow/internal/domain/asset"
	"github.com/maslima80/listingshow/pkg/logger"
)

func TestDeleteVideo_RefundsChargedMinutes(t *testing.T) {
	teamID := uuid.New()
	prop := testProperty(teamID)
	a := pendingVideo(prop.ID)
	duration := 154
	a.DurationSec = &duration
	a.Processing = false

	assetRepo := newFakeAssetRepo(a)
	ledger := newFakeLedger()
	require.NoError(t, ledger.Add(context.Background(), teamID, 3))
	host := &fakeVideoHost{}

	uc := NewDeleteVideoUseCase(assetRepo, newFakePropertyRepo(prop), host, ledger, &fakePublisher{}, logger.NewNop())

	err := uc.Execute(context.Background(), DeleteVideoInput{TeamID: teamID, AssetID: a.ID})
	require.NoError(t, err)

	assert.Nil(t, assetRepo.get(a.ID))
	assert.Contains(t, host.deleted, a.ProviderID)
	assert.Equal(t, 0, ledger.used(teamID))
}

func TestDeleteVideo_PendingAssetNoRefund(t *testing.T) {
	teamID := uuid.New()
	prop := testProperty(teamID)
	a := pendingVideo(prop.ID)

	assetRepo := newFakeAssetRepo(a)
	ledger := newFakeLedger()
	require.NoError(t, ledger.Add(context.Background(), teamID, 7))

	uc := NewDeleteVideoUseCase(assetRepo, newFakePropertyRepo(prop), &fakeVideoHost{}, ledger, &fakePublisher{}, logger.NewNop())

	err := uc.Execute(context.Background(), DeleteVideoInput{TeamID: teamID, AssetID: a.ID})
	require.NoError(t, err)

	assert.Nil(t, assetRepo.get(a.ID))
	// Never charged, so nothing comes back.
	assert.Equal(t, 7, ledger.used(teamID))
}

func TestDeleteVideo_ProviderFailureAborts(t *testing.T) {
	teamID := uuid.New()
	prop := testProperty(teamID)
	a := pendingVideo(prop.ID)

	assetRepo := newFakeAssetRepo(a)
	host := &fakeVideoHost{deleteErr: errors.New("provider down")}

	uc := NewDeleteVideoUseCase(assetRepo, newFakePropertyRepo(prop), host, newFakeLedger(), &fakePublisher{}, logger.NewNop())

	err := uc.Execute(context.Background(), DeleteVideoInput{TeamID: teamID, AssetID: a.ID})
	assert.Error(t, err)
	// The local row survives so state does not drift from the provider.
	assert.NotNil(t, assetRepo.get(a.ID))
}

func TestDeleteVideo_WrongTeamRejected(t *testing.T) {
	teamID := uuid.New()
	prop := testProperty(teamID)
	a := pendingVideo(prop.ID)

	assetRepo := newFakeAssetRepo(a)
	uc := NewDeleteVideoUseCase(assetRepo, newFakePropertyRepo(prop), &fakeVideoHost{}, newFakeLedger(), &fakePublisher{}, logger.NewNop())

	err := uc.Execute(context.Background(), DeleteVideoInput{TeamID: uuid.New(), AssetID: a.ID})
	assert.Error(t, err)
	assert.NotNil(t, assetRepo.get(a.ID))
}

func TestDeleteVideo_RejectsImage(t *testing.T) {
	teamID := uuid.New()
	prop := testProperty(teamID)
	image := &asset.MediaAsset{
		ID:         uuid.New(),
		PropertyID: prop.ID,
		Kind:       asset.KindImage,
		Provider:   asset.ProviderCloudinary,
		ProviderID: "img-1",
	}

	uc := NewDeleteVideoUseCase(newFakeAssetRepo(image), newFakePropertyRepo(prop), &fakeVideoHost{}, newFakeLedger(), &fakePublisher{}, logger.NewNop())

	err := uc.Execute(context.Background(), DeleteVideoInput{TeamID: teamID, AssetID: image.ID})
	assert.Error(t, err)
}
