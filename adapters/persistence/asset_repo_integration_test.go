package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/maslima80/listingshow/internal/domain/asset"
	"github.com/maslima80/listingshow/internal/domain/property"
	"github.com/maslima80/listingshow/internal/domain/quota"
	"github.com/maslima80/listingshow/pkg/logger"
)

type AssetRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool       *pgxpool.Pool
	pgContainer  *postgres.PostgresContainer
	testLogger   logger.Logger
	assetRepo    asset.Repository
	propertyRepo property.Repository
	quotaRepo    quota.Ledger
	testTeamID   uuid.UUID
	testProperty *property.Property
}

func (s *AssetRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()
	s.testLogger = logger.NewNop()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	s.assetRepo = NewPostgresAssetRepo(s.dbPool, s.testLogger)
	s.propertyRepo = NewPostgresPropertyRepo(s.dbPool, s.testLogger)
	s.quotaRepo = NewPostgresQuotaRepo(s.dbPool, s.testLogger)

	s.testTeamID = uuid.New()
	_, err = s.dbPool.Exec(ctx,
		`INSERT INTO teams (id, name, slug, video_minutes_cap) VALUES ($1, $2, $3, $4)`,
		s.testTeamID, "Test Realty", "test-realty", 120,
	)
	if err != nil {
		s.T().Fatalf("Failed to seed team: %s", err)
	}

	s.testProperty = &property.Property{
		ID:        uuid.New(),
		TeamID:    s.testTeamID,
		Slug:      "maple-street-12",
		Title:     "12 Maple Street",
		City:      "Lisbon",
		Status:    property.StatusDraft,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.propertyRepo.Save(ctx, s.testProperty); err != nil {
		s.T().Fatalf("Failed to seed property: %s", err)
	}
}

func (s *AssetRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestAssetRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(AssetRepoIntegrationTestSuite))
}

func (s *AssetRepoIntegrationTestSuite) newPendingVideo() *asset.MediaAsset {
	return &asset.MediaAsset{
		ID:         uuid.New(),
		PropertyID: s.testProperty.ID,
		Kind:       asset.KindVideo,
		Provider:   asset.ProviderBunny,
		ProviderID: uuid.NewString(),
		URL:        "https://iframe.mediadelivery.net/embed/42/x?autoplay=false&preload=true",
		Processing: true,
		CreatedAt:  time.Now().UTC(),
	}
}

func (s *AssetRepoIntegrationTestSuite) Test_Save_And_FindByID() {
	ctx := context.Background()

	a := s.newPendingVideo()
	s.NoError(s.assetRepo.Save(ctx, a))

	found, err := s.assetRepo.FindByID(ctx, a.ID)
	s.NoError(err)
	s.Equal(a.ProviderID, found.ProviderID)
	s.Nil(found.DurationSec)
	s.True(found.Processing)
}

func (s *AssetRepoIntegrationTestSuite) Test_SetDurationIfUnset_OnlyOnce() {
	ctx := context.Background()

	a := s.newPendingVideo()
	s.NoError(s.assetRepo.Save(ctx, a))

	set, err := s.assetRepo.SetDurationIfUnset(ctx, a.ID, 154)
	s.NoError(err)
	s.True(set)

	// The second attempt loses the race by design.
	setAgain, err := s.assetRepo.SetDurationIfUnset(ctx, a.ID, 999)
	s.NoError(err)
	s.False(setAgain)

	found, err := s.assetRepo.FindByID(ctx, a.ID)
	s.NoError(err)
	s.NotNil(found.DurationSec)
	s.Equal(154, *found.DurationSec)
	s.False(found.Processing)
}

func (s *AssetRepoIntegrationTestSuite) Test_FindPendingDurationVideos() {
	ctx := context.Background()

	pending := s.newPendingVideo()
	charged := s.newPendingVideo()
	s.NoError(s.assetRepo.Save(ctx, pending))
	s.NoError(s.assetRepo.Save(ctx, charged))
	set, err := s.assetRepo.SetDurationIfUnset(ctx, charged.ID, 60)
	s.NoError(err)
	s.True(set)

	found, err := s.assetRepo.FindPendingDurationVideos(ctx, asset.ProviderBunny)
	s.NoError(err)

	ids := make(map[uuid.UUID]bool)
	for _, a := range found {
		ids[a.ID] = true
	}
	s.True(ids[pending.ID])
	s.False(ids[charged.ID])
}

func (s *AssetRepoIntegrationTestSuite) Test_Delete_ClearsCoverPointer() {
	ctx := context.Background()

	a := s.newPendingVideo()
	s.NoError(s.assetRepo.Save(ctx, a))

	s.testProperty.CoverAssetID = &a.ID
	s.NoError(s.propertyRepo.Update(ctx, s.testProperty))

	s.NoError(s.assetRepo.Delete(ctx, a.ID))

	refreshed, err := s.propertyRepo.FindByID(ctx, s.testProperty.ID, s.testTeamID)
	s.NoError(err)
	s.Nil(refreshed.CoverAssetID)

	_, err = s.assetRepo.FindByID(ctx, a.ID)
	s.Error(err)
}

func (s *AssetRepoIntegrationTestSuite) Test_QuotaLedger_AddAndSubtract() {
	ctx := context.Background()

	teamID := uuid.New()
	_, err := s.dbPool.Exec(ctx,
		`INSERT INTO teams (id, name, slug, video_minutes_cap) VALUES ($1, $2, $3, $4)`,
		teamID, "Ledger Team", "ledger-team", 120,
	)
	s.NoError(err)

	// Missing row reads as zero consumption.
	q, err := s.quotaRepo.Get(ctx, teamID)
	s.NoError(err)
	s.Equal(0, q.MinutesUsed)

	s.NoError(s.quotaRepo.Add(ctx, teamID, 3))
	s.NoError(s.quotaRepo.Add(ctx, teamID, 2))

	q, err = s.quotaRepo.Get(ctx, teamID)
	s.NoError(err)
	s.Equal(5, q.MinutesUsed)

	s.NoError(s.quotaRepo.Subtract(ctx, teamID, 2))
	q, err = s.quotaRepo.Get(ctx, teamID)
	s.NoError(err)
	s.Equal(3, q.MinutesUsed)

	// Over-refund floors at zero instead of going negative.
	s.NoError(s.quotaRepo.Subtract(ctx, teamID, 100))
	q, err = s.quotaRepo.Get(ctx, teamID)
	s.NoError(err)
	s.Equal(0, q.MinutesUsed)
}
