package services

import (
	"context"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"wayfarer/internal/models/db_models"
	"wayfarer/internal/repositories"
	"wayfarer/pkg/utils"
)

var urlSafeToken = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

type shareFixture struct {
	db       *gorm.DB
	svc      ShareServiceInterface
	tripSvc  TripServiceInterface
	owner    uuid.UUID
	trip     db_models.Trip
	tripRepo repositories.TripRepository
}

func newShareFixture(t *testing.T) *shareFixture {
	db := setupServiceDB(t)
	tripRepo := repositories.NewTripRepository(db)
	shareRepo := repositories.NewShareRepository(db)
	tripSvc := NewTripService(tripRepo)
	svc := NewShareService(shareRepo, tripRepo, tripSvc)

	owner := uuid.New()
	trip := db_models.Trip{
		UserID:    owner,
		Name:      "Coastline",
		StartDate: day(2024, 8, 1),
		EndDate:   day(2024, 8, 7),
		Budget:    amountPtr("900"),
	}
	require.NoError(t, db.Create(&trip).Error)

	city := db_models.City{Name: "Split", Country: "Croatia"}
	require.NoError(t, db.Create(&city).Error)

	stop := db_models.Stop{
		TripID:    trip.ID,
		CityID:    city.ID,
		StartDate: trip.StartDate,
		EndDate:   trip.EndDate,
		StayCost:  amount("300"),
	}
	require.NoError(t, db.Create(&stop).Error)

	return &shareFixture{
		db:       db,
		svc:      svc,
		tripSvc:  tripSvc,
		owner:    owner,
		trip:     trip,
		tripRepo: tripRepo,
	}
}

func TestShareService_GetOrCreateShare(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()

	t.Run("first call mints a url-safe token", func(t *testing.T) {
		share, err := f.svc.GetOrCreateShare(ctx, f.owner.String(), f.trip.ID.String())
		require.NoError(t, err)

		assert.True(t, share.IsPublic)
		assert.NotEmpty(t, share.ShareID)
		assert.Regexp(t, urlSafeToken, share.ShareID)
	})

	t.Run("later calls return the same token", func(t *testing.T) {
		first, err := f.svc.GetOrCreateShare(ctx, f.owner.String(), f.trip.ID.String())
		require.NoError(t, err)
		second, err := f.svc.GetOrCreateShare(ctx, f.owner.String(), f.trip.ID.String())
		require.NoError(t, err)

		assert.Equal(t, first.ShareID, second.ShareID)

		var count int64
		require.NoError(t, f.db.Model(&db_models.SharedTrip{}).Where("trip_id = ?", f.trip.ID).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("only the owner can share", func(t *testing.T) {
		_, err := f.svc.GetOrCreateShare(ctx, uuid.NewString(), f.trip.ID.String())
		assert.ErrorIs(t, err, utils.ErrTripNotFound)
	})

	t.Run("recovers when the insert loses a race", func(t *testing.T) {
		other := db_models.Trip{
			UserID:    f.owner,
			Name:      "Raced",
			StartDate: day(2024, 9, 1),
			EndDate:   day(2024, 9, 2),
		}
		require.NoError(t, f.db.Create(&other).Error)

		// simulate the concurrent winner landing first
		winner := db_models.SharedTrip{TripID: other.ID, ShareID: "winner-token", IsPublic: true}
		require.NoError(t, f.db.Create(&winner).Error)

		shareRepo := repositories.NewShareRepository(f.db)
		err := shareRepo.Insert(ctx, &db_models.SharedTrip{TripID: other.ID, ShareID: "loser-token", IsPublic: true})
		require.Error(t, err)
		assert.True(t, repositories.IsUniqueViolation(err))

		share, err := f.svc.GetOrCreateShare(ctx, f.owner.String(), other.ID.String())
		require.NoError(t, err)
		assert.Equal(t, "winner-token", share.ShareID)
	})
}

func TestShareService_GetPublicTrip(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()

	share, err := f.svc.GetOrCreateShare(ctx, f.owner.String(), f.trip.ID.String())
	require.NoError(t, err)

	t.Run("resolves a public token without authentication context", func(t *testing.T) {
		got, err := f.svc.GetPublicTrip(ctx, share.ShareID)
		require.NoError(t, err)

		assert.Equal(t, f.trip.ID.String(), got.Trip.ID)
		assert.Equal(t, "Coastline", got.Trip.Name)
		require.Len(t, got.Stops, 1)
	})

	t.Run("unknown token is not found", func(t *testing.T) {
		_, err := f.svc.GetPublicTrip(ctx, "no-such-token")
		assert.ErrorIs(t, err, utils.ErrShareNotFound)
	})

	t.Run("a share made private stops resolving", func(t *testing.T) {
		require.NoError(t, f.db.Model(&db_models.SharedTrip{}).
			Where("trip_id = ?", f.trip.ID).
			Update("is_public", false).Error)

		_, err := f.svc.GetPublicTrip(ctx, share.ShareID)
		assert.ErrorIs(t, err, utils.ErrShareNotFound)

		require.NoError(t, f.db.Model(&db_models.SharedTrip{}).
			Where("trip_id = ?", f.trip.ID).
			Update("is_public", true).Error)
	})

	t.Run("a deleted trip stops resolving even if the share row lingers", func(t *testing.T) {
		orphan := db_models.Trip{
			UserID:    f.owner,
			Name:      "Doomed",
			StartDate: day(2024, 10, 1),
			EndDate:   day(2024, 10, 2),
		}
		require.NoError(t, f.db.Create(&orphan).Error)
		orphanShare := db_models.SharedTrip{TripID: orphan.ID, ShareID: "orphan-token", IsPublic: true}
		require.NoError(t, f.db.Create(&orphanShare).Error)

		require.NoError(t, f.db.Delete(&orphan).Error)

		_, err := f.svc.GetPublicTrip(ctx, "orphan-token")
		assert.ErrorIs(t, err, utils.ErrShareNotFound)
	})
}

func TestShareService_CopySharedTrip(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()

	share, err := f.svc.GetOrCreateShare(ctx, f.owner.String(), f.trip.ID.String())
	require.NoError(t, err)

	t.Run("copies the shared trip to the caller", func(t *testing.T) {
		visitor := uuid.New()

		got, err := f.svc.CopySharedTrip(ctx, share.ShareID, visitor.String())
		require.NoError(t, err)
		require.NotEmpty(t, got.NewTripID)

		newTripID, err := uuid.Parse(got.NewTripID)
		require.NoError(t, err)

		copied, err := f.tripRepo.FindByIDWithDetails(ctx, newTripID)
		require.NoError(t, err)
		require.NotNil(t, copied)

		assert.Equal(t, visitor, copied.UserID)
		assert.Equal(t, "Copy of Coastline", copied.Name)
		require.Len(t, copied.Stops, 1)
		assert.True(t, copied.Stops[0].StayCost.Equal(amount("300")))
	})

	t.Run("the copy is not itself shared", func(t *testing.T) {
		visitor := uuid.New()

		got, err := f.svc.CopySharedTrip(ctx, share.ShareID, visitor.String())
		require.NoError(t, err)

		var count int64
		require.NoError(t, f.db.Model(&db_models.SharedTrip{}).
			Where("trip_id = ?", got.NewTripID).
			Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("unknown token cannot be copied", func(t *testing.T) {
		_, err := f.svc.CopySharedTrip(ctx, "no-such-token", uuid.NewString())
		assert.ErrorIs(t, err, utils.ErrShareNotFound)
	})
}
