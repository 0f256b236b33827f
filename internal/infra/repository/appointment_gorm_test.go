package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domain "github.com/onechair/booking/internal/domain/appointment"
	"github.com/onechair/booking/internal/httperr"
	"github.com/onechair/booking/internal/models"
)

func newTestRepo(t *testing.T) *AppointmentGormRepository {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Appointment{}))

	return NewAppointmentGormRepository(db)
}

func slot(day, hour, min int) time.Time {
	return time.Date(2025, 6, day, hour, min, 0, 0, time.UTC)
}

func TestCreateAndFindByStartTime(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	ap := &models.Appointment{
		CustomerName: "Alice",
		Phone:        "7801234567",
		StartTime:    slot(10, 9, 0),
		Kind:         string(domain.KindCustomer),
		Status:       "booked",
	}
	require.NoError(t, repo.Create(ctx, ap))
	assert.NotZero(t, ap.ID)

	found, err := repo.FindByStartTime(ctx, slot(10, 9, 0))
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Alice", found.CustomerName)

	free, err := repo.FindByStartTime(ctx, slot(10, 9, 30))
	require.NoError(t, err)
	assert.Nil(t, free)
}

func TestCreateRejectsDuplicateStartTime(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := &models.Appointment{CustomerName: "Alice", StartTime: slot(10, 9, 0)}
	require.NoError(t, repo.Create(ctx, first))

	// Same slot, different customer: the unique index must refuse it
	// even though no advisory check ran.
	dup := &models.Appointment{CustomerName: "Bob", StartTime: slot(10, 9, 0)}
	err := repo.Create(ctx, dup)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeConflict))

	// The original record is untouched.
	found, err := repo.FindByStartTime(ctx, slot(10, 9, 0))
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Alice", found.CustomerName)
}

func TestFindByID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	ap := &models.Appointment{CustomerName: "Alice", StartTime: slot(10, 9, 0)}
	require.NoError(t, repo.Create(ctx, ap))

	found, err := repo.FindByID(ctx, ap.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, ap.ID, found.ID)

	missing, err := repo.FindByID(ctx, ap.ID+100)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestListForPeriodOrdersByStartTime(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, st := range []time.Time{slot(10, 14, 0), slot(10, 9, 0), slot(11, 8, 0), slot(10, 11, 30)} {
		require.NoError(t, repo.Create(ctx, &models.Appointment{StartTime: st}))
	}

	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	aps, err := repo.ListForPeriod(ctx, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)

	require.Len(t, aps, 3)
	assert.Equal(t, slot(10, 9, 0), aps[0].StartTime)
	assert.Equal(t, slot(10, 11, 30), aps[1].StartTime)
	assert.Equal(t, slot(10, 14, 0), aps[2].StartTime)
}

func TestCountForPeriod(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, st := range []time.Time{slot(10, 9, 0), slot(10, 9, 30), slot(12, 9, 0)} {
		require.NoError(t, repo.Create(ctx, &models.Appointment{StartTime: st}))
	}

	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	count, err := repo.CountForPeriod(ctx, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountForPeriod(ctx, day, day.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestDeleteIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	ap := &models.Appointment{CustomerName: "Alice", StartTime: slot(10, 9, 0)}
	require.NoError(t, repo.Create(ctx, ap))

	require.NoError(t, repo.Delete(ctx, ap))
	require.NoError(t, repo.Delete(ctx, ap))

	found, err := repo.FindByID(ctx, ap.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}
