package appointment

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/onechair/booking/internal/audit"
	infraRepo "github.com/onechair/booking/internal/infra/repository"
	"github.com/onechair/booking/internal/models"
)

// Monday 2025-06-09 12:00, naive. All usecase tests run against this
// frozen clock.
var testNow = time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func newTestRepo(t *testing.T) *infraRepo.AppointmentGormRepository {
	t.Helper()

	dsn := fmt.Sprintf("file:uc%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Appointment{}))

	return infraRepo.NewAppointmentGormRepository(db)
}

func newTestDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New())
}
