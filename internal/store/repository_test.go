package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"iot-system/internal/domain"
)

func newTestRepository(t *testing.T) *repository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&record{}))
	return newRepository(db)
}

func testRecord(t *testing.T, roadState domain.RoadState, at time.Time) domain.ProcessedAgentData {
	t.Helper()
	lat, err := domain.NewLatitude(10)
	require.NoError(t, err)
	lon, err := domain.NewLongitude(20)
	require.NoError(t, err)
	return domain.ProcessedAgentData{
		RoadState:     roadState,
		Accelerometer: domain.Accelerometer{X: 1, Y: 2, Z: 3},
		Gps:           domain.Gps{Latitude: lat, Longitude: lon},
		Timestamp:     at,
	}
}

func TestRepository_InsertAndSelectByID(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	id, err := repo.insert(ctx, testRecord(t, domain.RoadStateSmooth, time.Now().UTC()))
	require.NoError(t, err)
	assert.Positive(t, id)

	found, err := repo.selectByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, domain.RoadStateSmooth, found.RoadState)
}

func TestRepository_SelectByID_NotFoundReturnsNilNil(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	found, err := repo.selectByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestRepository_InsertList_AssignsIDsInOrder(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	now := time.Now().UTC()
	ids, err := repo.insertList(ctx, []domain.ProcessedAgentData{
		testRecord(t, domain.RoadStateSmooth, now),
		testRecord(t, domain.RoadStateRough, now.Add(time.Second)),
	})
	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.Less(t, ids[0], ids[1])
}

func TestRepository_SelectList_OrdersByTimestampDescending(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	base := time.Now().UTC()
	_, err := repo.insert(ctx, testRecord(t, domain.RoadStateSmooth, base))
	require.NoError(t, err)
	_, err = repo.insert(ctx, testRecord(t, domain.RoadStateRough, base.Add(time.Minute)))
	require.NoError(t, err)

	page, err := NewPagination(1, 5)
	require.NoError(t, err)

	rows, err := repo.selectList(ctx, page)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, domain.RoadStateRough, rows[0].RoadState)
	assert.Equal(t, domain.RoadStateSmooth, rows[1].RoadState)
}

func TestRepository_SelectList_RespectsPageSize(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	base := time.Now().UTC()
	for i := 0; i < 3; i++ {
		_, err := repo.insert(ctx, testRecord(t, domain.RoadStateSmooth, base.Add(time.Duration(i)*time.Second)))
		require.NoError(t, err)
	}

	page, err := NewPagination(1, 2)
	require.NoError(t, err)

	rows, err := repo.selectList(ctx, page)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	id, err := repo.insert(ctx, testRecord(t, domain.RoadStateSmooth, time.Now().UTC()))
	require.NoError(t, err)

	updated, err := repo.update(ctx, id, testRecord(t, domain.RoadStateRough, time.Now().UTC()))
	require.NoError(t, err)
	assert.True(t, updated)

	found, err := repo.selectByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, domain.RoadStateRough, found.RoadState)
}

func TestRepository_Update_NonexistentIDReturnsFalse(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	updated, err := repo.update(ctx, 999, testRecord(t, domain.RoadStateRough, time.Now().UTC()))
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestRepository_Delete_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	id, err := repo.insert(ctx, testRecord(t, domain.RoadStateSmooth, time.Now().UTC()))
	require.NoError(t, err)

	deleted, err := repo.delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)

	deletedAgain, err := repo.delete(ctx, id)
	require.NoError(t, err)
	assert.False(t, deletedAgain)
}
