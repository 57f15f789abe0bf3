package services

import (
	"fmt"
	"sync"
	"testing"

	"github.com/hikeup-backend/dto"
	"github.com/hikeup-backend/models"
	"github.com/hikeup-backend/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHikeStore struct {
	mu     sync.Mutex
	hikes  map[string]*models.Hike
	counts map[string]int64
	nextID int
}

func newFakeHikeStore(hikes ...*models.Hike) *fakeHikeStore {
	store := &fakeHikeStore{hikes: map[string]*models.Hike{}, counts: map[string]int64{}}
	for _, hike := range hikes {
		store.hikes[hike.ID] = hike
	}
	return store
}

func (f *fakeHikeStore) FindByID(id string) (*models.Hike, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	hike, ok := f.hikes[id]
	if !ok {
		return nil, repositories.ErrHikeNotFound
	}
	copied := *hike
	return &copied, nil
}

func (f *fakeHikeStore) Create(hike *models.Hike) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	hike.ID = fmt.Sprintf("hike-%d", f.nextID)
	copied := *hike
	f.hikes[hike.ID] = &copied
	return nil
}

func (f *fakeHikeStore) Update(hike *models.Hike) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *hike
	f.hikes[hike.ID] = &copied
	return nil
}

func (f *fakeHikeStore) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.hikes, id)
	return nil
}

func (f *fakeHikeStore) CountBookings(id string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counts[id], nil
}

func (f *fakeHikeStore) FindWithPagination(page, pageSize int, sortBy, sortOrder, guideID, search string) ([]models.Hike, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []models.Hike
	for _, hike := range f.hikes {
		if guideID != "" && hike.GuideID != guideID {
			continue
		}
		result = append(result, *hike)
	}
	return result, int64(len(result)), nil
}

func TestCreateHike(t *testing.T) {
	store := newFakeHikeStore()
	service := newHikeServiceWith(store)

	hike, err := service.CreateHike(dto.CreateHikeRequest{
		Title:    "Monte Rosa Traverse",
		Capacity: 8,
	}, "guide-1")
	require.NoError(t, err)

	assert.Equal(t, "guide-1", hike.GuideID)
	assert.Equal(t, models.DifficultyModerate, hike.Difficulty)
	assert.Contains(t, hike.Slug, "monte-rosa-traverse-")
	assert.NotEmpty(t, hike.ID)
}

func TestUpdateHikeOwnership(t *testing.T) {
	newTitle := "Renamed"

	t.Run("owner can edit", func(t *testing.T) {
		store := newFakeHikeStore(&models.Hike{ID: "hike-1", GuideID: "guide-1", Title: "Old"})
		service := newHikeServiceWith(store)

		hike, err := service.UpdateHike("hike-1", dto.UpdateHikeRequest{Title: &newTitle}, "guide-1", false)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", hike.Title)
	})

	t.Run("other guide cannot edit", func(t *testing.T) {
		store := newFakeHikeStore(&models.Hike{ID: "hike-1", GuideID: "guide-1", Title: "Old"})
		service := newHikeServiceWith(store)

		_, err := service.UpdateHike("hike-1", dto.UpdateHikeRequest{Title: &newTitle}, "guide-2", false)
		assert.ErrorIs(t, err, ErrNotHikeOwner)
	})

	t.Run("admin can edit any", func(t *testing.T) {
		store := newFakeHikeStore(&models.Hike{ID: "hike-1", GuideID: "guide-1", Title: "Old"})
		service := newHikeServiceWith(store)

		hike, err := service.UpdateHike("hike-1", dto.UpdateHikeRequest{Title: &newTitle}, "someone-else", true)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", hike.Title)
	})

	t.Run("unknown hike", func(t *testing.T) {
		service := newHikeServiceWith(newFakeHikeStore())

		_, err := service.UpdateHike("hike-404", dto.UpdateHikeRequest{}, "guide-1", false)
		assert.ErrorIs(t, err, repositories.ErrHikeNotFound)
	})
}

func TestDeleteHikeOwnership(t *testing.T) {
	t.Run("other guide cannot delete", func(t *testing.T) {
		store := newFakeHikeStore(&models.Hike{ID: "hike-1", GuideID: "guide-1"})
		service := newHikeServiceWith(store)

		err := service.DeleteHike("hike-1", "guide-2", false)
		assert.ErrorIs(t, err, ErrNotHikeOwner)
	})

	t.Run("owner can delete", func(t *testing.T) {
		store := newFakeHikeStore(&models.Hike{ID: "hike-1", GuideID: "guide-1"})
		service := newHikeServiceWith(store)

		require.NoError(t, service.DeleteHike("hike-1", "guide-1", false))

		_, err := service.GetHikeDetail("hike-1")
		assert.ErrorIs(t, err, repositories.ErrHikeNotFound)
	})
}

func TestGetHikeDetailSpots(t *testing.T) {
	store := newFakeHikeStore(
		&models.Hike{ID: "hike-1", GuideID: "guide-1", Capacity: 10},
		&models.Hike{ID: "hike-2", GuideID: "guide-1", Capacity: 0},
	)
	store.counts["hike-1"] = 4
	store.counts["hike-2"] = 7
	service := newHikeServiceWith(store)

	detail, err := service.GetHikeDetail("hike-1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), detail.BookingCount)
	require.NotNil(t, detail.SpotsLeft)
	assert.Equal(t, int64(6), *detail.SpotsLeft)

	// Unlimited capacity reports no spot count.
	detail, err = service.GetHikeDetail("hike-2")
	require.NoError(t, err)
	assert.Equal(t, int64(7), detail.BookingCount)
	assert.Nil(t, detail.SpotsLeft)
}

func TestListHikesDefaults(t *testing.T) {
	store := newFakeHikeStore(&models.Hike{ID: "hike-1", GuideID: "guide-1"})
	service := newHikeServiceWith(store)

	response, err := service.ListHikes(dto.HikeFilter{Page: -3, PageSize: 0, SortBy: "evil column", SortOrder: "sideways"})
	require.NoError(t, err)
	assert.Equal(t, 1, response.Page)
	assert.Equal(t, 10, response.PageSize)
	assert.Equal(t, int64(1), response.TotalCount)
	assert.Equal(t, 1, response.TotalPages)
}
