package services

import (
	"fmt"
	"sync"
	"testing"

	"github.com/hikeup-backend/models"
	"github.com/hikeup-backend/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingStore mirrors the repository contract: the capacity check and
// the insert happen under one lock, and (hike, user) pairs are unique.
type fakeBookingStore struct {
	mu       sync.Mutex
	hikes    map[string]*models.Hike
	bookings map[string]*models.Booking
	nextID   int
}

func newFakeBookingStore(hikes ...*models.Hike) *fakeBookingStore {
	store := &fakeBookingStore{
		hikes:    map[string]*models.Hike{},
		bookings: map[string]*models.Booking{},
	}
	for _, hike := range hikes {
		store.hikes[hike.ID] = hike
	}
	return store
}

func (f *fakeBookingStore) countLocked(hikeID string) int {
	count := 0
	for _, booking := range f.bookings {
		if booking.HikeID == hikeID {
			count++
		}
	}
	return count
}

func (f *fakeBookingStore) CreateWithCapacityCheck(hikeID, userID string, status models.BookingStatus) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	hike, ok := f.hikes[hikeID]
	if !ok {
		return nil, repositories.ErrHikeNotFound
	}
	if hike.GuideID == userID {
		return nil, repositories.ErrOwnHike
	}
	for _, booking := range f.bookings {
		if booking.HikeID == hikeID && booking.UserID == userID {
			return nil, repositories.ErrDuplicateBooking
		}
	}
	if hike.Capacity > 0 && f.countLocked(hikeID) >= hike.Capacity {
		return nil, repositories.ErrHikeFull
	}

	if status == "" {
		status = models.BookingStatusPending
	}

	f.nextID++
	booking := &models.Booking{
		ID:     fmt.Sprintf("booking-%d", f.nextID),
		HikeID: hikeID,
		UserID: userID,
		Status: status,
	}
	f.bookings[booking.ID] = booking
	copied := *booking
	return &copied, nil
}

func (f *fakeBookingStore) FindByHikeAndUser(hikeID, userID string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, booking := range f.bookings {
		if booking.HikeID == hikeID && booking.UserID == userID {
			copied := *booking
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingStore) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.bookings, id)
	return nil
}

func (f *fakeBookingStore) FindByUser(userID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []models.Booking
	for _, booking := range f.bookings {
		if booking.UserID == userID {
			result = append(result, *booking)
		}
	}
	return result, nil
}

func TestJoin(t *testing.T) {
	hike := &models.Hike{ID: "hike-1", GuideID: "guide-1", Capacity: 1}

	t.Run("unknown hike", func(t *testing.T) {
		service := newBookingServiceWith(newFakeBookingStore(hike))

		_, err := service.Join("hike-404", "user-1", "")
		assert.ErrorIs(t, err, repositories.ErrHikeNotFound)
	})

	t.Run("guide cannot join own hike", func(t *testing.T) {
		service := newBookingServiceWith(newFakeBookingStore(hike))

		_, err := service.Join("hike-1", "guide-1", "")
		assert.ErrorIs(t, err, repositories.ErrOwnHike)
	})

	t.Run("own-hike check beats capacity", func(t *testing.T) {
		store := newFakeBookingStore(&models.Hike{ID: "hike-2", GuideID: "guide-1", Capacity: 1})
		service := newBookingServiceWith(store)

		_, err := service.Join("hike-2", "user-1", "")
		require.NoError(t, err)

		// Full hike, but the owner still gets the ownership error.
		_, err = service.Join("hike-2", "guide-1", "")
		assert.ErrorIs(t, err, repositories.ErrOwnHike)
	})

	t.Run("full hike", func(t *testing.T) {
		service := newBookingServiceWith(newFakeBookingStore(hike))

		_, err := service.Join("hike-1", "user-a", "")
		require.NoError(t, err)

		_, err = service.Join("hike-1", "user-b", "")
		assert.ErrorIs(t, err, repositories.ErrHikeFull)
	})

	t.Run("duplicate booking", func(t *testing.T) {
		store := newFakeBookingStore(&models.Hike{ID: "hike-3", GuideID: "guide-1", Capacity: 5})
		service := newBookingServiceWith(store)

		_, err := service.Join("hike-3", "user-a", "")
		require.NoError(t, err)

		_, err = service.Join("hike-3", "user-a", "")
		assert.ErrorIs(t, err, repositories.ErrDuplicateBooking)
	})

	t.Run("capacity zero is unlimited", func(t *testing.T) {
		store := newFakeBookingStore(&models.Hike{ID: "hike-4", GuideID: "guide-1", Capacity: 0})
		service := newBookingServiceWith(store)

		for i := 0; i < 50; i++ {
			_, err := service.Join("hike-4", fmt.Sprintf("user-%d", i), "")
			require.NoError(t, err)
		}
	})

	t.Run("status defaults to pending", func(t *testing.T) {
		store := newFakeBookingStore(&models.Hike{ID: "hike-5", GuideID: "guide-1"})
		service := newBookingServiceWith(store)

		booking, err := service.Join("hike-5", "user-a", "")
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusPending, booking.Status)

		confirmed, err := service.Join("hike-5", "user-b", models.BookingStatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusConfirmed, confirmed.Status)
	})
}

func TestJoinConcurrentCapacity(t *testing.T) {
	const capacity = 5
	const attempts = 50

	store := newFakeBookingStore(&models.Hike{ID: "hike-1", GuideID: "guide-1", Capacity: capacity})
	service := newBookingServiceWith(store)

	var wg sync.WaitGroup
	successes := make(chan struct{}, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if _, err := service.Join("hike-1", fmt.Sprintf("user-%d", n), ""); err == nil {
				successes <- struct{}{}
			}
		}(i)
	}
	wg.Wait()
	close(successes)

	assert.Equal(t, capacity, len(successes))

	store.mu.Lock()
	assert.Equal(t, capacity, store.countLocked("hike-1"))
	store.mu.Unlock()
}

func TestJoinConcurrentDuplicate(t *testing.T) {
	const attempts = 20

	store := newFakeBookingStore(&models.Hike{ID: "hike-1", GuideID: "guide-1", Capacity: 0})
	service := newBookingServiceWith(store)

	var wg sync.WaitGroup
	successes := make(chan struct{}, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := service.Join("hike-1", "user-1", ""); err == nil {
				successes <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(successes)

	assert.Equal(t, 1, len(successes))
}

func TestLeave(t *testing.T) {
	t.Run("no booking returns nil", func(t *testing.T) {
		store := newFakeBookingStore(&models.Hike{ID: "hike-1", GuideID: "guide-1"})
		service := newBookingServiceWith(store)

		booking, err := service.Leave("hike-1", "user-1")
		require.NoError(t, err)
		assert.Nil(t, booking)
	})

	t.Run("deletes and returns the prior state", func(t *testing.T) {
		store := newFakeBookingStore(&models.Hike{ID: "hike-1", GuideID: "guide-1"})
		service := newBookingServiceWith(store)

		created, err := service.Join("hike-1", "user-1", "")
		require.NoError(t, err)

		left, err := service.Leave("hike-1", "user-1")
		require.NoError(t, err)
		require.NotNil(t, left)
		assert.Equal(t, created.ID, left.ID)

		// The slot is free again.
		_, err = service.Join("hike-1", "user-1", "")
		assert.NoError(t, err)
	})
}
