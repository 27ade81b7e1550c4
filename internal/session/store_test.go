package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikfrants/biketransfer/internal/domain"
)

func TestStore_GetOrCreate(t *testing.T) {
	s := NewStore()

	assert.Nil(t, s.Get(101))

	sess := s.GetOrCreate(101, 202)
	require.NotNil(t, sess)
	assert.Equal(t, int64(101), sess.UserID)
	assert.Equal(t, int64(202), sess.ChatID)
	assert.Equal(t, domain.StateMainMenu, sess.State)

	again := s.GetOrCreate(101, 202)
	assert.Same(t, sess, again)
	assert.Equal(t, 1, s.Len())
}

func TestStore_Clear(t *testing.T) {
	s := NewStore()

	s.GetOrCreate(101, 202)
	s.Clear(101)

	assert.Nil(t, s.Get(101))
	assert.Equal(t, 0, s.Len())
}

func TestStore_CleanupIdle(t *testing.T) {
	s := NewStore()

	stale := s.GetOrCreate(101, 202)
	stale.UpdatedAt = time.Now().UTC().Add(-2 * time.Hour)

	fresh := s.GetOrCreate(102, 203)
	s.Touch(fresh)

	dropped := s.CleanupIdle(time.Hour)

	assert.Equal(t, []int64{101}, dropped)
	assert.Nil(t, s.Get(101))
	assert.NotNil(t, s.Get(102))
}

func TestStore_CleanupIdle_NothingStale(t *testing.T) {
	s := NewStore()

	s.Touch(s.GetOrCreate(101, 202))

	assert.Empty(t, s.CleanupIdle(time.Hour))
	assert.Equal(t, 1, s.Len())
}

func TestStore_CleanupIdle_SkipsHeldSession(t *testing.T) {
	s := NewStore()

	stale := s.GetOrCreate(101, 202)
	stale.UpdatedAt = time.Now().UTC().Add(-2 * time.Hour)

	unlock := s.Lock(101)

	assert.Empty(t, s.CleanupIdle(time.Hour))
	assert.NotNil(t, s.Get(101))

	unlock()

	assert.Equal(t, []int64{101}, s.CleanupIdle(time.Hour))
	assert.Nil(t, s.Get(101))
}

func TestStore_CleanupIdle_KeepsSerialization(t *testing.T) {
	s := NewStore()

	stale := s.GetOrCreate(101, 202)
	stale.UpdatedAt = time.Now().UTC().Add(-2 * time.Hour)

	unlock := s.Lock(101)
	s.CleanupIdle(time.Hour)

	acquired := make(chan struct{})
	go func() {
		second := s.Lock(101)
		second()
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("second lock acquired while the first is still held")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second lock never acquired after release")
	}
}

func TestStore_Lock_SerializesSameUser(t *testing.T) {
	s := NewStore()

	var inCritical, maxInCritical int
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := s.Lock(101)
			defer unlock()

			mu.Lock()
			inCritical++
			if inCritical > maxInCritical {
				maxInCritical = inCritical
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inCritical--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInCritical)
}

func TestStore_Lock_IndependentUsers(t *testing.T) {
	s := NewStore()

	unlockA := s.Lock(101)
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := s.Lock(102)
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock for another user blocked")
	}
}
