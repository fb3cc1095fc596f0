package mem

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateWindowAdmitsUpToLimit(t *testing.T) {
	w := NewRateWindow(3, time.Minute)
	assert.True(t, w.Allow())
	assert.True(t, w.Allow())
	assert.True(t, w.Allow())
	assert.False(t, w.Allow())
}

func TestRateWindowRecoversAfterInterval(t *testing.T) {
	current := time.Unix(1000, 0)
	w := NewRateWindow(2, time.Minute)
	w.now = func() time.Time { return current }

	assert.True(t, w.Allow())
	assert.True(t, w.Allow())
	assert.False(t, w.Allow())

	current = current.Add(61 * time.Second)
	assert.True(t, w.Allow())
}

func TestRateWindowIsRolling(t *testing.T) {
	current := time.Unix(1000, 0)
	w := NewRateWindow(2, time.Minute)
	w.now = func() time.Time { return current }

	assert.True(t, w.Allow())
	current = current.Add(40 * time.Second)
	assert.True(t, w.Allow())

	// First stamp has expired, second has not.
	current = current.Add(30 * time.Second)
	assert.True(t, w.Allow())
	assert.False(t, w.Allow())
}

func TestRateWindowSanitizesArguments(t *testing.T) {
	w := NewRateWindow(0, 0)
	assert.True(t, w.Allow())
	assert.False(t, w.Allow())
}

func TestRateWindowConcurrentCallers(t *testing.T) {
	w := NewRateWindow(50, time.Minute)
	var wg sync.WaitGroup
	var mu sync.Mutex
	admitted := 0
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if w.Allow() {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, admitted)
}
