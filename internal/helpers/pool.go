package helpers

import (
	"fmt"
	"sync"
)

type PoolStats struct {
	creates int
	resets  int
	hits    int
}

func (s PoolStats) String() string {
	return fmt.Sprint("creates: ", s.creates, ", resets: ", s.resets, ", hits: ", s.hits)
}

const _poolCapacity = 256

// CreatePool returns get/release/stats closures over a ring of reusable
// values. Released values beyond the ring's capacity are dropped.
func CreatePool[T any](create func() T, reset func(*T)) (func() *T, func(*T), func() PoolStats) {
	availableBuffer := [_poolCapacity]*T{}
	startIndex := 0
	numAvailable := 0

	lock := sync.Mutex{}

	stats := PoolStats{}

	var get = func() *T {
		lock.Lock()

		if numAvailable > 0 {
			result := availableBuffer[startIndex]
			availableBuffer[startIndex] = nil
			startIndex = (startIndex + 1) % _poolCapacity
			numAvailable--
			stats.hits++

			lock.Unlock()
			return result
		}

		stats.creates++
		lock.Unlock()

		result := create()
		return &result
	}

	var release = func(t *T) {
		reset(t)

		lock.Lock()
		defer lock.Unlock()

		stats.resets++
		if numAvailable == _poolCapacity {
			return
		}
		availableBuffer[(startIndex+numAvailable)%_poolCapacity] = t
		numAvailable++
	}

	var getStats = func() PoolStats {
		lock.Lock()
		defer lock.Unlock()
		return stats
	}

	return get, release, getStats
}
