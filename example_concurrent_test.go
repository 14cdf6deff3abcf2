// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// This file contains examples that use atomix concurrency primitives.
// These trigger false positives with Go's race detector because atomix
// atomic operations appear as regular memory accesses to the detector.
// The examples are correct; they're excluded from race testing.

package bitops_test

import (
	"fmt"
	"sync"

	"code.hybscloud.com/bitops"
	"code.hybscloud.com/iox"
)

// ExampleAtomicBitmap_FindAndSet demonstrates a concurrent free-slot
// allocator: workers claim a slot, use it, and release it, backing off
// while the pool is exhausted.
func ExampleAtomicBitmap_FindAndSet() {
	const (
		slots   = 4
		workers = 8
		jobs    = 10
	)
	pool := bitops.NewAtomicBitmap(slots)

	var wg sync.WaitGroup
	done := make([]int, workers)
	for w := range workers {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			backoff := iox.Backoff{}
			for done[w] < jobs {
				slot := pool.FindAndSet(slots)
				if slot == slots {
					backoff.Wait() // pool exhausted
					continue
				}
				backoff.Reset()

				// ... use slot ...
				done[w]++
				pool.Clear(slot)
			}
		}(w)
	}
	wg.Wait()

	total := 0
	for _, n := range done {
		total += n
	}
	fmt.Println("jobs completed:", total)
	fmt.Println("slots in use:", pool.Count(slots))

	// Output:
	// jobs completed: 80
	// slots in use: 0
}
