// Copyright 2026 The Packet Router Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package packetrouter

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// S3 — sequence wrap.
func TestAllocateSequenceNumber_WrapsModulo2to16(t *testing.T) {
	r := newTestRouter()
	r.SetTransportWideSequenceNumber(0xFFEF)

	want := uint32(0xFFF0)
	for i := 0; i < 32; i++ {
		got := r.AllocateSequenceNumber()
		require.Equal(t, uint16(want&0xFFFF), got)
		want++
	}
}

func TestAllocateSequenceNumber_MonotoneUnderConcurrency(t *testing.T) {
	r := newTestRouter()
	r.SetTransportWideSequenceNumber(0)

	const goroutines = 8
	const perGoroutine = 200

	results := make(chan uint16, goroutines*perGoroutine)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				results <- r.AllocateSequenceNumber()
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[uint16]int)
	for v := range results {
		seen[v]++
	}
	require.Len(t, seen, goroutines*perGoroutine, "every allocated sequence number must be unique")
}
