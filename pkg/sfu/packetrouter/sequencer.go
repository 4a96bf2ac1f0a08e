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

// SetTransportWideSequenceNumber sets the 16-bit counter to n; the next
// AllocateSequenceNumber call returns n+1 mod 2^16. Guarded by the same
// router-wide mutex as every other mutable field (see router.go), even
// though the atomic storage type alone would suffice for this one field —
// the concurrency model treats the sequence counter as router state like
// any other.
func (r *PacketRouter) SetTransportWideSequenceNumber(n uint16) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq.Store(uint32(n))
}

// AllocateSequenceNumber increments and returns the shared transport-wide
// sequence counter, wrapping modulo 2^16. The counter is stored in a
// 32-bit atomic and truncated to 16 bits on read — the uint16 conversion
// gets wraparound for free instead of an explicit modulo — while still
// being mutated under the router lock so its ordering matches every other
// dispatch-path operation.
func (r *PacketRouter) AllocateSequenceNumber() uint16 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return uint16(r.seq.Add(1))
}
