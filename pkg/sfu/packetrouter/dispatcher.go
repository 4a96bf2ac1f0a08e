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

import "sort"

// TimeToSendPacket resolves ssrc to the first insertion-order send module
// that is currently sending media for it, and forwards the call.
//
// If no module matches — either because no registered module is sending
// that SSRC, or because no module is sending at all — the packet is
// treated as consumed and true is returned. This is a deliberate
// contract: the pacer must not retry a packet whose destination module
// has been torn down mid-flight. It is known to be surprising at first
// read, but changing it would alter pacer semantics, which this package
// does not own.
func (r *PacketRouter) TimeToSendPacket(ssrc uint32, sequenceNumber uint16, captureTimeMs int64, isRetransmit bool, pacedInfo PacedPacketInfo) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.sendModules {
		if !e.handle.SendingMedia() {
			continue
		}
		if e.handle.SSRC() != ssrc {
			continue
		}
		return e.handle.TimeToSendPacket(ssrc, sequenceNumber, captureTimeMs, isRetransmit, pacedInfo)
	}

	return true
}

// TimeToSendPadding distributes a padding request across eligible send
// modules (SendingMedia && HasBweExtensions) in padding-priority order:
// RedundantPayloads RTX first, then WithPayload, then Off, ties broken by
// insertion order. It stops as soon as the byte budget is exhausted and
// returns the total bytes actually dispatched.
func (r *PacketRouter) TimeToSendPadding(bytesRequested int, pacedInfo PacedPacketInfo) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ensurePaddingOrderLocked()

	remaining := bytesRequested
	for _, e := range r.paddingOrder {
		if remaining <= 0 {
			break
		}
		if !e.handle.SendingMedia() || !e.handle.HasBweExtensions() {
			continue
		}
		sent := e.handle.TimeToSendPadding(remaining, pacedInfo)
		remaining -= sent
	}

	return bytesRequested - remaining
}

// ensurePaddingOrderLocked rebuilds the cached padding-priority order if
// the registry has changed since the last build. Sorting is stable, so
// ties (equal RTX status) preserve insertion order without an explicit
// tie-break comparator.
func (r *PacketRouter) ensurePaddingOrderLocked() {
	if r.paddingOrderValid {
		return
	}

	order := make([]*sendEntry, len(r.sendModules))
	copy(order, r.sendModules)
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].rtx.paddingPriority() < order[j].rtx.paddingPriority()
	})

	r.paddingOrder = order
	r.paddingOrderValid = true
}
