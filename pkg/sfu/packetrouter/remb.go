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

import "time"

// electREMBLocked re-derives the active REMB module from the current
// registry contents: send candidates are preferred over receive
// candidates, and within a class the earliest-inserted candidate wins. If
// the winner changes, the previous holder (if any) is told to stop
// advertising REMB and the new holder (if any) is told to start.
//
// Must be called with r.mu held, and after every Add/Remove.
func (r *PacketRouter) electREMBLocked() {
	next := r.candidateREMBLocked()

	if next == r.activeREMB {
		return
	}

	if r.activeREMB != nil {
		r.activeREMB.SetREMBStatus(false)
	}
	if next != nil {
		next.SetREMBStatus(true)
	}
	r.activeREMB = next
	r.log.Debugw("active REMB module changed", "active", next != nil)
}

func (r *PacketRouter) candidateREMBLocked() RtpModule {
	for _, e := range r.sendModules {
		if e.rembCandidate {
			return e.handle
		}
	}
	for _, e := range r.receiveModules {
		if e.rembCandidate {
			return e.handle
		}
	}
	return nil
}

// OnReceiveBitrateChanged updates the throttling state and, if warranted,
// emits a REMB via the active REMB module. A REMB is emitted immediately
// if the REMB interval has elapsed since the last emission, or if bps is
// below REMBDecreaseRatio times the last observed bitrate;
// otherwise the new bitrate is recorded (for future drop comparisons) but
// no REMB is sent. now is passed in so callers (and tests) control the
// clock explicitly.
func (r *PacketRouter) OnReceiveBitrateChanged(now time.Time, ssrcs []uint32, bitrateBps uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	decreased := r.lastBitrateBps.Load() > 0 &&
		float64(bitrateBps) < float64(r.lastBitrateBps.Load())*r.cfg.REMBDecreaseRatio
	elapsed := r.lastSendTime.IsZero() || now.Sub(r.lastSendTime) >= r.cfg.REMBInterval

	r.lastBitrateBps.Store(bitrateBps)

	if !decreased && !elapsed {
		return
	}

	if r.activeREMB == nil {
		return
	}

	r.activeREMB.SetREMBData(bitrateBps, ssrcs)
	r.lastSendTime = now
}
