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

// AddSendRtpModule registers a send module. handle must not already be
// registered in either collection; violating that is a programmer error
// (see errors.go). Triggers REMB re-election.
func (r *PacketRouter) AddSendRtpModule(handle RtpModule, rembCandidate bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isRegisteredLocked(handle) {
		r.log.Warnw("duplicate send module registration", nil, "ssrc", handle.SSRC())
		fatal("AddSendRtpModule", "module already registered")
		return
	}

	r.sendModules = append(r.sendModules, &sendEntry{
		entry: entry{handle: handle, rembCandidate: rembCandidate},
		rtx:   handle.RtxSendStatus(),
	})
	r.paddingOrderValid = false
	r.electREMBLocked()
}

// AddReceiveRtpModule registers a receive module. Symmetric to
// AddSendRtpModule.
func (r *PacketRouter) AddReceiveRtpModule(handle RtpModule, rembCandidate bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isRegisteredLocked(handle) {
		r.log.Warnw("duplicate receive module registration", nil, "ssrc", handle.SSRC())
		fatal("AddReceiveRtpModule", "module already registered")
		return
	}

	r.receiveModules = append(r.receiveModules, &entry{handle: handle, rembCandidate: rembCandidate})
	r.electREMBLocked()
}

// RemoveSendRtpModule unregisters a previously-registered send module.
// Fails fatally if handle is not present. If handle was the active REMB
// module, its REMB status is cleared before re-election runs.
func (r *PacketRouter) RemoveSendRtpModule(handle RtpModule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, e := range r.sendModules {
		if e.handle == handle {
			idx = i
			break
		}
	}
	if idx < 0 {
		r.log.Warnw("removal of unregistered send module", nil, "ssrc", handle.SSRC())
		fatal("RemoveSendRtpModule", "module not registered")
		return
	}

	r.clearActiveREMBIfLocked(handle)
	r.sendModules = append(r.sendModules[:idx], r.sendModules[idx+1:]...)
	r.paddingOrderValid = false
	r.electREMBLocked()
}

// RemoveReceiveRtpModule unregisters a previously-registered receive
// module. Symmetric to RemoveSendRtpModule.
func (r *PacketRouter) RemoveReceiveRtpModule(handle RtpModule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, e := range r.receiveModules {
		if e.handle == handle {
			idx = i
			break
		}
	}
	if idx < 0 {
		r.log.Warnw("removal of unregistered receive module", nil, "ssrc", handle.SSRC())
		fatal("RemoveReceiveRtpModule", "module not registered")
		return
	}

	r.clearActiveREMBIfLocked(handle)
	r.receiveModules = append(r.receiveModules[:idx], r.receiveModules[idx+1:]...)
	r.electREMBLocked()
}

func (r *PacketRouter) isRegisteredLocked(handle RtpModule) bool {
	for _, e := range r.sendModules {
		if e.handle == handle {
			return true
		}
	}
	for _, e := range r.receiveModules {
		if e.handle == handle {
			return true
		}
	}
	return false
}

// clearActiveREMBIfLocked clears REMB status on handle and the active
// pointer if handle is currently the active REMB module. Must run before
// the handle is removed from its collection so invariant 4 (REMB cleared
// before release) holds even if the caller never observes re-election.
func (r *PacketRouter) clearActiveREMBIfLocked(handle RtpModule) {
	if r.activeREMB == handle {
		handle.SetREMBStatus(false)
		r.activeREMB = nil
	}
}
