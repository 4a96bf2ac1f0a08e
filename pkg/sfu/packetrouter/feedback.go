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

// SendTransportFeedback tries, in insertion order, each send module and
// then each receive module, returning on the first SendFeedbackPacket
// call that succeeds. The feedback object is neither retained nor
// retried; the caller owns it. Returns false if no module accepts it,
// including when the registry is empty.
func (r *PacketRouter) SendTransportFeedback(feedback Feedback) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.sendModules {
		if e.handle.SendFeedbackPacket(feedback) {
			return true
		}
	}
	for _, e := range r.receiveModules {
		if e.handle.SendFeedbackPacket(feedback) {
			return true
		}
	}

	r.log.Debugw("no module accepted transport feedback",
		"sendModules", len(r.sendModules),
		"receiveModules", len(r.receiveModules),
	)
	return false
}
