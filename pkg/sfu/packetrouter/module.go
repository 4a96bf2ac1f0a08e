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

// Package packetrouter multiplexes pacer-driven send decisions to the
// correct outbound RTP module by SSRC, allocates the shared transport-wide
// sequence number space, and routes REMB and transport-wide feedback
// through a single elected module.
package packetrouter

import "github.com/pion/rtcp"

// RtxSendStatus mirrors the RTX mode a send module is currently operating
// in. It determines padding priority (see TimeToSendPadding).
type RtxSendStatus int

const (
	RTXOff RtxSendStatus = iota
	RTXWithPayload
	RTXRedundantPayloads
)

func (s RtxSendStatus) String() string {
	switch s {
	case RTXOff:
		return "OFF"
	case RTXWithPayload:
		return "WITH_PAYLOAD"
	case RTXRedundantPayloads:
		return "REDUNDANT_PAYLOADS"
	default:
		return "UNKNOWN"
	}
}

// paddingPriority ranks RTX statuses for TimeToSendPadding candidate
// ordering: redundant-payload RTX first, then payload RTX, then no RTX.
func (s RtxSendStatus) paddingPriority() int {
	switch s {
	case RTXRedundantPayloads:
		return 0
	case RTXWithPayload:
		return 1
	default:
		return 2
	}
}

// PacedPacketInfo is opaque pacer bookkeeping handed back to the module
// unexamined by the router (pacer internals are out of this package's
// scope; the router only threads the value through).
type PacedPacketInfo struct {
	ProbeClusterID        int
	ProbeClusterMinProbes int
	ProbeClusterMinBytes  int
}

// Feedback is a transport-wide (or other) RTCP feedback packet routed via
// SendTransportFeedback. Any pion/rtcp packet type satisfies it.
type Feedback = rtcp.Packet

// RtpModule is the capability set the router needs from an outbound RTP
// send module or an inbound RTP receive module. The router never owns a
// module: registration borrows a reference until a matching removal.
type RtpModule interface {
	// SSRC is the synchronization source of the stream this module
	// currently sends or receives. May change over time.
	SSRC() uint32

	// SendingMedia reports whether the module is currently sending media.
	// May change over time.
	SendingMedia() bool

	// TimeToSendPacket asks the module to send a previously paced packet.
	// Returns whether the module handled it.
	TimeToSendPacket(ssrc uint32, sequenceNumber uint16, captureTimeMs int64, isRetransmit bool, pacedInfo PacedPacketInfo) bool

	// TimeToSendPadding asks the module to emit up to bytesToSend bytes of
	// padding and returns the number of bytes it actually sent.
	TimeToSendPadding(bytesToSend int, pacedInfo PacedPacketInfo) int

	// HasBweExtensions reports whether the module attaches the RTP header
	// extensions required for its padding to contribute to bandwidth
	// estimation. A module without them is never offered padding.
	HasBweExtensions() bool

	// RtxSendStatus reports the module's current RTX mode, sampled once at
	// registration time to compute padding priority.
	RtxSendStatus() RtxSendStatus

	// REMB reports whether this module currently advertises REMB support.
	REMB() bool

	// SetREMBStatus enables or disables REMB advertisement on the module.
	SetREMBStatus(enabled bool)

	// SetREMBData asks the module to emit a REMB RTCP packet for the given
	// bitrate (bits per second) and contributing SSRCs.
	SetREMBData(bitrateBps uint64, ssrcs []uint32)

	// SendFeedbackPacket asks the module to send a transport-feedback RTCP
	// packet. Returns whether it was sent.
	SendFeedbackPacket(feedback Feedback) bool
}
