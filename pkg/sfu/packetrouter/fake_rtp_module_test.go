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

// fakeRtpModule is a hand-rolled RtpModule stand-in rather than a
// generated mock. It records every call it receives so tests can assert
// on dispatch behavior.

type ttsPacketCall struct {
	ssrc          uint32
	seq           uint16
	captureTimeMs int64
	isRetransmit  bool
	pacedInfo     PacedPacketInfo
}

type ttsPaddingCall struct {
	bytesRequested int
	pacedInfo      PacedPacketInfo
}

type rembDataCall struct {
	bitrateBps uint64
	ssrcs      []uint32
}

type fakeRtpModule struct {
	name string

	ssrc         uint32
	sendingMedia bool
	bweExt       bool
	rtx          RtxSendStatus
	remb         bool

	// canned results
	ttsPacketResult  bool
	ttsPaddingResult int
	sendFeedbackOK   bool

	// call log
	ttsPacketCalls  []ttsPacketCall
	ttsPaddingCalls []ttsPaddingCall
	rembStatusCalls []bool
	rembDataCalls   []rembDataCall
	feedbackCalls   []Feedback
}

func newFakeRtpModule(name string) *fakeRtpModule {
	return &fakeRtpModule{
		name:            name,
		ttsPacketResult: true,
	}
}

func (f *fakeRtpModule) SSRC() uint32                 { return f.ssrc }
func (f *fakeRtpModule) SendingMedia() bool           { return f.sendingMedia }
func (f *fakeRtpModule) HasBweExtensions() bool       { return f.bweExt }
func (f *fakeRtpModule) RtxSendStatus() RtxSendStatus { return f.rtx }
func (f *fakeRtpModule) REMB() bool                   { return f.remb }

func (f *fakeRtpModule) TimeToSendPacket(ssrc uint32, seq uint16, captureTimeMs int64, isRetransmit bool, pacedInfo PacedPacketInfo) bool {
	f.ttsPacketCalls = append(f.ttsPacketCalls, ttsPacketCall{ssrc, seq, captureTimeMs, isRetransmit, pacedInfo})
	return f.ttsPacketResult
}

func (f *fakeRtpModule) TimeToSendPadding(bytesToSend int, pacedInfo PacedPacketInfo) int {
	f.ttsPaddingCalls = append(f.ttsPaddingCalls, ttsPaddingCall{bytesToSend, pacedInfo})
	if f.ttsPaddingResult > bytesToSend {
		return bytesToSend
	}
	return f.ttsPaddingResult
}

func (f *fakeRtpModule) SetREMBStatus(enabled bool) {
	f.remb = enabled
	f.rembStatusCalls = append(f.rembStatusCalls, enabled)
}

func (f *fakeRtpModule) SetREMBData(bitrateBps uint64, ssrcs []uint32) {
	f.rembDataCalls = append(f.rembDataCalls, rembDataCall{bitrateBps, ssrcs})
}

func (f *fakeRtpModule) SendFeedbackPacket(feedback Feedback) bool {
	f.feedbackCalls = append(f.feedbackCalls, feedback)
	return f.sendFeedbackOK
}
