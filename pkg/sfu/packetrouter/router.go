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
	"time"

	"github.com/livekit/protocol/logger"
	"go.uber.org/atomic"
)

// entry is the common shape of a registered module: the handle and its
// REMB candidacy flag, sampled at registration time.
type entry struct {
	handle        RtpModule
	rembCandidate bool
}

// sendEntry additionally carries the RTX status sampled at registration,
// used to compute padding priority order.
type sendEntry struct {
	entry
	rtx RtxSendStatus
}

// PacketRouter is the dispatch and feedback hub described in the package
// doc. A single mutex serializes every public operation, including
// callbacks invoked on registered modules — those callbacks are
// documented to be non-blocking and non-reentrant with respect to the
// router, so holding the lock across them is safe and avoids the
// reentrancy hazards fine-grained locking would invite.
type PacketRouter struct {
	mu sync.Mutex

	log logger.Logger
	cfg Config

	sendModules    []*sendEntry
	receiveModules []*entry

	// paddingOrder caches sendModules sorted by padding priority; it is
	// invalidated on every registry mutation and rebuilt lazily on the
	// next TimeToSendPadding call.
	paddingOrder      []*sendEntry
	paddingOrderValid bool

	activeREMB RtpModule

	lastSendTime   time.Time
	lastBitrateBps atomic.Uint64

	seq atomic.Uint32
}

// NewPacketRouter constructs a router with the given config. A nil logger
// falls back to the package-default logger.
func NewPacketRouter(log logger.Logger, cfg Config) *PacketRouter {
	if log == nil {
		log = logger.GetLogger()
	}
	r := &PacketRouter{
		log: log,
		cfg: cfg,
	}
	r.seq.Store(uint32(cfg.InitialSequenceNumber))
	return r
}
