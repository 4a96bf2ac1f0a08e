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
	"time"

	"gopkg.in/yaml.v3"
)

// Config tunes the REMB elector/sender and the initial sequence space.
type Config struct {
	// REMBInterval bounds how often a REMB update may be emitted absent a
	// bandwidth decrease. A concrete, overridable constant rather than
	// something inferred at runtime.
	REMBInterval time.Duration `yaml:"remb_interval,omitempty"`

	// REMBDecreaseRatio is the fraction of the previous bitrate below
	// which an observation is treated as a decrease and triggers an
	// immediate REMB regardless of REMBInterval. 0.97 matches the "more
	// than 3% drop" rule.
	REMBDecreaseRatio float64 `yaml:"remb_decrease_ratio,omitempty"`

	// InitialSequenceNumber seeds the transport-wide sequence counter;
	// the first allocation returns InitialSequenceNumber+1 mod 2^16.
	InitialSequenceNumber uint16 `yaml:"initial_sequence_number,omitempty"`
}

// DefaultConfig matches the values used in the reference test suite.
var DefaultConfig = Config{
	REMBInterval:          200 * time.Millisecond,
	REMBDecreaseRatio:     0.97,
	InitialSequenceNumber: 0,
}

// LoadConfig decodes YAML config bytes over a copy of DefaultConfig,
// following the same "decode over defaults" pattern as pkg/config's
// top-level Config loader.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
