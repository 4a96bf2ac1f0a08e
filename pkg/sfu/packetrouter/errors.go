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

import "fmt"

// FatalError signals a programmer error: double registration, or removal
// of a module that was never registered. These are not runtime
// conditions — a correctly wired caller never triggers one.
type FatalError struct {
	Op      string
	Message string
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("packetrouter: %s: %s", e.Op, e.Message)
}

// OnFatalError is invoked synchronously, with the router's lock held, when
// a programmer error is detected. The default panics. Tests substitute a
// hook that records the error instead of crashing the test binary; a
// release build may install a hook that logs and returns, degrading the
// offending call to a no-op rather than corrupting the registry.
var OnFatalError = func(err *FatalError) {
	panic(err)
}

func fatal(op, message string) {
	OnFatalError(&FatalError{Op: op, Message: message})
}
