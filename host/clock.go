// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Shopledger Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host

import (
	"time"
)

// Clock - the wall-clock oracle, readable only through the host
type Clock interface {
	Now() int64 // seconds
}

// SystemClock - the process clock
type SystemClock struct {
}

// Now - current unix time in seconds
func (SystemClock) Now() int64 {
	return time.Now().Unix()
}

// FixedClock - a clock pinned to one instant, for tests
type FixedClock int64

// Now - the pinned instant
func (clock FixedClock) Now() int64 {
	return int64(clock)
}
