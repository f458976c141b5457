// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Shopledger Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package engine - the host side of one record-store invocation
//
// the engine authenticates the presented identities, materialises the
// requested storage slots, hands them to the dispatcher and makes the
// outcome atomic: every write of a successful invocation is committed
// in one batch, every write of a failed one is discarded
package engine
