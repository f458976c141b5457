// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Shopledger Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - the persistent account-storage host
//
// maintains all slot and balance data in a single LevelDB database
// divided into prefixed pools; every operation's writes collect into
// one batch that is committed atomically on success or discarded
// wholesale on failure, which is what lets the dispatcher promise
// that partial mutation is never observable
package storage
