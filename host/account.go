// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Shopledger Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package host - contracts of the execution environment
//
// the core mutates records handed to it by a host that provides
// addressable fixed-size byte buffers, commits all writes of one
// operation atomically or not at all, and mediates value transfer and
// wall clock access
package host

import (
	"github.com/shopledger/shopd/address"
	"github.com/shopledger/shopd/identity"
)

// Signer - an identity presented with an operation
type Signer struct {
	Identity identity.Identity
	Signed   bool // the host verified a signature by this identity
}

// Slot - one addressable storage buffer in an operation's account list
//
// Data is nil while the slot is unallocated; Balance is the native
// balance reserved against the slot's storage
type Slot struct {
	Address address.Address
	Balance uint64
	Data    []byte
}

// Allocated - true once the slot carries stored bytes
func (slot *Slot) Allocated() bool {
	return nil != slot.Data
}

// Store - replace the slot contents, allocating on first write
func (slot *Slot) Store(data []byte) {
	buffer := make([]byte, len(data))
	copy(buffer, data)
	slot.Data = buffer
}

// Close - zero the stored bytes and release the reserved balance
//
// returns the balance that the host must refund; the slot is
// unallocated afterwards
func (slot *Slot) Close() uint64 {
	for i := range slot.Data {
		slot.Data[i] = 0
	}
	slot.Data = nil
	refund := slot.Balance
	slot.Balance = 0
	return refund
}
