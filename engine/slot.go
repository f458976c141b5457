// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Shopledger Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"encoding/binary"

	"github.com/shopledger/shopd/address"
	"github.com/shopledger/shopd/host"
	"github.com/shopledger/shopd/storage"
)

// slot pool value layout: reserved balance u64 LE ‖ record bytes

func loadSlot(trx storage.Transaction, addr address.Address) *host.Slot {
	slot := &host.Slot{
		Address: addr,
	}
	value := trx.Get(storage.Pool.Slots, addr[:])
	if len(value) < 8 {
		return slot
	}
	slot.Balance = binary.LittleEndian.Uint64(value[:8])
	slot.Data = make([]byte, len(value)-8)
	copy(slot.Data, value[8:])
	return slot
}

func storeSlot(trx storage.Transaction, slot *host.Slot) {
	value := make([]byte, 8+len(slot.Data))
	binary.LittleEndian.PutUint64(value[:8], slot.Balance)
	copy(value[8:], slot.Data)
	trx.Put(storage.Pool.Slots, slot.Address[:], value)
}
