// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Shopledger Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shopledger/shopd/fault"
	"github.com/shopledger/shopd/host"
	"github.com/shopledger/shopd/identity"
)

var (
	payer = identity.Identity{0x01}
	payee = identity.Identity{0x02}
)

func TestMemoryLedgerSend(t *testing.T) {
	ledger := host.NewMemoryLedger()
	ledger.Deposit(payer, 100)

	err := ledger.Send(payer, payee, 60)
	assert.NoError(t, err, "send failed")
	assert.Equal(t, uint64(40), ledger.Balance(payer), "wrong payer balance")
	assert.Equal(t, uint64(60), ledger.Balance(payee), "wrong payee balance")
}

// a refused transfer must leave both balances untouched
func TestMemoryLedgerInsufficientFunds(t *testing.T) {
	ledger := host.NewMemoryLedger()
	ledger.Deposit(payer, 10)

	err := ledger.Send(payer, payee, 11)
	assert.Equal(t, fault.ErrInsufficientFunds, err, "wrong error")
	assert.Equal(t, uint64(10), ledger.Balance(payer), "payer balance changed")
	assert.Equal(t, uint64(0), ledger.Balance(payee), "payee balance changed")
}

func TestTransferKind(t *testing.T) {
	kind, err := host.KindFromString("token")
	assert.NoError(t, err, "parse failed")
	assert.Equal(t, host.Token, kind, "wrong kind")
	assert.Equal(t, "token", kind.String(), "wrong name")

	kind, err = host.KindFromString("NATIVE")
	assert.NoError(t, err, "parse failed")
	assert.Equal(t, host.Native, kind, "wrong kind")

	_, err = host.KindFromString("shells")
	assert.Equal(t, fault.ErrInvalidTransferKind, err, "wrong error")

	assert.Equal(t, "*unknown*", host.TransferKind(99).String(), "wrong unknown name")
}

func TestSlotClose(t *testing.T) {
	slot := &host.Slot{Balance: 42}
	assert.False(t, slot.Allocated(), "empty slot reported allocated")

	slot.Store([]byte{0x01, 0x02, 0x03})
	assert.True(t, slot.Allocated(), "stored slot reported unallocated")

	refund := slot.Close()
	assert.Equal(t, uint64(42), refund, "wrong refund")
	assert.False(t, slot.Allocated(), "closed slot reported allocated")
	assert.Equal(t, uint64(0), slot.Balance, "balance not cleared")
}

func TestFixedClock(t *testing.T) {
	clock := host.FixedClock(1577836800)
	assert.Equal(t, int64(1577836800), clock.Now(), "wrong instant")
}
