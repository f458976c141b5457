// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Shopledger Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host

import (
	"sync"

	"github.com/shopledger/shopd/fault"
	"github.com/shopledger/shopd/identity"
)

// MemoryLedger - in-memory transfer collaborator
//
// reference implementation for tests and development; the production
// host supplies a persistent ledger
type MemoryLedger struct {
	sync.Mutex
	balances map[identity.Identity]uint64
}

// NewMemoryLedger - create an empty ledger
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		balances: map[identity.Identity]uint64{},
	}
}

// Deposit - credit an identity, for test setup
func (ledger *MemoryLedger) Deposit(id identity.Identity, amount uint64) {
	ledger.Lock()
	ledger.balances[id] += amount
	ledger.Unlock()
}

// Balance - current balance of an identity
func (ledger *MemoryLedger) Balance(id identity.Identity) uint64 {
	ledger.Lock()
	defer ledger.Unlock()
	return ledger.balances[id]
}

// Send - move amount from payer to payee
//
// fails with no balance change if the payer cannot cover the amount
func (ledger *MemoryLedger) Send(payer identity.Identity, payee identity.Identity, amount uint64) error {
	ledger.Lock()
	defer ledger.Unlock()

	if ledger.balances[payer] < amount {
		return fault.ErrInsufficientFunds
	}
	ledger.balances[payer] -= amount
	ledger.balances[payee] += amount
	return nil
}
