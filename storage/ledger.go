// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Shopledger Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/shopledger/shopd/fault"
	"github.com/shopledger/shopd/host"
	"github.com/shopledger/shopd/identity"
)

// Ledger - balance transfers recorded inside the current transaction
//
// balances share the database with the record slots, so a failed
// operation discards its transfers together with its record writes
type Ledger struct {
	pool *PoolHandle
	trx  Transaction
}

// NewLedger - select the balance pool for a transfer kind
func NewLedger(kind host.TransferKind, trx Transaction) (*Ledger, error) {
	var pool *PoolHandle
	switch kind {
	case host.Native:
		pool = Pool.Natives
	case host.Token:
		pool = Pool.Tokens
	default:
		return nil, fault.ErrInvalidTransferKind
	}
	return &Ledger{
		pool: pool,
		trx:  trx,
	}, nil
}

// Send - move an amount between two identities
//
// both balance updates land in the same batch as the record writes
func (l *Ledger) Send(payer identity.Identity, payee identity.Identity, amount uint64) error {
	from, _ := l.trx.GetN(l.pool, payer.Bytes())
	if amount > from {
		return fault.ErrInsufficientFunds
	}

	to, _ := l.trx.GetN(l.pool, payee.Bytes())
	if to+amount < to {
		return fault.ErrArithmeticOverflow
	}

	l.trx.PutN(l.pool, payer.Bytes(), from-amount)
	l.trx.PutN(l.pool, payee.Bytes(), to+amount)
	return nil
}

// Deposit - credit an identity
//
// used to fund accounts and to pay out slot refunds
func (l *Ledger) Deposit(id identity.Identity, amount uint64) error {
	balance, _ := l.trx.GetN(l.pool, id.Bytes())
	if balance+amount < balance {
		return fault.ErrArithmeticOverflow
	}
	l.trx.PutN(l.pool, id.Bytes(), balance+amount)
	return nil
}

// Withdraw - debit an identity
//
// storage deposits are taken out of circulation this way and
// re-enter through Deposit when a slot is closed
func (l *Ledger) Withdraw(id identity.Identity, amount uint64) error {
	balance, _ := l.trx.GetN(l.pool, id.Bytes())
	if amount > balance {
		return fault.ErrInsufficientFunds
	}
	l.trx.PutN(l.pool, id.Bytes(), balance-amount)
	return nil
}

// Balance - current balance of an identity
func (l *Ledger) Balance(id identity.Identity) uint64 {
	balance, _ := l.trx.GetN(l.pool, id.Bytes())
	return balance
}
