// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Shopledger Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - the writes of one operation
//
// every Put and Delete collects into a single batch; Commit lands
// them all atomically, Abort discards them all
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Commit() error
	Abort()
	InUse() bool
}

type transactionData struct {
	dataAccess Access
}

func newTransaction(dataAccess Access) Transaction {
	return &transactionData{
		dataAccess: dataAccess,
	}
}

func (t *transactionData) Begin() error {
	return t.dataAccess.Begin()
}

func (t *transactionData) Put(pool *PoolHandle, key []byte, value []byte) {
	pool.put(key, value)
}

func (t *transactionData) PutN(pool *PoolHandle, key []byte, value uint64) {
	pool.putN(key, value)
}

func (t *transactionData) Delete(pool *PoolHandle, key []byte) {
	pool.remove(key)
}

func (t *transactionData) Get(pool *PoolHandle, key []byte) []byte {
	return pool.Get(key)
}

func (t *transactionData) GetN(pool *PoolHandle, key []byte) (uint64, bool) {
	return pool.getN(key)
}

func (t *transactionData) Commit() error {
	return t.dataAccess.Commit()
}

func (t *transactionData) Abort() {
	t.dataAccess.Abort()
}

func (t *transactionData) InUse() bool {
	return t.dataAccess.InUse()
}
