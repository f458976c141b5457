// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Shopledger Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/logger"

	"github.com/shopledger/shopd/address"
	"github.com/shopledger/shopd/counter"
	"github.com/shopledger/shopd/dispatch"
	"github.com/shopledger/shopd/fault"
	"github.com/shopledger/shopd/host"
	"github.com/shopledger/shopd/identity"
	"github.com/shopledger/shopd/instruction"
	"github.com/shopledger/shopd/storage"
)

// storage deposit reserved against an allocated slot, released when
// the slot is closed
const (
	slotOverhead   = 128
	depositPerByte = 6960
)

// Request - one signed invocation as received from a client
//
// Payload is the raw instruction, opcode byte first; each signature
// covers the whole payload; an absent slot stays the zero address
type Request struct {
	Caller          identity.Identity
	CallerSignature []byte
	Buyer           identity.Identity
	BuyerSignature  []byte
	Shop            address.Address
	Product         address.Address
	History         address.Address
	Payload         []byte
}

// Engine - executes invocations against the open database
type Engine struct {
	log       *logger.L
	kind      host.TransferKind
	clock     host.Clock
	processed counter.Counter
	failed    counter.Counter
}

// New - create an engine paying sales over the given ledger kind
func New(kind host.TransferKind, clock host.Clock) (*Engine, error) {
	if host.Nothing == kind {
		return nil, fault.ErrInvalidTransferKind
	}
	return &Engine{
		log:   logger.New("engine"),
		kind:  kind,
		clock: clock,
	}, nil
}

// Processed - count of committed invocations
func (e *Engine) Processed() uint64 {
	return e.processed.Uint64()
}

// Failed - count of discarded invocations
func (e *Engine) Failed() uint64 {
	return e.failed.Uint64()
}

// Execute - run one invocation to a committed or discarded end
func (e *Engine) Execute(req *Request) error {
	err := e.execute(req)
	if nil != err {
		e.failed.Increment()
		return err
	}
	e.processed.Increment()
	return nil
}

func (e *Engine) execute(req *Request) error {

	instr, err := instruction.Decode(req.Payload)
	if nil != err {
		return err
	}

	caller, err := verify(req.Caller, req.CallerSignature, req.Payload)
	if nil != err {
		return err
	}
	if !caller.Signed {
		return fault.ErrInvalidSignature
	}

	buyer, err := verify(req.Buyer, req.BuyerSignature, req.Payload)
	if nil != err {
		return err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	err = e.run(trx, req, instr, caller, buyer)
	if nil != err {
		trx.Abort()
		e.log.Warnf("%s: discarded: %s", instr.Opcode(), err)
		return err
	}

	err = trx.Commit()
	if nil != err {
		fault.Criticalf("%s: commit failed: %s", instr.Opcode(), err)
		return err
	}
	return nil
}

// all writes below go through trx and become durable only on commit
func (e *Engine) run(
	trx storage.Transaction,
	req *Request,
	instr instruction.Instruction,
	caller host.Signer,
	buyer host.Signer,
) error {

	sales, err := storage.NewLedger(e.kind, trx)
	if nil != err {
		return err
	}

	natives := sales
	if host.Native != e.kind {
		natives, err = storage.NewLedger(host.Native, trx)
		if nil != err {
			return err
		}
	}

	op := &dispatch.Operation{
		Caller:  caller,
		Buyer:   buyer,
		Shop:    loadSlot(trx, req.Shop),
		Product: loadSlot(trx, req.Product),
		History: loadSlot(trx, req.History),
	}

	// remember which slots existed so fresh allocations can be charged
	slots := []*host.Slot{op.Shop, op.Product, op.History}
	existed := make([]bool, len(slots))
	for i, slot := range slots {
		existed[i] = slot.Allocated()
	}

	env := &dispatch.Environment{
		Transfer: sales,
		Clock:    e.clock,
		Valid:    storage.ValidAddress,
		Log:      e.log,
	}

	err = env.Process(op, instr)
	if nil != err {
		return err
	}

	for i, slot := range slots {
		switch {
		case slot.Allocated() && !existed[i]:
			deposit := uint64(len(slot.Data)+slotOverhead) * depositPerByte
			err = natives.Withdraw(caller.Identity, deposit)
			if nil != err {
				return err
			}
			slot.Balance = deposit
			storeSlot(trx, slot)

		case slot.Allocated():
			storeSlot(trx, slot)

		case existed[i]:
			trx.Delete(storage.Pool.Slots, slot.Address[:])
		}
	}

	if op.Refund > 0 {
		err = natives.Deposit(caller.Identity, op.Refund)
		if nil != err {
			return err
		}
	}

	return nil
}

// check one presented identity
//
// no signature gives an unsigned presence; a signature that fails to
// verify rejects the whole invocation
func verify(id identity.Identity, signature []byte, payload []byte) (host.Signer, error) {
	signer := host.Signer{
		Identity: id,
	}
	if 0 == len(signature) {
		return signer, nil
	}
	if !ed25519.Verify(ed25519.PublicKey(id.Bytes()), payload, signature) {
		return signer, fault.ErrInvalidSignature
	}
	signer.Signed = true
	return signer, nil
}
