// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Shopledger Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dispatch - the instruction dispatcher
//
// stateless per invocation: all state lives in the records it reads
// and writes; the host commits every write of one invocation
// atomically or discards them all, so a handler only has to get the
// ordering of collaborator calls right, never partial-write recovery
package dispatch

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/shopledger/shopd/address"
	"github.com/shopledger/shopd/fault"
	"github.com/shopledger/shopd/host"
	"github.com/shopledger/shopd/instruction"
	"github.com/shopledger/shopd/shoprecord"
)

// namespace tags for derived addresses
const (
	ProductTag = "product"
	HistoryTag = "history"
)

// Environment - the collaborators one invocation runs against
type Environment struct {
	Transfer host.Transfer    // value movement, buyer to owner
	Clock    host.Clock       // time oracle
	Valid    address.Validity // host address-validity predicate
	Log      *logger.L
}

// Operation - the account list presented with one invocation
//
// the caller supplies every slot address; the dispatcher re-derives
// the expected address for any derived-address record and rejects a
// mismatch before touching the slot
type Operation struct {
	Caller  host.Signer // shop owner for every opcode except initialize, where it becomes the owner
	Shop    *host.Slot  // the ShopState slot
	Product *host.Slot  // operations addressing a ProductEntry
	History *host.Slot  // sell and migrate-history
	Buyer   host.Signer // sell: the paying identity

	// released slot balances owed to the owner, credited by the host
	// as part of the same atomic commit
	Refund uint64
}

// Process - authenticate and apply one decoded instruction
//
// any error return means the host discards every write attempted
// during the invocation
func (env *Environment) Process(op *Operation, instr instruction.Instruction) error {

	if nil == op.Shop {
		return fault.ErrInvalidAddress
	}

	if initialize, ok := instr.(instruction.Initialize); ok {
		return env.initialize(op, initialize)
	}

	if !op.Shop.Allocated() {
		return fault.ErrNotInitialised
	}
	shop, err := shoprecord.UnpackShopState(op.Shop.Data)
	if nil != err {
		return err
	}

	if !op.Caller.Signed {
		return fault.ErrCallerNotSigner
	}
	if op.Caller.Identity != shop.Owner {
		env.Log.Warnf("%s: caller %s is not owner", instr.Opcode(), op.Caller.Identity)
		return fault.ErrUnauthorized
	}

	switch instr := instr.(type) {

	case instruction.AddProduct:
		return env.addProduct(op, shop, instr)

	case instruction.AddStock:
		return env.addStock(op, shop, instr)

	case instruction.UpdatePrice:
		return env.updatePrice(op, shop, instr)

	case instruction.Sell:
		return env.sell(op, shop, instr)

	case instruction.MigrateHistory:
		return env.migrateHistory(op, shop, instr)

	case instruction.CloseShop:
		return env.closeShop(op, shop)

	case instruction.CloseProduct:
		return env.closeProduct(op, shop, instr)

	default:
		return fault.ErrUnknownOpcode
	}
}

// create a fresh ShopState owned by the caller
//
// the target slot must not already carry a recognised owner; the host
// may hand over either an unallocated slot or a zeroed slot of the
// correct size
func (env *Environment) initialize(op *Operation, _ instruction.Initialize) error {
	if !op.Caller.Signed {
		return fault.ErrCallerNotSigner
	}

	if op.Shop.Allocated() {
		shop, err := shoprecord.UnpackShopState(op.Shop.Data)
		if nil != err {
			return err
		}
		if shop.IsInitialised() {
			return fault.ErrShopAlreadyInitialised
		}
	}

	shop := shoprecord.ShopState{
		Owner:          op.Caller.Identity,
		ProductCounter: 0,
		HistoryCounter: 0,
	}
	op.Shop.Store(shop.Pack())

	env.Log.Infof("initialize: owner: %s", shop.Owner)
	return nil
}

// create a ProductEntry at its derived address and advance the counter
func (env *Environment) addProduct(op *Operation, shop *shoprecord.ShopState, instr instruction.AddProduct) error {

	id := shop.ProductCounter

	derived, _, err := address.Derive(env.Valid, ProductTag, uint64Key(id))
	if nil != err {
		return err
	}
	if nil == op.Product || derived != op.Product.Address {
		return fault.ErrInvalidAddress
	}
	if op.Product.Allocated() {
		return fault.ErrAlreadyInitialised
	}

	product := shoprecord.ProductEntry{
		Id:          id,
		Name:        instr.Name,
		Description: instr.Description,
		Price:       instr.Price,
		Stock:       instr.Stock,
	}
	op.Product.Store(product.Pack())

	shop.ProductCounter = id + 1
	op.Shop.Store(shop.Pack())

	env.Log.Infof("add-product: id: %d  price: %d  stock: %d", id, instr.Price, instr.Stock)
	return nil
}

// ProductEntry.stock += amount
func (env *Environment) addStock(op *Operation, shop *shoprecord.ShopState, instr instruction.AddStock) error {
	product, err := env.loadProduct(op, instr.ProductId)
	if nil != err {
		return err
	}

	stock, ok := checkedAdd(product.Stock, instr.Amount)
	if !ok {
		return fault.ErrArithmeticOverflow
	}
	product.Stock = stock
	op.Product.Store(product.Pack())

	env.Log.Infof("add-stock: id: %d  amount: %d  stock: %d", instr.ProductId, instr.Amount, stock)
	return nil
}

// ProductEntry.price = new price
func (env *Environment) updatePrice(op *Operation, shop *shoprecord.ShopState, instr instruction.UpdatePrice) error {
	product, err := env.loadProduct(op, instr.ProductId)
	if nil != err {
		return err
	}

	product.Price = instr.NewPrice
	op.Product.Store(product.Pack())

	env.Log.Infof("update-price: id: %d  price: %d", instr.ProductId, instr.NewPrice)
	return nil
}

// direct-write a HistoryEntry, owner only
//
// bypasses the sell invariants but still consumes the history counter
// so backfilled entries can never collide with future sales
func (env *Environment) migrateHistory(op *Operation, shop *shoprecord.ShopState, instr instruction.MigrateHistory) error {

	entry := shoprecord.HistoryEntry{
		ProductId:  instr.ProductId,
		Quantity:   instr.Quantity,
		TotalPrice: instr.TotalPrice,
		Buyer:      instr.Buyer,
		Timestamp:  instr.Timestamp,
	}

	err := env.appendHistory(op, shop, &entry)
	if nil != err {
		return err
	}
	op.Shop.Store(shop.Pack())

	env.Log.Infof("migrate-history: product: %d  buyer: %s", instr.ProductId, instr.Buyer)
	return nil
}

// zero and reclaim the ShopState storage, refunding its balance
func (env *Environment) closeShop(op *Operation, shop *shoprecord.ShopState) error {
	op.Refund += op.Shop.Close()
	env.Log.Infof("close-shop: owner: %s  refund: %d", shop.Owner, op.Refund)
	return nil
}

// zero and reclaim one ProductEntry's storage, refunding its balance
func (env *Environment) closeProduct(op *Operation, shop *shoprecord.ShopState, instr instruction.CloseProduct) error {
	_, err := env.loadProduct(op, instr.ProductId)
	if nil != err {
		return err
	}

	op.Refund += op.Product.Close()
	env.Log.Infof("close-product: id: %d  refund: %d", instr.ProductId, op.Refund)
	return nil
}

// fetch the ProductEntry named by an instruction
//
// re-derives the expected address from the product id and rejects the
// operation if the caller supplied any other slot
func (env *Environment) loadProduct(op *Operation, productId uint64) (*shoprecord.ProductEntry, error) {

	derived, _, err := address.Derive(env.Valid, ProductTag, uint64Key(productId))
	if nil != err {
		return nil, err
	}
	if nil == op.Product || derived != op.Product.Address {
		return nil, fault.ErrInvalidAddress
	}
	if !op.Product.Allocated() {
		return nil, fault.ErrProductNotFound
	}

	product, err := shoprecord.UnpackProductEntry(op.Product.Data)
	if nil != err {
		return nil, err
	}
	if product.Id != productId {
		return nil, fault.ErrWrongProductIdentifier
	}
	return product, nil
}

// store a HistoryEntry at the address seeded by the history counter
// and advance the counter; caller persists the shop state
func (env *Environment) appendHistory(op *Operation, shop *shoprecord.ShopState, entry *shoprecord.HistoryEntry) error {

	derived, _, err := address.Derive(env.Valid, HistoryTag,
		entry.Buyer.Bytes(), uint64Key(entry.ProductId), uint64Key(shop.HistoryCounter))
	if nil != err {
		return err
	}
	if nil == op.History || derived != op.History.Address {
		return fault.ErrInvalidAddress
	}
	if op.History.Allocated() {
		return fault.ErrAlreadyInitialised
	}

	op.History.Store(entry.Pack())
	shop.HistoryCounter += 1
	return nil
}

// little endian u64 key part
func uint64Key(n uint64) []byte {
	buffer := make([]byte, 8)
	binary.LittleEndian.PutUint64(buffer, n)
	return buffer
}

// overflow checked addition
func checkedAdd(a uint64, b uint64) (uint64, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}

// overflow checked multiplication
func checkedMul(a uint64, b uint64) (uint64, bool) {
	if 0 == a || 0 == b {
		return 0, true
	}
	product := a * b
	if product/b != a {
		return 0, false
	}
	return product, true
}
