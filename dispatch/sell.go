// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Shopledger Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dispatch

import (
	"github.com/shopledger/shopd/fault"
	"github.com/shopledger/shopd/instruction"
	"github.com/shopledger/shopd/shoprecord"
)

// the sell protocol, an ordered all-or-nothing sequence
//
// payment runs before any local mutation: a failed transfer aborts the
// invocation while stock, history and counters are still untouched,
// and the host's atomic commit covers everything after it
func (env *Environment) sell(op *Operation, shop *shoprecord.ShopState, instr instruction.Sell) error {

	// step 1: load the target product, address re-derived and checked
	product, err := env.loadProduct(op, instr.ProductId)
	if nil != err {
		return err
	}

	// step 2: stock validation; unsigned stock makes underflow the
	// failure mode to guard against
	if 0 == instr.Quantity {
		return fault.ErrInvalidQuantity
	}
	if instr.Quantity > product.Stock {
		return fault.ErrInsufficientStock
	}

	// step 3: total at the price in effect right now
	total, ok := checkedMul(instr.Quantity, product.Price)
	if !ok {
		return fault.ErrArithmeticOverflow
	}

	// step 4: move the payment from buyer to owner
	if !op.Buyer.Signed {
		return fault.ErrBuyerNotSigner
	}
	err = env.Transfer.Send(op.Buyer.Identity, shop.Owner, total)
	if nil != err {
		env.Log.Warnf("sell: transfer of %d refused: %s", total, err)
		return fault.ErrTransferFailed
	}

	// step 5: decrement stock
	product.Stock -= instr.Quantity
	op.Product.Store(product.Pack())

	// steps 6-7: create the history record at the address seeded by
	// the current history counter
	entry := shoprecord.HistoryEntry{
		ProductId:  instr.ProductId,
		Quantity:   instr.Quantity,
		TotalPrice: total,
		Buyer:      op.Buyer.Identity,
		Timestamp:  env.Clock.Now(),
	}
	err = env.appendHistory(op, shop, &entry)
	if nil != err {
		return err
	}

	// step 8: persist the advanced history counter
	op.Shop.Store(shop.Pack())

	env.Log.Infof("sell: product: %d  quantity: %d  total: %d  buyer: %s",
		instr.ProductId, instr.Quantity, total, op.Buyer.Identity)
	return nil
}
