// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Shopledger Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package instruction - the opcode-tagged operation surface
//
// an operation arrives as a single opcode byte followed by a fixed
// length, opcode specific payload; decoding the payload into a typed
// variant happens before dispatch so an unknown opcode or a wrong
// length payload can never reach a handler
package instruction

import (
	"github.com/shopledger/shopd/identity"
	"github.com/shopledger/shopd/shoprecord"
)

// Opcode - operation type code, the first byte of every submission
type Opcode byte

// the closed set of operations
const (
	InitializeOp     = Opcode(iota) // create ShopState, counters = 0
	AddProductOp     = Opcode(iota) // create ProductEntry at derived address
	AddStockOp       = Opcode(iota) // ProductEntry.stock += amount
	UpdatePriceOp    = Opcode(iota) // ProductEntry.price = new price
	SellOp           = Opcode(iota) // run the sell protocol
	MigrateHistoryOp = Opcode(iota) // administrative HistoryEntry backfill
	CloseShopOp      = Opcode(iota) // zero and reclaim ShopState storage
	CloseProductOp   = Opcode(iota) // zero and reclaim a ProductEntry's storage

	// this item must be last
	invalidOp = Opcode(iota)
)

// payload byte lengths, excluding the opcode byte
const (
	initializePayloadLength     = 0
	addProductPayloadLength     = shoprecord.NameLength + shoprecord.DescriptionLength + 8 + 8
	addStockPayloadLength       = 8 + 8
	updatePricePayloadLength    = 8 + 8
	sellPayloadLength           = 8 + 8
	migrateHistoryPayloadLength = 8 + 8 + 8 + identity.IdentityLength + 8
	closeShopPayloadLength      = 0
	closeProductPayloadLength   = 8
)

// Instruction - a decoded operation
//
// the concrete type identifies the operation; handlers switch over the
// closed set of variants
type Instruction interface {
	Opcode() Opcode
	Encode() []byte
}

// Initialize - create a fresh ShopState owned by the caller
type Initialize struct {
}

// AddProduct - create a ProductEntry at its derived address
type AddProduct struct {
	Name        shoprecord.Name
	Description shoprecord.Description
	Price       uint64
	Stock       uint64
}

// AddStock - increase a product's stock
type AddStock struct {
	ProductId uint64
	Amount    uint64
}

// UpdatePrice - set a product's price
type UpdatePrice struct {
	ProductId uint64
	NewPrice  uint64
}

// Sell - run the sell protocol for a quantity of one product
type Sell struct {
	ProductId uint64
	Quantity  uint64
}

// MigrateHistory - direct-write a HistoryEntry
//
// administrative backfill path; bypasses the sell invariants but is
// still owner-only and still consumes the history counter
type MigrateHistory struct {
	ProductId  uint64
	Quantity   uint64
	TotalPrice uint64
	Buyer      identity.Identity
	Timestamp  int64
}

// CloseShop - zero and reclaim the ShopState storage
type CloseShop struct {
}

// CloseProduct - zero and reclaim one ProductEntry's storage
type CloseProduct struct {
	ProductId uint64
}

// Opcode - the type code of each variant
func (Initialize) Opcode() Opcode     { return InitializeOp }
func (AddProduct) Opcode() Opcode     { return AddProductOp }
func (AddStock) Opcode() Opcode       { return AddStockOp }
func (UpdatePrice) Opcode() Opcode    { return UpdatePriceOp }
func (Sell) Opcode() Opcode           { return SellOp }
func (MigrateHistory) Opcode() Opcode { return MigrateHistoryOp }
func (CloseShop) Opcode() Opcode      { return CloseShopOp }
func (CloseProduct) Opcode() Opcode   { return CloseProductOp }

// String - opcode name for logging
func (opcode Opcode) String() string {
	switch opcode {
	case InitializeOp:
		return "initialize"
	case AddProductOp:
		return "add-product"
	case AddStockOp:
		return "add-stock"
	case UpdatePriceOp:
		return "update-price"
	case SellOp:
		return "sell"
	case MigrateHistoryOp:
		return "migrate-history"
	case CloseShopOp:
		return "close-shop"
	case CloseProductOp:
		return "close-product"
	default:
		return "*unknown*"
	}
}
