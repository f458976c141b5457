// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Shopledger Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package shoprecord - fixed-width binary records for the shop ledger
//
// records live at fixed-capacity storage slots allocated once at
// creation, so every record kind has an exact byte length and all
// numeric fields are little endian fixed-width integers; there is no
// variable-length or self-describing encoding and a record must round
// trip byte for byte
package shoprecord

import (
	"encoding/hex"

	"github.com/shopledger/shopd/identity"
)

// field capacities
const (
	NameLength        = 32
	DescriptionLength = 128

	uint64Width = 8
	int64Width  = 8
)

// ShopState field offsets
//
// owner[32] productCounter(u64) historyCounter(u64)
const (
	shopOwnerOffset          = 0
	shopProductCounterOffset = shopOwnerOffset + identity.IdentityLength
	shopHistoryCounterOffset = shopProductCounterOffset + uint64Width

	// ShopStateLength - exact byte length of a packed ShopState
	ShopStateLength = shopHistoryCounterOffset + uint64Width
)

// ProductEntry field offsets
//
// id(u64) name[32] description[128] price(u64) stock(u64)
const (
	productIdOffset          = 0
	productNameOffset        = productIdOffset + uint64Width
	productDescriptionOffset = productNameOffset + NameLength
	productPriceOffset       = productDescriptionOffset + DescriptionLength
	productStockOffset       = productPriceOffset + uint64Width

	// ProductEntryLength - exact byte length of a packed ProductEntry
	ProductEntryLength = productStockOffset + uint64Width
)

// HistoryEntry field offsets
//
// productId(u64) quantity(u64) totalPrice(u64) buyer[32] timestamp(i64)
const (
	historyProductIdOffset  = 0
	historyQuantityOffset   = historyProductIdOffset + uint64Width
	historyTotalPriceOffset = historyQuantityOffset + uint64Width
	historyBuyerOffset      = historyTotalPriceOffset + uint64Width
	historyTimestampOffset  = historyBuyerOffset + identity.IdentityLength

	// HistoryEntryLength - exact byte length of a packed HistoryEntry
	HistoryEntryLength = historyTimestampOffset + int64Width
)

// Packed - packed records are just a byte slice
type Packed []byte

// Name - raw product name field
//
// unused tail is zero padded; the bytes are never validated as UTF-8,
// callers intending to display the field must trim and validate
type Name [NameLength]byte

// Description - raw product description field, zero padded like Name
type Description [DescriptionLength]byte

// ShopState - one instance per shop
//
// the owner is set exactly once at creation and never changes; both
// counters are monotonically non-decreasing
type ShopState struct {
	Owner          identity.Identity `json:"owner"`                  // base58
	ProductCounter uint64            `json:"productCounter,string"`  // next unused product id
	HistoryCounter uint64            `json:"historyCounter,string"`  // next unused history index
}

// ProductEntry - one catalogue item
//
// id is assigned from the shop's product counter at creation and is
// immutable; price and stock are mutable; stock is unsigned so
// underflow is the failure mode to guard against
type ProductEntry struct {
	Id          uint64      `json:"id,string"`
	Name        Name        `json:"name"`
	Description Description `json:"description"`
	Price       uint64      `json:"price,string"`
	Stock       uint64      `json:"stock,string"`
}

// HistoryEntry - one completed sale, immutable once created
type HistoryEntry struct {
	ProductId  uint64            `json:"productId,string"`
	Quantity   uint64            `json:"quantity,string"`
	TotalPrice uint64            `json:"totalPrice,string"` // quantity * price at time of sale
	Buyer      identity.Identity `json:"buyer"`
	Timestamp  int64             `json:"timestamp"` // seconds, from the time oracle
}

// IsInitialised - a shop state slot carrying a zero owner is free
func (shop *ShopState) IsInitialised() bool {
	return !shop.Owner.IsZero()
}

// MakeName - build a name field from a string
//
// input longer than the field truncates silently to field capacity
func MakeName(s string) Name {
	var name Name
	copy(name[:], s)
	return name
}

// MakeDescription - build a description field from a string, truncating like MakeName
func MakeDescription(s string) Description {
	var description Description
	copy(description[:], s)
	return description
}

// Trim - the name bytes up to the zero padded tail
func (name Name) Trim() []byte {
	return trimZeroTail(name[:])
}

// Trim - the description bytes up to the zero padded tail
func (description Description) Trim() []byte {
	return trimZeroTail(description[:])
}

func trimZeroTail(buffer []byte) []byte {
	end := len(buffer)
	for end > 0 && 0 == buffer[end-1] {
		end -= 1
	}
	return buffer[:end]
}

// MarshalText - convert a name to its hex JSON form
func (name Name) MarshalText() ([]byte, error) {
	return hexText(name[:]), nil
}

// MarshalText - convert a description to its hex JSON form
func (description Description) MarshalText() ([]byte, error) {
	return hexText(description[:]), nil
}

// MarshalText - convert a packed record to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	return hexText(record), nil
}

// UnmarshalText - convert hex JSON form back to a packed record
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	*record = make([]byte, size)
	_, err := hex.Decode(*record, s)
	return err
}

func hexText(buffer []byte) []byte {
	size := hex.EncodedLen(len(buffer))
	b := make([]byte, size)
	hex.Encode(b, buffer)
	return b
}
