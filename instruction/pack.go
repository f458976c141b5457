// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Shopledger Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"encoding/binary"
)

// encode each variant as opcode byte + fixed length payload
//
// all multi-byte integers are little endian; these are the exact wire
// layouts Decode accepts

// Encode - opcode byte only
func (Initialize) Encode() []byte {
	return []byte{byte(InitializeOp)}
}

// Encode - name[32] description[128] price(u64) stock(u64)
func (instr AddProduct) Encode() []byte {
	buffer := make([]byte, 0, 1+addProductPayloadLength)
	buffer = append(buffer, byte(AddProductOp))
	buffer = append(buffer, instr.Name[:]...)
	buffer = append(buffer, instr.Description[:]...)
	buffer = appendUint64(buffer, instr.Price)
	buffer = appendUint64(buffer, instr.Stock)
	return buffer
}

// Encode - productId(u64) amount(u64)
func (instr AddStock) Encode() []byte {
	buffer := make([]byte, 0, 1+addStockPayloadLength)
	buffer = append(buffer, byte(AddStockOp))
	buffer = appendUint64(buffer, instr.ProductId)
	buffer = appendUint64(buffer, instr.Amount)
	return buffer
}

// Encode - productId(u64) newPrice(u64)
func (instr UpdatePrice) Encode() []byte {
	buffer := make([]byte, 0, 1+updatePricePayloadLength)
	buffer = append(buffer, byte(UpdatePriceOp))
	buffer = appendUint64(buffer, instr.ProductId)
	buffer = appendUint64(buffer, instr.NewPrice)
	return buffer
}

// Encode - productId(u64) quantity(u64)
func (instr Sell) Encode() []byte {
	buffer := make([]byte, 0, 1+sellPayloadLength)
	buffer = append(buffer, byte(SellOp))
	buffer = appendUint64(buffer, instr.ProductId)
	buffer = appendUint64(buffer, instr.Quantity)
	return buffer
}

// Encode - productId(u64) quantity(u64) total(u64) buyer[32] timestamp(i64)
func (instr MigrateHistory) Encode() []byte {
	buffer := make([]byte, 0, 1+migrateHistoryPayloadLength)
	buffer = append(buffer, byte(MigrateHistoryOp))
	buffer = appendUint64(buffer, instr.ProductId)
	buffer = appendUint64(buffer, instr.Quantity)
	buffer = appendUint64(buffer, instr.TotalPrice)
	buffer = append(buffer, instr.Buyer[:]...)
	buffer = appendUint64(buffer, uint64(instr.Timestamp))
	return buffer
}

// Encode - opcode byte only
func (CloseShop) Encode() []byte {
	return []byte{byte(CloseShopOp)}
}

// Encode - productId(u64)
func (instr CloseProduct) Encode() []byte {
	buffer := make([]byte, 0, 1+closeProductPayloadLength)
	buffer = append(buffer, byte(CloseProductOp))
	buffer = appendUint64(buffer, instr.ProductId)
	return buffer
}

// append a little endian uint64 to a buffer
func appendUint64(buffer []byte, value uint64) []byte {
	valueBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(valueBytes, value)
	return append(buffer, valueBytes...)
}
