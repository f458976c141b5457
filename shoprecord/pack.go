// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Shopledger Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shoprecord

import (
	"encoding/binary"
)

// pack ShopState
//
// fields in struct order at their fixed offsets, always exactly
// ShopStateLength bytes
func (shop *ShopState) Pack() Packed {
	buffer := make([]byte, ShopStateLength)
	copy(buffer[shopOwnerOffset:], shop.Owner[:])
	binary.LittleEndian.PutUint64(buffer[shopProductCounterOffset:], shop.ProductCounter)
	binary.LittleEndian.PutUint64(buffer[shopHistoryCounterOffset:], shop.HistoryCounter)
	return buffer
}

// pack ProductEntry
//
// fields in struct order at their fixed offsets, always exactly
// ProductEntryLength bytes; the name and description arrays carry
// their zero padding unchanged
func (product *ProductEntry) Pack() Packed {
	buffer := make([]byte, ProductEntryLength)
	binary.LittleEndian.PutUint64(buffer[productIdOffset:], product.Id)
	copy(buffer[productNameOffset:], product.Name[:])
	copy(buffer[productDescriptionOffset:], product.Description[:])
	binary.LittleEndian.PutUint64(buffer[productPriceOffset:], product.Price)
	binary.LittleEndian.PutUint64(buffer[productStockOffset:], product.Stock)
	return buffer
}

// pack HistoryEntry
//
// fields in struct order at their fixed offsets, always exactly
// HistoryEntryLength bytes
func (entry *HistoryEntry) Pack() Packed {
	buffer := make([]byte, HistoryEntryLength)
	binary.LittleEndian.PutUint64(buffer[historyProductIdOffset:], entry.ProductId)
	binary.LittleEndian.PutUint64(buffer[historyQuantityOffset:], entry.Quantity)
	binary.LittleEndian.PutUint64(buffer[historyTotalPriceOffset:], entry.TotalPrice)
	copy(buffer[historyBuyerOffset:], entry.Buyer[:])
	binary.LittleEndian.PutUint64(buffer[historyTimestampOffset:], uint64(entry.Timestamp))
	return buffer
}
