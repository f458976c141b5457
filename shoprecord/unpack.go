// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Shopledger Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shoprecord

import (
	"encoding/binary"

	"github.com/shopledger/shopd/fault"
)

// turn stored bytes back into records
//
// every unpacker requires the exact record length; anything else is a
// size mismatch, never a partial decode

// UnpackShopState - decode a stored ShopState record
func UnpackShopState(record Packed) (*ShopState, error) {
	if ShopStateLength != len(record) {
		return nil, fault.ErrRecordSizeMismatch
	}

	shop := &ShopState{
		ProductCounter: binary.LittleEndian.Uint64(record[shopProductCounterOffset:]),
		HistoryCounter: binary.LittleEndian.Uint64(record[shopHistoryCounterOffset:]),
	}
	copy(shop.Owner[:], record[shopOwnerOffset:shopOwnerOffset+len(shop.Owner)])
	return shop, nil
}

// UnpackProductEntry - decode a stored ProductEntry record
//
// the name and description fields are returned raw, padding included;
// no UTF-8 validation is performed
func UnpackProductEntry(record Packed) (*ProductEntry, error) {
	if ProductEntryLength != len(record) {
		return nil, fault.ErrRecordSizeMismatch
	}

	product := &ProductEntry{
		Id:    binary.LittleEndian.Uint64(record[productIdOffset:]),
		Price: binary.LittleEndian.Uint64(record[productPriceOffset:]),
		Stock: binary.LittleEndian.Uint64(record[productStockOffset:]),
	}
	copy(product.Name[:], record[productNameOffset:productNameOffset+NameLength])
	copy(product.Description[:], record[productDescriptionOffset:productDescriptionOffset+DescriptionLength])
	return product, nil
}

// UnpackHistoryEntry - decode a stored HistoryEntry record
func UnpackHistoryEntry(record Packed) (*HistoryEntry, error) {
	if HistoryEntryLength != len(record) {
		return nil, fault.ErrRecordSizeMismatch
	}

	entry := &HistoryEntry{
		ProductId:  binary.LittleEndian.Uint64(record[historyProductIdOffset:]),
		Quantity:   binary.LittleEndian.Uint64(record[historyQuantityOffset:]),
		TotalPrice: binary.LittleEndian.Uint64(record[historyTotalPriceOffset:]),
		Timestamp:  int64(binary.LittleEndian.Uint64(record[historyTimestampOffset:])),
	}
	copy(entry.Buyer[:], record[historyBuyerOffset:historyBuyerOffset+len(entry.Buyer)])
	return entry, nil
}
