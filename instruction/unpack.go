// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Shopledger Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"encoding/binary"

	"github.com/shopledger/shopd/fault"
)

// Decode - turn an opcode tagged byte buffer into a typed instruction
//
// the payload length is validated before any field is sliced, so a
// short buffer is always a clean invalid-payload error and never an
// out of bounds access
func Decode(buffer []byte) (Instruction, error) {
	if 0 == len(buffer) {
		return nil, fault.ErrInvalidPayload
	}

	opcode := Opcode(buffer[0])
	payload := buffer[1:]

	switch opcode {

	case InitializeOp:
		if initializePayloadLength != len(payload) {
			return nil, fault.ErrInvalidPayload
		}
		return Initialize{}, nil

	case AddProductOp:
		if addProductPayloadLength != len(payload) {
			return nil, fault.ErrInvalidPayload
		}
		instr := AddProduct{}
		n := copy(instr.Name[:], payload)
		n += copy(instr.Description[:], payload[n:])
		instr.Price = binary.LittleEndian.Uint64(payload[n:])
		instr.Stock = binary.LittleEndian.Uint64(payload[n+8:])
		return instr, nil

	case AddStockOp:
		if addStockPayloadLength != len(payload) {
			return nil, fault.ErrInvalidPayload
		}
		return AddStock{
			ProductId: binary.LittleEndian.Uint64(payload),
			Amount:    binary.LittleEndian.Uint64(payload[8:]),
		}, nil

	case UpdatePriceOp:
		if updatePricePayloadLength != len(payload) {
			return nil, fault.ErrInvalidPayload
		}
		return UpdatePrice{
			ProductId: binary.LittleEndian.Uint64(payload),
			NewPrice:  binary.LittleEndian.Uint64(payload[8:]),
		}, nil

	case SellOp:
		if sellPayloadLength != len(payload) {
			return nil, fault.ErrInvalidPayload
		}
		return Sell{
			ProductId: binary.LittleEndian.Uint64(payload),
			Quantity:  binary.LittleEndian.Uint64(payload[8:]),
		}, nil

	case MigrateHistoryOp:
		if migrateHistoryPayloadLength != len(payload) {
			return nil, fault.ErrInvalidPayload
		}
		instr := MigrateHistory{
			ProductId:  binary.LittleEndian.Uint64(payload),
			Quantity:   binary.LittleEndian.Uint64(payload[8:]),
			TotalPrice: binary.LittleEndian.Uint64(payload[16:]),
		}
		n := 24 + copy(instr.Buyer[:], payload[24:])
		instr.Timestamp = int64(binary.LittleEndian.Uint64(payload[n:]))
		return instr, nil

	case CloseShopOp:
		if closeShopPayloadLength != len(payload) {
			return nil, fault.ErrInvalidPayload
		}
		return CloseShop{}, nil

	case CloseProductOp:
		if closeProductPayloadLength != len(payload) {
			return nil, fault.ErrInvalidPayload
		}
		return CloseProduct{
			ProductId: binary.LittleEndian.Uint64(payload),
		}, nil

	default:
		return nil, fault.ErrUnknownOpcode
	}
}
