// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Shopledger Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction_test

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/shopledger/shopd/fault"
	"github.com/shopledger/shopd/identity"
	"github.com/shopledger/shopd/instruction"
	"github.com/shopledger/shopd/shoprecord"
)

var buyer = identity.Identity{
	0x9f, 0xc4, 0x86, 0xa2, 0x53, 0x4f, 0x17, 0xe3,
	0x67, 0x07, 0xfa, 0x4b, 0x95, 0x3e, 0x3b, 0x34,
	0x00, 0xe2, 0x72, 0x9f, 0x65, 0x61, 0x16, 0xdd,
	0x7b, 0x01, 0x8d, 0xf3, 0x46, 0x98, 0xbd, 0xc2,
}

// every variant must survive an encode/decode round trip unchanged
func TestRoundTrip(t *testing.T) {
	items := []instruction.Instruction{
		instruction.Initialize{},
		instruction.AddProduct{
			Name:        shoprecord.MakeName("Cake"),
			Description: shoprecord.MakeDescription("Chocolate cake"),
			Price:       1000000,
			Stock:       100,
		},
		instruction.AddStock{ProductId: 1, Amount: 50},
		instruction.UpdatePrice{ProductId: 1, NewPrice: 2000000},
		instruction.Sell{ProductId: 0, Quantity: 10},
		instruction.MigrateHistory{
			ProductId:  2,
			Quantity:   3,
			TotalPrice: 6000000,
			Buyer:      buyer,
			Timestamp:  1577836800,
		},
		instruction.CloseShop{},
		instruction.CloseProduct{ProductId: 4},
	}

	for i, item := range items {
		encoded := item.Encode()
		if byte(item.Opcode()) != encoded[0] {
			t.Errorf("%d: opcode byte: %d  expected: %d", i, encoded[0], item.Opcode())
		}

		decoded, err := instruction.Decode(encoded)
		if nil != err {
			t.Fatalf("%d: decode error: %s", i, err)
		}
		if !reflect.DeepEqual(item, decoded) {
			t.Errorf("%d: decode: %#v  expected: %#v", i, decoded, item)
		}
	}
}

// exact wire layout of a sell submission
func TestSellWireFormat(t *testing.T) {
	encoded := instruction.Sell{ProductId: 7, Quantity: 259}.Encode()

	expected := []byte{
		0x04,                                           // opcode
		0x07, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // product id
		0x03, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // quantity
	}
	if !bytes.Equal(encoded, expected) {
		t.Fatalf("encoded: %x  expected: %x", encoded, expected)
	}
}

func TestDecodeEmpty(t *testing.T) {
	_, err := instruction.Decode(nil)
	if fault.ErrInvalidPayload != err {
		t.Fatalf("expected: %v  actual: %v", fault.ErrInvalidPayload, err)
	}
}

func TestDecodeUnknownOpcode(t *testing.T) {
	_, err := instruction.Decode([]byte{0xfe})
	if fault.ErrUnknownOpcode != err {
		t.Fatalf("expected: %v  actual: %v", fault.ErrUnknownOpcode, err)
	}

	_, err = instruction.Decode([]byte{0x08})
	if fault.ErrUnknownOpcode != err {
		t.Fatalf("expected: %v  actual: %v", fault.ErrUnknownOpcode, err)
	}
}

// any length deviation must fail cleanly, never slice out of bounds
func TestDecodeWrongLength(t *testing.T) {
	items := [][]byte{
		{0x00, 0x01},             // initialize takes no payload
		{0x01, 0x01, 0x02},       // add-product far too short
		{0x02},                   // add-stock with no payload
		{0x03, 0x01, 0x02, 0x03}, // update-price truncated
		append(instruction.Sell{ProductId: 1, Quantity: 1}.Encode(), 0x00), // sell one byte long
		instruction.MigrateHistory{}.Encode()[:40],                         // migrate-history truncated
		{0x06, 0x00}, // close-shop takes no payload
		{0x07, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}, // close-product one byte short
	}

	for i, item := range items {
		_, err := instruction.Decode(item)
		if fault.ErrInvalidPayload != err {
			t.Errorf("%d: expected: %v  actual: %v", i, fault.ErrInvalidPayload, err)
		}
	}
}

func TestOpcodeNames(t *testing.T) {
	if "sell" != instruction.SellOp.String() {
		t.Errorf("sell opcode name: %q", instruction.SellOp.String())
	}
	if "*unknown*" != instruction.Opcode(200).String() {
		t.Errorf("unknown opcode name: %q", instruction.Opcode(200).String())
	}
}
