// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Shopledger Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shoprecord_test

import (
	"bytes"
	"testing"

	"github.com/shopledger/shopd/fault"
	"github.com/shopledger/shopd/identity"
	"github.com/shopledger/shopd/shoprecord"
)

// fixed identities for the tests below
var (
	ownerBytes = []byte{
		0x64, 0x6d, 0x88, 0xea, 0xa6, 0x63, 0x1b, 0x56,
		0x9a, 0x88, 0x3f, 0x3c, 0xa2, 0xb1, 0x7b, 0x84,
		0x38, 0x51, 0xf0, 0xba, 0x5f, 0xfb, 0x5d, 0x75,
		0x47, 0x4a, 0x91, 0x95, 0x07, 0xd1, 0x90, 0xc6,
	}
	buyerBytes = []byte{
		0x9f, 0xc4, 0x86, 0xa2, 0x53, 0x4f, 0x17, 0xe3,
		0x67, 0x07, 0xfa, 0x4b, 0x95, 0x3e, 0x3b, 0x34,
		0x00, 0xe2, 0x72, 0x9f, 0x65, 0x61, 0x16, 0xdd,
		0x7b, 0x01, 0x8d, 0xf3, 0x46, 0x98, 0xbd, 0xc2,
	}
)

func makeIdentity(t *testing.T, buffer []byte) identity.Identity {
	id, err := identity.FromBytes(buffer)
	if nil != err {
		t.Fatalf("identity error: %s", err)
	}
	return id
}

// ensure a ShopState record packs to its exact little endian layout
// and unpacks to the same value
func TestPackShopState(t *testing.T) {

	r := shoprecord.ShopState{
		Owner:          makeIdentity(t, ownerBytes),
		ProductCounter: 2,
		HistoryCounter: 5,
	}

	expected := append([]byte{}, ownerBytes...)
	expected = append(expected,
		0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x05, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	)

	packed := r.Pack()
	if shoprecord.ShopStateLength != len(packed) {
		t.Fatalf("packed length: %d  expected: %d", len(packed), shoprecord.ShopStateLength)
	}
	if !bytes.Equal(packed, expected) {
		t.Fatalf("pack record: %x  expected: %x", packed, expected)
	}

	unpacked, err := shoprecord.UnpackShopState(packed)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if *unpacked != r {
		t.Errorf("unpack record: %v  expected: %v", unpacked, r)
	}
	if !unpacked.IsInitialised() {
		t.Error("owned shop state reported uninitialised")
	}
}

func TestUnpackShopStateSizeMismatch(t *testing.T) {
	_, err := shoprecord.UnpackShopState(make([]byte, shoprecord.ShopStateLength-1))
	if fault.ErrRecordSizeMismatch != err {
		t.Fatalf("expected: %v  actual: %v", fault.ErrRecordSizeMismatch, err)
	}
	_, err = shoprecord.UnpackShopState(make([]byte, shoprecord.ShopStateLength+1))
	if fault.ErrRecordSizeMismatch != err {
		t.Fatalf("expected: %v  actual: %v", fault.ErrRecordSizeMismatch, err)
	}
}

func TestZeroShopStateIsUninitialised(t *testing.T) {
	unpacked, err := shoprecord.UnpackShopState(make([]byte, shoprecord.ShopStateLength))
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if unpacked.IsInitialised() {
		t.Error("all-zero shop state reported initialised")
	}
}

// ensure a ProductEntry record packs to its exact little endian layout
func TestPackProductEntry(t *testing.T) {

	r := shoprecord.ProductEntry{
		Id:          1,
		Name:        shoprecord.MakeName("Cake"),
		Description: shoprecord.MakeDescription("Chocolate cake"),
		Price:       1000000,
		Stock:       100,
	}

	expected := []byte{
		0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // id
	}
	name := make([]byte, shoprecord.NameLength)
	copy(name, "Cake")
	expected = append(expected, name...)
	description := make([]byte, shoprecord.DescriptionLength)
	copy(description, "Chocolate cake")
	expected = append(expected, description...)
	expected = append(expected,
		0x40, 0x42, 0x0f, 0x00, 0x00, 0x00, 0x00, 0x00, // price
		0x64, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // stock
	)

	packed := r.Pack()
	if shoprecord.ProductEntryLength != len(packed) {
		t.Fatalf("packed length: %d  expected: %d", len(packed), shoprecord.ProductEntryLength)
	}
	if !bytes.Equal(packed, expected) {
		t.Fatalf("pack record: %x  expected: %x", packed, expected)
	}

	unpacked, err := shoprecord.UnpackProductEntry(packed)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if *unpacked != r {
		t.Errorf("unpack record: %v  expected: %v", unpacked, r)
	}
	if "Cake" != string(unpacked.Name.Trim()) {
		t.Errorf("trimmed name: %q  expected: %q", unpacked.Name.Trim(), "Cake")
	}
}

// a name longer than the field truncates silently to field capacity
func TestNameTruncation(t *testing.T) {
	long := "a long product name that certainly exceeds the field width"

	name := shoprecord.MakeName(long)
	if string(name[:]) != long[:shoprecord.NameLength] {
		t.Errorf("truncated name: %q  expected: %q", name[:], long[:shoprecord.NameLength])
	}

	description := shoprecord.MakeDescription(long)
	if string(description.Trim()) != long {
		t.Errorf("description: %q  expected: %q", description.Trim(), long)
	}
}

// name bytes are raw, not validated as text
func TestNameIsRawBytes(t *testing.T) {
	raw := []byte{0xff, 0xfe, 0x00, 0x01}

	r := shoprecord.ProductEntry{Id: 9}
	copy(r.Name[:], raw)

	unpacked, err := shoprecord.UnpackProductEntry(r.Pack())
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if !bytes.Equal(unpacked.Name[:4], raw) {
		t.Errorf("raw name bytes: %x  expected: %x", unpacked.Name[:4], raw)
	}
}

func TestUnpackProductEntrySizeMismatch(t *testing.T) {
	_, err := shoprecord.UnpackProductEntry(make([]byte, shoprecord.ShopStateLength))
	if fault.ErrRecordSizeMismatch != err {
		t.Fatalf("expected: %v  actual: %v", fault.ErrRecordSizeMismatch, err)
	}
}

// ensure a HistoryEntry record packs to its exact little endian layout
func TestPackHistoryEntry(t *testing.T) {

	r := shoprecord.HistoryEntry{
		ProductId:  0,
		Quantity:   10,
		TotalPrice: 10000000,
		Buyer:      makeIdentity(t, buyerBytes),
		Timestamp:  1577836800, // 2020-01-01 00:00:00 UTC
	}

	expected := []byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // product id
		0x0a, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // quantity
		0x80, 0x96, 0x98, 0x00, 0x00, 0x00, 0x00, 0x00, // total price
	}
	expected = append(expected, buyerBytes...)
	expected = append(expected,
		0x00, 0xe1, 0x0b, 0x5e, 0x00, 0x00, 0x00, 0x00, // timestamp
	)

	packed := r.Pack()
	if shoprecord.HistoryEntryLength != len(packed) {
		t.Fatalf("packed length: %d  expected: %d", len(packed), shoprecord.HistoryEntryLength)
	}
	if !bytes.Equal(packed, expected) {
		t.Fatalf("pack record: %x  expected: %x", packed, expected)
	}

	unpacked, err := shoprecord.UnpackHistoryEntry(packed)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if *unpacked != r {
		t.Errorf("unpack record: %v  expected: %v", unpacked, r)
	}
}

// negative timestamps survive the unsigned encoding
func TestPackHistoryEntryNegativeTimestamp(t *testing.T) {
	r := shoprecord.HistoryEntry{
		ProductId: 3,
		Quantity:  1,
		Timestamp: -1,
	}

	unpacked, err := shoprecord.UnpackHistoryEntry(r.Pack())
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if -1 != unpacked.Timestamp {
		t.Errorf("timestamp: %d  expected: %d", unpacked.Timestamp, -1)
	}
}

func TestUnpackHistoryEntrySizeMismatch(t *testing.T) {
	_, err := shoprecord.UnpackHistoryEntry(make([]byte, shoprecord.HistoryEntryLength+3))
	if fault.ErrRecordSizeMismatch != err {
		t.Fatalf("expected: %v  actual: %v", fault.ErrRecordSizeMismatch, err)
	}
}
