// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Shopledger Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - deterministic storage addresses
//
// a record's storage location is a collision-resistant function of a
// namespace tag and its key fields, so any caller can re-derive the
// location of a record without a separate lookup index
package address

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/shopledger/shopd/fault"
)

// AddressLength - number of bytes in an address
const AddressLength = 32

// Address - a storage address
//
// stored and marshalled as plain hex with no byte reversal
type Address [AddressLength]byte

// Validity - host-imposed predicate a derived address must satisfy
type Validity func(Address) bool

// NewAddress - hash a byte preimage into an address
func NewAddress(preimage []byte) Address {
	return sha3.Sum256(preimage)
}

// AddressFromBytes - convert and validate a binary byte slice to an address
func AddressFromBytes(buffer []byte) (Address, error) {
	var a Address
	if AddressLength != len(buffer) {
		return a, fault.ErrNotAddress
	}
	copy(a[:], buffer)
	return a, nil
}

// String - convert a binary address to hex string for use by the fmt package (for %s)
func (address Address) String() string {
	return hex.EncodeToString(address[:])
}

// GoString - convert a binary address to hex string for use by the fmt package (for %#v)
func (address Address) GoString() string {
	return "<address:" + hex.EncodeToString(address[:]) + ">"
}

// Scan - convert a hex representation to an address for use by the format package scan routines
func (address *Address) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	if len(token) != hex.EncodedLen(AddressLength) {
		return fault.ErrNotAddress
	}

	buffer := make([]byte, hex.DecodedLen(len(token)))
	byteCount, err := hex.Decode(buffer, token)
	if nil != err {
		return err
	}
	if AddressLength != byteCount {
		return fault.ErrNotAddress
	}
	copy(address[:], buffer)
	return nil
}

// MarshalText - convert an address to hex text
func (address Address) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(address))
	buffer := make([]byte, size)
	hex.Encode(buffer, address[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into an address
func (address *Address) UnmarshalText(s []byte) error {
	if AddressLength != hex.DecodedLen(len(s)) {
		return fault.ErrNotAddress
	}
	buffer := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	copy(address[:], buffer[:byteCount])
	return nil
}
