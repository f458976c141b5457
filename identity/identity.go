// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Shopledger Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity

import (
	"bytes"
	"encoding/hex"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/shopledger/shopd/fault"
)

// IdentityLength - number of bytes in an identity
const IdentityLength = 32

// checksum appended to the base58 text form
const checksumLength = 4

// Identity - a fixed-size public identity recognised by the host
//
// the binary form is exactly the 32 byte ed25519 public key; the text
// form is base58 with a truncated SHA3-256 checksum appended
type Identity [IdentityLength]byte

// FromBytes - convert and validate a binary byte slice to an identity
func FromBytes(buffer []byte) (Identity, error) {
	var id Identity
	if IdentityLength != len(buffer) {
		return id, fault.ErrInvalidIdentityLength
	}
	copy(id[:], buffer)
	return id, nil
}

// FromBase58 - convert a checksummed base58 string to an identity
func FromBase58(s string) (Identity, error) {
	var id Identity

	decoded, err := base58.Decode(s)
	if nil != err {
		return id, fault.ErrCannotDecodeIdentity
	}
	if IdentityLength+checksumLength != len(decoded) {
		return id, fault.ErrInvalidIdentityLength
	}

	checksum := sha3.Sum256(decoded[:IdentityLength])
	if !bytes.Equal(checksum[:checksumLength], decoded[IdentityLength:]) {
		return id, fault.ErrChecksumMismatch
	}

	copy(id[:], decoded[:IdentityLength])
	return id, nil
}

// Bytes - return the identity as a byte slice
func (id Identity) Bytes() []byte {
	return id[:]
}

// IsZero - true if the identity is all zero bytes
//
// a zero owner field marks an uninitialised shop state slot
func (id Identity) IsZero() bool {
	return id == Identity{}
}

// String - base58 text form with checksum, for use by the fmt package (for %s)
func (id Identity) String() string {
	checksum := sha3.Sum256(id[:])
	buffer := make([]byte, 0, IdentityLength+checksumLength)
	buffer = append(buffer, id[:]...)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// GoString - for use by the fmt package (for %#v)
func (id Identity) GoString() string {
	return "<identity:" + hex.EncodeToString(id[:]) + ">"
}

// MarshalText - convert an identity to its base58 JSON form
func (id Identity) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert a base58 JSON form back to an identity
func (id *Identity) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*id = decoded
	return nil
}
