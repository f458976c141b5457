// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Shopledger Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"encoding/binary"

	"github.com/shopledger/shopd/fault"
)

// number of disambiguator candidates to try before giving up
const disambiguatorLimit = 256

// Derive - compute the storage address for a namespace tag and ordered key parts
//
// every field of the preimage is length prefixed so distinct part
// sequences can never collide by concatenation; the final byte is a
// disambiguator chosen as the first of 256 candidates whose resulting
// address satisfies the host validity predicate
//
// re-deriving with the same tag and parts always yields the same
// address and disambiguator
func Derive(valid Validity, tag string, parts ...[]byte) (Address, byte, error) {

	size := 4 + len(tag) + 1
	for _, part := range parts {
		size += 4 + len(part)
	}

	preimage := make([]byte, 0, size)
	preimage = appendLengthPrefixed(preimage, []byte(tag))
	for _, part := range parts {
		preimage = appendLengthPrefixed(preimage, part)
	}

	for i := 0; i < disambiguatorLimit; i += 1 {
		disambiguator := byte(i)
		candidate := NewAddress(append(preimage, disambiguator))
		if valid(candidate) {
			return candidate, disambiguator, nil
		}
	}

	return Address{}, 0, fault.ErrAddressSearchExhausted
}

// append one preimage field with its little endian length prefix
func appendLengthPrefixed(buffer []byte, data []byte) []byte {
	prefix := make([]byte, 4)
	binary.LittleEndian.PutUint32(prefix, uint32(len(data)))
	buffer = append(buffer, prefix...)
	return append(buffer, data...)
}
