// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Shopledger Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host

import (
	"fmt"
	"strings"

	"github.com/shopledger/shopd/fault"
	"github.com/shopledger/shopd/identity"
)

// TransferKind - enumeration of the supported value rails
type TransferKind uint64

// possible transfer kinds
const (
	Nothing      TransferKind = iota // this must be the first value
	Native       TransferKind = iota // native currency ledger
	Token        TransferKind = iota // token ledger
	maximumValue TransferKind = iota // this must be the last value
)

// Transfer - the external value-transfer collaborator
//
// Send instructs the holder of funds to move amount from payer to
// payee; it either completes or fails with no partial progress
type Transfer interface {
	Send(payer identity.Identity, payee identity.Identity, amount uint64) error
}

// internal conversion
func toString(kind TransferKind) (string, error) {
	switch kind {
	case Nothing:
		return "", nil
	case Native:
		return "native", nil
	case Token:
		return "token", nil
	default:
		return "", fault.ErrInvalidTransferKind
	}
}

// KindFromString - convert a configuration string to a transfer kind
func KindFromString(in string) (TransferKind, error) {
	switch strings.ToLower(in) {
	case "":
		return Nothing, nil
	case "native":
		return Native, nil
	case "token":
		return Token, nil
	default:
		return Nothing, fault.ErrInvalidTransferKind
	}
}

// String - convert a transfer kind to its configuration string
func (kind TransferKind) String() string {
	s, err := toString(kind)
	if nil != err {
		return "*unknown*"
	}
	return s
}

// GoString - both enum value and name, for debugging
func (kind TransferKind) GoString() string {
	return fmt.Sprintf("<TransferKind#%d:%q>", uint64(kind), kind.String())
}

// MarshalText - convert a transfer kind to text
func (kind TransferKind) MarshalText() ([]byte, error) {
	s, err := toString(kind)
	if nil != err {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText - convert text to a transfer kind
func (kind *TransferKind) UnmarshalText(s []byte) error {
	k, err := KindFromString(string(s))
	if nil != err {
		return err
	}
	*kind = k
	return nil
}
