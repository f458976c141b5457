// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Shopledger Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// error instances
//
// Provides a single instance of errors to allow easy comparison
package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAddressSearchExhausted = ProcessError("address search exhausted")
	ErrAlreadyInitialised     = ExistsError("already initialised")
	ErrArithmeticOverflow     = ProcessError("arithmetic overflow")
	ErrBuyerNotSigner         = InvalidError("buyer has not signed the operation")
	ErrCallerNotSigner        = InvalidError("caller has not signed the operation")
	ErrCannotDecodeIdentity   = InvalidError("cannot decode identity")
	ErrChecksumMismatch       = InvalidError("checksum mismatch")
	ErrInsufficientFunds      = ProcessError("insufficient funds")
	ErrInsufficientStock      = ProcessError("insufficient stock")
	ErrInvalidAddress         = InvalidError("supplied address does not match derived address")
	ErrInvalidIdentityLength  = LengthError("identity length is invalid")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidPayload         = LengthError("payload length is invalid")
	ErrInvalidQuantity        = InvalidError("quantity is out of range")
	ErrInvalidSignature       = InvalidError("invalid signature")
	ErrInvalidTransferKind    = InvalidError("invalid transfer kind")
	ErrNotAddress             = InvalidError("not an address")
	ErrNotInitialised         = NotFoundError("not initialised")
	ErrProductNotFound        = NotFoundError("product record not found")
	ErrRecordSizeMismatch     = RecordError("stored record size mismatch")
	ErrShopAlreadyInitialised = ExistsError("shop state already initialised")
	ErrTransferFailed         = ProcessError("external transfer failed")
	ErrUnauthorized           = InvalidError("caller is not the shop owner")
	ErrUnknownOpcode          = InvalidError("unknown opcode")
	ErrWrongProductIdentifier = InvalidError("product identifier does not match record")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
