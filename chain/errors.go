// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
)

var (
	// Namespace Claims
	ErrZeroPrice        = errors.New("price cannot be zero")
	ErrPriceNotMultiple = errors.New("price is not a multiple of the price step")
	ErrPriceTooLow      = errors.New("price is below the price step")
	ErrPriceTaken       = errors.New("price already used by a public namespace")
	ErrNamespaceExists  = errors.New("namespace already registered")
	ErrInsufficientFee  = errors.New("insufficient namespace claim fee")

	// Name Registration
	ErrNamespaceMissing    = errors.New("namespace missing")
	ErrPrivateNamespace    = errors.New("namespace is private")
	ErrNotNamespaceCreator = errors.New("sender is not the namespace creator")
	ErrPrivateCreatorOnly  = errors.New("private namespace names can only be sponsored by the creator")
	ErrInsufficientPayment = errors.New("insufficient payment")
	ErrSenderHasName       = errors.New("sender already has a name")
	ErrRecipientHasName    = errors.New("recipient already has a name")
	ErrNameTaken           = errors.New("name already registered")
	ErrZeroRecipient       = errors.New("recipient cannot be the zero address")
	ErrBadAuthorization    = errors.New("invalid authorization signature")

	// Batch Correctness
	ErrEmptyBatch        = errors.New("batch cannot be empty")
	ErrLengthMismatch    = errors.New("authorization and signature counts differ")
	ErrNamespaceMismatch = errors.New("batch entries must share one namespace")

	// Fees
	ErrNoFeesToClaim     = errors.New("no fees to claim")
	ErrZeroFeeRecipient  = errors.New("fee recipient cannot be the zero address")
	ErrRefundFailed      = errors.New("refund transfer failed")
	ErrFeeTransferFailed = errors.New("fee transfer failed")

	// Ledger
	ErrInsufficientFunds = errors.New("insufficient funds")

	// Crypto
	ErrInvalidSignature = errors.New("invalid signature")
)
