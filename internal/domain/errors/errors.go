package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")

	// Validation errors: the caller can fix the request and retry.
	ErrEmptyCart         = errors.New("cart is empty")
	ErrBelowMinimum      = errors.New("subtotal below minimum order amount")
	ErrInvalidTransition = errors.New("illegal status transition")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrEmptyMessage      = errors.New("message must not be empty")
	ErrOrderNotFinished  = errors.New("order is not in a finished state")

	// ErrInvalidSignature rejects payment callbacks whose gateway signature
	// does not verify.
	ErrInvalidSignature = errors.New("invalid payment signature")

	ErrInvalidTransactionID = errors.New("transaction id must not be empty")

	// ErrStatusConflict signals a concurrent transition won the race; the
	// caller should re-read the order and retry.
	ErrStatusConflict = errors.New("order status changed concurrently")

	// ErrRefundProcessed guards processed refunds against modification.
	ErrRefundProcessed = errors.New("refund already processed")

	ErrComplaintClosed  = errors.New("complaint is closed")
	ErrRatingNotAllowed = errors.New("rating allowed only for closed complaints")
)
