// Package engine owns the book and trade-offer collections and runs the
// trade lifecycle state machine. These sentinel values let the handler
// layer distinguish failure scenarios: ErrAnonymous maps to 401,
// ErrForbidden to 403, the not-found pair to 404 and the conflict pair
// to 409.
package engine

import "errors"

// ErrAnonymous is returned when an identity-gated operation is attempted
// without a current identity.
var ErrAnonymous = errors.New("login required")

// ErrForbidden is returned when the acting identity is not allowed to
// touch the target record, e.g. responding to an offer on someone else's
// book.
var ErrForbidden = errors.New("forbidden")

// ErrBookNotFound is returned when no book matches the given id.
var ErrBookNotFound = errors.New("book not found")

// ErrOfferNotFound is returned when no trade offer matches the given id.
var ErrOfferNotFound = errors.New("trade offer not found")

// ErrDuplicateOffer is returned when the requester already has a pending
// offer on the same book. A new offer is allowed once the earlier one was
// accepted or rejected.
var ErrDuplicateOffer = errors.New("book already requested")

// ErrOfferResolved is returned when responding to an offer that already
// left the pending state. Status transitions are monotonic.
var ErrOfferResolved = errors.New("trade offer already resolved")

// ErrValidation is returned when required input fields are missing or
// malformed. No state changes on validation failure.
var ErrValidation = errors.New("invalid input")
