package storage

import "cmsscan/pkg/serrors"

// Transaction misuse errors. Both are programming errors and carry the
// internal kind so they are never mistaken for a target failure.
var (
	// ErrAlreadyInTx is returned by Begin on a handle that is already a transaction.
	ErrAlreadyInTx = serrors.With(serrors.ErrInternal, "already in tx")
	// ErrNotInTx is returned by Commit and Rollback outside a transaction.
	ErrNotInTx = serrors.With(serrors.ErrInternal, "not in tx")
)
