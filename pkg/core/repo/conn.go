package repo

import "context"

// TxHandler is a function which runs a series of statements in one
// database transaction. Returning a nil error commits the transaction
// and a non-nil error rolls it back.
type TxHandler func(context.Context, Tx) error

// Conn represents one database connection which runs each statement
// in its own auto-committed transaction, unless the Tx method is used.
type Conn interface {
	Queryer
	Tx(ctx context.Context, handler TxHandler) error

	// IsConn method prevents a non-Conn object (such as a Tx) to
	// mistakenly implement the Conn interface.
	IsConn()
}
