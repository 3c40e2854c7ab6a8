// Package repo contains the repository interfaces which are required by
// the use cases layer. Implementations are provided by the adapters
// layer (see pkg/adapter/db/postgres), so use cases may stay free of
// database drivers and ORM dependencies.
package repo

import "context"

// ConnHandler is a function which runs a series of statements over
// one database connection which is acquired on its behalf.
type ConnHandler func(context.Context, Conn) error

// Pool represents a database connection pool. The Conn method acquires
// a connection, passes it to the handler, and releases it afterwards.
// The Close method releases all pooled connections.
type Pool interface {
	Conn(ctx context.Context, handler ConnHandler) error
	Close() error
}
