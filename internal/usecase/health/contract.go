package health

import "context"

// DBPinger checks durable store availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// Catalog reports the size of the loaded content catalog.
type Catalog interface {
	Len() int
}
