package sdk

import (
	"github.com/celerix-dev/clientes/internal/engine"
	"github.com/celerix-dev/clientes/pkg/query"
	"github.com/celerix-dev/clientes/pkg/schema"
)

// ErrNotFound is returned when a requested record does not exist.
// It is the engine error itself so errors.Is works across embedded and remote stores.
var ErrNotFound = engine.ErrNotFound

// --- Functional Interfaces (Interface Segregation) ---

// Reader retrieves single records.
type Reader interface {
	Get(id string) (schema.Cliente, error)
}

// Writer creates, updates and deletes records.
type Writer interface {
	Create(firstName, lastName string) (schema.Cliente, error)
	Update(id, firstName, lastName string) (schema.Cliente, error)
	Delete(id string) error
}

// Lister returns every record.
type Lister interface {
	List() ([]schema.Cliente, error)
}

// Querier runs the filter/sort/range pipeline and returns one page.
type Querier interface {
	Query(p query.Params) (query.Page, error)
}

// --- Composite Interfaces ---

// ClienteStore is the full record store contract. Both *engine.MemStore and *Client satisfy it.
type ClienteStore interface {
	Reader
	Writer
	Lister
}

var (
	_ ClienteStore = (*engine.MemStore)(nil)
	_ ClienteStore = (*Client)(nil)
	_ Querier      = (*Client)(nil)
	_ engine.Store = (*Client)(nil)
)
