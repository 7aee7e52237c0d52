// Package engine defines the record store behind the clientes service.
package engine

import (
	"errors"

	"github.com/celerix-dev/clientes/pkg/schema"
)

var (
	// ErrNotFound is returned when a requested record id does not exist.
	ErrNotFound = errors.New("cliente not found")
	// ErrDuplicateID is returned when inserting a record whose id is already stored.
	ErrDuplicateID = errors.New("cliente id already exists")
)

// Store is the contract shared by the embedded MemStore and the remote SDK client.
type Store interface {
	// Create assigns a fresh id and timestamp and stores the record.
	Create(firstName, lastName string) (schema.Cliente, error)
	// Get retrieves a record by id.
	Get(id string) (schema.Cliente, error)
	// Update replaces the name fields of a record and refreshes its timestamp.
	Update(id, firstName, lastName string) (schema.Cliente, error)
	// Delete removes a record by id.
	Delete(id string) error
	// List returns every record in store order.
	List() ([]schema.Cliente, error)
}
