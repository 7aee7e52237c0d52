// Package schema defines the data structures exchanged by the clientes service and its clients.
package schema

import "time"

// Cliente represents a single customer record.
// The ID and UpdatedAt fields are always assigned by the store, never by the caller.
type Cliente struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClienteInput is the payload accepted when creating or updating a record.
// Pointers let an empty name through while still rejecting a missing one.
type ClienteInput struct {
	FirstName *string `json:"first_name" yaml:"first_name" binding:"required"`
	LastName  *string `json:"last_name" yaml:"last_name" binding:"required"`
}

// NewClienteInput builds an input from plain strings.
func NewClienteInput(firstName, lastName string) ClienteInput {
	return ClienteInput{FirstName: &firstName, LastName: &lastName}
}

// Names returns the first and last name, treating missing fields as empty.
func (in ClienteInput) Names() (string, string) {
	var first, last string
	if in.FirstName != nil {
		first = *in.FirstName
	}
	if in.LastName != nil {
		last = *in.LastName
	}
	return first, last
}
