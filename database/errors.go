package database

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a unique key.
	ErrDuplicate = errors.New("duplicate record")
	// ErrSlotTaken is returned when a conditional slot removal matched nothing
	// because the slot was consumed by a concurrent writer.
	ErrSlotTaken = errors.New("slot no longer available")
)
