// Package ports defines the interfaces (driven and driving ports) for
// PomoQuest following hexagonal architecture principles. These interfaces
// define the contracts between the domain core and external infrastructure.
package ports

import "pomoquest/internal/domain"

// SnapshotStore is the durable key-value slot the store persists its entire
// state into. This is the only I/O boundary the core touches: a whole-blob
// load-on-init / save-on-change store with no partial updates.
// This is a driven port (implemented by adapters).
type SnapshotStore interface {
	// Load retrieves the persisted snapshot. Returns (nil, nil) when no
	// snapshot has been saved yet.
	Load() (*domain.Snapshot, error)

	// Save replaces the persisted snapshot wholesale.
	Save(snapshot *domain.Snapshot) error

	// Clear removes the persisted snapshot.
	Clear() error

	// Close releases the underlying storage.
	Close() error
}
