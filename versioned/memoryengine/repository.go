package memoryengine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/datamapper/dm-is-versioned/versioned"
)

// ErrRecordNotFound is returned when Load finds no row for the given key.
var ErrRecordNotFound = errors.New("record not found")

// Repository is the engine's minimal save pipeline. It persists live rows in
// memory and dispatches the versioning hooks with the ordering the hook
// contract requires: staging strictly before the update is applied, commit
// strictly after the update is confirmed and the record is clean again.
type Repository struct {
	mu   sync.Mutex
	rows map[string]map[string]map[string]any // table -> key -> attributes
}

// NewRepository creates an empty repository.
func NewRepository() *Repository {
	return &Repository{
		rows: make(map[string]map[string]map[string]any),
	}
}

// Save persists the record. A new record is inserted without version
// staging; an unchanged record is a no-op; an update runs the full
// before-update / apply / after-update cycle.
//
// Errors from the after-update hook propagate unchanged: by then the live
// row is already updated, only the version row is missing.
func (repo *Repository) Save(ctx context.Context, rec *Record) error {
	if rec.IsNew() {
		repo.writeRow(rec)
		rec.markPersisted()

		return nil
	}

	if rec.Clean() {
		return nil
	}

	versioned.BeforeUpdate(rec)

	repo.writeRow(rec)
	rec.markPersisted()

	return versioned.AfterUpdate(ctx, rec)
}

// Load returns the persisted record with the given key field values.
func (repo *Repository) Load(entityType *versioned.EntityType, key map[string]any) (*Record, error) {
	repo.mu.Lock()
	attributes, ok := repo.rows[entityType.TableName()][keyString(entityType, key)]
	repo.mu.Unlock()

	if !ok {
		return nil, ErrRecordNotFound
	}

	rec, err := NewRecord(entityType, attributes)
	if err != nil {
		return nil, err
	}

	rec.markPersisted()

	return rec, nil
}

func (repo *Repository) writeRow(rec *Record) {
	table := rec.entityType.TableName()

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if repo.rows[table] == nil {
		repo.rows[table] = make(map[string]map[string]any)
	}

	repo.rows[table][keyString(rec.entityType, rec.current)] = copyAttributes(rec.current)
}

// keyString flattens the key field values into a deterministic map key.
func keyString(entityType *versioned.EntityType, attributes map[string]any) string {
	parts := make([]string, 0, 1)
	for _, field := range entityType.KeyFields() {
		parts = append(parts, fmt.Sprintf("%s=%v", field.Name, attributes[field.Name]))
	}

	return strings.Join(parts, "|")
}
