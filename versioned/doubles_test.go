package versioned_test

import (
	"context"
	"sync"

	"github.com/datamapper/dm-is-versioned/versioned"
)

// stubRecord is a minimal Record implementation for driving the hooks
// without a storage engine.
type stubRecord struct {
	entityType *versioned.EntityType
	attributes map[string]any
	originals  map[string]any
	changes    map[string]any
	isNew      bool
	clean      bool
	snapshot   versioned.PendingSnapshot
}

func (r *stubRecord) EntityType() *versioned.EntityType {
	return r.entityType
}

func (r *stubRecord) Attributes() map[string]any {
	return copyMap(r.attributes)
}

func (r *stubRecord) OriginalAttributes() map[string]any {
	return copyMap(r.originals)
}

func (r *stubRecord) ChangeSet() map[string]any {
	return copyMap(r.changes)
}

func (r *stubRecord) IsNew() bool {
	return r.isNew
}

func (r *stubRecord) Clean() bool {
	return r.clean
}

func (r *stubRecord) VersionSnapshot() *versioned.PendingSnapshot {
	return &r.snapshot
}

func copyMap(m map[string]any) map[string]any {
	clone := make(map[string]any, len(m))
	for k, v := range m {
		clone[k] = v
	}

	return clone
}

type createCall struct {
	historyType *versioned.EntityType
	attributes  map[string]any
}

type queryCall struct {
	historyType *versioned.EntityType
	conditions  []versioned.Condition
	order       []versioned.Ordering
}

// storeSpy is a VersionStore implementation that records calls and returns
// canned results. It deliberately does NOT implement SchemaMigrator.
type storeSpy struct {
	mu          sync.Mutex
	failCreate  error
	failQuery   error
	queryResult []versioned.VersionRow
	created     []createCall
	queried     []queryCall
}

func (s *storeSpy) CreateVersion(
	_ context.Context,
	historyType *versioned.EntityType,
	attributes map[string]any,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failCreate != nil {
		return s.failCreate
	}

	s.created = append(s.created, createCall{historyType: historyType, attributes: copyMap(attributes)})

	return nil
}

func (s *storeSpy) Versions(
	_ context.Context,
	historyType *versioned.EntityType,
	conditions []versioned.Condition,
	order []versioned.Ordering,
) ([]versioned.VersionRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failQuery != nil {
		return nil, s.failQuery
	}

	s.queried = append(s.queried, queryCall{historyType: historyType, conditions: conditions, order: order})

	return s.queryResult, nil
}

func (s *storeSpy) createdCalls() []createCall {
	s.mu.Lock()
	defer s.mu.Unlock()

	calls := make([]createCall, len(s.created))
	copy(calls, s.created)

	return calls
}

func (s *storeSpy) queriedCalls() []queryCall {
	s.mu.Lock()
	defer s.mu.Unlock()

	calls := make([]queryCall, len(s.queried))
	copy(calls, s.queried)

	return calls
}

// migratorSpy adds the SchemaMigrator capability on top of storeSpy and
// records the table names it is asked to migrate, in call order.
type migratorSpy struct {
	storeSpy
	migrated []string
	upgraded []string
}

func (s *migratorSpy) AutoMigrate(_ context.Context, entityType *versioned.EntityType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.migrated = append(s.migrated, entityType.TableName())

	return nil
}

func (s *migratorSpy) AutoUpgrade(_ context.Context, entityType *versioned.EntityType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.upgraded = append(s.upgraded, entityType.TableName())

	return nil
}
