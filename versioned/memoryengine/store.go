package memoryengine

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/datamapper/dm-is-versioned/versioned"
)

// Logger interface for operational logging; compatible with slog call shape.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Option defines a functional option for configuring Store.
type Option func(*Store)

// WithLogger sets the logger for the Store.
func WithLogger(logger Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// storedRow is one archived version row with its internal identity.
type storedRow struct {
	id         uuid.UUID
	attributes map[string]any
}

// Store is an in-memory implementation of versioned.VersionStore and
// versioned.SchemaMigrator, used by the examples and by tests that need the
// full staging/commit data flow without a database.
type Store struct {
	mu       sync.RWMutex
	tables   map[string][]storedRow
	migrated []string
	logger   Logger
}

// NewVersionStore creates an empty in-memory version store.
func NewVersionStore(options ...Option) *Store {
	s := &Store{
		tables: make(map[string][]storedRow),
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// CreateVersion archives one version row for the given history type.
func (s *Store) CreateVersion(
	_ context.Context,
	historyType *versioned.EntityType,
	attributes map[string]any,
) error {

	row := storedRow{
		id:         uuid.New(),
		attributes: copyAttributes(attributes),
	}

	s.mu.Lock()
	s.tables[historyType.TableName()] = append(s.tables[historyType.TableName()], row)
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Info("version row created", "table", historyType.TableName(), "row_id", row.id.String())
	}

	return nil
}

// Versions returns the rows matching all conditions, sorted by the ordering.
func (s *Store) Versions(
	_ context.Context,
	historyType *versioned.EntityType,
	conditions []versioned.Condition,
	order []versioned.Ordering,
) ([]versioned.VersionRow, error) {

	s.mu.RLock()
	rows := s.tables[historyType.TableName()]
	matches := make([]versioned.VersionRow, 0)

	for _, row := range rows {
		if matchesConditions(row.attributes, conditions) {
			matches = append(matches, copyAttributes(row.attributes))
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(matches, func(i, j int) bool {
		for _, ordering := range order {
			cmp := compareValues(matches[i][ordering.Field()], matches[j][ordering.Field()])
			if cmp == 0 {
				continue
			}
			if ordering.Descending() {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})

	if s.logger != nil {
		s.logger.Debug("version history queried", "table", historyType.TableName(), "row_count", len(matches))
	}

	return matches, nil
}

// AutoMigrate records the entity type's table as created. It implements the
// versioned.SchemaMigrator capability; MigratedTables exposes the call order
// for tests.
func (s *Store) AutoMigrate(_ context.Context, entityType *versioned.EntityType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tables[entityType.TableName()]; !exists {
		s.tables[entityType.TableName()] = nil
	}
	s.migrated = append(s.migrated, entityType.TableName())

	return nil
}

// AutoUpgrade is a no-op beyond table creation: an in-memory table has no
// columns to add.
func (s *Store) AutoUpgrade(ctx context.Context, entityType *versioned.EntityType) error {
	return s.AutoMigrate(ctx, entityType)
}

// MigratedTables returns the table names passed to AutoMigrate/AutoUpgrade,
// in call order.
func (s *Store) MigratedTables() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.migrated))
	copy(names, s.migrated)

	return names
}

// RowCount returns the number of rows stored for the given table.
func (s *Store) RowCount(tableName string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.tables[tableName])
}

func matchesConditions(attributes map[string]any, conditions []versioned.Condition) bool {
	for _, condition := range conditions {
		if compareValues(attributes[condition.Field()], condition.Value()) != 0 {
			return false
		}
	}

	return true
}

// compareValues orders attribute values of the same field: numbers
// numerically, times chronologically, everything else by string form.
func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	if at, aok := a.(time.Time); aok {
		if bt, bok := b.(time.Time); bok {
			return at.Compare(bt)
		}
	}

	if ai, aok := toInt64(a); aok {
		if bi, bok := toInt64(b); bok {
			switch {
			case ai < bi:
				return -1
			case ai > bi:
				return 1
			default:
				return 0
			}
		}
	}

	if af, aok := toFloat64(a); aok {
		if bf, bok := toFloat64(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}

	as := fmt.Sprint(a)
	bs := fmt.Sprint(b)
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

func toInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint32:
		return int64(v), true
	default:
		return 0, false
	}
}

func toFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

func copyAttributes(attributes map[string]any) map[string]any {
	clone := make(map[string]any, len(attributes))
	for name, value := range attributes {
		clone[name] = value
	}

	return clone
}
