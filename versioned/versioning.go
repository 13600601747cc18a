package versioned

import (
	"sync"
)

// Versioning holds the version-capture configuration for one entity type:
// the watched field set, the bound version store, and the lazily derived
// history type.
type Versioning struct {
	entity  *EntityType
	store   VersionStore
	watched []string

	deriveOnce sync.Once
	history    *EntityType
}

// ConfigOption defines a functional option for Configure.
type ConfigOption func(*Versioning) error

// On supplies the watched field set: changing any of these fields during an
// update triggers a version capture.
func On(fieldNames ...string) ConfigOption {
	return func(v *Versioning) error {
		v.watched = append(v.watched, fieldNames...)
		return nil
	}
}

// registry memoizes one Versioning per entity type identity, process-wide.
var registry = struct {
	sync.RWMutex
	byEntity map[*EntityType]*Versioning
}{byEntity: make(map[*EntityType]*Versioning)}

// Configure makes an entity type versioned. It must be called once per entity
// type, before any save cycle that should capture versions.
//
// The watched field set (see On) must be non-empty and every member must be a
// real field of the entity type; violations are configuration errors.
func Configure(entity *EntityType, store VersionStore, options ...ConfigOption) (*Versioning, error) {
	if store == nil {
		return nil, ErrNilVersionStore
	}

	v := &Versioning{
		entity: entity,
		store:  store,
	}

	for _, option := range options {
		if err := option(v); err != nil {
			return nil, err
		}
	}

	if len(v.watched) == 0 {
		return nil, ErrNoWatchedFields
	}

	for _, name := range v.watched {
		if _, ok := entity.Field(name); !ok {
			return nil, ErrUnknownWatchedField
		}
	}

	registry.Lock()
	defer registry.Unlock()

	if _, exists := registry.byEntity[entity]; exists {
		return nil, ErrAlreadyConfigured
	}

	registry.byEntity[entity] = v

	return v, nil
}

// Of returns the Versioning registered for the given entity type.
func Of(entity *EntityType) (*Versioning, error) {
	registry.RLock()
	defer registry.RUnlock()

	v, ok := registry.byEntity[entity]
	if !ok {
		return nil, ErrNotConfigured
	}

	return v, nil
}

// EntityType returns the versioned entity type.
func (v *Versioning) EntityType() *EntityType {
	return v.entity
}

// WatchedFields returns the configured watched field names.
func (v *Versioning) WatchedFields() []string {
	names := make([]string, len(v.watched))
	copy(names, v.watched)

	return names
}

// Store returns the bound version store.
func (v *Versioning) Store() VersionStore {
	return v.store
}

func (v *Versioning) isWatched(name string) bool {
	for _, watched := range v.watched {
		if watched == name {
			return true
		}
	}

	return false
}
