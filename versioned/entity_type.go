package versioned

// EntityType is a named schema with an ordered set of field definitions.
//
// It is immutable after construction: all accessors return copies where the
// underlying data is mutable. Entity types are compared by identity, so the
// same *EntityType must be shared between configuration and save cycles.
type EntityType struct {
	name      string
	tableName string
	fields    []FieldDefinition
}

// NewEntityType builds an EntityType from ordered field definitions.
// The storage name is derived from the type name ("Story" -> "stories").
func NewEntityType(name string, fields ...FieldDefinition) (*EntityType, error) {
	if name == "" {
		return nil, ErrEmptyEntityTypeName
	}

	if len(fields) == 0 {
		return nil, ErrNoFieldDefinitions
	}

	seen := make(map[string]struct{}, len(fields))
	hasKey := false

	for _, field := range fields {
		if _, dup := seen[field.Name]; dup {
			return nil, ErrDuplicateFieldName
		}
		seen[field.Name] = struct{}{}

		if field.IsKey() {
			hasKey = true
		}
	}

	if !hasKey {
		return nil, ErrNoKeyFields
	}

	return &EntityType{
		name:      name,
		tableName: tableize(name),
		fields:    copyFields(fields),
	}, nil
}

// newDerivedType builds a history type from already validated fields,
// bypassing the key check done for live types: a derived type's key is
// the watched field set, which NewEntityType knows nothing about.
func newDerivedType(name string, tableName string, fields []FieldDefinition) *EntityType {
	return &EntityType{
		name:      name,
		tableName: tableName,
		fields:    fields,
	}
}

// Name returns the entity type's name.
func (et *EntityType) Name() string {
	return et.name
}

// TableName returns the entity type's storage name.
func (et *EntityType) TableName() string {
	return et.tableName
}

// Fields returns the field definitions in declared order.
func (et *EntityType) Fields() []FieldDefinition {
	return copyFields(et.fields)
}

// Field returns the definition for the given name.
func (et *EntityType) Field(name string) (FieldDefinition, bool) {
	for _, field := range et.fields {
		if field.Name == name {
			return field, true
		}
	}

	return FieldDefinition{}, false
}

// FieldNames returns the field names in declared order.
func (et *EntityType) FieldNames() []string {
	names := make([]string, len(et.fields))
	for i, field := range et.fields {
		names[i] = field.Name
	}

	return names
}

// KeyFields returns the fields forming the entity type's key, in declared order.
func (et *EntityType) KeyFields() []FieldDefinition {
	keys := make([]FieldDefinition, 0, 1)
	for _, field := range et.fields {
		if field.IsKey() {
			keys = append(keys, field)
		}
	}

	return keys
}

// SerialField returns the auto-incrementing field, if any.
func (et *EntityType) SerialField() (FieldDefinition, bool) {
	for _, field := range et.fields {
		if field.Kind == KindSerial {
			return field, true
		}
	}

	return FieldDefinition{}, false
}

// DiscriminatorField returns the single-table-inheritance type tag, if any.
func (et *EntityType) DiscriminatorField() (FieldDefinition, bool) {
	for _, field := range et.fields {
		if field.Kind == KindDiscriminator {
			return field, true
		}
	}

	return FieldDefinition{}, false
}

func copyFields(fields []FieldDefinition) []FieldDefinition {
	clone := make([]FieldDefinition, len(fields))
	copy(clone, fields)

	return clone
}
