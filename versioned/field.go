package versioned

// FieldKind represents the primitive storage kind of an entity field.
type FieldKind int

const (
	KindString FieldKind = iota
	KindInteger
	KindFloat
	KindBoolean
	KindTimestamp
	KindJSON

	// KindDiscriminator marks the type-tag column used for single table
	// inheritance. In a derived history type it degrades to KindString.
	KindDiscriminator

	// KindSerial marks an auto-incrementing surrogate key. In a derived
	// history type it degrades to KindInteger and loses auto-increment.
	KindSerial
)

// String returns the lowercase name of the kind.
func (k FieldKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindTimestamp:
		return "timestamp"
	case KindJSON:
		return "json"
	case KindDiscriminator:
		return "discriminator"
	case KindSerial:
		return "serial"
	default:
		return "unknown"
	}
}

// Option is the name of a per-field option.
type Option = string

const (
	// OptionKey marks a field as part of the entity type's key.
	OptionKey Option = "key"

	// OptionSerial marks a field as auto-incrementing. It is implied by
	// KindSerial and stripped during history derivation.
	OptionSerial Option = "serial"

	// OptionRequired marks a field as mandatory.
	OptionRequired Option = "required"

	// OptionDefault carries a field's default value.
	OptionDefault Option = "default"
)

// Options is a per-field option mapping.
type Options = map[Option]any

// FieldDefinition describes a single field of an entity type.
//
// Schema derivation copies field definitions, so Options should be treated
// as immutable once the field is part of an EntityType.
type FieldDefinition struct {
	Name    string
	Kind    FieldKind
	Options Options
}

// Field is a factory for a FieldDefinition without options.
func Field(name string, kind FieldKind) FieldDefinition {
	return FieldDefinition{Name: name, Kind: kind}
}

// FieldWithOptions is a factory for a FieldDefinition with options.
func FieldWithOptions(name string, kind FieldKind, options Options) FieldDefinition {
	return FieldDefinition{Name: name, Kind: kind, Options: options}
}

// IsKey reports whether the field forms part of its entity type's key.
// A serial field is always a key field.
func (f FieldDefinition) IsKey() bool {
	if f.Kind == KindSerial {
		return true
	}

	return f.optionBool(OptionKey)
}

// IsSerial reports whether the field auto-increments.
func (f FieldDefinition) IsSerial() bool {
	return f.Kind == KindSerial || f.optionBool(OptionSerial)
}

func (f FieldDefinition) optionBool(name Option) bool {
	value, ok := f.Options[name]
	if !ok {
		return false
	}

	b, ok := value.(bool)

	return ok && b
}

// copyOptions creates a shallow copy so derived types never share option maps.
func copyOptions(options Options) Options {
	if options == nil {
		return nil
	}

	clone := make(Options, len(options))
	for name, value := range options {
		clone[name] = value
	}

	return clone
}
