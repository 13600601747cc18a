package versioned

// HistoryType returns the derived history entity type for a configured
// entity type, deriving it on first call.
func HistoryType(entity *EntityType) (*EntityType, error) {
	v, err := Of(entity)
	if err != nil {
		return nil, err
	}

	return v.HistoryType(), nil
}

// HistoryType returns the shadow history type for the versioned entity type.
//
// The history type mirrors the source field for field, with the special
// kinds degraded to ordinary ones: the discriminator becomes a plain type
// tag string, a serial field becomes a plain integer. Its key is exactly
// the watched field set, not the source type's key, so several history rows
// may share one live row's key and differ by watched value.
//
// Derivation runs at most once per entity type; every call returns the
// identical cached *EntityType, also under concurrent first access. Later
// field additions to the live type are not reflected.
func (v *Versioning) HistoryType() *EntityType {
	v.deriveOnce.Do(func() {
		v.history = v.deriveHistoryType()
	})

	return v.history
}

func (v *Versioning) deriveHistoryType() *EntityType {
	source := v.entity.fields
	fields := make([]FieldDefinition, 0, len(source))

	for _, field := range source {
		fields = append(fields, v.deriveField(field))
	}

	name := v.entity.Name() + "Version"

	return newDerivedType(name, versionsTableName(v.entity.Name()), fields)
}

// deriveField maps one source field into its history counterpart.
func (v *Versioning) deriveField(field FieldDefinition) FieldDefinition {
	kind := field.Kind

	switch kind {
	case KindDiscriminator:
		kind = KindString
	case KindSerial:
		kind = KindInteger
	}

	options := copyOptions(field.Options)
	if options == nil {
		options = make(Options, 1)
	}

	options[OptionKey] = v.isWatched(field.Name)

	// A serial source field no longer auto-increments in the history type.
	// It only stays a key field when it is itself watched; otherwise the
	// watched-field-is-key rule above already decided.
	if serial, ok := options[OptionSerial]; ok {
		delete(options, OptionSerial)
		if b, isBool := serial.(bool); isBool && b && v.isWatched(field.Name) {
			options[OptionKey] = true
		}
	}

	return FieldDefinition{
		Name:    field.Name,
		Kind:    kind,
		Options: options,
	}
}
