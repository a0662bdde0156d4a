package convert

import (
	"fmt"

	"github.com/confval/go-confval/value"
)

// Object is the contract a user-defined composite implements to take
// part in extraction. Fields enumerates the composite's members as
// name/pointer pairs; the adapter fills each pointer from the matching
// dictionary entry instead of walking struct fields by reflection.
type Object interface {
	Fields() []Field
}

// Field names one member of an Object. Value must be a pointer to the
// member; it may itself point at another Object for nested composites.
// A dotted Name descends through nested dictionaries.
type Field struct {
	Name  string
	Value any
}

// assignObject fills obj from a dictionary source, or from text that
// parses as one. Every declared field must be present and extract
// cleanly; the first failure aborts and nothing about partial fills is
// rolled back.
func assignObject(v *value.Value, obj Object) error {
	d, err := ToDict(v)
	if err != nil {
		return err
	}
	for _, f := range obj.Fields() {
		child, ok := d.GetPath(f.Name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrNoSuchKey, f.Name)
		}
		if err := assign(child, f.Value); err != nil {
			return fmt.Errorf("field %q: %w", f.Name, err)
		}
	}
	return nil
}
