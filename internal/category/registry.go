package category

import (
	"fmt"
	"maps"
	"slices"

	"dart-binding-generator/internal/diagnostic"
)

// Registry resolves custom type names to their category.
type Registry interface {
	// Lookup returns the category of name, or an error wrapping
	// diagnostic.ErrUnresolvedType when name is not registered.
	Lookup(name string) (Category, error)
}

// TypeInfo describes a registered custom type.
type TypeInfo struct {
	Name     string
	Category Category
	Location diagnostic.Location // where the type was declared
}

// TypeInfoMap is the map backed Registry produced by a scanning pass.
// It is populated with Add before generation starts and only read afterwards.
type TypeInfoMap struct {
	infos map[string]TypeInfo
}

// NewTypeInfoMap creates a registry pre-populated with infos.
func NewTypeInfoMap(infos ...TypeInfo) (*TypeInfoMap, error) {
	m := &TypeInfoMap{infos: make(map[string]TypeInfo, len(infos))}

	for _, info := range infos {
		if err := m.Add(info); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// MustTypeInfoMap is like NewTypeInfoMap but panics on error.
func MustTypeInfoMap(infos ...TypeInfo) *TypeInfoMap {
	m, err := NewTypeInfoMap(infos...)
	if err != nil {
		panic(err)
	}

	return m
}

// Add registers info. A name may only be registered once; re-adding it with
// the same category is a no-op.
func (m *TypeInfoMap) Add(info TypeInfo) error {
	if info.Name == "" {
		return fmt.Errorf("registering type: empty name")
	}

	if !info.Category.Valid() {
		return fmt.Errorf("registering type %s: invalid category %s", info.Name, info.Category)
	}

	if existing, ok := m.infos[info.Name]; ok {
		if existing.Category == info.Category {
			return nil
		}

		return fmt.Errorf("registering type %s as %s: already registered as %s",
			info.Name, info.Category, existing.Category)
	}

	m.infos[info.Name] = info

	return nil
}

// Lookup implements Registry.
func (m *TypeInfoMap) Lookup(name string) (Category, error) {
	info, ok := m.Get(name)
	if !ok {
		return 0, fmt.Errorf("%w: %s", diagnostic.ErrUnresolvedType, name)
	}

	return info.Category, nil
}

// Get returns the TypeInfo registered for name.
func (m *TypeInfoMap) Get(name string) (TypeInfo, bool) {
	if m == nil {
		return TypeInfo{}, false
	}

	info, ok := m.infos[name]

	return info, ok
}

// Names returns all registered names in sorted order.
func (m *TypeInfoMap) Names() []string {
	if m == nil {
		return nil
	}

	return slices.Sorted(maps.Keys(m.infos))
}

// Len returns the number of registered types.
func (m *TypeInfoMap) Len() int {
	if m == nil {
		return 0
	}

	return len(m.infos)
}
