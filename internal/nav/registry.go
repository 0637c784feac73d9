package nav

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a lookup for a name that was never registered. It
// indicates a registration/navigation mismatch, so callers treat it as
// fatal rather than recoverable.
var ErrNotFound = errors.New("not registered")

// Registry is the append-only table of views and navs. Registration is
// write-once per id; there is no removal.
type Registry struct {
	views     []View
	viewNames map[string]ViewID
	navs      []*Nav
	navNames  map[string]NavID
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		viewNames: make(map[string]ViewID),
		navNames:  make(map[string]NavID),
	}
}

// RegisterView appends the view and binds the name to its index. A repeated
// name rebinds to the newest index; earlier ids stay valid.
func (r *Registry) RegisterView(name string, v View) ViewID {
	id := ViewID(len(r.views))
	r.views = append(r.views, v)
	r.viewNames[name] = id
	return id
}

// RegisterNav validates and appends a nav. An empty item list is a
// construction error.
func (r *Registry) RegisterNav(name string, items []MenuItem) (NavID, error) {
	if len(items) == 0 {
		return 0, fmt.Errorf("nav %q has no menu items", name)
	}
	defaultIndex := 0
	for i, item := range items {
		if item.isDefault {
			defaultIndex = i
			break
		}
	}
	nav := &Nav{
		name:         name,
		items:        append([]MenuItem(nil), items...),
		defaultIndex: defaultIndex,
	}
	id := NavID(len(r.navs))
	r.navs = append(r.navs, nav)
	r.navNames[name] = id
	return id, nil
}

// View resolves a view id. Ids come only from RegisterView, so an
// out-of-range index is a programming error and panics.
func (r *Registry) View(id ViewID) View { return r.views[id] }

// Nav resolves a nav id.
func (r *Registry) Nav(id NavID) *Nav { return r.navs[id] }

// LookupView resolves a registered view name.
func (r *Registry) LookupView(name string) (ViewID, error) {
	id, ok := r.viewNames[name]
	if !ok {
		return 0, fmt.Errorf("view %q: %w", name, ErrNotFound)
	}
	return id, nil
}

// LookupNav resolves a registered nav name.
func (r *Registry) LookupNav(name string) (NavID, error) {
	id, ok := r.navNames[name]
	if !ok {
		return 0, fmt.Errorf("nav %q: %w", name, ErrNotFound)
	}
	return id, nil
}
