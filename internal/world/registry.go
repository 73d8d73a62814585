// Package world owns the live set of simulation objects.
package world

import (
	"errors"
	"fmt"
	"slices"

	"github.com/tomz197/arcade-asteroids/internal/object"
)

// ErrAlreadySpawned is returned when an object that is already live is spawned again.
var ErrAlreadySpawned = errors.New("object already spawned")

// Renderer is notified when objects enter and leave the world so it can keep
// its drawable set in sync.
type Renderer interface {
	RegisterDrawable(obj object.Object)
	UnregisterDrawable(obj object.Object)
}

type nopRenderer struct{}

func (nopRenderer) RegisterDrawable(object.Object)   {}
func (nopRenderer) UnregisterDrawable(object.Object) {}

// Registry exclusively owns every live object.
// It is not safe for concurrent use; the game mutates it from its frame update.
type Registry struct {
	objects  []object.Object
	renderer Renderer
	scratch  []object.Object // reused update snapshot
}

// NewRegistry creates an empty registry. A nil renderer is allowed.
func NewRegistry(r Renderer) *Registry {
	if r == nil {
		r = nopRenderer{}
	}
	return &Registry{renderer: r}
}

// Spawn loads obj, adds it to the live set and starts drawing it.
func (r *Registry) Spawn(obj object.Object) error {
	if r.Contains(obj) {
		return ErrAlreadySpawned
	}
	if err := obj.Load(); err != nil {
		return fmt.Errorf("spawn: %w", err)
	}
	r.objects = append(r.objects, obj)
	r.renderer.RegisterDrawable(obj)
	return nil
}

// Remove disables obj, unloads it and stops drawing it. Unless unlink is
// false, obj is also dropped from the live set; callers that are clearing
// the whole set themselves pass false. Removing an object that is not live
// is a no-op.
func (r *Registry) Remove(obj object.Object, unlink bool) {
	idx := slices.Index(r.objects, obj)
	if idx < 0 {
		return
	}

	obj.Body().Enabled = false
	obj.Unload()
	r.renderer.UnregisterDrawable(obj)
	if unlink {
		r.objects = slices.Delete(r.objects, idx, idx+1)
	}
}

// ClearAll removes every live object.
func (r *Registry) ClearAll() {
	for _, obj := range r.objects {
		r.Remove(obj, false)
	}
	clear(r.objects)
	r.objects = r.objects[:0]
}

// Update advances every enabled object. The pass walks a snapshot taken
// before the first update, so objects spawned during the pass wait for the
// next frame; objects removed during the pass are disabled and skipped.
func (r *Registry) Update(ctx object.UpdateContext) {
	snapshot := append(r.scratch[:0], r.objects...)
	for _, obj := range snapshot {
		if obj.Body().Enabled {
			obj.Update(ctx)
		}
	}

	clear(snapshot)
	r.scratch = snapshot[:0]
}

// Contains reports whether obj is live.
func (r *Registry) Contains(obj object.Object) bool {
	return slices.Contains(r.objects, obj)
}

// Objects returns the live objects in spawn order. The slice is owned by the
// registry and is only valid until the next mutation.
func (r *Registry) Objects() []object.Object {
	return r.objects
}

// Len returns the number of live objects.
func (r *Registry) Len() int {
	return len(r.objects)
}
