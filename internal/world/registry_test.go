package world

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/arcade-asteroids/internal/object"
	"github.com/tomz197/arcade-asteroids/internal/physics"
)

// probe is a minimal object that records what happened to it.
type probe struct {
	body     object.Body
	name     string
	loadErr  error
	updates  int
	unloads  int
	onUpdate func()
}

func newProbe(name string) *probe {
	return &probe{name: name, body: object.Body{Scale: 1, Enabled: true}}
}

func (p *probe) Body() *object.Body { return &p.body }
func (p *probe) Load() error        { return p.loadErr }
func (p *probe) Unload()            { p.unloads++ }
func (p *probe) Draw(object.DrawContext) {}
func (p *probe) Update(object.UpdateContext) {
	p.updates++
	if p.onUpdate != nil {
		p.onUpdate()
	}
}

type recordingRenderer struct {
	events []string
}

func (r *recordingRenderer) RegisterDrawable(obj object.Object) {
	r.events = append(r.events, "+"+obj.(*probe).name)
}

func (r *recordingRenderer) UnregisterDrawable(obj object.Object) {
	r.events = append(r.events, "-"+obj.(*probe).name)
}

var ctx = object.UpdateContext{Delta: 1.0 / 60, Area: physics.Area{Max: physics.Vec3{X: 1, Y: 1}}}

func TestSpawnRegistersDrawable(t *testing.T) {
	rend := &recordingRenderer{}
	reg := NewRegistry(rend)

	a, b := newProbe("a"), newProbe("b")
	require.NoError(t, reg.Spawn(a))
	require.NoError(t, reg.Spawn(b))

	assert.Equal(t, []string{"+a", "+b"}, rend.events)
	assert.Equal(t, []object.Object{a, b}, reg.Objects())
	assert.True(t, reg.Contains(a))
}

func TestSpawnTwiceFails(t *testing.T) {
	reg := NewRegistry(nil)
	a := newProbe("a")
	require.NoError(t, reg.Spawn(a))
	assert.ErrorIs(t, reg.Spawn(a), ErrAlreadySpawned)
	assert.Equal(t, 1, reg.Len())
}

func TestSpawnLoadFailure(t *testing.T) {
	rend := &recordingRenderer{}
	reg := NewRegistry(rend)
	bad := newProbe("bad")
	bad.loadErr = errors.New("boom")

	err := reg.Spawn(bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, bad.loadErr)
	assert.Zero(t, reg.Len())
	assert.Empty(t, rend.events)
}

func TestRemove(t *testing.T) {
	rend := &recordingRenderer{}
	reg := NewRegistry(rend)
	a, b := newProbe("a"), newProbe("b")
	require.NoError(t, reg.Spawn(a))
	require.NoError(t, reg.Spawn(b))

	reg.Remove(a, true)
	assert.False(t, a.body.Enabled)
	assert.Equal(t, 1, a.unloads)
	assert.Equal(t, []object.Object{b}, reg.Objects())
	assert.Equal(t, []string{"+a", "+b", "-a"}, rend.events)

	reg.Remove(a, true)
	assert.Equal(t, 1, a.unloads, "removing a dead object is a no-op")
}

func TestRemoveWithoutUnlink(t *testing.T) {
	reg := NewRegistry(nil)
	a := newProbe("a")
	require.NoError(t, reg.Spawn(a))

	reg.Remove(a, false)
	assert.False(t, a.body.Enabled)
	assert.True(t, reg.Contains(a), "caller is responsible for unlinking")
}

func TestClearAll(t *testing.T) {
	rend := &recordingRenderer{}
	reg := NewRegistry(rend)
	a, b := newProbe("a"), newProbe("b")
	require.NoError(t, reg.Spawn(a))
	require.NoError(t, reg.Spawn(b))

	reg.ClearAll()
	assert.Zero(t, reg.Len())
	assert.False(t, a.body.Enabled)
	assert.False(t, b.body.Enabled)
	assert.Equal(t, []string{"+a", "+b", "-a", "-b"}, rend.events)
}

func TestUpdateSkipsDisabled(t *testing.T) {
	reg := NewRegistry(nil)
	a, b := newProbe("a"), newProbe("b")
	b.body.Enabled = false
	require.NoError(t, reg.Spawn(a))
	require.NoError(t, reg.Spawn(b))

	reg.Update(ctx)
	assert.Equal(t, 1, a.updates)
	assert.Zero(t, b.updates)
}

func TestUpdateMutationDuringPass(t *testing.T) {
	reg := NewRegistry(nil)
	a, b, c := newProbe("a"), newProbe("b"), newProbe("c")
	spawned := newProbe("spawned")

	// a removes itself and spawns a new object; b removes c.
	a.onUpdate = func() {
		reg.Remove(a, true)
		require.NoError(t, reg.Spawn(spawned))
	}
	b.onUpdate = func() { reg.Remove(c, true) }

	require.NoError(t, reg.Spawn(a))
	require.NoError(t, reg.Spawn(b))
	require.NoError(t, reg.Spawn(c))

	reg.Update(ctx)
	assert.Equal(t, 1, a.updates)
	assert.Equal(t, 1, b.updates, "b is visited even though a shifted the live set")
	assert.Zero(t, c.updates, "c was removed before its turn")
	assert.Zero(t, spawned.updates, "objects spawned mid-pass wait for the next frame")
	assert.Equal(t, []object.Object{b, spawned}, reg.Objects())

	reg.Update(ctx)
	assert.Equal(t, 1, spawned.updates)
}
