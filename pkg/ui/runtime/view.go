package runtime

import (
	"fmt"
	"slices"
)

type mountedComponent struct {
	comp      Component
	parent    ComponentID
	hasParent bool
	children  []ComponentID
}

// View is the registry of mounted components and their tree relationship.
// Parents must be mounted before their children and a component's parent
// never changes, so the tree is acyclic by construction.
type View struct {
	components map[ComponentID]*mountedComponent
	roots      []ComponentID
}

// NewView creates an empty registry.
func NewView() *View {
	return &View{
		components: make(map[ComponentID]*mountedComponent),
	}
}

// Mount registers a component with no parent. Fails without side effects if
// the id is taken or the component is nil.
func (v *View) Mount(id ComponentID, comp Component) error {
	if err := v.checkMount(id, comp); err != nil {
		return err
	}
	v.components[id] = &mountedComponent{comp: comp}
	v.roots = append(v.roots, id)
	return nil
}

// MountUnder registers a component as the last child of parent.
func (v *View) MountUnder(id ComponentID, comp Component, parent ComponentID) error {
	if err := v.checkMount(id, comp); err != nil {
		return err
	}
	p, ok := v.components[parent]
	if !ok {
		return fmt.Errorf("mount %q under %q: %w", id, parent, ErrParentNotMounted)
	}
	v.components[id] = &mountedComponent{comp: comp, parent: parent, hasParent: true}
	p.children = append(p.children, id)
	return nil
}

func (v *View) checkMount(id ComponentID, comp Component) error {
	if comp == nil {
		return fmt.Errorf("mount %q: %w", id, ErrNilComponent)
	}
	if _, exists := v.components[id]; exists {
		return fmt.Errorf("mount %q: %w", id, ErrDuplicateID)
	}
	return nil
}

// Unmount removes a component and all its descendants. Returns every removed
// id in post-order (descendants first, id last) so callers can purge focus
// and subscription entries.
func (v *View) Unmount(id ComponentID) ([]ComponentID, error) {
	m, ok := v.components[id]
	if !ok {
		return nil, fmt.Errorf("unmount %q: %w", id, ErrNotMounted)
	}

	var removed []ComponentID
	v.collectPostOrder(id, &removed)
	for _, rid := range removed {
		delete(v.components, rid)
	}

	if m.hasParent {
		if p, ok := v.components[m.parent]; ok {
			p.children = slices.DeleteFunc(p.children, func(c ComponentID) bool {
				return c == id
			})
		}
	} else {
		v.roots = slices.DeleteFunc(v.roots, func(c ComponentID) bool {
			return c == id
		})
	}

	return removed, nil
}

func (v *View) collectPostOrder(id ComponentID, out *[]ComponentID) {
	m, ok := v.components[id]
	if !ok {
		return
	}
	for _, child := range m.children {
		v.collectPostOrder(child, out)
	}
	*out = append(*out, id)
}

// Get returns the component mounted under id.
func (v *View) Get(id ComponentID) (Component, bool) {
	m, ok := v.components[id]
	if !ok {
		return nil, false
	}
	return m.comp, true
}

// Has reports whether id is mounted.
func (v *View) Has(id ComponentID) bool {
	_, ok := v.components[id]
	return ok
}

// Parent returns the parent of id, if it has one.
func (v *View) Parent(id ComponentID) (ComponentID, bool) {
	m, ok := v.components[id]
	if !ok || !m.hasParent {
		return "", false
	}
	return m.parent, true
}

// Children returns the ordered children of id.
func (v *View) Children(id ComponentID) []ComponentID {
	m, ok := v.components[id]
	if !ok {
		return nil
	}
	return slices.Clone(m.children)
}

// Roots returns the mounted components without parents, in mount order.
func (v *View) Roots() []ComponentID {
	return slices.Clone(v.roots)
}

// Count returns the number of mounted components.
func (v *View) Count() int {
	return len(v.components)
}

// State returns the state of the component mounted under id.
func (v *View) State(id ComponentID) (State, error) {
	m, ok := v.components[id]
	if !ok {
		return StateNone(), fmt.Errorf("state of %q: %w", id, ErrNotMounted)
	}
	return m.comp.State(), nil
}

// Render walks the tree pre-order, root components in mount order, skipping
// invisible subtrees. Each component draws into the rect its Props claim,
// relative to the area it was given; children inherit that area.
func (v *View) Render(ctx RenderContext, focused ComponentID) {
	for _, root := range v.roots {
		v.renderComponent(root, ctx, focused)
	}
}

func (v *View) renderComponent(id ComponentID, ctx RenderContext, focused ComponentID) {
	m, ok := v.components[id]
	if !ok {
		return
	}

	area := ctx.Bounds
	if props := m.comp.Props(); props != nil {
		if !props.Visible() {
			return
		}
		if r, ok := props.Rect(); ok {
			area = Rect{
				X:      ctx.Bounds.X + r.X,
				Y:      ctx.Bounds.Y + r.Y,
				Width:  r.Width,
				Height: r.Height,
			}
		}
	}

	sub := ctx.Sub(area)
	sub.Focused = id == focused
	m.comp.Render(sub)

	for _, child := range m.children {
		v.renderComponent(child, ctx.Sub(area), focused)
	}
}
