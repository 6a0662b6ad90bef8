package runtime

import "github.com/odvcencio/realm/pkg/ui/backend"

// AttrValue is a typed property value stored in a component's attribute bag.
type AttrValue interface {
	attrMarker()
}

// AttrString holds a string attribute.
type AttrString string

func (AttrString) attrMarker() {}

// AttrInt holds an integer attribute.
type AttrInt int

func (AttrInt) attrMarker() {}

// AttrBool holds a boolean attribute.
type AttrBool bool

func (AttrBool) attrMarker() {}

// AttrFloat holds a float attribute.
type AttrFloat float64

func (AttrFloat) attrMarker() {}

// AttrStyle holds a style attribute.
type AttrStyle backend.Style

func (AttrStyle) attrMarker() {}

// AttrPayload holds an opaque host value.
type AttrPayload struct {
	Value any
}

func (AttrPayload) attrMarker() {}

// Props configures a component's appearance and behavior. Components own
// their Props; the runtime only reads visibility and the claimed rect.
type Props struct {
	visible  bool
	disabled bool
	rect     Rect
	hasRect  bool
	style    backend.Style
	attrs    map[string]AttrValue
}

// NewProps returns props for a visible, enabled component with default style.
func NewProps() *Props {
	return &Props{
		visible: true,
		style:   backend.DefaultStyle(),
	}
}

// WithVisible sets visibility.
func (p *Props) WithVisible(v bool) *Props {
	p.visible = v
	return p
}

// WithDisabled sets the disabled flag.
func (p *Props) WithDisabled(d bool) *Props {
	p.disabled = d
	return p
}

// WithRect claims a screen region for rendering. Coordinates are relative to
// the area the component is given by its parent.
func (p *Props) WithRect(r Rect) *Props {
	p.rect = r
	p.hasRect = true
	return p
}

// WithStyle sets the base style.
func (p *Props) WithStyle(s backend.Style) *Props {
	p.style = s
	return p
}

// Set stores a custom attribute.
func (p *Props) Set(key string, v AttrValue) *Props {
	if p.attrs == nil {
		p.attrs = make(map[string]AttrValue)
	}
	p.attrs[key] = v
	return p
}

// Get retrieves a custom attribute.
func (p *Props) Get(key string) (AttrValue, bool) {
	v, ok := p.attrs[key]
	return v, ok
}

// GetString retrieves a string attribute, or the fallback if absent.
func (p *Props) GetString(key, fallback string) string {
	if v, ok := p.attrs[key]; ok {
		if s, ok := v.(AttrString); ok {
			return string(s)
		}
	}
	return fallback
}

// GetInt retrieves an int attribute, or the fallback if absent.
func (p *Props) GetInt(key string, fallback int) int {
	if v, ok := p.attrs[key]; ok {
		if n, ok := v.(AttrInt); ok {
			return int(n)
		}
	}
	return fallback
}

// GetBool retrieves a bool attribute, or the fallback if absent.
func (p *Props) GetBool(key string, fallback bool) bool {
	if v, ok := p.attrs[key]; ok {
		if b, ok := v.(AttrBool); ok {
			return bool(b)
		}
	}
	return fallback
}

// Visible reports whether the component should be drawn.
func (p *Props) Visible() bool { return p.visible }

// Disabled reports whether the component is disabled.
func (p *Props) Disabled() bool { return p.disabled }

// Rect returns the claimed region, if any.
func (p *Props) Rect() (Rect, bool) { return p.rect, p.hasRect }

// Style returns the base style.
func (p *Props) Style() backend.Style { return p.style }
