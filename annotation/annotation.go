// Package annotation attaches semantic widget metadata to captured
// frames, so tests can query "the button named ok" instead of cell
// coordinates.
package annotation

// WidgetType classifies an annotated region. Custom types are any other
// string value.
type WidgetType string

const (
	Container WidgetType = "container"
	Dialog    WidgetType = "dialog"
	Button    WidgetType = "button"
	Input     WidgetType = "input"
	TextArea  WidgetType = "text_area"
	Checkbox  WidgetType = "checkbox"
	Radio     WidgetType = "radio"
	Select    WidgetType = "select"
	List      WidgetType = "list"
	Table     WidgetType = "table"
	TabBar    WidgetType = "tab_bar"
	Tab       WidgetType = "tab"
	Menu      WidgetType = "menu"
	MenuItem  WidgetType = "menu_item"
	Label     WidgetType = "label"
	Header    WidgetType = "header"
	Footer    WidgetType = "footer"
	Sidebar   WidgetType = "sidebar"
	Toolbar   WidgetType = "toolbar"
	StatusBar WidgetType = "status_bar"
	Progress  WidgetType = "progress"
	Scroll    WidgetType = "scroll"
	Tree      WidgetType = "tree"
)

// IsInteractive reports whether the widget type can receive input.
func (t WidgetType) IsInteractive() bool {
	switch t {
	case Button, Input, TextArea, Checkbox, Radio, Select, List, Table,
		Tab, MenuItem, Tree:
		return true
	}
	return false
}

// IsContainer reports whether the widget type groups other widgets.
func (t WidgetType) IsContainer() bool {
	switch t {
	case Container, Dialog, Scroll, Sidebar:
		return true
	}
	return false
}

// Annotation is the semantic metadata of one widget region.
type Annotation struct {
	Type     WidgetType        `json:"widget_type"`
	Label    string            `json:"label,omitempty"`
	ID       string            `json:"id,omitempty"`
	Focused  bool              `json:"focused,omitempty"`
	Disabled bool              `json:"disabled,omitempty"`
	Selected bool              `json:"selected,omitempty"`
	Expanded *bool             `json:"expanded,omitempty"`
	Value    string            `json:"value,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

func New(t WidgetType) Annotation {
	return Annotation{Type: t}
}

func (a Annotation) WithLabel(label string) Annotation {
	a.Label = label
	return a
}

func (a Annotation) WithID(id string) Annotation {
	a.ID = id
	return a
}

func (a Annotation) WithValue(value string) Annotation {
	a.Value = value
	return a
}

func (a Annotation) WithFocus() Annotation {
	a.Focused = true
	return a
}

func (a Annotation) WithSelected() Annotation {
	a.Selected = true
	return a
}

func (a Annotation) WithDisabled() Annotation {
	a.Disabled = true
	return a
}

func (a Annotation) WithMeta(key, value string) Annotation {
	meta := make(map[string]string, len(a.Metadata)+1)
	for k, v := range a.Metadata {
		meta[k] = v
	}
	meta[key] = value
	a.Metadata = meta
	return a
}
