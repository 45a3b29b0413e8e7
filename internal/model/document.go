package model

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// TabOrderUnset is the tab order value of a visual that declares none.
const TabOrderUnset = -1

// Document is the neutral representation of a report handed to the engine.
type Document struct {
	ReportID   string     `yaml:"report_id" json:"report_id" validate:"required"`
	ReportName string     `yaml:"report_name" json:"report_name"`
	Pages      []Page     `yaml:"pages" json:"pages" validate:"dive"`
	Visuals    []Visual   `yaml:"visuals" json:"visuals" validate:"dive"`
	Bookmarks  []Bookmark `yaml:"bookmarks,omitempty" json:"bookmarks,omitempty" validate:"dive"`
	Theme      ThemeTable `yaml:"theme,omitempty" json:"theme,omitempty"`
}

// Page is a report page.
type Page struct {
	ID        string   `yaml:"id" json:"id" validate:"required"`
	Name      string   `yaml:"name" json:"name"`
	Hidden    bool     `yaml:"hidden,omitempty" json:"hidden,omitempty"`
	VisualIDs []string `yaml:"visual_ids,omitempty" json:"visual_ids,omitempty"`
}

// DisplayName returns the page name, or its ID when the name is blank.
func (p Page) DisplayName() string {
	if strings.TrimSpace(p.Name) != "" {
		return p.Name
	}
	return p.ID
}

// Position locates a visual on its page. X and Y are the top-left corner.
type Position struct {
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Width  float64 `yaml:"width,omitempty" json:"width,omitempty"`
	Height float64 `yaml:"height,omitempty" json:"height,omitempty"`
}

// Visual is a single visual element placed on a page.
type Visual struct {
	ID                 string         `yaml:"id" json:"id" validate:"required"`
	Name               string         `yaml:"name,omitempty" json:"name,omitempty"`
	PageID             string         `yaml:"page_id" json:"page_id" validate:"required"`
	Type               string         `yaml:"type" json:"type"`
	Kind               VisualKind     `yaml:"kind,omitempty" json:"kind,omitempty"`
	TabOrder           int            `yaml:"tab_order" json:"tab_order" validate:"min=-1"`
	Position           Position       `yaml:"position" json:"position"`
	AltText            *string        `yaml:"alt_text,omitempty" json:"alt_text,omitempty"`
	Title              *string        `yaml:"title,omitempty" json:"title,omitempty"`
	Styles             []ElementStyle `yaml:"styles,omitempty" json:"styles,omitempty" validate:"dive"`
	DataLabels         bool           `yaml:"data_labels,omitempty" json:"data_labels,omitempty"`
	Hidden             bool           `yaml:"hidden,omitempty" json:"hidden,omitempty"`
	BookmarkToggleable bool           `yaml:"bookmark_toggleable,omitempty" json:"bookmark_toggleable,omitempty"`
}

// UnmarshalYAML decodes a visual, leaving TabOrder unset when the key is
// absent.
func (v *Visual) UnmarshalYAML(value *yaml.Node) error {
	type plain Visual
	decoded := plain{TabOrder: TabOrderUnset}
	if err := value.Decode(&decoded); err != nil {
		return err
	}
	*v = Visual(decoded)
	return nil
}

// DisplayName picks the most readable label for the visual.
func (v Visual) DisplayName() string {
	if strings.TrimSpace(v.Name) != "" {
		return v.Name
	}
	if v.Title != nil && strings.TrimSpace(*v.Title) != "" {
		return strings.TrimSpace(*v.Title)
	}
	if v.Type != "" {
		return fmt.Sprintf("%s (%s)", v.Type, v.ID)
	}
	return v.ID
}

// Checkable reports whether the visual should be analysed. Hidden visuals
// are skipped unless a bookmark can reveal them.
func (v Visual) Checkable() bool {
	return !v.Hidden || v.BookmarkToggleable
}

// HasTabOrder reports whether the visual declares a tab order.
func (v Visual) HasTabOrder() bool {
	return v.TabOrder != TabOrderUnset
}

// ElementStyle is the color and font metadata of one styled element.
// Backgrounds are listed bottom to top; an empty list means the white canvas.
type ElementStyle struct {
	Role        ElementRole `yaml:"role" json:"role" validate:"required"`
	Foreground  ColorRef    `yaml:"foreground" json:"foreground"`
	Backgrounds []ColorRef  `yaml:"backgrounds,omitempty" json:"backgrounds,omitempty"`
	FontSize    float64     `yaml:"font_size,omitempty" json:"font_size,omitempty" validate:"min=0"`
	Bold        bool        `yaml:"bold,omitempty" json:"bold,omitempty"`
}

// UnmarshalYAML decodes the style, keeping null background layers as
// unresolvable entries.
func (s *ElementStyle) UnmarshalYAML(value *yaml.Node) error {
	type plain ElementStyle
	var decoded plain
	if err := value.Decode(&decoded); err != nil {
		return err
	}
	if node := mappingValue(value, "backgrounds"); node != nil {
		var layers ColorRefs
		if err := layers.UnmarshalYAML(node); err != nil {
			return err
		}
		decoded.Backgrounds = layers
	}
	*s = ElementStyle(decoded)
	return nil
}

// Bookmark is a saved report state.
type Bookmark struct {
	ID      string `yaml:"id" json:"id" validate:"required"`
	Name    string `yaml:"name" json:"name"`
	Generic bool   `yaml:"generic,omitempty" json:"generic,omitempty"`
}

// Palette is a set of theme colors.
type Palette struct {
	DataColors []string          `yaml:"data_colors,omitempty" json:"data_colors,omitempty"`
	Tokens     map[string]string `yaml:"tokens,omitempty" json:"tokens,omitempty"`
}

// ThemeTable holds the report-embedded (registered) palette and the shared
// base palette it falls back to.
type ThemeTable struct {
	Registered Palette `yaml:"registered,omitempty" json:"registered,omitempty"`
	Base       Palette `yaml:"base,omitempty" json:"base,omitempty"`
}
