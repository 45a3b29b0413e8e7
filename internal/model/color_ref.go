package model

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ColorKind tags the variant held by a ColorRef.
type ColorKind int

const (
	ColorUnresolvable ColorKind = iota
	ColorLiteral
	ColorTheme
	ColorToken
	ColorGradient
)

var colorKindNames = []string{"literal", "theme", "token", "gradient"}

func (k ColorKind) String() string {
	if k == ColorUnresolvable {
		return "unresolvable"
	}
	return nameOf(colorKindNames, int(k))
}

// ColorRef is a reference to a color as declared in the report. Exactly one
// variant is populated, selected by Kind. The zero value is unresolvable.
type ColorRef struct {
	Kind    ColorKind
	Hex     string
	Index   int
	Percent float64
	Token   string
	Stops   []GradientStop
}

// GradientStop is one stop of a gradient fill rule.
type GradientStop struct {
	Value float64  `yaml:"value" json:"value"`
	Color ColorRef `yaml:"color" json:"color"`
}

// Literal references a hex color such as "#1F77B4" or "#1F77B480".
func Literal(hex string) ColorRef {
	return ColorRef{Kind: ColorLiteral, Hex: hex}
}

// ThemeColor references a palette entry by index with an optional shade
// percentage in [-1, 1].
func ThemeColor(index int, percent float64) ColorRef {
	return ColorRef{Kind: ColorTheme, Index: index, Percent: percent}
}

// SolidThemeColor references a named theme token.
func SolidThemeColor(token string) ColorRef {
	return ColorRef{Kind: ColorToken, Token: token}
}

// Gradient references a fill rule made of ordered stops.
func Gradient(stops ...GradientStop) ColorRef {
	return ColorRef{Kind: ColorGradient, Stops: append([]GradientStop(nil), stops...)}
}

// Unresolved returns the unresolvable reference.
func Unresolved() ColorRef {
	return ColorRef{}
}

// IsSet reports whether the reference carries any source.
func (c ColorRef) IsSet() bool {
	return c.Kind != ColorUnresolvable
}

func (c ColorRef) String() string {
	switch c.Kind {
	case ColorLiteral:
		return c.Hex
	case ColorTheme:
		if c.Percent != 0 {
			return fmt.Sprintf("theme[%d]%+.0f%%", c.Index, c.Percent*100)
		}
		return fmt.Sprintf("theme[%d]", c.Index)
	case ColorToken:
		return "token:" + c.Token
	case ColorGradient:
		return fmt.Sprintf("gradient(%d stops)", len(c.Stops))
	default:
		return "unresolvable"
	}
}

type colorRefFields struct {
	Color   string  `yaml:"color"`
	Theme   *int    `yaml:"theme"`
	Percent float64 `yaml:"percent"`
	Token   string  `yaml:"token"`
}

// UnmarshalYAML decodes a reference from either a hex string or a mapping
// with one of color, theme (plus percent), token or gradient.
func (c *ColorRef) UnmarshalYAML(value *yaml.Node) error {
	*c = ColorRef{}
	value = resolved(value)

	switch value.Kind {
	case yaml.ScalarNode:
		if isNull(value) || strings.TrimSpace(value.Value) == "" {
			return nil
		}
		*c = Literal(strings.TrimSpace(value.Value))
		return nil
	case yaml.MappingNode:
		var fields colorRefFields
		if err := value.Decode(&fields); err != nil {
			return err
		}
		var stops []GradientStop
		if node := mappingValue(value, "gradient"); node != nil {
			var err error
			if stops, err = decodeStops(node); err != nil {
				return err
			}
		}
		switch {
		case strings.TrimSpace(fields.Color) != "":
			*c = Literal(strings.TrimSpace(fields.Color))
		case fields.Theme != nil:
			*c = ThemeColor(*fields.Theme, fields.Percent)
		case strings.TrimSpace(fields.Token) != "":
			*c = SolidThemeColor(strings.TrimSpace(fields.Token))
		case len(stops) > 0:
			*c = Gradient(stops...)
		}
		return nil
	default:
		return fmt.Errorf("line %d: color reference must be a string or a mapping", value.Line)
	}
}

// ColorRefs is an ordered list of references. Null entries decode to
// unresolvable references instead of being dropped.
type ColorRefs []ColorRef

// UnmarshalYAML decodes a sequence keeping one entry per item.
func (c *ColorRefs) UnmarshalYAML(value *yaml.Node) error {
	value = resolved(value)
	if isNull(value) {
		*c = nil
		return nil
	}
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: color list must be a sequence", value.Line)
	}

	out := make(ColorRefs, len(value.Content))
	for i, item := range value.Content {
		if err := out[i].UnmarshalYAML(item); err != nil {
			return err
		}
	}
	*c = out
	return nil
}

// decodeStops keeps a null stop as a zero stop so stop positions survive.
func decodeStops(node *yaml.Node) ([]GradientStop, error) {
	node = resolved(node)
	if isNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: gradient must be a sequence of stops", node.Line)
	}

	stops := make([]GradientStop, len(node.Content))
	for i, item := range node.Content {
		item = resolved(item)
		if isNull(item) {
			continue
		}
		if err := item.Decode(&stops[i]); err != nil {
			return nil, err
		}
	}
	return stops, nil
}

func resolved(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}

// mappingValue returns the value node stored under key, or nil.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	node = resolved(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// MarshalYAML mirrors UnmarshalYAML.
func (c ColorRef) MarshalYAML() (interface{}, error) {
	return c.encodable(), nil
}

// MarshalJSON mirrors the YAML shape.
func (c ColorRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.encodable())
}

func (c ColorRef) encodable() interface{} {
	switch c.Kind {
	case ColorLiteral:
		return c.Hex
	case ColorTheme:
		out := map[string]interface{}{"theme": c.Index}
		if c.Percent != 0 {
			out["percent"] = c.Percent
		}
		return out
	case ColorToken:
		return map[string]interface{}{"token": c.Token}
	case ColorGradient:
		return map[string]interface{}{"gradient": c.Stops}
	default:
		return nil
	}
}
