package model

import (
	"fmt"
	"strings"

	auditerrors "github.com/alexisbeaulieu97/reportaudit/pkg/errors"
)

// Severity ranks an issue. Lower values are more severe.
type Severity int

const (
	SeverityError Severity = iota + 1
	SeverityWarning
	SeverityInfo
)

var severityNames = []string{"error", "warning", "info"}

// Severities returns every severity in display order.
func Severities() []Severity {
	return []Severity{SeverityError, SeverityWarning, SeverityInfo}
}

// ParseSeverity converts a case-insensitive severity name.
func ParseSeverity(s string) (Severity, error) {
	v, ok := lookupName(severityNames, s)
	if !ok {
		return 0, auditerrors.NewInvalidValueError("", "severity", s, severityNames)
	}
	return Severity(v), nil
}

// Rank returns the sort rank of the severity; errors sort first.
func (s Severity) Rank() int {
	if !s.Valid() {
		return len(severityNames) + 1
	}
	return int(s)
}

// Valid reports whether s is one of the declared severities.
func (s Severity) Valid() bool {
	return s >= SeverityError && s <= SeverityInfo
}

func (s Severity) String() string {
	return nameOf(severityNames, int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid severity %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// CheckType identifies one of the rule checks. Declaration order is the
// order in which the engine runs them.
type CheckType int

const (
	CheckTabOrder CheckType = iota + 1
	CheckAltText
	CheckColorContrast
	CheckPageTitles
	CheckVisualTitles
	CheckDataLabels
	CheckBookmarkNames
	CheckHiddenPages
)

var checkTypeNames = []string{
	"tab_order",
	"alt_text",
	"color_contrast",
	"page_titles",
	"visual_titles",
	"data_labels",
	"bookmark_names",
	"hidden_pages",
}

// CheckTypes returns every check in execution order.
func CheckTypes() []CheckType {
	out := make([]CheckType, len(checkTypeNames))
	for i := range checkTypeNames {
		out[i] = CheckType(i + 1)
	}
	return out
}

// CheckTypeNames returns the names of every check in execution order.
func CheckTypeNames() []string {
	return append([]string(nil), checkTypeNames...)
}

// ParseCheckType converts a case-insensitive check name.
func ParseCheckType(s string) (CheckType, error) {
	v, ok := lookupName(checkTypeNames, s)
	if !ok {
		return 0, auditerrors.NewUnknownCheckError("", s, checkTypeNames)
	}
	return CheckType(v), nil
}

// Valid reports whether c is one of the declared checks.
func (c CheckType) Valid() bool {
	return c >= CheckTabOrder && c <= CheckHiddenPages
}

func (c CheckType) String() string {
	return nameOf(checkTypeNames, int(c))
}

// Title returns a human readable label, e.g. "Color contrast".
func (c CheckType) Title() string {
	name := strings.ReplaceAll(c.String(), "_", " ")
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// MarshalText implements encoding.TextMarshaler.
func (c CheckType) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid check type %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *CheckType) UnmarshalText(text []byte) error {
	parsed, err := ParseCheckType(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ContrastLevel selects the WCAG conformance level used for contrast checks.
type ContrastLevel int

const (
	LevelAA ContrastLevel = iota + 1
	LevelAALarge
	LevelAAA
)

var contrastLevelNames = []string{"AA", "AA_large", "AAA"}

// ContrastLevelNames returns the accepted contrast level spellings.
func ContrastLevelNames() []string {
	return append([]string(nil), contrastLevelNames...)
}

// ParseContrastLevel converts a case-insensitive contrast level name.
func ParseContrastLevel(s string) (ContrastLevel, error) {
	v, ok := lookupName(contrastLevelNames, s)
	if !ok {
		return 0, auditerrors.NewInvalidValueError("", "contrast level", s, contrastLevelNames)
	}
	return ContrastLevel(v), nil
}

// Valid reports whether l is one of the declared levels.
func (l ContrastLevel) Valid() bool {
	return l >= LevelAA && l <= LevelAAA
}

func (l ContrastLevel) String() string {
	return nameOf(contrastLevelNames, int(l))
}

// MarshalText implements encoding.TextMarshaler.
func (l ContrastLevel) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("invalid contrast level %d", int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *ContrastLevel) UnmarshalText(text []byte) error {
	parsed, err := ParseContrastLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// VisualKind is the coarse category of a visual. The zero value means the
// reader did not classify the visual and the rule tables should.
type VisualKind int

const (
	KindUnset VisualKind = iota
	KindChart
	KindTable
	KindCard
	KindMap
	KindAI
	KindSlicer
	KindText
	KindImage
	KindShape
	KindOther
)

var visualKindNames = []string{"chart", "table", "card", "map", "ai", "slicer", "text", "image", "shape", "other"}

// ParseVisualKind converts a case-insensitive kind name.
func ParseVisualKind(s string) (VisualKind, error) {
	v, ok := lookupName(visualKindNames, s)
	if !ok {
		return KindUnset, auditerrors.NewInvalidValueError("", "visual kind", s, visualKindNames)
	}
	return VisualKind(v), nil
}

// IsData reports whether the kind presents data and therefore needs alt
// text and a title.
func (k VisualKind) IsData() bool {
	switch k {
	case KindChart, KindTable, KindCard, KindMap, KindAI:
		return true
	default:
		return false
	}
}

func (k VisualKind) String() string {
	if k == KindUnset {
		return ""
	}
	return nameOf(visualKindNames, int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k VisualKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *VisualKind) UnmarshalText(text []byte) error {
	if strings.TrimSpace(string(text)) == "" {
		*k = KindUnset
		return nil
	}
	parsed, err := ParseVisualKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ElementRole names a styled element of a visual.
type ElementRole int

const (
	RoleTitle ElementRole = iota + 1
	RoleSubtitle
	RoleDataLabels
	RoleCategoryLabels
	RoleDataPoints
	RoleLegend
	RoleAxisLabels
	RoleTableHeaders
	RoleTableValues
)

var elementRoleNames = []string{
	"title",
	"subtitle",
	"data_labels",
	"category_labels",
	"data_points",
	"legend",
	"axis_labels",
	"table_headers",
	"table_values",
}

// ParseElementRole converts a case-insensitive role name.
func ParseElementRole(s string) (ElementRole, error) {
	v, ok := lookupName(elementRoleNames, s)
	if !ok {
		return 0, auditerrors.NewInvalidValueError("", "element role", s, elementRoleNames)
	}
	return ElementRole(v), nil
}

// IsText reports whether the role renders text. Data points are graphical
// objects and use the UI component threshold.
func (r ElementRole) IsText() bool {
	return r != RoleDataPoints
}

// Valid reports whether r is one of the declared roles.
func (r ElementRole) Valid() bool {
	return r >= RoleTitle && r <= RoleTableValues
}

func (r ElementRole) String() string {
	return nameOf(elementRoleNames, int(r))
}

// Label returns the role as words, e.g. "data labels".
func (r ElementRole) Label() string {
	return strings.ReplaceAll(r.String(), "_", " ")
}

// MarshalText implements encoding.TextMarshaler.
func (r ElementRole) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid element role %d", int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *ElementRole) UnmarshalText(text []byte) error {
	parsed, err := ParseElementRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// lookupName returns the 1-based position of s in names.
func lookupName(names []string, s string) (int, bool) {
	s = strings.TrimSpace(s)
	for i, name := range names {
		if strings.EqualFold(name, s) {
			return i + 1, true
		}
	}
	return 0, false
}

func nameOf(names []string, v int) string {
	if v < 1 || v > len(names) {
		return ""
	}
	return names[v-1]
}
