// Package rules holds the data tables the structural checks consult: naming
// patterns, generic phrases, label-critical visual types and the visual type
// classification.
package rules

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/reportaudit/internal/model"
	"github.com/alexisbeaulieu97/reportaudit/internal/validation"
	auditerrors "github.com/alexisbeaulieu97/reportaudit/pkg/errors"
)

//go:embed default.yaml
var defaultRules []byte

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Pattern is an ordered naming rule. Expressions match case-insensitively
// against the trimmed name.
type Pattern struct {
	Expr     string         `yaml:"pattern" validate:"required,regexp"`
	Severity model.Severity `yaml:"severity" validate:"required"`
	Message  string         `yaml:"message" validate:"required"`

	re *regexp.Regexp
}

// Match reports whether name matches the pattern.
func (p Pattern) Match(name string) bool {
	if p.re == nil {
		return false
	}
	return p.re.MatchString(strings.TrimSpace(name))
}

// Table is a complete, compiled set of rule tables.
type Table struct {
	AltTextMaxLength   int                         `yaml:"alt_text_max_length" validate:"gte=0"`
	PageTitles         []Pattern                   `yaml:"page_titles" validate:"dive"`
	BookmarkNames      []Pattern                   `yaml:"bookmark_names" validate:"dive"`
	GenericAltText     []string                    `yaml:"generic_alt_text" validate:"dive,required"`
	LabelCriticalTypes []string                    `yaml:"label_critical_types" validate:"dive,required"`
	VisualKinds        map[string]model.VisualKind `yaml:"visual_kinds" validate:"dive,keys,required,endkeys,required"`

	genericAlt    map[string]struct{}
	labelCritical map[string]struct{}
	kinds         map[string]model.VisualKind
}

// Default returns the embedded rule tables. The returned table is shared and
// must not be modified.
func Default() *Table {
	defaultOnce.Do(func() {
		table, err := Parse(defaultRules, "default.yaml")
		if err != nil {
			panic(fmt.Sprintf("embedded rule tables are invalid: %v", err))
		}
		defaultTable = table
	})
	return defaultTable
}

// Load reads a rules file and overlays it on the defaults. Sections the file
// does not define keep their default contents.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, auditerrors.NewParseError(path, 0, err)
	}

	var override Table
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, auditerrors.NewDecodeError(path, err)
	}
	if err := validation.Struct(override); err != nil {
		return nil, err
	}

	return Default().overlay(override).compile()
}

// Parse decodes and compiles a complete rule table.
func Parse(data []byte, source string) (*Table, error) {
	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, auditerrors.NewDecodeError(source, err)
	}
	if err := validation.Struct(table); err != nil {
		return nil, err
	}
	return table.compile()
}

func (t *Table) overlay(o Table) Table {
	out := Table{
		AltTextMaxLength:   t.AltTextMaxLength,
		PageTitles:         t.PageTitles,
		BookmarkNames:      t.BookmarkNames,
		GenericAltText:     t.GenericAltText,
		LabelCriticalTypes: t.LabelCriticalTypes,
		VisualKinds:        t.VisualKinds,
	}
	if o.AltTextMaxLength > 0 {
		out.AltTextMaxLength = o.AltTextMaxLength
	}
	if o.PageTitles != nil {
		out.PageTitles = o.PageTitles
	}
	if o.BookmarkNames != nil {
		out.BookmarkNames = o.BookmarkNames
	}
	if o.GenericAltText != nil {
		out.GenericAltText = o.GenericAltText
	}
	if o.LabelCriticalTypes != nil {
		out.LabelCriticalTypes = o.LabelCriticalTypes
	}
	if o.VisualKinds != nil {
		out.VisualKinds = o.VisualKinds
	}
	return out
}

func (t Table) compile() (*Table, error) {
	var err error
	if t.PageTitles, err = compilePatterns("page_titles", t.PageTitles); err != nil {
		return nil, err
	}
	if t.BookmarkNames, err = compilePatterns("bookmark_names", t.BookmarkNames); err != nil {
		return nil, err
	}

	t.genericAlt = make(map[string]struct{}, len(t.GenericAltText))
	for _, phrase := range t.GenericAltText {
		t.genericAlt[normalize(phrase)] = struct{}{}
	}
	t.labelCritical = make(map[string]struct{}, len(t.LabelCriticalTypes))
	for _, typ := range t.LabelCriticalTypes {
		t.labelCritical[normalize(typ)] = struct{}{}
	}
	t.kinds = make(map[string]model.VisualKind, len(t.VisualKinds))
	for typ, kind := range t.VisualKinds {
		t.kinds[normalize(typ)] = kind
	}
	return &t, nil
}

func compilePatterns(section string, patterns []Pattern) ([]Pattern, error) {
	out := make([]Pattern, len(patterns))
	for i, p := range patterns {
		re, err := regexp.Compile("(?i)" + p.Expr)
		if err != nil {
			return nil, auditerrors.NewValidationError(fmt.Sprintf("%s[%d].pattern", section, i), err.Error(), err)
		}
		p.re = re
		out[i] = p
	}
	return out, nil
}

// PageTitle returns the first page-title rule matching name.
func (t *Table) PageTitle(name string) (Pattern, bool) {
	return firstMatch(t.PageTitles, name)
}

// BookmarkName returns the first bookmark-name rule matching name.
func (t *Table) BookmarkName(name string) (Pattern, bool) {
	return firstMatch(t.BookmarkNames, name)
}

func firstMatch(patterns []Pattern, name string) (Pattern, bool) {
	for _, p := range patterns {
		if p.Match(name) {
			return p, true
		}
	}
	return Pattern{}, false
}

// IsGenericAltText reports whether text is a placeholder phrase.
func (t *Table) IsGenericAltText(text string) bool {
	_, ok := t.genericAlt[normalize(text)]
	return ok
}

// IsLabelCritical reports whether charts of the given type are unreadable
// without data labels.
func (t *Table) IsLabelCritical(visualType string) bool {
	_, ok := t.labelCritical[normalize(visualType)]
	return ok
}

// Classify maps a raw visual type to its kind. Unknown types are KindOther.
func (t *Table) Classify(visualType string) model.VisualKind {
	if kind, ok := t.kinds[normalize(visualType)]; ok && kind != model.KindUnset {
		return kind
	}
	return model.KindOther
}

// KindOf returns the kind declared on the visual, or classifies its type.
func (t *Table) KindOf(v model.Visual) model.VisualKind {
	if v.Kind != model.KindUnset {
		return v.Kind
	}
	return t.Classify(v.Type)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
