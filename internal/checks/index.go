package checks

import (
	"strings"

	"github.com/alexisbeaulieu97/reportaudit/internal/model"
	"github.com/alexisbeaulieu97/reportaudit/internal/rules"
)

// UnknownPage is the page label of findings on visuals whose page does not
// exist.
const UnknownPage = "(unknown)"

// Index is a lookup view over a document built once per run. Visuals
// repeating an earlier ID are dropped. Visuals whose page does not exist are
// kept out of page-scoped checks but still reach the per-visual checks.
type Index struct {
	Pages     []model.Page
	Visuals   []model.Visual
	Bookmarks []model.Bookmark

	// Orphans are visuals whose page ID matches no page.
	Orphans []model.Visual
	// Misplaced lists, once each, visuals that a page lists but that declare
	// another page, or that more than one page lists.
	Misplaced []string
	// DuplicateVisualIDs lists each repeated visual ID once, in input order.
	DuplicateVisualIDs []string
	// DuplicatePageIDs lists each repeated page ID once, in input order.
	DuplicatePageIDs []string
	// Unidentified holds the input positions of visuals with a blank ID.
	Unidentified []int

	pages    map[string]model.Page
	onPage   map[string][]model.Visual
	kinds    map[string]model.VisualKind
	// perVisual holds placed and orphan visuals in input order.
	perVisual []model.Visual
}

// NewIndex indexes doc. Later pages or visuals that repeat an ID are dropped.
func NewIndex(doc *model.Document, table *rules.Table) *Index {
	if table == nil {
		table = rules.Default()
	}
	idx := &Index{
		pages:  make(map[string]model.Page),
		onPage: make(map[string][]model.Visual),
		kinds:  make(map[string]model.VisualKind),
	}
	if doc == nil {
		return idx
	}

	reported := make(map[string]bool)
	for _, page := range doc.Pages {
		if _, dup := idx.pages[page.ID]; dup {
			if !reported[page.ID] {
				idx.DuplicatePageIDs = append(idx.DuplicatePageIDs, page.ID)
				reported[page.ID] = true
			}
			continue
		}
		idx.pages[page.ID] = page
		idx.Pages = append(idx.Pages, page)
	}

	seen := make(map[string]bool, len(doc.Visuals))
	reported = make(map[string]bool)
	for pos, v := range doc.Visuals {
		if strings.TrimSpace(v.ID) == "" {
			idx.Unidentified = append(idx.Unidentified, pos)
			continue
		}
		if seen[v.ID] {
			if !reported[v.ID] {
				idx.DuplicateVisualIDs = append(idx.DuplicateVisualIDs, v.ID)
				reported[v.ID] = true
			}
			continue
		}
		seen[v.ID] = true
		idx.kinds[v.ID] = table.KindOf(v)
		idx.perVisual = append(idx.perVisual, v)

		if _, ok := idx.pages[v.PageID]; !ok {
			idx.Orphans = append(idx.Orphans, v)
			continue
		}
		idx.Visuals = append(idx.Visuals, v)
		idx.onPage[v.PageID] = append(idx.onPage[v.PageID], v)
	}

	idx.Misplaced = misplaced(idx.Pages, doc.Visuals, seen)
	idx.Bookmarks = append(idx.Bookmarks, doc.Bookmarks...)
	return idx
}

// misplaced cross-checks page visual listings against Visual.PageID. IDs of
// unknown visuals are ignored.
func misplaced(pages []model.Page, visuals []model.Visual, known map[string]bool) []string {
	declared := make(map[string]string, len(visuals))
	for _, v := range visuals {
		if _, ok := declared[v.ID]; !ok {
			declared[v.ID] = v.PageID
		}
	}

	var out []string
	reported := make(map[string]bool)
	listedBy := make(map[string]string)
	for _, page := range pages {
		for _, id := range page.VisualIDs {
			if !known[id] || reported[id] {
				continue
			}
			other, listed := listedBy[id]
			if declared[id] != page.ID || (listed && other != page.ID) {
				out = append(out, id)
				reported[id] = true
				continue
			}
			listedBy[id] = page.ID
		}
	}
	return out
}

// Page returns the page with the given ID.
func (i *Index) Page(id string) (model.Page, bool) {
	p, ok := i.pages[id]
	return p, ok
}

// PerVisual returns the visuals the per-visual checks inspect: placed
// visuals and orphans, in input order.
func (i *Index) PerVisual() []model.Visual {
	return i.perVisual
}

// PageName returns the display name of the page with the given ID, or
// UnknownPage.
func (i *Index) PageName(id string) string {
	if p, ok := i.pages[id]; ok {
		return p.DisplayName()
	}
	return UnknownPage
}

// VisualsOn returns the visuals of a page in input order.
func (i *Index) VisualsOn(pageID string) []model.Visual {
	return i.onPage[pageID]
}

// Kind returns the classified kind of an indexed visual.
func (i *Index) Kind(v model.Visual) model.VisualKind {
	if kind, ok := i.kinds[v.ID]; ok {
		return kind
	}
	return model.KindOther
}

// OrphanIDs returns the IDs of orphan visuals in input order.
func (i *Index) OrphanIDs() []string {
	ids := make([]string, len(i.Orphans))
	for n, v := range i.Orphans {
		ids[n] = v.ID
	}
	return ids
}
