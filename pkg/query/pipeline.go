package query

import (
	"fmt"
	"slices"
	"strings"

	"github.com/celerix-dev/clientes/pkg/schema"
)

// Page is one slice of the filtered and sorted record sequence.
//
// When a range was requested Start and End echo it (End inclusive).
// Without a range Start is 0 and End equals Total.
type Page struct {
	Items []schema.Cliente
	Total int
	Start int
	End   int
}

type comparator func(a, b schema.Cliente) int

func byID(a, b schema.Cliente) int        { return strings.Compare(a.ID, b.ID) }
func byFirstName(a, b schema.Cliente) int { return strings.Compare(a.FirstName, b.FirstName) }
func byLastName(a, b schema.Cliente) int  { return strings.Compare(a.LastName, b.LastName) }
func byUpdatedAt(a, b schema.Cliente) int { return a.UpdatedAt.Compare(b.UpdatedAt) }

// comparators maps sortable field names to typed comparisons.
// fname, lname and timestamp are the names older grid configurations still send.
var comparators = map[string]comparator{
	"id":         byID,
	"first_name": byFirstName,
	"last_name":  byLastName,
	"updated_at": byUpdatedAt,
	"fname":      byFirstName,
	"lname":      byLastName,
	"timestamp":  byUpdatedAt,
}

// SortableFields returns the field names accepted by a sort directive.
func SortableFields() []string {
	fields := make([]string, 0, len(comparators))
	for f := range comparators {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	return fields
}

// Apply runs records through filter, sort and range, in that order.
// records is never modified.
func Apply(records []schema.Cliente, p Params) (Page, error) {
	items := make([]schema.Cliente, 0, len(records))
	for _, c := range records {
		if p.Filter.Match(c) {
			items = append(items, c)
		}
	}
	total := len(items)

	if p.Sort != nil {
		cmp, ok := comparators[p.Sort.Field]
		if !ok {
			return Page{}, fmt.Errorf("%w %q", ErrUnknownField, p.Sort.Field)
		}
		if p.Sort.Desc() {
			asc := cmp
			cmp = func(a, b schema.Cliente) int { return asc(b, a) }
		}
		// Stable so that pages stay deterministic when many records share a key.
		slices.SortStableFunc(items, cmp)
	}

	if p.Range == nil {
		return Page{Items: items, Total: total, Start: 0, End: total}, nil
	}

	r := *p.Range
	if err := r.validate(); err != nil {
		return Page{}, err
	}
	page := Page{Total: total, Start: r.Start, End: r.End}
	if r.Start >= len(items) || r.End < r.Start {
		page.Items = []schema.Cliente{}
		return page, nil
	}
	end := len(items)
	if r.End < end {
		end = r.End + 1
	}
	page.Items = items[r.Start:end]
	return page, nil
}
