// Package query implements the list view pipeline used by data-grid clients:
// filter, then sort, then paginate, then report the range that was served.
//
// Directives arrive as JSON-encoded query parameters following the react-admin
// simple REST convention:
//
//	filter={"q":"ann"}  sort=["last_name","ASC"]  range=[0,24]
package query

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/celerix-dev/clientes/pkg/schema"
	"github.com/goccy/go-json"
)

var (
	// ErrBadRequest is returned for directives that cannot be decoded or are out of domain.
	ErrBadRequest = errors.New("bad request")
	// ErrUnknownField is returned when a sort directive names a field records do not have.
	ErrUnknownField = fmt.Errorf("%w: unknown sort field", ErrBadRequest)
)

// Filter restricts which records are listed. A nil Filter keeps everything.
type Filter struct {
	// Q is a case-insensitive substring matched against first and last names.
	Q *string
	// IDs keeps only the listed ids. Sent by react-admin when resolving references.
	IDs []string
}

// Match reports whether c passes every filter key that is set.
func (f *Filter) Match(c schema.Cliente) bool {
	if f == nil {
		return true
	}
	if f.Q != nil {
		q := strings.ToLower(*f.Q)
		if !strings.Contains(strings.ToLower(c.FirstName), q) &&
			!strings.Contains(strings.ToLower(c.LastName), q) {
			return false
		}
	}
	if f.IDs != nil {
		found := false
		for _, id := range f.IDs {
			if id == c.ID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Sort orders records by a single field.
type Sort struct {
	Field string
	Order string
}

// Desc reports whether the order asks for descending. Anything other than "desc" is ascending.
func (s Sort) Desc() bool {
	return strings.EqualFold(s.Order, "desc")
}

// Range selects records Start through End, both inclusive and zero-based.
type Range struct {
	Start int
	End   int
}

func (r Range) validate() error {
	if r.Start < 0 || r.End < 0 {
		return fmt.Errorf("%w: range bounds must not be negative, got [%d,%d]", ErrBadRequest, r.Start, r.End)
	}
	return nil
}

// Params groups the three optional directives. A nil directive leaves its stage a no-op.
type Params struct {
	Filter *Filter
	Sort   *Sort
	Range  *Range
}

// ParseParams decodes the raw filter, sort and range query values.
// Empty strings mean the directive is absent.
func ParseParams(filter, sort, rng string) (Params, error) {
	var p Params
	var err error
	if p.Filter, err = ParseFilter(filter); err != nil {
		return Params{}, err
	}
	if p.Sort, err = ParseSort(sort); err != nil {
		return Params{}, err
	}
	if p.Range, err = ParseRange(rng); err != nil {
		return Params{}, err
	}
	return p, nil
}

// ParseFilter decodes a JSON object such as {"q":"ann"}.
// Keys other than "q" and "id" are accepted and ignored.
func ParseFilter(raw string) (*Filter, error) {
	if raw == "" {
		return nil, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("%w: invalid filter: %v", ErrBadRequest, err)
	}

	f := &Filter{}
	if q, ok := fields["q"]; ok && !isNull(q) {
		var s string
		if err := json.Unmarshal(q, &s); err != nil {
			return nil, fmt.Errorf("%w: filter key q must be a string", ErrBadRequest)
		}
		f.Q = &s
	}
	if ids, ok := fields["id"]; ok && !isNull(ids) {
		var one string
		if err := json.Unmarshal(ids, &one); err == nil {
			f.IDs = []string{one}
		} else if err := json.Unmarshal(ids, &f.IDs); err != nil {
			return nil, fmt.Errorf("%w: filter key id must be a string or a list of strings", ErrBadRequest)
		}
		if f.IDs == nil {
			f.IDs = []string{}
		}
	}
	return f, nil
}

// ParseSort decodes a two element JSON array such as ["last_name","DESC"].
func ParseSort(raw string) (*Sort, error) {
	if raw == "" {
		return nil, nil
	}

	var pair []string
	if err := json.Unmarshal([]byte(raw), &pair); err != nil {
		return nil, fmt.Errorf("%w: invalid sort: %v", ErrBadRequest, err)
	}
	if len(pair) != 2 {
		return nil, fmt.Errorf("%w: sort must be [field, order], got %d elements", ErrBadRequest, len(pair))
	}

	s := &Sort{Field: pair[0], Order: pair[1]}
	if _, ok := comparators[s.Field]; !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownField, s.Field)
	}
	return s, nil
}

// ParseRange decodes a two element JSON array such as [0,24].
func ParseRange(raw string) (*Range, error) {
	if raw == "" {
		return nil, nil
	}

	var pair []int
	if err := json.Unmarshal([]byte(raw), &pair); err != nil {
		return nil, fmt.Errorf("%w: invalid range: %v", ErrBadRequest, err)
	}
	if len(pair) != 2 {
		return nil, fmt.Errorf("%w: range must be [start, end], got %d elements", ErrBadRequest, len(pair))
	}

	r := &Range{Start: pair[0], End: pair[1]}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Values encodes p back into query parameters. It is the inverse of ParseParams.
func (p Params) Values() (url.Values, error) {
	v := url.Values{}
	if p.Filter != nil {
		fields := map[string]any{}
		if p.Filter.Q != nil {
			fields["q"] = *p.Filter.Q
		}
		if p.Filter.IDs != nil {
			fields["id"] = p.Filter.IDs
		}
		b, err := json.Marshal(fields)
		if err != nil {
			return nil, err
		}
		v.Set("filter", string(b))
	}
	if p.Sort != nil {
		b, err := json.Marshal([]string{p.Sort.Field, p.Sort.Order})
		if err != nil {
			return nil, err
		}
		v.Set("sort", string(b))
	}
	if p.Range != nil {
		b, err := json.Marshal([]int{p.Range.Start, p.Range.End})
		if err != nil {
			return nil, err
		}
		v.Set("range", string(b))
	}
	return v, nil
}

func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}
