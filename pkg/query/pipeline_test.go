package query

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/celerix-dev/clientes/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cliente(id, first, last string) schema.Cliente {
	return schema.Cliente{ID: id, FirstName: first, LastName: last}
}

func ids(list []schema.Cliente) []string {
	out := make([]string, 0, len(list))
	for _, c := range list {
		out = append(out, c.ID)
	}
	return out
}

func tenRecords() []schema.Cliente {
	var list []schema.Cliente
	for i := 0; i < 10; i++ {
		list = append(list, cliente(fmt.Sprintf("c%d", i), fmt.Sprintf("First%d", i), fmt.Sprintf("Last%d", i)))
	}
	return list
}

func TestApply_NoDirectives(t *testing.T) {
	page, err := Apply(tenRecords(), Params{})
	require.NoError(t, err)

	assert.Len(t, page.Items, 10)
	assert.Equal(t, 10, page.Total)
	assert.Equal(t, 0, page.Start)
	assert.Equal(t, 10, page.End)
	assert.Equal(t, "clientes 0-10/10", ContentRange("clientes", page))
}

func TestApply_Range(t *testing.T) {
	page, err := Apply(tenRecords(), Params{Range: &Range{Start: 0, End: 4}})
	require.NoError(t, err)

	assert.Equal(t, []string{"c0", "c1", "c2", "c3", "c4"}, ids(page.Items))
	assert.Equal(t, "clientes 0-4/10", ContentRange("clientes", page))
}

func TestApply_RangeEdges(t *testing.T) {
	records := tenRecords()

	t.Run("end past the end is clamped", func(t *testing.T) {
		page, err := Apply(records, Params{Range: &Range{Start: 8, End: 20}})
		require.NoError(t, err)
		assert.Equal(t, []string{"c8", "c9"}, ids(page.Items))
		assert.Equal(t, "clientes 8-20/10", ContentRange("clientes", page))
	})

	t.Run("start past the end is empty", func(t *testing.T) {
		page, err := Apply(records, Params{Range: &Range{Start: 10, End: 14}})
		require.NoError(t, err)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
		assert.Equal(t, 10, page.Total)
	})

	t.Run("end before start is empty", func(t *testing.T) {
		page, err := Apply(records, Params{Range: &Range{Start: 5, End: 2}})
		require.NoError(t, err)
		assert.Empty(t, page.Items)
	})

	t.Run("largest end is clamped", func(t *testing.T) {
		p, err := ParseParams("", "", fmt.Sprintf("[0,%d]", math.MaxInt))
		require.NoError(t, err)

		page, err := Apply(records, p)
		require.NoError(t, err)
		assert.Len(t, page.Items, 10)
		assert.Equal(t, math.MaxInt, page.End)
	})

	t.Run("negative bound is rejected", func(t *testing.T) {
		_, err := Apply(records, Params{Range: &Range{Start: -1, End: 2}})
		assert.ErrorIs(t, err, ErrBadRequest)
	})
}

func TestApply_FilterMatchesEitherName(t *testing.T) {
	records := []schema.Cliente{
		cliente("1", "Ann", "Lee"),
		cliente("2", "Bob", "Ann"),
		cliente("3", "Carl", "Smith"),
	}
	q := "ann"

	page, err := Apply(records, Params{Filter: &Filter{Q: &q}})
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2"}, ids(page.Items))
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, 2, page.End)
}

func TestApply_FilterByIDs(t *testing.T) {
	page, err := Apply(tenRecords(), Params{Filter: &Filter{IDs: []string{"c7", "c2"}}})
	require.NoError(t, err)
	assert.Equal(t, []string{"c2", "c7"}, ids(page.Items))
}

func TestApply_TotalCountsFilteredRecordsOnly(t *testing.T) {
	q := "first1"
	page, err := Apply(tenRecords(), Params{Filter: &Filter{Q: &q}, Range: &Range{Start: 0, End: 0}})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, "clientes 0-0/1", ContentRange("clientes", page))
}

func TestApply_SortIsStable(t *testing.T) {
	records := []schema.Cliente{
		cliente("b", "x", "B"),
		cliente("a1", "y", "A"),
		cliente("a2", "z", "A"),
	}

	page, err := Apply(records, Params{Sort: &Sort{Field: "last_name", Order: "ASC"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2", "b"}, ids(page.Items))

	page, err = Apply(records, Params{Sort: &Sort{Field: "last_name", Order: "DESC"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a1", "a2"}, ids(page.Items))
}

func TestApply_SortOrderFallsBackToAscending(t *testing.T) {
	records := []schema.Cliente{cliente("2", "b", ""), cliente("1", "a", "")}

	for _, order := range []string{"asc", "", "descending", "dsc"} {
		page, err := Apply(records, Params{Sort: &Sort{Field: "first_name", Order: order}})
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2"}, ids(page.Items), "order %q", order)
	}
}

func TestApply_SortByTimestamp(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	records := []schema.Cliente{
		{ID: "late", UpdatedAt: base.Add(2 * time.Hour)},
		{ID: "early", UpdatedAt: base},
		{ID: "mid", UpdatedAt: base.Add(time.Hour)},
	}

	page, err := Apply(records, Params{Sort: &Sort{Field: "updated_at", Order: "desc"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"late", "mid", "early"}, ids(page.Items))

	page, err = Apply(records, Params{Sort: &Sort{Field: "timestamp"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"early", "mid", "late"}, ids(page.Items))
}

func TestApply_UnknownSortField(t *testing.T) {
	_, err := Apply(tenRecords(), Params{Sort: &Sort{Field: "email"}})
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	records := []schema.Cliente{cliente("2", "b", ""), cliente("1", "a", "")}

	_, err := Apply(records, Params{Sort: &Sort{Field: "first_name"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1"}, ids(records))
}

func TestApply_Idempotent(t *testing.T) {
	q := "last"
	p := Params{
		Filter: &Filter{Q: &q},
		Sort:   &Sort{Field: "first_name", Order: "desc"},
		Range:  &Range{Start: 2, End: 5},
	}
	records := tenRecords()

	first, err := Apply(records, p)
	require.NoError(t, err)
	second, err := Apply(records, p)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"c7", "c6", "c5", "c4"}, ids(first.Items))
}

func TestSortableFields(t *testing.T) {
	fields := SortableFields()
	assert.Contains(t, fields, "first_name")
	assert.Contains(t, fields, "updated_at")
	assert.NotContains(t, fields, "email")
}
