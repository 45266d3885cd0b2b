package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID     int
	Name   string
	Status string
	Rank   int
}

func newItemTable(seed []item) *Table[item] {
	cfg := Config[item]{
		ID:    func(i item) int { return i.ID },
		SetID: func(i item, id int) item { i.ID = id; return i },
		SearchText: func(i item) []string {
			return []string{i.Name, i.Status}
		},
		SortKeys: map[string]func(a, b item) int{
			"name":   func(a, b item) int { return CompareStrings(a.Name, b.Name) },
			"status": func(a, b item) int { return CompareStrings(a.Status, b.Status) },
			"rank":   func(a, b item) int { return CompareInts(a.Rank, b.Rank) },
		},
	}
	return New(cfg, seed)
}

func TestAddAssignsNextID(t *testing.T) {
	table := newItemTable([]item{{ID: 1}, {ID: 7}, {ID: 3}})

	added := table.Add(item{Name: "new"})
	assert.Equal(t, 8, added.ID)
	assert.Equal(t, 4, table.Len())
}

func TestAddOnEmptyTableStartsAtOne(t *testing.T) {
	table := newItemTable(nil)

	added := table.Add(item{Name: "first"})
	assert.Equal(t, 1, added.ID)
}

func TestAddDoesNotReuseDeletedIDs(t *testing.T) {
	table := newItemTable([]item{{ID: 1}, {ID: 2}, {ID: 3}})

	require.True(t, table.Delete(2))
	added := table.Add(item{Name: "new"})

	// max+1 over survivors, not a fill of the gap
	assert.Equal(t, 4, added.ID)
}

func TestDeleteAbsentIDLeavesTableUnchanged(t *testing.T) {
	table := newItemTable([]item{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}})

	assert.False(t, table.Delete(99))
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []item{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}, table.All())
}

func TestViewKeepsInsertionOrderWithoutSort(t *testing.T) {
	table := newItemTable([]item{
		{ID: 1, Name: "zeta"},
		{ID: 2, Name: "alpha"},
		{ID: 3, Name: "mid"},
	})

	view := table.View()
	require.Len(t, view, 3)
	assert.Equal(t, "zeta", view[0].Name)
	assert.Equal(t, "alpha", view[1].Name)
}

func TestSetSortOrdersView(t *testing.T) {
	table := newItemTable([]item{
		{ID: 1, Name: "charlie"},
		{ID: 2, Name: "alice"},
		{ID: 3, Name: "bob"},
	})

	dir, err := table.SetSort("name")
	require.NoError(t, err)
	assert.Equal(t, Ascending, dir)

	view := table.View()
	assert.Equal(t, []string{"alice", "bob", "charlie"}, names(view))
}

func TestSetSortRepeatToggleReverses(t *testing.T) {
	table := newItemTable([]item{
		{ID: 1, Name: "charlie"},
		{ID: 2, Name: "alice"},
		{ID: 3, Name: "bob"},
	})

	_, err := table.SetSort("name")
	require.NoError(t, err)
	dir, err := table.SetSort("name")
	require.NoError(t, err)
	assert.Equal(t, Descending, dir)
	assert.Equal(t, []string{"charlie", "bob", "alice"}, names(table.View()))

	// third press flips back
	dir, err = table.SetSort("name")
	require.NoError(t, err)
	assert.Equal(t, Ascending, dir)
}

func TestSetSortNewKeyResetsToAscending(t *testing.T) {
	table := newItemTable([]item{
		{ID: 1, Name: "b", Rank: 2},
		{ID: 2, Name: "a", Rank: 1},
	})

	_, err := table.SetSort("name")
	require.NoError(t, err)
	_, err = table.SetSort("name")
	require.NoError(t, err)

	dir, err := table.SetSort("rank")
	require.NoError(t, err)
	assert.Equal(t, Ascending, dir)
	assert.Equal(t, 1, table.View()[0].Rank)
}

func TestSetSortRejectsUnknownKey(t *testing.T) {
	table := newItemTable([]item{{ID: 1}})

	_, err := table.SetSort("salary")
	assert.Error(t, err)

	// view state untouched
	key, _ := table.Sort()
	assert.Empty(t, key)
}

func TestSearchFiltersCaseInsensitiveSubstring(t *testing.T) {
	table := newItemTable([]item{
		{ID: 1, Name: "Solar Panel", Status: "Active"},
		{ID: 2, Name: "Inverter", Status: "Inactive"},
		{ID: 3, Name: "Battery Pack", Status: "Active"},
	})

	table.SetSearchTerm("sOlAr")
	view := table.View()
	require.Len(t, view, 1)
	assert.Equal(t, "Solar Panel", view[0].Name)
}

func TestSearchMatchesAnyConfiguredField(t *testing.T) {
	table := newItemTable([]item{
		{ID: 1, Name: "Panel", Status: "Archived"},
		{ID: 2, Name: "Inverter", Status: "Active"},
	})

	table.SetSearchTerm("archiv")
	view := table.View()
	require.Len(t, view, 1)
	assert.Equal(t, 1, view[0].ID)
}

func TestSearchIsIdempotent(t *testing.T) {
	table := newItemTable([]item{
		{ID: 1, Name: "alpha"},
		{ID: 2, Name: "beta"},
	})

	table.SetSearchTerm("alp")
	first := table.View()
	table.SetSearchTerm("alp")
	assert.Equal(t, first, table.View())
}

func TestClearingSearchRestoresFullView(t *testing.T) {
	table := newItemTable([]item{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}})

	table.SetSearchTerm("a")
	require.Len(t, table.View(), 1)
	table.SetSearchTerm("")
	assert.Len(t, table.View(), 2)
}

func TestFilterAndSortCompose(t *testing.T) {
	table := newItemTable([]item{
		{ID: 1, Name: "solar charger", Rank: 3},
		{ID: 2, Name: "battery", Rank: 1},
		{ID: 3, Name: "solar panel", Rank: 2},
	})

	table.SetSearchTerm("solar")
	_, err := table.SetSort("rank")
	require.NoError(t, err)

	view := table.View()
	require.Len(t, view, 2)
	assert.Equal(t, "solar panel", view[0].Name)
	assert.Equal(t, "solar charger", view[1].Name)
}

func TestSortKeepsTiedRecordsInInsertionOrder(t *testing.T) {
	table := newItemTable([]item{
		{ID: 1, Name: "delta", Status: "Active"},
		{ID: 2, Name: "alpha", Status: "Inactive"},
		{ID: 3, Name: "echo", Status: "Active"},
		{ID: 4, Name: "bravo", Status: "Inactive"},
		{ID: 5, Name: "golf", Status: "Active"},
	})

	_, err := table.SetSort("status")
	require.NoError(t, err)
	assert.Equal(t, []string{"delta", "echo", "golf", "alpha", "bravo"}, names(table.View()))

	// toggling reverses the runs, not the order inside them
	_, err = table.SetSort("status")
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "bravo", "delta", "echo", "golf"}, names(table.View()))
}

func TestFilteredSortKeepsTiedSurvivorsInInsertionOrder(t *testing.T) {
	table := newItemTable([]item{
		{ID: 1, Name: "solar west", Status: "Active"},
		{ID: 2, Name: "battery", Status: "Active"},
		{ID: 3, Name: "solar east", Status: "Active"},
		{ID: 4, Name: "solar north", Status: "Active"},
	})

	table.SetSearchTerm("solar")
	_, err := table.SetSort("status")
	require.NoError(t, err)

	assert.Equal(t, []string{"solar west", "solar east", "solar north"}, names(table.View()))
}

func TestViewDoesNotMutateUnderlyingOrder(t *testing.T) {
	table := newItemTable([]item{
		{ID: 1, Name: "z"},
		{ID: 2, Name: "a"},
	})

	_, err := table.SetSort("name")
	require.NoError(t, err)
	_ = table.View()

	all := table.All()
	assert.Equal(t, "z", all[0].Name)
}

func TestAddedRecordAppearsInSortedPosition(t *testing.T) {
	table := newItemTable([]item{
		{ID: 1, Name: "bob"},
		{ID: 2, Name: "dave"},
	})

	_, err := table.SetSort("name")
	require.NoError(t, err)
	table.Add(item{Name: "carol"})

	assert.Equal(t, []string{"bob", "carol", "dave"}, names(table.View()))
}

func names(items []item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}
