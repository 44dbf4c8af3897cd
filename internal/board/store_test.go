package board_test

import (
	"context"
	"errors"
	"testing"

	"volunteer-board/internal/board"
	"volunteer-board/internal/model"
	"volunteer-board/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(records []model.Record) []int64 {
	out := make([]int64, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestReload_JoinsCommentsByForeignKey(t *testing.T) {
	gw := newFakeGateway()
	a := gw.seedRecord("2024-01-01", "a")
	b := gw.seedRecord("2024-01-02", "b")
	empty := gw.seedRecord("2024-01-03", "empty")
	c1 := gw.seedComment(a, "n1", "p")
	c2 := gw.seedComment(b, "n2", "p")
	c3 := gw.seedComment(a, "n3", "p")
	gw.seedComment(999, "orphan", "p")

	st := board.NewRecordStore(gw)
	require.False(t, st.Loaded())
	require.NoError(t, st.Reload(context.Background()))
	assert.True(t, st.Loaded())

	records := st.Records()
	// 按创建时间倒序
	assert.Equal(t, []int64{empty, b, a}, ids(records))

	ra, _ := st.Find(a)
	require.Len(t, ra.Comments, 2)
	assert.Equal(t, c1, ra.Comments[0].ID)
	assert.Equal(t, c3, ra.Comments[1].ID)

	rb, _ := st.Find(b)
	require.Len(t, rb.Comments, 1)
	assert.Equal(t, c2, rb.Comments[0].ID)

	re, _ := st.Find(empty)
	assert.NotNil(t, re.Comments)
	assert.Empty(t, re.Comments)

	for _, r := range records {
		for _, cm := range r.Comments {
			assert.Equal(t, r.ID, cm.RecordID)
		}
	}
}

func TestReload_FailureKeepsPreviousSnapshot(t *testing.T) {
	gw := newFakeGateway()
	first := gw.seedRecord("2024-01-01", "first")
	st := board.NewRecordStore(gw)
	require.NoError(t, st.Reload(context.Background()))

	gw.seedRecord("2024-01-02", "second")
	gw.fail["select comments"] = &store.RemoteError{Status: 503, Body: "unavailable"}

	err := st.Reload(context.Background())
	require.Error(t, err)
	var remote *store.RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, 503, remote.Status)

	assert.Equal(t, []int64{first}, ids(st.Records()))
}

func TestRecords_ReturnsCopies(t *testing.T) {
	gw := newFakeGateway()
	id := gw.seedRecord("2024-01-01", "a")
	st := board.NewRecordStore(gw)
	require.NoError(t, st.Reload(context.Background()))

	records := st.Records()
	records[0].Name = "changed"
	records[0].Photos = append(records[0].Photos, "x")

	r, ok := st.Find(id)
	require.True(t, ok)
	assert.Equal(t, "a", r.Name)
	assert.Empty(t, r.Photos)
}

func TestSorted_DistinctDatesReverse(t *testing.T) {
	gw := newFakeGateway()
	gw.seedRecord("2024-02-10", "b")
	gw.seedRecord("2023-12-31", "a")
	gw.seedRecord("2024-05-01", "c")
	st := board.NewRecordStore(gw)
	require.NoError(t, st.Reload(context.Background()))

	newest := ids(st.Sorted(board.SortNewest))
	oldest := ids(st.Sorted(board.SortOldest))
	require.Len(t, newest, 3)

	reversed := make([]int64, len(oldest))
	for i, id := range oldest {
		reversed[len(oldest)-1-i] = id
	}
	assert.Equal(t, newest, reversed)

	names := func(records []model.Record) []string {
		var out []string
		for _, r := range records {
			out = append(out, r.Name)
		}
		return out
	}
	assert.Equal(t, []string{"c", "b", "a"}, names(st.Sorted(board.SortNewest)))
}

func TestSorted_SameDateKeepsLoadOrder(t *testing.T) {
	gw := newFakeGateway()
	x := gw.seedRecord("2024-01-01", "x")
	y := gw.seedRecord("2024-01-01", "y")
	z := gw.seedRecord("2024-03-01", "z")
	st := board.NewRecordStore(gw)
	require.NoError(t, st.Reload(context.Background()))

	// 加载顺序：z, y, x
	assert.Equal(t, []int64{z, y, x}, ids(st.Sorted(board.SortNewest)))
	assert.Equal(t, []int64{y, x, z}, ids(st.Sorted(board.SortOldest)))
	// 原快照不受排序影响
	assert.Equal(t, []int64{z, y, x}, ids(st.Records()))
}

func TestStats_RecomputedFromSnapshot(t *testing.T) {
	gw := newFakeGateway()
	a := gw.seedRecord("2024-01-01", "a")
	gw.seedRecord("2024-01-02", "b")
	gw.seedComment(a, "n", "p")
	gw.seedComment(a, "m", "p")

	st := board.NewRecordStore(gw)
	assert.Equal(t, board.Stats{}, st.Stats())

	require.NoError(t, st.Reload(context.Background()))
	assert.Equal(t, board.Stats{Records: 2, Hours: 2, Comments: 2}, st.Stats())
}

func TestSortOrder_Valid(t *testing.T) {
	assert.True(t, board.SortNewest.Valid())
	assert.True(t, board.SortOldest.Valid())
	assert.False(t, board.SortOrder("random").Valid())
}
