package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryValues(t *testing.T) {
	v := All(Desc("created_at"), Asc("id")).Values()
	assert.Equal(t, "*", v.Get("select"))
	assert.Equal(t, "created_at.desc,id.asc", v.Get("order"))

	v = Query{Columns: []string{"id", "name"}}.Values()
	assert.Equal(t, "id,name", v.Get("select"))
	assert.Empty(t, v.Get("order"))
}

func TestFilter(t *testing.T) {
	f := Eq("record_id", 42)
	assert.Equal(t, "record_id=eq.42", f.String())
	assert.Equal(t, "eq.42", f.Values().Get("record_id"))
}
