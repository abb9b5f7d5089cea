package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestPatchSetIfSkipsNil(t *testing.T) {
	p := newPatch()
	setIf(p, "title_ru", strPtr("Новости"))
	setIf[string](p, "title_uz", nil)
	setIf(p, "is_published", func() *bool { b := true; return &b }())

	query, args := p.updateQuery("news", 7, "id")

	assert.Equal(t, "UPDATE news SET title_ru = $1, is_published = $2, updated_at = $3 WHERE id = $4 RETURNING id", query)
	require.Len(t, args, 4)
	assert.Equal(t, "Новости", args[0])
	assert.Equal(t, true, args[1])
	assert.IsType(t, time.Time{}, args[2])
	assert.Equal(t, int64(7), args[3])
}

func TestPatchEmptyStillTouchesUpdatedAt(t *testing.T) {
	p := newPatch()
	query, args := p.updateQuery("partners", 3, "id")

	assert.Equal(t, "UPDATE partners SET updated_at = $1 WHERE id = $2 RETURNING id", query)
	require.Len(t, args, 2)
}

func TestPatchQuotedOrderColumn(t *testing.T) {
	p := newPatch()
	order := 5
	setIf(p, `"order"`, &order)

	query, _ := p.updateQuery("board_members", 1, "id")
	assert.Contains(t, query, `"order" = $1`)
}
