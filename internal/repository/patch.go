package repository

import (
	"fmt"
	"strings"
	"time"
)

// patch accumulates an explicit allow-list of column assignments for a
// partial update. Absent fields never reach the SET clause.
type patch struct {
	sets []string
	args []any
}

func newPatch() *patch {
	return &patch{}
}

func (p *patch) set(column string, value any) {
	p.args = append(p.args, value)
	p.sets = append(p.sets, fmt.Sprintf("%s = $%d", column, len(p.args)))
}

func setIf[T any](p *patch, column string, value *T) {
	if value != nil {
		p.set(column, *value)
	}
}

// updateQuery builds the UPDATE statement. updated_at is always touched so
// an empty patch still records the write.
func (p *patch) updateQuery(table string, id int64, returning string) (string, []any) {
	p.set("updated_at", time.Now().UTC())
	p.args = append(p.args, id)
	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(p.sets, ", "), len(p.args), returning,
	)
	return query, p.args
}
