package sqldb

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Fields maps column names to the values a write should apply. Callers list
// every column explicitly; nothing is inferred from struct tags or reflection.
type Fields map[string]any

// ErrEmptyFields is returned when a write is attempted with no columns.
var ErrEmptyFields = errors.New("sqldb: no fields to write")

// columns returns the field names in deterministic (sorted) order so built
// statements are stable across calls.
func (f Fields) columns() []string {
	cols := make([]string, 0, len(f))
	for col := range f {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}

func insertStatement(table string, fields Fields) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, ErrEmptyFields
	}

	cols := fields.columns()
	placeholders := lo.Times(len(cols), func(i int) string {
		return "$" + strconv.Itoa(i+1)
	})
	args := lo.Map(cols, func(col string, _ int) any {
		return fields[col]
	})

	stmt := "INSERT INTO " + table +
		" (" + strings.Join(cols, ", ") + ")" +
		" VALUES (" + strings.Join(placeholders, ", ") + ")" +
		" RETURNING id"

	return stmt, args, nil
}

func updateStatement(table string, id int64, fields Fields) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, ErrEmptyFields
	}

	cols := fields.columns()
	assignments := lo.Map(cols, func(col string, i int) string {
		return col + " = $" + strconv.Itoa(i+1)
	})
	args := lo.Map(cols, func(col string, _ int) any {
		return fields[col]
	})
	args = append(args, id)

	stmt := "UPDATE " + table +
		" SET " + strings.Join(assignments, ", ") +
		" WHERE id = $" + strconv.Itoa(len(cols)+1)

	return stmt, args, nil
}
