package sqlstore

import (
	"strconv"
	"strings"
)

// Dialect selects the SQL flavor spoken by the underlying driver.
type Dialect int

const (
	// SQLite uses ? placeholders and relies on a single serialized connection
	// for row locking.
	SQLite Dialect = iota

	// Postgres uses $n placeholders and SELECT ... FOR UPDATE.
	Postgres
)

func (d Dialect) String() string {
	switch d {
	case SQLite:
		return "sqlite"
	case Postgres:
		return "postgres"
	}
	return "unknown"
}

// Rebind rewrites ? placeholders into the dialect's placeholder syntax.
// Queries in this package never contain a literal '?'.
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] != '?' {
			b.WriteByte(query[i])
			continue
		}
		n++
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}

// forUpdate is the row lock suffix for a SELECT inside a transaction.
func (d Dialect) forUpdate() string {
	if d == Postgres {
		return " FOR UPDATE"
	}
	return ""
}
