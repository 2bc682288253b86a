// Package sqldb provides generic CRUD primitives over a pgx connection pool.
//
// A Collection is parameterized by a row struct and a table name; column and
// placeholder lists for writes are derived from an explicit Fields map
// supplied by the caller, so one implementation serves any table keyed by an
// integer "id" column. Concrete stores compose a Collection and add their own
// specialized queries on top of the One/Exec primitives.
package sqldb
