// Package sqlgeom decodes Microsoft SQL Server's native binary serialization
// of spatial values (the wire format used for the geometry and geography
// column types) into an in-memory geometry tree.
//
// The package has no I/O of its own: Parse takes an immutable byte slice and
// a column kind and returns either a decoded tree or a single structured
// error. It never logs, never retries, and never returns a partial result.
package sqlgeom
