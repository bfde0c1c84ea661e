// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package. It handles query
// execution, mapping between domain entities and database records, and the
// translation of PostgreSQL errors into the store error taxonomy.
package postgres
