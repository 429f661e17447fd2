// Package persistence implements the entity gateways on top of GORM.
//
// One generic Gateway serves every record kind; a Mapper converts between the
// domain record and its table row (the *DTO types). Rows key on varchar(36)
// text so the same schema runs on PostgreSQL and SQLite.
//
// Reads deliberately load the whole table and filter in process. Every call
// runs in its own GORM session and commits on its own; nothing here opens a
// transaction.
package persistence
