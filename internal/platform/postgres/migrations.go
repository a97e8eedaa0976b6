package postgres

import "embed"

// MigrationsFS holds the goose SQL migrations for the schema.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS

// MigrationsDir is the directory inside MigrationsFS that holds the migrations.
const MigrationsDir = "migrations"

// MigrationTableName is the goose version table used by every migration runner.
const MigrationTableName = "schema_migrations"
