package sellersession

import "embed"

// MigrationsDir is the directory of Migrations holding goose SQL files.
const MigrationsDir = "migrations"

// Migrations holds the PostgreSQL schema for PostgresRepository.
//
//go:embed migrations/*.sql
var Migrations embed.FS
