package postgres

import _ "embed"

// Schema DDL completo del esquema (tablas, índices y restricciones).
//
//go:embed migrations/001_init.sql
var Schema string
