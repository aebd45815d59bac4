package migrations

import "embed"

// FS sql миграции схемы, встраиваются в бинарник
//
//go:embed *.sql
var FS embed.FS
