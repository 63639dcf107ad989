// Package migrations содержит эталонную схему для локальной разработки.
// В проде схемой владеет внешняя БД, накатываются только при AUTO_MIGRATE.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
