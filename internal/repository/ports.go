package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	SeedTable(ctx context.Context, records any) error
	Upsert(ctx context.Context, record any) error
	GetOneWhere(ctx context.Context, entity any, query string, args ...any) error
}
