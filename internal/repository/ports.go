package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	SeedTable(ctx context.Context, records any) error
	Create(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, dest any) error
	GetOneWhere(ctx context.Context, dest any, query string, args ...any) error
	GetAll(ctx context.Context, dest any) error
	GetAllBy(ctx context.Context, column string, value any, dest any) error
	GetAllWhere(ctx context.Context, dest any, query string, args ...any) error
	DeleteWhere(ctx context.Context, model any, query string, args ...any) (int64, error)
	Upsert(ctx context.Context, record any, conflictColumns ...string) error
}
