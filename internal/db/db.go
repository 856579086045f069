package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicate = errors.New("duplicate record")

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// SeedTable inserts the given records only when the target table is empty.
func (f *PostgresDB) SeedTable(ctx context.Context, records any) error {

	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("records type must be pointer to a slice: %T", records)
	}

	slice := v.Elem()
	if slice.Len() == 0 {
		return nil
	}

	var count int64

	elemType := slice.Index(0).Interface()
	if err := f.DB.WithContext(ctx).Model(elemType).Count(&count).Error; err != nil {
		return fmt.Errorf("get model count: %w", err)
	}

	if count > 0 {
		return nil
	}

	if err := f.DB.WithContext(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *PostgresDB) Create(ctx context.Context, record any) error {
	err := f.DB.WithContext(ctx).Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, dest any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) GetOneWhere(ctx context.Context, dest any, query string, args ...any) error {
	err := f.DB.WithContext(ctx).Where(query, args...).First(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record where %q: %w", query, err)
	}
	return nil
}

func (f *PostgresDB) GetAll(ctx context.Context, dest any) error {
	tx := f.DB.WithContext(ctx).Find(dest)
	if tx.Error != nil {
		return fmt.Errorf("getting all records: %w", tx.Error)
	}
	return nil
}

// GetAllBy filters by a single column. The value must be a slice so the IN
// clause expands to a parenthesized list; scalar filters go through
// GetAllWhere.
func (f *PostgresDB) GetAllBy(ctx context.Context, column string, value any, dest any) error {
	tx := f.DB.WithContext(ctx).Where(fmt.Sprintf("%s IN ?", column), value).Find(dest)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

func (f *PostgresDB) GetAllWhere(ctx context.Context, dest any, query string, args ...any) error {
	tx := f.DB.WithContext(ctx).Where(query, args...).Find(dest)
	if tx.Error != nil {
		return fmt.Errorf("getting records where %q: %w", query, tx.Error)
	}
	return nil
}

func (f *PostgresDB) DeleteWhere(ctx context.Context, model any, query string, args ...any) (int64, error) {
	tx := f.DB.WithContext(ctx).Where(query, args...).Delete(model)
	if tx.Error != nil {
		return 0, fmt.Errorf("deleting records where %q: %w", query, tx.Error)
	}
	return tx.RowsAffected, nil
}

// Upsert inserts the record, replacing the existing row on a conflict over
// the given columns.
func (f *PostgresDB) Upsert(ctx context.Context, record any, conflictColumns ...string) error {
	cols := make([]clause.Column, 0, len(conflictColumns))
	for _, c := range conflictColumns {
		cols = append(cols, clause.Column{Name: c})
	}

	err := f.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   cols,
		UpdateAll: true,
	}).Create(record).Error
	if err != nil {
		return fmt.Errorf("upsert record: %w", err)
	}
	return nil
}
