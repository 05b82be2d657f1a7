package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zatekoja/servicemarket/internal/domain/storage"
	"github.com/zatekoja/servicemarket/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/servicemarket/pkg/errors"
)

const recordsTable = "records"

// StoreAdapter implements the ordered key-value store port in
// Postgres. All collections share one records table keyed by
// (collection, key); the primary key index gives List its ascending
// key order.
type StoreAdapter struct {
	client     *postgres.Client
	db         *goqu.Database
	collection string
	tracer     trace.Tracer
}

// NewStoreAdapter creates a store adapter bound to one collection.
func NewStoreAdapter(client *postgres.Client, collection string) storage.Store {
	return &StoreAdapter{
		client:     client,
		db:         goqu.New("postgres", client.DB()),
		collection: collection,
		tracer:     otel.Tracer("servicemarket/adapters/database"),
	}
}

// Put upserts value under key.
func (a *StoreAdapter) Put(ctx context.Context, key string, value []byte) error {
	ctx, span := a.startSpan(ctx, "store.Put")
	defer span.End()

	record := goqu.Record{
		"collection": a.collection,
		"key":        key,
		"value":      string(value),
	}

	query, args, err := a.db.Insert(recordsTable).
		Rows(record).
		OnConflict(goqu.DoUpdate("collection, key", goqu.Record{"value": string(value)})).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build record upsert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to put record", err)
	}

	return nil
}

// Get returns the value stored under key.
func (a *StoreAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, span := a.startSpan(ctx, "store.Get")
	defer span.End()

	query, args, err := a.db.From(recordsTable).
		Select("value").
		Where(goqu.Ex{"collection": a.collection, "key": key}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build record select query", err)
	}

	var value []byte
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("record with id %s not found", key))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get record", err)
	}

	return value, nil
}

// Delete removes the value stored under key.
func (a *StoreAdapter) Delete(ctx context.Context, key string) error {
	ctx, span := a.startSpan(ctx, "store.Delete")
	defer span.End()

	query, args, err := a.db.Delete(recordsTable).
		Where(goqu.Ex{"collection": a.collection, "key": key}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build record delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete record", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("record with id %s not found", key))
	}

	return nil
}

// List returns all values in ascending key order.
func (a *StoreAdapter) List(ctx context.Context) ([][]byte, error) {
	ctx, span := a.startSpan(ctx, "store.List")
	defer span.End()

	query, args, err := a.db.From(recordsTable).
		Select("value").
		Where(goqu.Ex{"collection": a.collection}).
		Order(goqu.C("key").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build record list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list records", err)
	}
	defer rows.Close()

	var values [][]byte
	for rows.Next() {
		var value []byte
		if err := rows.Scan(&value); err != nil {
			return nil, apperrors.NewInternalError("failed to scan record", err)
		}
		values = append(values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate records", err)
	}

	return values, nil
}

func (a *StoreAdapter) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return a.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("record.collection", a.collection),
	))
}
