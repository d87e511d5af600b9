package gateway

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"
)

// ErrNotFound reports an entity that is missing or owned by another tenant.
// The two cases are deliberately indistinguishable to callers.
var ErrNotFound = errors.New("record not found")

// ErrInsufficientStock reports a quantity change that would go below zero
var ErrInsufficientStock = errors.New("insufficient stock")

// DataAccessError wraps an underlying store failure. Handlers log it and
// surface a generic message; the raw error never reaches the response.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return "data access failed: " + e.Op + ": " + e.Err.Error()
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return &DataAccessError{Op: op, Err: err}
}

// wrapKeep is wrap, but lets domain sentinels pass through untouched
func wrapKeep(op string, err error) error {
	if errors.Is(err, ErrInsufficientStock) || errors.Is(err, ErrNotFound) {
		return err
	}
	return wrap(op, err)
}

// Gateway is the single data-access entry point. Every method takes the
// tenant ID as a required argument, so a query that forgets the tenant
// predicate cannot be written.
type Gateway struct {
	db   *gorm.DB
	pool *pgxpool.Pool
}

func New(db *gorm.DB, pool *pgxpool.Pool) *Gateway {
	return &Gateway{db: db, pool: pool}
}

// Tenant returns a session already filtered to the tenant's rows. Callers
// chain Model/Where/Find on it for entity CRUD; the tenant predicate is
// applied before anything else.
func (g *Gateway) Tenant(ctx context.Context, tenantID uuid.UUID) *gorm.DB {
	return g.db.WithContext(ctx).Where("user_id = ?", tenantID)
}

// Transaction runs fn atomically. Used where a quantity change touches more
// than one row (sale + decrement + movement, batch + product, PO receipt).
func (g *Gateway) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return g.db.WithContext(ctx).Transaction(fn)
}
