package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/tokopintar/tokokas/internal/apperrors"
	"github.com/tokopintar/tokokas/internal/core/domain"
	portsrepo "github.com/tokopintar/tokokas/internal/core/ports/repositories"
	"github.com/tokopintar/tokokas/internal/models"
	"github.com/tokopintar/tokokas/internal/utils/mapping"
)

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

type PgxInventoryRepository struct {
	BaseRepository
}

// NewPgxInventoryRepository creates a new repository for inventory data.
func NewPgxInventoryRepository(pool *pgxpool.Pool) portsrepo.InventoryRepositoryFacade {
	return &PgxInventoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxInventoryRepository implements portsrepo.InventoryRepositoryFacade
var _ portsrepo.InventoryRepositoryFacade = (*PgxInventoryRepository)(nil)

// UpsertItem creates the item or adds stockDelta to the existing stock while
// overwriting name and price. The read and write run in one transaction with
// the row locked, so concurrent restocks of the same code serialize. A lost
// insert race surfaces as ErrDuplicate; retrying re-reads current stock, so
// the operation is idempotent at the business level.
func (r *PgxInventoryRepository) UpsertItem(ctx context.Context, code string, name string, stockDelta int64, price decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	now := time.Now().UTC()

	var currentStock int64
	err = tx.QueryRow(ctx, `SELECT stock FROM inventory_items WHERE code = $1 FOR UPDATE;`, code).Scan(&currentStock)
	switch {
	case err == nil:
		updateQuery := `
			UPDATE inventory_items
			SET name = $2, stock = $3, price = $4, last_updated_at = $5
			WHERE code = $1;
		`
		_, err = tx.Exec(ctx, updateQuery, code, name, currentStock+stockDelta, price, now)
		if err != nil {
			return apperrors.NewAppError(500, "failed to restock inventory item "+code, err)
		}
	case errors.Is(err, pgx.ErrNoRows):
		insertQuery := `
			INSERT INTO inventory_items (code, name, stock, price, created_at, last_updated_at)
			VALUES ($1, $2, $3, $4, $5, $5);
		`
		_, err = tx.Exec(ctx, insertQuery, code, name, stockDelta, price, now)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				// Concurrent insert of the same code won the race.
				return apperrors.NewAppError(409, "inventory item "+code+" already exists", apperrors.ErrDuplicate)
			}
			return apperrors.NewAppError(500, "failed to insert inventory item "+code, err)
		}
	default:
		return apperrors.NewAppError(500, "failed to read inventory item "+code, err)
	}

	return r.Commit(ctx, tx)
}

// AdjustStock applies delta to the item's stock. The row is locked for the
// check-then-write, so two concurrent decrements cannot both pass the
// non-negativity check against a stale read.
func (r *PgxInventoryRepository) AdjustStock(ctx context.Context, code string, delta int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var currentStock int64
	err = tx.QueryRow(ctx, `SELECT stock FROM inventory_items WHERE code = $1 FOR UPDATE;`, code).Scan(&currentStock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("inventory item " + code + " not found")
		}
		return apperrors.NewAppError(500, "failed to read inventory item "+code, err)
	}

	newStock := currentStock + delta
	if newStock < 0 {
		return apperrors.NewInsufficientStockError(currentStock)
	}

	updateQuery := `
		UPDATE inventory_items
		SET stock = $2, last_updated_at = $3
		WHERE code = $1;
	`
	_, err = tx.Exec(ctx, updateQuery, code, newStock, time.Now().UTC())
	if err != nil {
		return apperrors.NewAppError(500, "failed to update stock for inventory item "+code, err)
	}

	return r.Commit(ctx, tx)
}

// ListItems returns all inventory items in primary-key (code) order.
func (r *PgxInventoryRepository) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	query := `
		SELECT code, name, stock, price, created_at, last_updated_at
		FROM inventory_items
		ORDER BY code ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query inventory items", err)
	}
	defer rows.Close()

	items := []models.InventoryItem{}
	for rows.Next() {
		var i models.InventoryItem
		err := rows.Scan(
			&i.Code,
			&i.Name,
			&i.Stock,
			&i.Price,
			&i.CreatedAt,
			&i.LastUpdatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan inventory item row", err)
		}
		items = append(items, i)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating inventory item rows", err)
	}

	return mapping.ToDomainInventoryItemSlice(items), nil
}
