package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/charge_notifier/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	TableCharges        = "charges"
	tableChargesStaging = "charges_staging"
)

var chargeColumns = []string{
	"id",
	"file_id",
	"name",
	"government_id",
	"email",
	"debt_amount",
	"debt_due_date",
	"debt_id",
	"status",
	"error_message",
	"attempts",
	"created_at",
	"updated_at",
}

var stagingColumns = []string{
	"position",
	"id",
	"file_id",
	"name",
	"government_id",
	"email",
	"debt_amount",
	"debt_due_date",
	"debt_id",
	"status",
}

const createStagingTable = `CREATE TEMP TABLE IF NOT EXISTS charges_staging (
	position      INTEGER NOT NULL,
	id            UUID NOT NULL,
	file_id       UUID NOT NULL,
	name          TEXT NOT NULL,
	government_id TEXT NOT NULL,
	email         TEXT NOT NULL,
	debt_amount   NUMERIC NOT NULL,
	debt_due_date DATE NOT NULL,
	debt_id       UUID NOT NULL,
	status        TEXT NOT NULL
) ON COMMIT DROP`

type chargeRow struct {
	ID           uuid.UUID      `db:"id"`
	FileID       uuid.UUID      `db:"file_id"`
	Name         string         `db:"name"`
	GovernmentID string         `db:"government_id"`
	Email        string         `db:"email"`
	DebtAmount   pgtype.Numeric `db:"debt_amount"`
	DebtDueDate  time.Time      `db:"debt_due_date"`
	DebtID       uuid.UUID      `db:"debt_id"`
	Status       domain.Status  `db:"status"`
	ErrorMessage *string        `db:"error_message"`
	Attempts     int            `db:"attempts"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (r *chargeRow) toDomain() *domain.Charge {
	return &domain.Charge{
		ChargeRecord: domain.ChargeRecord{
			Name:         r.Name,
			GovernmentID: r.GovernmentID,
			Email:        r.Email,
			DebtAmount:   decimalFromNumeric(r.DebtAmount),
			DebtDueDate:  r.DebtDueDate,
			DebtID:       r.DebtID,
		},
		ID:           r.ID,
		FileID:       r.FileID,
		Status:       r.Status,
		ErrorMessage: r.ErrorMessage,
		Attempts:     r.Attempts,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func decimalFromNumeric(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

func numericFromDecimal(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

type ChargesRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewChargesRepository(pool *pgxpool.Pool) *ChargesRepository {
	return &ChargesRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveCharges inserts charges and silently skips those whose debt_id already exists,
// including repeats inside charges itself (the first occurrence wins). It returns
// the number of rows actually inserted.
//
// The rows are copied into a transaction-scoped staging table first, so SaveCharges
// must run inside TxManager.WithTransaction.
func (r *ChargesRepository) SaveCharges(ctx context.Context, charges ...*domain.Charge) (int64, error) {
	tx, ok := ctx.Value(ctxKey{}).(pgx.Tx)
	if !ok {
		return 0, errors.New("failed to save charges: no transaction in context")
	}

	if len(charges) == 0 {
		return 0, nil
	}

	if _, err := tx.Exec(ctx, createStagingTable); err != nil {
		return 0, fmt.Errorf("failed to create staging table: %w", err)
	}

	if _, err := tx.Exec(ctx, "TRUNCATE "+tableChargesStaging); err != nil {
		return 0, fmt.Errorf("failed to truncate staging table: %w", err)
	}

	copied, err := tx.CopyFrom(ctx, pgx.Identifier{tableChargesStaging}, stagingColumns,
		pgx.CopyFromSlice(len(charges), func(i int) ([]any, error) {
			c := charges[i]
			return []any{
				i,
				pgtype.UUID{Bytes: c.ID, Valid: true},
				pgtype.UUID{Bytes: c.FileID, Valid: true},
				c.Name,
				c.GovernmentID,
				c.Email,
				numericFromDecimal(c.DebtAmount),
				c.DebtDueDate,
				pgtype.UUID{Bytes: c.DebtID, Valid: true},
				string(c.Status),
			}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to copy charges: %w", err)
	}

	if copied != int64(len(charges)) {
		return 0, fmt.Errorf("failed to copy charges: copied %d rows, expected %d", copied, len(charges))
	}

	columns := stagingColumns[1:]

	sql, args, err := r.qb.
		Insert(TableCharges).
		Columns(columns...).
		Select(
			r.qb.
				Select(columns...).
				From(tableChargesStaging).
				OrderBy("position"),
		).
		Suffix("ON CONFLICT (debt_id) DO NOTHING").
		ToSql()
	if err != nil {
		return 0, createQueryError(err)
	}

	tag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return 0, executeQueryError(err)
	}

	return tag.RowsAffected(), nil
}

func (r *ChargesRepository) PendingChargesByFile(ctx context.Context, fileID uuid.UUID) ([]*domain.Charge, error) {
	return r.chargesWhere(ctx, sq.Eq{"file_id": fileID, "status": domain.StatusPending})
}

// ResumableCharges returns charges that still need a lifecycle task: pending ones and
// failed ones with attempts left.
func (r *ChargesRepository) ResumableCharges(ctx context.Context, maxAttempts int) ([]*domain.Charge, error) {
	return r.chargesWhere(ctx, sq.Or{
		sq.Eq{"status": domain.StatusPending},
		sq.And{
			sq.Eq{"status": domain.StatusFailed},
			sq.Lt{"attempts": maxAttempts},
		},
	})
}

func (r *ChargesRepository) chargesWhere(ctx context.Context, pred sq.Sqlizer) ([]*domain.Charge, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(chargeColumns...).
		From(TableCharges).
		Where(pred).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	return r.collect(ctx, db, sql, args)
}

func (r *ChargesRepository) ChargesByFile(
	ctx context.Context,
	fileID uuid.UUID,
	status domain.Status,
	limit, offset uint64,
) ([]*domain.Charge, int, error) {
	db := extractDB(ctx, r.pool)

	pred := sq.Eq{"file_id": fileID}
	if status != "" {
		pred["status"] = status
	}

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableCharges).
		Where(pred).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = r.qb.
		Select(chargeColumns...).
		From(TableCharges).
		Where(pred).
		OrderBy("created_at ASC", "id ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	charges, err := r.collect(ctx, db, sql, args)
	if err != nil {
		return nil, -1, err
	}

	return charges, total, nil
}

func (r *ChargesRepository) ChargeByID(ctx context.Context, id uuid.UUID) (*domain.Charge, error) {
	return r.chargeByID(ctx, id, false)
}

// ChargeByIDForUpdate locks the row until the surrounding transaction ends.
func (r *ChargesRepository) ChargeByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Charge, error) {
	return r.chargeByID(ctx, id, true)
}

func (r *ChargesRepository) chargeByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*domain.Charge, error) {
	db := extractDB(ctx, r.pool)

	query := r.qb.
		Select(chargeColumns...).
		From(TableCharges).
		Where(sq.Eq{"id": id})

	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[chargeRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, collectRowsError(err)
	}

	return row.toDomain(), nil
}

func (r *ChargesRepository) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status domain.Status,
	errorMessage *string,
	attempts int,
) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableCharges).
		Set("status", status).
		Set("error_message", errorMessage).
		Set("attempts", attempts).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// ResetProcessingCharges moves charges interrupted by a crash back to pending.
func (r *ChargesRepository) ResetProcessingCharges(ctx context.Context) (int64, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableCharges).
		Set("status", domain.StatusPending).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"status": domain.StatusProcessing}).
		ToSql()
	if err != nil {
		return 0, createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, executeQueryError(err)
	}

	return tag.RowsAffected(), nil
}

func (r *ChargesRepository) collect(ctx context.Context, db DBTX, sql string, args []any) ([]*domain.Charge, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	chargeRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[chargeRow])
	if err != nil {
		return nil, collectRowsError(err)
	}

	charges := make([]*domain.Charge, 0, len(chargeRows))
	for i := range chargeRows {
		charges = append(charges, chargeRows[i].toDomain())
	}

	return charges, nil
}
