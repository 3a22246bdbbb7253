package postgresql

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/charge_notifier/internal/domain"
)

const (
	TableFiles = "files"

	constraintFilesFingerprint = "files_fingerprint_key"
)

var fileColumns = []string{
	"id",
	"name",
	"fingerprint",
	"uploaded_at",
}

type FilesRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewFilesRepository(pool *pgxpool.Pool) *FilesRepository {
	return &FilesRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *FilesRepository) Files(ctx context.Context, limit, offset uint64) ([]*domain.File, int, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableFiles).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = r.qb.
		Select(fileColumns...).
		From(TableFiles).
		OrderBy("uploaded_at DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, executeQueryError(err)
	}

	files, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[domain.File])
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	return files, total, nil
}

func (r *FilesRepository) FileByID(ctx context.Context, id uuid.UUID) (*domain.File, error) {
	return r.fileWhere(ctx, sq.Eq{"id": id})
}

func (r *FilesRepository) FileByFingerprint(ctx context.Context, fingerprint string) (*domain.File, error) {
	return r.fileWhere(ctx, sq.Eq{"fingerprint": fingerprint})
}

func (r *FilesRepository) fileWhere(ctx context.Context, pred sq.Eq) (*domain.File, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(fileColumns...).
		From(TableFiles).
		Where(pred).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	file, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[domain.File])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, collectRowsError(err)
	}

	return file, nil
}

// CreateFile returns domain.ErrDuplicateFile when a file with the same fingerprint exists.
func (r *FilesRepository) CreateFile(ctx context.Context, name, fingerprint string) (*domain.File, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableFiles).
		Columns(
			"id",
			"name",
			"fingerprint",
		).
		Values(
			uuid.New(),
			name,
			fingerprint,
		).
		Suffix("RETURNING id, name, fingerprint, uploaded_at").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	file, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[domain.File])
	if err != nil {
		if isUniqueViolation(err, constraintFilesFingerprint) {
			return nil, domain.ErrDuplicateFile
		}
		return nil, collectRowsError(err)
	}

	return file, nil
}

// DeleteFile removes the file and, by cascade, its charges.
func (r *FilesRepository) DeleteFile(ctx context.Context, id uuid.UUID) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Delete(TableFiles).
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
