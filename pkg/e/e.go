package e

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternal       = errors.New("internal error")
	ErrDeadline       = errors.New("deadline exceeded")
	ErrCanceled       = errors.New("context canceled")
	ErrSchemaMissing  = errors.New("schema missing")
	ErrPolicyRejected = errors.New("rejected by write policy")
)

// признаки отсутствующей таблицы в тексте ошибки
var schemaMissingSignatures = []string{
	"does not exist",
	"Could not find the table",
}

// WrapError приводит ошибку хранилища к одной из сигнальных ошибок пакета
func WrapError(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, ErrDeadline)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, ErrCanceled)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UndefinedTable, pgerrcode.UndefinedColumn:
			return fmt.Errorf("%s: %s: %w", op, pgErr.Message, ErrSchemaMissing)
		case pgerrcode.InsufficientPrivilege:
			return fmt.Errorf("%s: %w", op, ErrPolicyRejected)
		case pgerrcode.ForeignKeyViolation, pgerrcode.CheckViolation, pgerrcode.InvalidTextRepresentation:
			return fmt.Errorf("%s: %w", op, ErrInvalidInput)
		default:
			return fmt.Errorf("%s: pg error %s: %s: %w", op, pgErr.Code, pgErr.Message, ErrInternal)
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if IsSchemaMissing(err) {
		return fmt.Errorf("%s: %s: %w", op, err.Error(), ErrSchemaMissing)
	}
	return fmt.Errorf("%s: %v: %w", op, err, ErrInternal)
}

// IsSchemaMissing распознает отсутствие таблиц хранилища по коду или тексту ошибки
func IsSchemaMissing(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrSchemaMissing) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UndefinedTable {
		return true
	}
	msg := err.Error()
	for _, sig := range schemaMissingSignatures {
		if strings.Contains(msg, sig) {
			return true
		}
	}
	return false
}
