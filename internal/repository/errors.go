package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrStoreUnavailable    = errors.New("store unavailable")
	ErrConstraintViolation = errors.New("constraint violation")
)

// StoreError carries the kind of a failed store operation together with the
// driver error. Its message is the driver message, unchanged.
type StoreError struct {
	Kind error
	Op   string
	Err  error
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Is(target error) bool {
	return target == e.Kind
}

// integrity_constraint_violation class
const constraintClass = "23"

// Wrap classifies a driver error for op. Nil stays nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}

	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return err
	}

	kind := ErrStoreUnavailable
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 && pgErr.Code[:2] == constraintClass {
		kind = ErrConstraintViolation
	}
	return &StoreError{Kind: kind, Op: op, Err: err}
}
