// Package storage provides the data persistence layer for the application.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chitieu-app/chitieu/internal/model"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrNegativeAmount     = errors.New("amount cannot be negative")
	ErrUnknownCategory    = errors.New("category is not in the allowed set")
	ErrInvalidTransaction = errors.New("invalid transaction")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTransaction enforces the storage-side invariants: non-empty
// owner and label, non-negative amount, category from the closed set and
// a real date. The input widgets constrain the same things, but the input
// boundary is not a security boundary.
func validateTransaction(txn *model.Transaction) error {
	if err := validateString(txn.Owner, "owner"); err != nil {
		return err
	}
	if err := validateString(txn.Label, "label"); err != nil {
		return err
	}
	if txn.Amount.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeAmount, txn.Amount)
	}
	if !model.ValidCategory(txn.Kind, txn.Category) {
		return fmt.Errorf("%w: %q for %s", ErrUnknownCategory, txn.Category, txn.Kind)
	}
	if txn.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidTransaction)
	}
	return nil
}
