package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/chitieu-app/chitieu/internal/model"
	"github.com/shopspring/decimal"
)

// Per-table statements. The table enum dispatches onto constant SQL; no
// identifier is ever interpolated from input.
const (
	insertExpenseSQL = `INSERT INTO expenses(owner, item_name, amount, category, date) VALUES (?, ?, ?, ?, ?)`
	insertIncomeSQL  = `INSERT INTO income(owner, source, amount, category, date) VALUES (?, ?, ?, ?, ?)`

	viewExpensesSQL = `SELECT item_name, category, date, amount FROM expenses WHERE owner = ? ORDER BY id`
	viewIncomeSQL   = `SELECT source, category, date, amount FROM income WHERE owner = ? ORDER BY id`

	listExpensesSQL = `SELECT id, owner, item_name, amount, category, date FROM expenses WHERE owner = ? ORDER BY id`
	listIncomeSQL   = `SELECT id, owner, source, amount, category, date FROM income WHERE owner = ? ORDER BY id`

	deleteExpenseSQL = `DELETE FROM expenses WHERE id = ? AND owner = ?`
	deleteIncomeSQL  = `DELETE FROM income WHERE id = ? AND owner = ?`
)

// AddExpense inserts one expense row for owner and invalidates the read
// cache.
func (s *Store) AddExpense(ctx context.Context, owner, label string, amount decimal.Decimal, category string, date time.Time) error {
	return s.addTransaction(ctx, model.TableExpenses, model.Transaction{
		Owner:    owner,
		Label:    label,
		Amount:   amount,
		Category: category,
		Date:     date,
		Kind:     model.KindExpense,
	})
}

// AddIncome inserts one income row for owner and invalidates the read
// cache.
func (s *Store) AddIncome(ctx context.Context, owner, source string, amount decimal.Decimal, category string, date time.Time) error {
	return s.addTransaction(ctx, model.TableIncome, model.Transaction{
		Owner:    owner,
		Label:    source,
		Amount:   amount,
		Category: category,
		Date:     date,
		Kind:     model.KindIncome,
	})
}

func (s *Store) addTransaction(ctx context.Context, table model.Table, txn model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransaction(&txn); err != nil {
		return err
	}

	query := insertExpenseSQL
	if table == model.TableIncome {
		query = insertIncomeSQL
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	_, err := s.db.ExecContext(ctx, query,
		txn.Owner,
		txn.Label,
		txn.Amount.InexactFloat64(),
		txn.Category,
		txn.Date.Format(model.DateLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}

	s.cache.invalidateAll()
	return nil
}

// DeleteRecord deletes at most one row matched by both id and owner. The
// owner check prevents cross-account deletion even when an id is guessed.
// It returns the number of rows affected; deleting an absent id is a
// no-op, not an error.
func (s *Store) DeleteRecord(ctx context.Context, table model.Table, id int64, owner string) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateString(owner, "owner"); err != nil {
		return 0, err
	}

	query := deleteExpenseSQL
	if table == model.TableIncome {
		query = deleteIncomeSQL
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	res, err := s.db.ExecContext(ctx, query, id, owner)
	if err != nil {
		return 0, fmt.Errorf("failed to delete from %s: %w", table, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}

	s.cache.invalidateAll()
	return affected, nil
}

// ViewExpenses returns all expense rows for owner in display shape,
// memoized per the read cache policy.
func (s *Store) ViewExpenses(ctx context.Context, owner string) ([]model.Row, error) {
	return s.viewRows(ctx, "view_expenses", viewExpensesSQL, owner)
}

// ViewIncome returns all income rows for owner in display shape, memoized
// per the read cache policy.
func (s *Store) ViewIncome(ctx context.Context, owner string) ([]model.Row, error) {
	return s.viewRows(ctx, "view_income", viewIncomeSQL, owner)
}

func (s *Store) viewRows(ctx context.Context, queryName, query, owner string) ([]model.Row, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(owner, "owner"); err != nil {
		return nil, err
	}

	key := cacheKey(queryName, owner)
	if rows, ok := s.cache.get(key); ok {
		return rows, nil
	}

	rows, err := s.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", queryName, err)
	}
	defer func() { _ = rows.Close() }()

	var result []model.Row
	for rows.Next() {
		var r model.Row
		var amount float64
		if err := rows.Scan(&r.Label, &r.Category, &r.Date, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		r.Amount = decimal.NewFromFloat(amount)
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	s.cache.set(key, result)
	return result, nil
}

// Totals returns owner's income and expense sums for the overview
// header. It reads through the cached views, so the figures follow the
// same TTL and invalidation policy as the history tables.
func (s *Store) Totals(ctx context.Context, owner string) (model.Summary, error) {
	expenses, err := s.ViewExpenses(ctx, owner)
	if err != nil {
		return model.Summary{}, err
	}
	income, err := s.ViewIncome(ctx, owner)
	if err != nil {
		return model.Summary{}, err
	}

	sum := model.Summary{Income: decimal.Zero, Expense: decimal.Zero}
	for _, r := range expenses {
		sum.Expense = sum.Expense.Add(r.Amount)
	}
	for _, r := range income {
		sum.Income = sum.Income.Add(r.Amount)
	}
	return sum, nil
}

// ListWithIDs returns owner's rows with their raw ids, backing the
// delete/edit workflow. It is deliberately uncached: the edit screen must
// reflect the immediate post-write state.
func (s *Store) ListWithIDs(ctx context.Context, table model.Table, owner string) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(owner, "owner"); err != nil {
		return nil, err
	}

	query := listExpensesSQL
	if table == model.TableIncome {
		query = listIncomeSQL
	}

	rows, err := s.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", table, err)
	}
	defer func() { _ = rows.Close() }()

	var result []model.Transaction
	for rows.Next() {
		var txn model.Transaction
		var amount float64
		var date string
		if err := rows.Scan(&txn.ID, &txn.Owner, &txn.Label, &amount, &txn.Category, &date); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		txn.Amount = decimal.NewFromFloat(amount)
		txn.Kind = table.Kind()
		if parsed, parseErr := time.Parse(model.DateLayout, date); parseErr == nil {
			txn.Date = parsed
		}
		result = append(result, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	return result, nil
}
