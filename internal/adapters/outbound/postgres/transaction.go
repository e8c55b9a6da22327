package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
)

// newStatementBuilder returns a Postgres statement builder bound to br.
func newStatementBuilder(br squirrel.BaseRunner) squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br)
}

// runInTx runs fn within a database transaction. The transaction is rolled
// back when fn fails and committed otherwise.
func runInTx(ctx context.Context, db *sql.DB, fn func(sb squirrel.StatementBuilderType) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	err = fn(newStatementBuilder(tx))
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction rollback error: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
