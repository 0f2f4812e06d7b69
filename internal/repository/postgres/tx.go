package postgres

import (
	"context"
	"database/sql"
)

// runInTx runs fn inside a transaction. The transaction is committed when
// fn returns nil and rolled back otherwise, so a failed mutation is never
// left half-applied.
func runInTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()
	err = fn(tx)
	return err
}
