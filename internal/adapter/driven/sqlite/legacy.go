package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// legacyTable describes a table created by the pre-migration tasks.db schema.
// Such a table is recognised by marker, a column the current schema does not
// have. It is parked under a new name while migrations create the current
// table, then its rows are copied across and it is dropped.
type legacyTable struct {
	name    string
	marker  string
	parked  string
	copySQL string
}

var legacyTables = []legacyTable{
	{
		name:   "tasks",
		marker: "task",
		parked: "legacy_tasks",
		copySQL: `
			INSERT INTO tasks (id, title, description, completed)
			SELECT id, task,
				COALESCE(NULLIF(TRIM(description), ''), 'No description'),
				CASE WHEN completed THEN 1 ELSE 0 END
			FROM legacy_tasks
			ORDER BY id
		`,
	},
	{
		name:   "users",
		marker: "password",
		parked: "legacy_users",
		copySQL: `
			INSERT INTO users (id, username, password_hash)
			SELECT id, username, password
			FROM legacy_users
			WHERE username <> ''
			ORDER BY id
		`,
	},
}

// parkLegacyTables renames legacy tables out of the way so migrations can
// create the current ones.
func parkLegacyTables(ctx context.Context, db *sql.DB) error {
	for _, t := range legacyTables {
		legacy, err := hasColumn(ctx, db, t.name, t.marker)
		if err != nil {
			return err
		}
		if !legacy {
			continue
		}

		if _, err := db.ExecContext(ctx, fmt.Sprintf(`ALTER TABLE %s RENAME TO %s`, t.name, t.parked)); err != nil {
			return fmt.Errorf("park legacy table %s: %w", t.name, err)
		}
	}

	return nil
}

// restoreLegacyTables copies parked rows into the current tables and drops
// the parked tables. IDs and the AUTOINCREMENT high-water mark are kept, so
// IDs of tasks deleted before the upgrade are not handed out again.
func restoreLegacyTables(ctx context.Context, db *sql.DB) error {
	for _, t := range legacyTables {
		exists, err := tableExists(ctx, db, t.parked)
		if err != nil {
			return err
		}
		if !exists {
			continue
		}

		if err := restoreLegacyTable(ctx, db, t); err != nil {
			return err
		}
	}

	return nil
}

func restoreLegacyTable(ctx context.Context, db *sql.DB, t legacyTable) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin restore of %s: %w", t.name, err)
	}
	defer tx.Rollback() //nolint:errcheck

	steps := []struct {
		query string
		args  []any
	}{
		{query: t.copySQL},
		{query: `DELETE FROM sqlite_sequence WHERE name = ?`, args: []any{t.name}},
		{query: `UPDATE sqlite_sequence SET name = ? WHERE name = ?`, args: []any{t.name, t.parked}},
		{query: fmt.Sprintf(`DROP TABLE %s`, t.parked)},
	}
	for _, step := range steps {
		if _, err := tx.ExecContext(ctx, step.query, step.args...); err != nil {
			return fmt.Errorf("restore legacy table %s: %w", t.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit restore of %s: %w", t.name, err)
	}

	return nil
}

func hasColumn(ctx context.Context, db *sql.DB, table, column string) (bool, error) {
	const query = `SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`

	var count int
	if err := db.QueryRowContext(ctx, query, table, column).Scan(&count); err != nil {
		return false, fmt.Errorf("inspect table %s: %w", table, err)
	}

	return count > 0, nil
}

func tableExists(ctx context.Context, db *sql.DB, table string) (bool, error) {
	const query = `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`

	var count int
	if err := db.QueryRowContext(ctx, query, table).Scan(&count); err != nil {
		return false, fmt.Errorf("look up table %s: %w", table, err)
	}

	return count > 0, nil
}
