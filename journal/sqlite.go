package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at path and applies the schema.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open journal %s: %w", path, err)
	}
	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create journal schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordTurn(t TurnRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO turns
		(run_id, turn, date, age, cash, bank, savings, debt, net_worth, happiness, salary, event, family, outcome)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.RunID, t.Turn, t.Date, t.Age, t.Cash, t.Bank, t.Savings, t.Debt,
		t.NetWorth, t.Happiness, t.Salary, t.Event, t.Family, t.Outcome,
	)
	return err
}

func (j *SQLite) RecordCashFlow(c CashFlow) error {
	_, err := j.db.Exec(`
		INSERT INTO cashflow
		(id, run_id, date, type, amount, description, category, balance_after)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.RunID, c.Date, c.Type.String(), c.Amount, c.Description, c.Category, c.BalanceAfter,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
