package journal

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

var (
	turnHeader     = []string{"run_id", "turn", "date", "age", "cash", "bank", "savings", "debt", "net_worth", "happiness", "salary", "event", "family", "outcome"}
	cashFlowHeader = []string{"id", "run_id", "date", "type", "amount", "description", "category", "balance_after"}
)

type CSV struct {
	turns    *csv.Writer
	cashflow *csv.Writer
	tf, cf   *os.File
}

func NewCSV(turnsPath, cashflowPath string) (*CSV, error) {
	tf, err := os.Create(turnsPath)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", turnsPath, err)
	}
	cf, err := os.Create(cashflowPath)
	if err != nil {
		_ = tf.Close()
		return nil, fmt.Errorf("create %s: %w", cashflowPath, err)
	}

	j := &CSV{turns: csv.NewWriter(tf), cashflow: csv.NewWriter(cf), tf: tf, cf: cf}
	if err := j.write(j.turns, turnHeader); err != nil {
		_ = j.Close()
		return nil, err
	}
	if err := j.write(j.cashflow, cashFlowHeader); err != nil {
		_ = j.Close()
		return nil, err
	}
	return j, nil
}

func (j *CSV) write(w *csv.Writer, row []string) error {
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func (j *CSV) RecordTurn(t TurnRecord) error {
	return j.write(j.turns, []string{
		t.RunID,
		strconv.Itoa(t.Turn),
		t.Date,
		strconv.Itoa(t.Age),
		f(t.Cash),
		f(t.Bank),
		f(t.Savings),
		f(t.Debt),
		f(t.NetWorth),
		strconv.Itoa(t.Happiness),
		f(t.Salary),
		t.Event,
		t.Family,
		t.Outcome,
	})
}

func (j *CSV) RecordCashFlow(c CashFlow) error {
	return j.write(j.cashflow, []string{
		c.ID,
		c.RunID,
		c.Date,
		c.Type.String(),
		f(c.Amount),
		c.Description,
		c.Category,
		f(c.BalanceAfter),
	})
}

func (j *CSV) Close() error {
	j.turns.Flush()
	if err := j.turns.Error(); err != nil {
		return err
	}
	j.cashflow.Flush()
	if err := j.cashflow.Error(); err != nil {
		return err
	}
	if err := j.tf.Close(); err != nil {
		return err
	}
	return j.cf.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
