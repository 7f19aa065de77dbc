package journal

const Schema = `
CREATE TABLE IF NOT EXISTS turns (
	run_id TEXT NOT NULL,
	turn INTEGER NOT NULL,
	date TEXT NOT NULL,
	age INTEGER NOT NULL,
	cash REAL NOT NULL,
	bank REAL NOT NULL,
	savings REAL NOT NULL,
	debt REAL NOT NULL,
	net_worth REAL NOT NULL,
	happiness INTEGER NOT NULL,
	salary REAL NOT NULL,
	event TEXT NOT NULL,
	family TEXT NOT NULL,
	outcome TEXT NOT NULL,
	PRIMARY KEY (run_id, turn)
);

CREATE TABLE IF NOT EXISTS cashflow (
	id TEXT NOT NULL,
	run_id TEXT NOT NULL,
	date TEXT NOT NULL,
	type TEXT NOT NULL,
	amount REAL NOT NULL,
	description TEXT NOT NULL,
	category TEXT NOT NULL,
	balance_after REAL NOT NULL,
	PRIMARY KEY (run_id, id)
);

CREATE INDEX IF NOT EXISTS idx_cashflow_run ON cashflow(run_id, date);
`
