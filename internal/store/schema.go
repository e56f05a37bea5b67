package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS transactions (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    type             TEXT NOT NULL CHECK (type IN ('income', 'expense')),
    amount           TEXT NOT NULL,
    description      TEXT NOT NULL DEFAULT '',
    category         TEXT NOT NULL DEFAULT '',
    date             TEXT NOT NULL,
    recurrence       TEXT NOT NULL DEFAULT 'none',
    recurrence_end   TEXT,
    created_at       TEXT NOT NULL,
    updated_at       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS categories (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    name             TEXT NOT NULL UNIQUE,
    type             TEXT NOT NULL CHECK (type IN ('income', 'expense'))
);

CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date);
CREATE INDEX IF NOT EXISTS idx_transactions_type ON transactions(type);
`

// defaultCategories seeds an empty categories table on first open.
var defaultCategories = []struct {
	name string
	typ  string
}{
	{"Salary", "income"},
	{"Freelance", "income"},
	{"Investments", "income"},
	{"Other Income", "income"},
	{"Housing", "expense"},
	{"Groceries", "expense"},
	{"Transport", "expense"},
	{"Utilities", "expense"},
	{"Entertainment", "expense"},
	{"Other Expense", "expense"},
}
