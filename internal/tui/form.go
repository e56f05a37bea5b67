package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"flowcast/internal/model"
)

// TransactionFormValues holds the string-typed state bound to the huh form
// fields while a transaction is being entered or edited.
type TransactionFormValues struct {
	Type          string
	Amount        string
	Description   string
	Category      string
	Date          string
	Recurrence    string
	RecurrenceEnd string
}

// NewFormValues returns form state pre-filled with sensible defaults.
func NewFormValues() *TransactionFormValues {
	return &TransactionFormValues{
		Type:       string(model.Expense),
		Date:       time.Now().Format("2006-01-02"),
		Recurrence: string(model.RecurNone),
	}
}

// FormValuesFromTransaction returns form state pre-filled from an existing
// transaction, for editing.
func FormValuesFromTransaction(tx model.Transaction) *TransactionFormValues {
	v := &TransactionFormValues{
		Type:        string(tx.Type),
		Amount:      tx.Amount.String(),
		Description: tx.Description,
		Category:    tx.Category,
		Date:        tx.Date.Format("2006-01-02"),
		Recurrence:  string(tx.Recurrence),
	}
	if tx.RecurrenceEnd != nil {
		v.RecurrenceEnd = tx.RecurrenceEnd.Format("2006-01-02")
	}
	return v
}

// Transaction converts the form state into a model transaction. The store
// performs its own validation on top of this.
func (v *TransactionFormValues) Transaction() (model.Transaction, error) {
	amount, err := decimal.NewFromString(v.Amount)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("invalid amount %q", v.Amount)
	}
	date, err := time.Parse("2006-01-02", v.Date)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", v.Date)
	}

	tx := model.Transaction{
		Type:        model.TransactionType(v.Type),
		Amount:      amount,
		Description: v.Description,
		Category:    v.Category,
		Date:        date,
		Recurrence:  model.Recurrence(v.Recurrence),
	}
	if v.RecurrenceEnd != "" {
		end, err := time.Parse("2006-01-02", v.RecurrenceEnd)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("invalid end date %q, want YYYY-MM-DD", v.RecurrenceEnd)
		}
		tx.RecurrenceEnd = &end
	}
	return tx, nil
}

// NewTransactionForm builds the entry form bound to v. categories may be
// empty, in which case the category field is a free-text input.
func NewTransactionForm(v *TransactionFormValues, categories []string) *huh.Form {
	recurrenceOptions := make([]huh.Option[string], 0, len(model.Recurrences))
	for _, r := range model.Recurrences {
		label := string(r)
		if r == model.RecurNone {
			label = "one-time"
		}
		recurrenceOptions = append(recurrenceOptions, huh.NewOption(label, string(r)))
	}

	fields := []huh.Field{
		huh.NewSelect[string]().
			Title("Type").
			Options(
				huh.NewOption("Expense", string(model.Expense)),
				huh.NewOption("Income", string(model.Income)),
			).
			Value(&v.Type),
		huh.NewInput().
			Title("Amount").
			Placeholder("0.00").
			Validate(validateAmount).
			Value(&v.Amount),
		huh.NewInput().
			Title("Description").
			Placeholder("Rent, salary, groceries...").
			Value(&v.Description),
	}

	if len(categories) > 0 {
		opts := make([]huh.Option[string], 0, len(categories)+1)
		opts = append(opts, huh.NewOption("(none)", ""))
		for _, c := range categories {
			opts = append(opts, huh.NewOption(c, c))
		}
		fields = append(fields, huh.NewSelect[string]().
			Title("Category").
			Options(opts...).
			Value(&v.Category))
	} else {
		fields = append(fields, huh.NewInput().
			Title("Category").
			Value(&v.Category))
	}

	fields = append(fields,
		huh.NewInput().
			Title("Date").
			Placeholder("YYYY-MM-DD").
			Validate(validateDate).
			Value(&v.Date),
		huh.NewSelect[string]().
			Title("Repeats").
			Options(recurrenceOptions...).
			Value(&v.Recurrence),
		huh.NewInput().
			Title("Repeat until (optional)").
			Placeholder("YYYY-MM-DD").
			Validate(validateOptionalDate).
			Value(&v.RecurrenceEnd),
	)

	return huh.NewForm(huh.NewGroup(fields...))
}

func validateAmount(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if !d.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	return validateDate(s)
}
