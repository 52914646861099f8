package term

import "time"

// Category enum
type Category string

const (
	CategoryIncome    Category = "income"
	CategoryDeduction Category = "deduction"
	CategoryOther     Category = "other"
)

// Term - one payroll dictionary entry. Labels maps locale codes to display
// labels (e.g. {"en": "Income Tax", "ja": "所得税"}). Entries with a nil
// UserID are seeded defaults visible to everyone; user-owned entries with
// the same key override them.
type Term struct {
	ID        string
	UserID    *string
	Key       string
	Category  Category
	Labels    map[string]string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LabelFor returns the label for the locale, falling back to English and
// then to the raw key.
func (t Term) LabelFor(locale string) string {
	if label, ok := t.Labels[locale]; ok {
		return label
	}
	if label, ok := t.Labels["en"]; ok {
		return label
	}
	return t.Key
}
