package domain

// Frequency describes how often a cash-flow record recurs.
type Frequency string

const (
	FrequencyHourly    Frequency = "hourly"
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
	FrequencyOneTime   Frequency = "one-time"
)

var validFrequencies = map[Frequency]bool{
	FrequencyHourly:    true,
	FrequencyDaily:     true,
	FrequencyWeekly:    true,
	FrequencyMonthly:   true,
	FrequencyQuarterly: true,
	FrequencyYearly:    true,
	FrequencyOneTime:   true,
}

// IsValid checks if the frequency is a known value.
func (f Frequency) IsValid() bool {
	return validFrequencies[f]
}

// Currency is a supported display/storage currency.
// Exactly two are supported; conversion is hardcoded to this pair.
type Currency string

const (
	CurrencyNGN Currency = "NGN"
	CurrencyUSD Currency = "USD"
)

// IsValid checks if the currency is a supported value.
func (c Currency) IsValid() bool {
	return c == CurrencyNGN || c == CurrencyUSD
}

// IncomeType classifies an income source.
type IncomeType string

const (
	IncomeTypeSalary   IncomeType = "salary"
	IncomeTypeInterest IncomeType = "interest"
	IncomeTypeOther    IncomeType = "other"
)

var validIncomeTypes = map[IncomeType]bool{
	IncomeTypeSalary:   true,
	IncomeTypeInterest: true,
	IncomeTypeOther:    true,
}

// IsValid checks if the income type is a known value.
func (t IncomeType) IsValid() bool {
	return validIncomeTypes[t]
}

// Label returns the display label for the income type.
func (t IncomeType) Label() string {
	switch t {
	case IncomeTypeSalary:
		return "Salary"
	case IncomeTypeInterest:
		return "Interest"
	default:
		return "Other"
	}
}

// ExpenseCategory classifies an expense record.
type ExpenseCategory string

const (
	CategoryGroceries     ExpenseCategory = "groceries"
	CategoryTransport     ExpenseCategory = "transport"
	CategoryUtilities     ExpenseCategory = "utilities"
	CategoryEntertainment ExpenseCategory = "entertainment"
	CategoryHealthcare    ExpenseCategory = "healthcare"
	CategoryEducation     ExpenseCategory = "education"
	CategoryShopping      ExpenseCategory = "shopping"
	CategoryOther         ExpenseCategory = "other"
)

var validCategories = map[ExpenseCategory]bool{
	CategoryGroceries:     true,
	CategoryTransport:     true,
	CategoryUtilities:     true,
	CategoryEntertainment: true,
	CategoryHealthcare:    true,
	CategoryEducation:     true,
	CategoryShopping:      true,
	CategoryOther:         true,
}

// IsValid checks if the category is a known value.
func (c ExpenseCategory) IsValid() bool {
	return validCategories[c]
}

var categoryLabels = map[ExpenseCategory]string{
	CategoryGroceries:     "Groceries",
	CategoryTransport:     "Transport",
	CategoryUtilities:     "Utilities",
	CategoryEntertainment: "Entertainment",
	CategoryHealthcare:    "Healthcare",
	CategoryEducation:     "Education",
	CategoryShopping:      "Shopping",
	CategoryOther:         "Other",
}

// Label returns the display label for the category.
func (c ExpenseCategory) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return "Other"
}

// ReminderFrequency controls how often savings reminder emails go out.
type ReminderFrequency string

const (
	ReminderDaily   ReminderFrequency = "daily"
	ReminderWeekly  ReminderFrequency = "weekly"
	ReminderMonthly ReminderFrequency = "monthly"
	ReminderNever   ReminderFrequency = "never"
)

var validReminderFrequencies = map[ReminderFrequency]bool{
	ReminderDaily:   true,
	ReminderWeekly:  true,
	ReminderMonthly: true,
	ReminderNever:   true,
}

// IsValid checks if the reminder frequency is a known value.
func (f ReminderFrequency) IsValid() bool {
	return validReminderFrequencies[f]
}
