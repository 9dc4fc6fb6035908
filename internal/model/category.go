package model

// Category values are the Vietnamese labels the original product ships and
// the AI response contract fixes. The UI constrains input to these sets;
// storage rejects anything else as well.
var (
	// ExpenseCategories is the closed set for the expenses table.
	ExpenseCategories = []string{"Ăn uống", "Di chuyển", "Nhà cửa", "Giải trí", "Khác"}

	// IncomeCategories is the closed set for the income table.
	IncomeCategories = []string{"Lương", "Hoa Hồng", "Nghề tay trái", "Rửa tiền", "Khác"}
)

// CategoriesFor returns the closed category set for a transaction kind.
func CategoriesFor(kind Kind) []string {
	if kind == KindIncome {
		return IncomeCategories
	}
	return ExpenseCategories
}

// ValidCategory reports whether category belongs to the closed set for kind.
func ValidCategory(kind Kind, category string) bool {
	for _, c := range CategoriesFor(kind) {
		if c == category {
			return true
		}
	}
	return false
}
