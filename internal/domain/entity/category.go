package entity

// Category represents a transaction category
type Category string

// The closed set of transaction categories
const (
	CategoryEntertainment  Category = "Entertainment"
	CategoryBills          Category = "Bills"
	CategoryGroceries      Category = "Groceries"
	CategoryDiningOut      Category = "Dining Out"
	CategoryTransportation Category = "Transportation"
	CategoryPersonalCare   Category = "Personal Care"
	CategoryEducation      Category = "Education"
	CategoryLifestyle      Category = "Lifestyle"
	CategoryShopping       Category = "Shopping"
	CategoryGeneral        Category = "General"
)

// Categories lists every allowed category
var Categories = []Category{
	CategoryEntertainment,
	CategoryBills,
	CategoryGroceries,
	CategoryDiningOut,
	CategoryTransportation,
	CategoryPersonalCare,
	CategoryEducation,
	CategoryLifestyle,
	CategoryShopping,
	CategoryGeneral,
}

// IsValidCategory reports whether the value is one of the allowed categories
func IsValidCategory(value string) bool {
	for _, c := range Categories {
		if value == string(c) {
			return true
		}
	}
	return false
}
