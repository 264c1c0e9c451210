package preference

// Layout values.
const (
	LayoutGrid = "grid"
	LayoutList = "list"
)

// CategoryAll clears the category filter.
const CategoryAll = "all"

// Layout is the blog grid/list toggle.
var Layout = Setting{
	Name:     "blogLayout",
	URLParam: "layout",
	Domain:   []string{LayoutGrid, LayoutList},
}

// Category is the blog category filter. Its domain is filled from the
// record catalog at runtime; "all" is always a member and never written to the URL.
var Category = Setting{
	Name:     "blogCategory",
	URLParam: "category",
	Domain:   []string{CategoryAll},
	ClearOn:  CategoryAll,
}

// CategorySetting returns the category setting for the given catalog categories.
func CategorySetting(categories []string) Setting {
	values := make([]string, 0, len(categories)+1)
	values = append(values, CategoryAll)
	for _, c := range categories {
		if c != "" && c != CategoryAll {
			values = append(values, c)
		}
	}
	return Category.WithDomain(values)
}
