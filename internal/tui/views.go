package tui

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/MKhiriev/blueprint-utils/models"
)

// RenderCount renders the result of a count route.
func RenderCount(title string, count int64) string {
	return renderPage(title, strconv.FormatInt(count, 10))
}

// RenderAssociations renders one row per association.
func RenderAssociations(model string, associations []models.Association) string {
	rows := make([][]string, 0, len(associations))
	for _, a := range associations {
		rows = append(rows, []string{a.Alias, a.Type, a.Model, a.Collection, a.Via, a.Through})
	}
	if len(rows) == 0 {
		return renderPage(fmt.Sprintf("%s ASSOCIATIONS", model), "")
	}

	return renderPage(
		fmt.Sprintf("%s ASSOCIATIONS", model),
		renderTable([]string{"ALIAS", "TYPE", "MODEL", "COLLECTION", "VIA", "THROUGH"}, rows),
	)
}

// RenderSchema renders one row per attribute in declaration order. Custom
// rules are listed in the last column.
func RenderSchema(model string, attrs models.Attributes) string {
	rows := make([][]string, 0, len(attrs))
	for _, a := range attrs {
		rows = append(rows, []string{
			a.Name,
			a.Type,
			formatValue(a.Required),
			formatValue(a.Unique),
			formatValue(a.MinLength),
			formatValue(a.MaxLength),
			formatValue(a.Enum),
			formatRules(a.Rules),
		})
	}

	return renderPage(
		fmt.Sprintf("%s SCHEMA", model),
		renderTable([]string{"NAME", "TYPE", "REQUIRED", "UNIQUE", "MIN", "MAX", "ENUM", "RULES"}, rows),
	)
}

// RenderFilters renders one row per filter.
func RenderFilters(model string, filters []models.Filter) string {
	rows := make([][]string, 0, len(filters))
	for _, f := range filters {
		rows = append(rows, []string{
			f.Name,
			f.Text,
			f.Type,
			formatValue(f.MinLength),
			formatValue(f.MaxLength),
			formatValue(f.Enum),
		})
	}
	if len(rows) == 0 {
		return renderPage(fmt.Sprintf("%s FILTERS", model), "")
	}

	return renderPage(
		fmt.Sprintf("%s FILTERS", model),
		renderTable([]string{"NAME", "TEXT", "TYPE", "MIN", "MAX", "ENUM"}, rows),
	)
}

// RenderTitles renders the titles sorted by attribute name.
func RenderTitles(model string, titles map[string]string) string {
	names := make([]string, 0, len(titles))
	for name := range titles {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name, titles[name]})
	}
	if len(rows) == 0 {
		return renderPage(fmt.Sprintf("%s TITLES", model), "")
	}

	return renderPage(
		fmt.Sprintf("%s TITLES", model),
		renderTable([]string{"ATTRIBUTE", "TITLE"}, rows),
	)
}

func formatRules(rules map[string]any) string {
	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := ""
	for i, k := range keys {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s=%v", k, rules[k])
	}
	return out
}
