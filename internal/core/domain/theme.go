package domain

// Theme is a fixed-vocabulary topical tag used to filter search results.
type Theme string

// Available themes.
const (
	ThemeBusiness      Theme = "Business"
	ThemeEconomics     Theme = "Economics"
	ThemeEntertainment Theme = "Entertainment"
	ThemeFinance       Theme = "Finance"
	ThemeHealth        Theme = "Health"
	ThemePolitics      Theme = "Politics"
	ThemeScience       Theme = "Science"
	ThemeSports        Theme = "Sports"
	ThemeTech          Theme = "Tech"
	ThemeCrime         Theme = "Crime"
	ThemeLifestyle     Theme = "Lifestyle"
	ThemeTravel        Theme = "Travel"
	ThemeGeneral       Theme = "General"
)

// Themes lists every recognised theme, in display order.
var Themes = []Theme{
	ThemeBusiness,
	ThemeEconomics,
	ThemeEntertainment,
	ThemeFinance,
	ThemeHealth,
	ThemePolitics,
	ThemeScience,
	ThemeSports,
	ThemeTech,
	ThemeCrime,
	ThemeLifestyle,
	ThemeTravel,
	ThemeGeneral,
}

// IsValid returns true if the theme is recognised.
func (t Theme) IsValid() bool {
	for _, known := range Themes {
		if t == known {
			return true
		}
	}
	return false
}

// String returns the string representation.
func (t Theme) String() string {
	return string(t)
}
