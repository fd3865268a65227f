package domain

// Theme names the color scheme applied across the app.
type Theme string

// Available themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeRose  Theme = "rose"
	ThemeOcean Theme = "ocean"
)

// FontSize names the text scale applied across the app.
type FontSize string

// Available font sizes.
const (
	FontSizeSmall  FontSize = "small"
	FontSizeMedium FontSize = "medium"
	FontSizeLarge  FontSize = "large"
)

// Settings holds the user preferences that persist across restarts.
type Settings struct {
	Theme                Theme    `json:"theme"`
	FontSize             FontSize `json:"fontSize"`
	NotificationsEnabled bool     `json:"notificationsEnabled"`
	NotificationTime     string   `json:"notificationTime"`
}

// DefaultSettings returns the settings used when nothing is persisted.
func DefaultSettings() Settings {
	return Settings{
		Theme:                ThemeLight,
		FontSize:             FontSizeMedium,
		NotificationsEnabled: true,
		NotificationTime:     "09:00",
	}
}

// ColorScheme is the palette derived from a theme.
type ColorScheme struct {
	Primary     string
	PrimaryDark string
	Secondary   string
	Background  string
	Surface     string
	Text        string
	TextMuted   string
	Border      string
	Error       string
	Success     string
	Heart       string
}

var colorSchemes = map[Theme]ColorScheme{
	ThemeLight: {
		Primary: "#6366F1", PrimaryDark: "#4F46E5", Secondary: "#F59E0B",
		Background: "#FAFAFA", Surface: "#FFFFFF",
		Text: "#1F2937", TextMuted: "#6B7280", Border: "#E5E7EB",
		Error: "#EF4444", Success: "#10B981", Heart: "#EF4444",
	},
	ThemeDark: {
		Primary: "#818CF8", PrimaryDark: "#6366F1", Secondary: "#FBBF24",
		Background: "#0F172A", Surface: "#1E293B",
		Text: "#F8FAFC", TextMuted: "#94A3B8", Border: "#334155",
		Error: "#F87171", Success: "#34D399", Heart: "#F87171",
	},
	ThemeRose: {
		Primary: "#F43F5E", PrimaryDark: "#E11D48", Secondary: "#FB923C",
		Background: "#FFF1F2", Surface: "#FFFFFF",
		Text: "#1F2937", TextMuted: "#6B7280", Border: "#FECDD3",
		Error: "#EF4444", Success: "#10B981", Heart: "#F43F5E",
	},
	ThemeOcean: {
		Primary: "#0EA5E9", PrimaryDark: "#0284C7", Secondary: "#14B8A6",
		Background: "#F0F9FF", Surface: "#FFFFFF",
		Text: "#0C4A6E", TextMuted: "#0369A1", Border: "#BAE6FD",
		Error: "#EF4444", Success: "#10B981", Heart: "#EF4444",
	},
}

// Colors returns the palette for the theme, falling back to light for
// unknown names.
func (t Theme) Colors() ColorScheme {
	if scheme, ok := colorSchemes[t]; ok {
		return scheme
	}

	return colorSchemes[ThemeLight]
}

// FontScale is the point sizes derived from a font-size choice.
type FontScale struct {
	Quote  int
	Author int
	Body   int
	Title  int
	Header int
}

var fontScales = map[FontSize]FontScale{
	FontSizeSmall:  {Quote: 18, Author: 14, Body: 14, Title: 20, Header: 24},
	FontSizeMedium: {Quote: 22, Author: 16, Body: 16, Title: 24, Header: 28},
	FontSizeLarge:  {Quote: 26, Author: 18, Body: 18, Title: 28, Header: 32},
}

// Scale returns the point sizes for the font-size choice, falling back
// to medium for unknown names.
func (f FontSize) Scale() FontScale {
	if scale, ok := fontScales[f]; ok {
		return scale
	}

	return fontScales[FontSizeMedium]
}
