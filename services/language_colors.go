package services

// DefaultLanguageColor is used for languages without a known display color.
const DefaultLanguageColor = "#8b8b8b"

// languageColors maps programming language names to their conventional
// display colors (the GitHub linguist palette).
var languageColors = map[string]string{
	"Python":      "#3572A5",
	"JavaScript":  "#f1e05a",
	"TypeScript":  "#3178c6",
	"Java":        "#b07219",
	"C":           "#555555",
	"C++":         "#f34b7d",
	"C#":          "#178600",
	"Go":          "#00ADD8",
	"Rust":        "#dea584",
	"Ruby":        "#701516",
	"PHP":         "#4F5D95",
	"Swift":       "#F05138",
	"Kotlin":      "#A97BFF",
	"Dart":        "#00B4AB",
	"HTML":        "#e34c26",
	"CSS":         "#663399",
	"SCSS":        "#c6538c",
	"Shell":       "#89e051",
	"PowerShell":  "#012456",
	"Lua":         "#000080",
	"R":           "#198CE7",
	"Scala":       "#c22d40",
	"Haskell":     "#5e5086",
	"Elixir":      "#6e4a7e",
	"Vue":         "#41b883",
	"Svelte":      "#ff3e00",
	"Objective-C": "#438eff",
	"Jupyter Notebook": "#DA5B0B",
	"Dockerfile":  "#384d54",
	"Makefile":    "#427819",
	"GDScript":    "#355570",
	"ShaderLab":   "#222c37",
	"HLSL":        "#aace60",
	"TeX":         "#3D6117",
	"Vim Script":  "#199f4b",
	"Perl":        "#0298c3",
	"Assembly":    "#6E4C13",
}

// LanguageColor returns the display color for a language name, or the neutral
// default when the language is unknown.
func LanguageColor(name string) string {
	if color, ok := languageColors[name]; ok {
		return color
	}
	return DefaultLanguageColor
}
