package shared

import "fmt"

// Locale holds the user-facing labels for groups and exports.
type Locale struct {
	Name           string
	GroupLabel     string // fmt verb for a 1-based group number
	Header         []string
	FilenamePrefix string
}

var locales = map[string]Locale{
	"en": {
		Name:           "en",
		GroupLabel:     "Group %d",
		Header:         []string{"Group", "Name"},
		FilenamePrefix: "groups",
	},
	"zh-TW": {
		Name:           "zh-TW",
		GroupLabel:     "第 %d 組",
		Header:         []string{"組別", "姓名"},
		FilenamePrefix: "分組結果",
	},
}

// LookupLocale returns the [Locale] registered under name, falling back to en.
func LookupLocale(name string) Locale {
	if l, ok := locales[name]; ok {
		return l
	}
	return locales["en"]
}

// GroupName renders the display label for the nth group (1-based).
func (l Locale) GroupName(n int) string {
	return fmt.Sprintf(l.GroupLabel, n)
}
