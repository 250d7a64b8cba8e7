package output

import (
	"fmt"
	"strings"
)

// FormatHeader returns a markdown header.
func FormatHeader(level int, title string) string {
	level = max(1, min(6, level))
	return strings.Repeat("#", level) + " " + title
}

// FormatKeyValue returns a markdown list item with a bold key.
func FormatKeyValue(key, value string) string {
	return fmt.Sprintf("- **%s:** %s", key, value)
}

// FormatCodeBlock wraps content in a fenced code block.
func FormatCodeBlock(lang, content string) string {
	return "```" + lang + "\n" + strings.TrimRight(content, "\n") + "\n```"
}
