package sanitizer

import "html"

// MaxStorageLength caps the length of any text accepted for storage.
const MaxStorageLength = 10000

// angleBrackets are removed from stored text.
const angleBrackets = "<>"

// EscapeHTML escapes <, >, &, ' and " so the text renders literally.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// StripAngleBrackets removes every '<' and '>' from s.
func StripAngleBrackets(s string) string {
	return RemoveChars(s, angleBrackets)
}

func limitStorage(s string) string {
	return LimitLength(s, MaxStorageLength)
}

var storagePipeline = Compose(
	Trim,
	StripAngleBrackets,
	limitStorage,
)

// ForDisplay makes text safe to insert into a page as plain content.
// Characters are escaped, never dropped.
func ForDisplay(s string) string {
	if s == "" {
		return ""
	}
	return EscapeHTML(s)
}

// ForStorage coerces v to text, trims surrounding whitespace, removes angle
// brackets and truncates the result to MaxStorageLength runes.
func ForStorage(v any) string {
	s := ToText(v)
	if s == "" {
		return ""
	}
	return storagePipeline(s)
}
