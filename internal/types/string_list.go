//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StringList is an ordered list of short strings such as skills or technologies.
// It decodes from either a JSON array or a delimited string and always encodes as an array.
// Items are trimmed and empty items dropped in both directions, so encoded lists decode unchanged.
type StringList []string

// listDelimiters separate items in the free-text form of a StringList.
var listDelimiters = []string{",", ";", "•", "\n"}

// SplitList splits free text on commas, semicolons, bullet glyphs and newlines,
// trimming each token and dropping empty ones.
func SplitList(s string) StringList {
	for _, d := range listDelimiters[1:] {
		s = strings.ReplaceAll(s, d, listDelimiters[0])
	}
	out := StringList{}
	for _, tok := range strings.Split(s, listDelimiters[0]) {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// Clean returns the items trimmed, without empty ones. It never returns nil.
func (l StringList) Clean() StringList {
	out := make(StringList, 0, len(l))
	for _, item := range l {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Display joins the list for showing in a single text field.
func (l StringList) Display() string {
	return strings.Join(l, ", ")
}

// UnmarshalJSON accepts a string, an array of strings, or null.
func (l *StringList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*l = StringList{}
		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("failed to decode string list: %w", err)
		}
		*l = SplitList(s)
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("failed to decode string list: %w", err)
	}
	*l = StringList(items).Clean()
	return nil
}

// MarshalJSON always emits an array, never null.
func (l StringList) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string(l.Clean()))
}
