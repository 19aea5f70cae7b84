// Package model holds the content types shared by the wallverse server and
// its client: wallpapers, blog posts, and the typed request bodies the admin
// API accepts.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// WallpaperCategories is the set of categories offered by the admin editor.
// The server stores any category string; this list only drives the UI.
var WallpaperCategories = []string{"Abstract", "Nature", "Gradient", "Architecture", "Dark", "City"}

// CategoryColors is the set of display-color tags a blog post category can
// use. Like WallpaperCategories it feeds admin editor dropdowns; the server
// accepts any value.
var CategoryColors = []string{
	"text-emerald-500",
	"text-purple-500",
	"text-blue-500",
	"text-red-500",
	"text-yellow-500",
	"text-pink-500",
}

// AllCategories is the filter value that disables category filtering.
const AllCategories = "All"

// ID is a storage-assigned row identifier. It decodes from either a JSON
// number or a numeric JSON string and always encodes as a number.
type ID int64

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		b = []byte(strings.TrimSpace(s))
		if len(b) == 0 {
			*id = 0
			return nil
		}
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", b)
	}
	*id = ID(n)
	return nil
}

// String returns the decimal form used in URL paths.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseID parses a decimal id from a path segment.
func ParseID(s string) (ID, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return ID(n), true
}

// Wallpaper is a gallery image and its display metadata.
type Wallpaper struct {
	ID          ID       `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"imageUrl"`
	Resolution  string   `json:"resolution"`
	Size        string   `json:"size"`
	Description string   `json:"description"`
	Colors      []string `json:"colors"`
}

// BlogPost is a short article. Content holds paragraphs in reading order.
type BlogPost struct {
	ID            ID       `json:"id"`
	Slug          string   `json:"slug"`
	Title         string   `json:"title"`
	Category      string   `json:"category"`
	CategoryColor string   `json:"categoryColor"`
	Date          string   `json:"date"`
	ReadTime      string   `json:"readTime"`
	Author        string   `json:"author"`
	ImageURL      string   `json:"imageUrl"`
	Excerpt       string   `json:"excerpt"`
	Content       []string `json:"content"`
}

// FilterEmpty removes blank entries and trims the rest.
func FilterEmpty(vals []string) []string {
	out := []string{}
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ParseColors splits a comma-separated swatch list ("#111, #222") into
// trimmed, non-empty color strings.
func ParseColors(s string) []string {
	return FilterEmpty(strings.Split(s, ","))
}

// JoinColors is the inverse of ParseColors. Editor UIs use the pair to show
// a color list as a single comma-separated text field.
func JoinColors(colors []string) string {
	return strings.Join(colors, ", ")
}

// StringList is a []string that also decodes from a comma-separated string.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*l = nil
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = ParseColors(s)
		return nil
	}
	var vals []string
	if err := json.Unmarshal(b, &vals); err != nil {
		return err
	}
	*l = vals
	return nil
}
