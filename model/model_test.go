package model

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestIDUnmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    ID
		wantErr bool
	}{
		{`42`, 42, false},
		{`"42"`, 42, false},
		{`" 7 "`, 7, false},
		{`""`, 0, false},
		{`null`, 0, false},
		{`"abc"`, 0, true},
		{`1.5`, 0, true},
	}
	for _, tt := range tests {
		var id ID
		err := json.Unmarshal([]byte(tt.in), &id)
		if (err != nil) != tt.wantErr {
			t.Errorf("Unmarshal(%s) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && id != tt.want {
			t.Errorf("Unmarshal(%s) = %d, want %d", tt.in, id, tt.want)
		}
	}
}

func TestIDMarshalsAsNumber(t *testing.T) {
	b, err := json.Marshal(Wallpaper{ID: 3})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	if m["id"] != float64(3) {
		t.Errorf("id = %#v, want number 3", m["id"])
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in   string
		want ID
		ok   bool
	}{
		{"12", 12, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseID(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseID(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestStringListAcceptsArrayOrCommaString(t *testing.T) {
	tests := []struct {
		in   string
		want StringList
	}{
		{`["#111","#222"]`, StringList{"#111", "#222"}},
		{`"#00ffcc, #ff00aa,, "`, StringList{"#00ffcc", "#ff00aa"}},
		{`""`, StringList{}},
		{`null`, nil},
	}
	for _, tt := range tests {
		var l StringList
		if err := json.Unmarshal([]byte(tt.in), &l); err != nil {
			t.Fatalf("Unmarshal(%s): %v", tt.in, err)
		}
		if !reflect.DeepEqual(l, tt.want) {
			t.Errorf("Unmarshal(%s) = %#v, want %#v", tt.in, l, tt.want)
		}
	}
}

func TestParagraphs(t *testing.T) {
	got := Paragraphs([]string{"", "Hello", "  ", "World"})
	want := []string{"Hello", "World"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Paragraphs = %q, want %q", got, want)
	}

	// Kept paragraphs are not trimmed.
	got = Paragraphs([]string{" indented"})
	if got[0] != " indented" {
		t.Errorf("Paragraphs trimmed content: %q", got[0])
	}

	if got := Paragraphs(nil); got == nil || len(got) != 0 {
		t.Errorf("Paragraphs(nil) = %#v, want empty non-nil", got)
	}
}

func TestColorsHelpers(t *testing.T) {
	colors := ParseColors("#00ffcc, #ff00aa")
	if !reflect.DeepEqual(colors, []string{"#00ffcc", "#ff00aa"}) {
		t.Errorf("ParseColors = %q", colors)
	}
	if s := JoinColors(colors); s != "#00ffcc, #ff00aa" {
		t.Errorf("JoinColors = %q", s)
	}
}

func TestCreateWallpaperValidate(t *testing.T) {
	req := CreateWallpaperRequest{WallpaperFields{Slug: "neon-1", Title: "Neon"}}
	err := req.Validate()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Message != MsgMissingFields {
		t.Errorf("Message = %q", ve.Message)
	}
	if !reflect.DeepEqual(ve.Fields, []string{"category", "imageUrl"}) {
		t.Errorf("Fields = %q", ve.Fields)
	}

	req.Category = "Abstract"
	req.ImageURL = "https://example.com/neon.jpg"
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if req.Colors == nil {
		t.Error("Validate should default colors to an empty list")
	}
}

func TestWhitespaceCountsAsValue(t *testing.T) {
	var req CreateWallpaperRequest
	if err := json.Unmarshal([]byte(`{"slug":"s","title":" ","category":"\t","imageUrl":"u"}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("whitespace title should be accepted: %v", err)
	}

	post := CreateBlogPostRequest{BlogPostFields{Slug: "p", Title: " ", Category: "News", ImageURL: "u"}}
	if err := post.Validate(); err != nil {
		t.Fatalf("whitespace blog title should be accepted: %v", err)
	}

	req.Title = ""
	var ve *ValidationError
	if err := req.Validate(); !errors.As(err, &ve) || !reflect.DeepEqual(ve.Fields, []string{"title"}) {
		t.Errorf("empty title: %v", err)
	}
}

func TestEditorVocabularies(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range WallpaperCategories {
		if c == AllCategories || seen[c] {
			t.Errorf("WallpaperCategories has %q twice or as the filter sentinel", c)
		}
		seen[c] = true
	}
	for _, c := range CategoryColors {
		if seen[c] {
			t.Errorf("CategoryColors repeats %q", c)
		}
		seen[c] = true
	}
	if got := JoinColors(ParseColors(JoinColors(CategoryColors))); got != JoinColors(CategoryColors) {
		t.Errorf("JoinColors/ParseColors round trip = %q", got)
	}
}

func TestUpdateRequestsRequireID(t *testing.T) {
	var ve *ValidationError

	w := UpdateWallpaperRequest{}
	if err := w.Validate(); !errors.As(err, &ve) || ve.Message != MsgMissingID {
		t.Errorf("wallpaper update without id: %v", err)
	}

	p := UpdateBlogPostRequest{BlogPostFields: BlogPostFields{Content: []string{"", "x"}}}
	if err := p.Validate(); !errors.As(err, &ve) || ve.Message != MsgMissingID {
		t.Errorf("blog post update without id: %v", err)
	}

	p.ID = 9
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !reflect.DeepEqual(p.Content, []string{"x"}) {
		t.Errorf("Content = %q, want blank paragraphs dropped", p.Content)
	}
}

func TestUpdateRequestDecodesStringID(t *testing.T) {
	var req UpdateWallpaperRequest
	body := `{"id":"5","slug":"neon-1","colors":"#000, #fff"}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatal(err)
	}
	if req.ID != 5 || req.Slug != "neon-1" {
		t.Errorf("decoded %+v", req)
	}
	if !reflect.DeepEqual([]string(req.Colors), []string{"#000", "#fff"}) {
		t.Errorf("Colors = %q", req.Colors)
	}
}
