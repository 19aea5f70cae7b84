package model

import "strings"

// ValidationError reports a request body that is missing required data.
// Handlers map it to 400 Bad Request.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validation messages returned to API callers.
const (
	MsgMissingFields = "Missing required fields"
	MsgMissingID     = "Missing id"
)

// missing lists the required fields that are empty. Whitespace counts as
// a value.
func missing(fields map[string]string, order ...string) []string {
	var out []string
	for _, name := range order {
		if fields[name] == "" {
			out = append(out, name)
		}
	}
	return out
}

// WallpaperFields is the writable part of a Wallpaper.
type WallpaperFields struct {
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Category    string     `json:"category"`
	ImageURL    string     `json:"imageUrl"`
	Resolution  string     `json:"resolution"`
	Size        string     `json:"size"`
	Description string     `json:"description"`
	Colors      StringList `json:"colors"`
}

// Normalize defaults absent list fields to empty.
func (f *WallpaperFields) Normalize() {
	if f.Colors == nil {
		f.Colors = StringList{}
	}
}

// CreateWallpaperRequest is the body of POST /api/admin/wallpapers.
type CreateWallpaperRequest struct {
	WallpaperFields
}

// Validate requires slug, title, category and imageUrl.
func (r *CreateWallpaperRequest) Validate() error {
	if m := missing(map[string]string{
		"slug":     r.Slug,
		"title":    r.Title,
		"category": r.Category,
		"imageUrl": r.ImageURL,
	}, "slug", "title", "category", "imageUrl"); len(m) > 0 {
		return &ValidationError{Message: MsgMissingFields, Fields: m}
	}
	r.Normalize()
	return nil
}

// UpdateWallpaperRequest is the body of PUT /api/admin/wallpapers. Every
// field is rewritten; omitted fields become empty.
type UpdateWallpaperRequest struct {
	ID ID `json:"id"`
	WallpaperFields
}

// Validate requires a non-zero id.
func (r *UpdateWallpaperRequest) Validate() error {
	if r.ID <= 0 {
		return &ValidationError{Message: MsgMissingID, Fields: []string{"id"}}
	}
	r.Normalize()
	return nil
}

// BlogPostFields is the writable part of a BlogPost.
type BlogPostFields struct {
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

// Normalize drops blank paragraphs. Kept paragraphs are not trimmed.
func (f *BlogPostFields) Normalize() {
	f.Content = Paragraphs(f.Content)
}

// Paragraphs returns the non-blank paragraphs of content in order.
func Paragraphs(content []string) []string {
	out := make([]string, 0, len(content))
	for _, p := range content {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// CreateBlogPostRequest is the body of POST /api/admin/blog-posts.
type CreateBlogPostRequest struct {
	BlogPostFields
}

// Validate requires slug, title, category and imageUrl.
func (r *CreateBlogPostRequest) Validate() error {
	if m := missing(map[string]string{
		"slug":     r.Slug,
		"title":    r.Title,
		"category": r.Category,
		"imageUrl": r.ImageURL,
	}, "slug", "title", "category", "imageUrl"); len(m) > 0 {
		return &ValidationError{Message: MsgMissingFields, Fields: m}
	}
	r.Normalize()
	return nil
}

// UpdateBlogPostRequest is the body of PUT /api/admin/blog-posts.
type UpdateBlogPostRequest struct {
	ID ID `json:"id"`
	BlogPostFields
}

// Validate requires a non-zero id.
func (r *UpdateBlogPostRequest) Validate() error {
	if r.ID <= 0 {
		return &ValidationError{Message: MsgMissingID, Fields: []string{"id"}}
	}
	r.Normalize()
	return nil
}

// LoginRequest is the body of POST /api/admin/login.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse carries the admin bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the body of every 4xx/5xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is returned by mutating admin operations.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// FieldsOf returns the writable fields of w, for building an update.
func (w Wallpaper) FieldsOf() WallpaperFields {
	return WallpaperFields{
		Slug:        w.Slug,
		Title:       w.Title,
		Category:    w.Category,
		ImageURL:    w.ImageURL,
		Resolution:  w.Resolution,
		Size:        w.Size,
		Description: w.Description,
		Colors:      StringList(w.Colors),
	}
}

// FieldsOf returns the writable fields of p, for building an update.
func (p BlogPost) FieldsOf() BlogPostFields {
	return BlogPostFields{
		Slug:          p.Slug,
		Title:         p.Title,
		Category:      p.Category,
		CategoryColor: p.CategoryColor,
		Date:          p.Date,
		ReadTime:      p.ReadTime,
		Author:        p.Author,
		ImageURL:      p.ImageURL,
		Excerpt:       p.Excerpt,
		Content:       p.Content,
	}
}
