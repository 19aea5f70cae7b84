package wallverse

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/boopul22/wallpaer-site-blog/model"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = sql.ErrNoRows

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// createdAtLayout is fixed-width so lexical order matches time order.
const createdAtLayout = "2006-01-02T15:04:05.000000Z"

// Store wraps a SQL database and provides CRUD operations for wallpapers
// and blog posts.
type Store struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewStore opens the database for driver and ensures the schema exists.
// For SQLite the dsn is a file path, optionally with a query string, whose
// directory is created if needed; ":memory:" opens a single-connection
// in-memory database.
func NewStore(driver, dsn string) (*Store, error) {
	if driver == "" {
		driver = DriverSQLite
	}
	maxConns := 0
	switch driver {
	case DriverSQLite:
		var memory bool
		dsn, memory = sqliteDSN(dsn)
		if memory {
			// Each connection to an in-memory database gets its own copy.
			maxConns = 1
		} else {
			maxConns = 4
			if err := os.MkdirAll(filepath.Dir(sqlitePath(dsn)), 0o755); err != nil {
				return nil, err
			}
		}
	case DriverPostgres, DriverMySQL:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if maxConns > 0 {
		db.SetMaxOpenConns(maxConns)
		db.SetMaxIdleConns(maxConns)
	}
	s := newStore(db)
	if err := s.ensureSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

// sqlitePragmas are applied by the driver to every pooled connection.
// WAL lets readers proceed during a write; busy_timeout makes writers wait
// instead of failing with SQLITE_BUSY.
const sqlitePragmas = "_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

// sqliteDSN appends the connection pragmas to dsn, keeping any query
// string it already has, and reports whether it names an in-memory database.
func sqliteDSN(dsn string) (string, bool) {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	path := sqlitePath(dsn)
	memory := path == ":memory:" || path == "" || strings.Contains(dsn, "mode=memory")
	return dsn + sep + sqlitePragmas, memory
}

// sqlitePath strips the file: scheme and query string from a SQLite DSN.
func sqlitePath(dsn string) string {
	path, _, _ := strings.Cut(dsn, "?")
	return strings.TrimPrefix(path, "file:")
}

func newStore(db *sqlx.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) ensureSchema(ctx context.Context) error {
	for _, stmt := range schemaFor(s.db.DriverName()) {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// schemaFor returns the idempotent DDL for driver. Slug and category are
// matched exactly, so MySQL gets a binary collation for them.
func schemaFor(driver string) []string {
	switch driver {
	case DriverMySQL:
		return []string{`
CREATE TABLE IF NOT EXISTS wallpapers (
    id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
    slug VARCHAR(255) CHARACTER SET utf8mb4 COLLATE utf8mb4_0900_bin NOT NULL UNIQUE,
    title TEXT NOT NULL,
    category VARCHAR(255) CHARACTER SET utf8mb4 COLLATE utf8mb4_0900_bin NOT NULL,
    image_url TEXT NOT NULL,
    resolution TEXT NOT NULL,
    size TEXT NOT NULL,
    description TEXT NOT NULL,
    colors TEXT NOT NULL,
    created_at VARCHAR(32) NOT NULL,
    INDEX idx_wallpapers_category (category),
    INDEX idx_wallpapers_created_at (created_at)
)`, `
CREATE TABLE IF NOT EXISTS blog_posts (
    id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
    slug VARCHAR(255) CHARACTER SET utf8mb4 COLLATE utf8mb4_0900_bin NOT NULL UNIQUE,
    title TEXT NOT NULL,
    category TEXT NOT NULL,
    category_color TEXT NOT NULL,
    date TEXT NOT NULL,
    read_time TEXT NOT NULL,
    author TEXT NOT NULL,
    image_url TEXT NOT NULL,
    excerpt TEXT NOT NULL,
    content MEDIUMTEXT NOT NULL,
    created_at VARCHAR(32) NOT NULL,
    INDEX idx_blog_posts_created_at (created_at)
)`}
	default:
		pk := "INTEGER PRIMARY KEY AUTOINCREMENT"
		if driver == DriverPostgres {
			pk = "BIGSERIAL PRIMARY KEY"
		}
		return []string{`
CREATE TABLE IF NOT EXISTS wallpapers (
    id ` + pk + `,
    slug TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL,
    category TEXT NOT NULL,
    image_url TEXT NOT NULL,
    resolution TEXT NOT NULL,
    size TEXT NOT NULL,
    description TEXT NOT NULL,
    colors TEXT NOT NULL,
    created_at TEXT NOT NULL
)`,
			`CREATE INDEX IF NOT EXISTS idx_wallpapers_category ON wallpapers(category)`,
			`CREATE INDEX IF NOT EXISTS idx_wallpapers_created_at ON wallpapers(created_at)`, `
CREATE TABLE IF NOT EXISTS blog_posts (
    id ` + pk + `,
    slug TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL,
    category TEXT NOT NULL,
    category_color TEXT NOT NULL,
    date TEXT NOT NULL,
    read_time TEXT NOT NULL,
    author TEXT NOT NULL,
    image_url TEXT NOT NULL,
    excerpt TEXT NOT NULL,
    content TEXT NOT NULL,
    created_at TEXT NOT NULL
)`,
			`CREATE INDEX IF NOT EXISTS idx_blog_posts_created_at ON blog_posts(created_at)`,
		}
	}
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(createdAtLayout)
}

// Stamp is a slug with its creation time, used for sitemaps.
type Stamp struct {
	Slug      string `db:"slug"`
	CreatedAt string `db:"created_at"`
}

// Date returns the YYYY-MM-DD part of CreatedAt.
func (s Stamp) Date() string {
	date, _, _ := strings.Cut(s.CreatedAt, "T")
	return date
}

// WallpaperStamps returns every wallpaper slug, newest first.
func (s *Store) WallpaperStamps(ctx context.Context) ([]Stamp, error) {
	return s.stamps(ctx, "wallpapers")
}

// BlogPostStamps returns every blog post slug, newest first.
func (s *Store) BlogPostStamps(ctx context.Context) ([]Stamp, error) {
	return s.stamps(ctx, "blog_posts")
}

func (s *Store) stamps(ctx context.Context, table string) ([]Stamp, error) {
	var out []Stamp
	q := `SELECT slug, created_at FROM ` + table + ` ORDER BY created_at DESC, id DESC`
	if err := s.db.SelectContext(ctx, &out, q); err != nil {
		return nil, fmt.Errorf("list %s slugs: %w", table, err)
	}
	return out, nil
}

// ---- wallpapers ----

const wallpaperColumns = `id, slug, title, category, image_url, resolution, size, description, colors, created_at`

type wallpaperRow struct {
	ID          int64  `db:"id"`
	Slug        string `db:"slug"`
	Title       string `db:"title"`
	Category    string `db:"category"`
	ImageURL    string `db:"image_url"`
	Resolution  string `db:"resolution"`
	Size        string `db:"size"`
	Description string `db:"description"`
	Colors      string `db:"colors"`
	CreatedAt   string `db:"created_at"`
}

func (r wallpaperRow) toModel() (model.Wallpaper, error) {
	colors, err := decodeList(r.Colors)
	if err != nil {
		return model.Wallpaper{}, fmt.Errorf("wallpaper %d: %w", r.ID, err)
	}
	return model.Wallpaper{
		ID:          model.ID(r.ID),
		Slug:        r.Slug,
		Title:       r.Title,
		Category:    r.Category,
		ImageURL:    r.ImageURL,
		Resolution:  r.Resolution,
		Size:        r.Size,
		Description: r.Description,
		Colors:      colors,
	}, nil
}

// ListWallpapers returns wallpapers newest first. An empty category or
// "All" returns every wallpaper; any other value must match exactly.
func (s *Store) ListWallpapers(ctx context.Context, category string) ([]model.Wallpaper, error) {
	q := `SELECT ` + wallpaperColumns + ` FROM wallpapers`
	var args []any
	if category != "" && category != model.AllCategories {
		q += ` WHERE category = ?`
		args = append(args, category)
	}
	q += ` ORDER BY created_at DESC, id DESC`

	var rows []wallpaperRow
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(q), args...); err != nil {
		return nil, fmt.Errorf("list wallpapers: %w", err)
	}
	out := make([]model.Wallpaper, 0, len(rows))
	for _, r := range rows {
		w, err := r.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

// GetWallpaperBySlug returns the wallpaper with the given slug or ErrNotFound.
func (s *Store) GetWallpaperBySlug(ctx context.Context, slug string) (model.Wallpaper, error) {
	return s.getWallpaper(ctx, "slug", slug)
}

// GetWallpaper returns the wallpaper with the given id or ErrNotFound.
func (s *Store) GetWallpaper(ctx context.Context, id model.ID) (model.Wallpaper, error) {
	return s.getWallpaper(ctx, "id", int64(id))
}

func (s *Store) getWallpaper(ctx context.Context, key string, val any) (model.Wallpaper, error) {
	var r wallpaperRow
	q := `SELECT ` + wallpaperColumns + ` FROM wallpapers WHERE ` + key + ` = ?`
	if err := s.db.GetContext(ctx, &r, s.db.Rebind(q), val); err != nil {
		return model.Wallpaper{}, fmt.Errorf("get wallpaper by %s: %w", key, err)
	}
	return r.toModel()
}

// CreateWallpaper inserts a new wallpaper. The assigned id is not returned.
func (s *Store) CreateWallpaper(ctx context.Context, f model.WallpaperFields) error {
	colors, err := encodeList(f.Colors)
	if err != nil {
		return err
	}
	q := `INSERT INTO wallpapers (slug, title, category, image_url, resolution, size, description, colors, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, s.db.Rebind(q),
		f.Slug, f.Title, f.Category, f.ImageURL, f.Resolution, f.Size, f.Description, colors, s.timestamp()); err != nil {
		return fmt.Errorf("create wallpaper %q: %w", f.Slug, err)
	}
	return nil
}

// UpdateWallpaper overwrites every writable column of the row with id.
// Updating a missing id is not an error.
func (s *Store) UpdateWallpaper(ctx context.Context, id model.ID, f model.WallpaperFields) error {
	colors, err := encodeList(f.Colors)
	if err != nil {
		return err
	}
	q := `UPDATE wallpapers SET slug = ?, title = ?, category = ?, image_url = ?, resolution = ?, size = ?, description = ?, colors = ?
WHERE id = ?`
	if _, err := s.db.ExecContext(ctx, s.db.Rebind(q),
		f.Slug, f.Title, f.Category, f.ImageURL, f.Resolution, f.Size, f.Description, colors, int64(id)); err != nil {
		return fmt.Errorf("update wallpaper %d: %w", id, err)
	}
	return nil
}

// DeleteWallpaper removes a wallpaper by id. Deleting a missing id is not an error.
func (s *Store) DeleteWallpaper(ctx context.Context, id model.ID) error {
	if _, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM wallpapers WHERE id = ?`), int64(id)); err != nil {
		return fmt.Errorf("delete wallpaper %d: %w", id, err)
	}
	return nil
}

// ---- blog posts ----

const blogPostColumns = `id, slug, title, category, category_color, date, read_time, author, image_url, excerpt, content, created_at`

type blogPostRow struct {
	ID            int64  `db:"id"`
	Slug          string `db:"slug"`
	Title         string `db:"title"`
	Category      string `db:"category"`
	CategoryColor string `db:"category_color"`
	Date          string `db:"date"`
	ReadTime      string `db:"read_time"`
	Author        string `db:"author"`
	ImageURL      string `db:"image_url"`
	Excerpt       string `db:"excerpt"`
	Content       string `db:"content"`
	CreatedAt     string `db:"created_at"`
}

func (r blogPostRow) toModel() (model.BlogPost, error) {
	content, err := decodeList(r.Content)
	if err != nil {
		return model.BlogPost{}, fmt.Errorf("blog post %d: %w", r.ID, err)
	}
	return model.BlogPost{
		ID:            model.ID(r.ID),
		Slug:          r.Slug,
		Title:         r.Title,
		Category:      r.Category,
		CategoryColor: r.CategoryColor,
		Date:          r.Date,
		ReadTime:      r.ReadTime,
		Author:        r.Author,
		ImageURL:      r.ImageURL,
		Excerpt:       r.Excerpt,
		Content:       content,
	}, nil
}

// ListBlogPosts returns every blog post, newest first.
func (s *Store) ListBlogPosts(ctx context.Context) ([]model.BlogPost, error) {
	var rows []blogPostRow
	q := `SELECT ` + blogPostColumns + ` FROM blog_posts ORDER BY created_at DESC, id DESC`
	if err := s.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	out := make([]model.BlogPost, 0, len(rows))
	for _, r := range rows {
		p, err := r.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// GetBlogPostBySlug returns the post with the given slug or ErrNotFound.
func (s *Store) GetBlogPostBySlug(ctx context.Context, slug string) (model.BlogPost, error) {
	return s.getBlogPost(ctx, "slug", slug)
}

// GetBlogPost returns the post with the given id or ErrNotFound.
func (s *Store) GetBlogPost(ctx context.Context, id model.ID) (model.BlogPost, error) {
	return s.getBlogPost(ctx, "id", int64(id))
}

func (s *Store) getBlogPost(ctx context.Context, key string, val any) (model.BlogPost, error) {
	var r blogPostRow
	q := `SELECT ` + blogPostColumns + ` FROM blog_posts WHERE ` + key + ` = ?`
	if err := s.db.GetContext(ctx, &r, s.db.Rebind(q), val); err != nil {
		return model.BlogPost{}, fmt.Errorf("get blog post by %s: %w", key, err)
	}
	return r.toModel()
}

// CreateBlogPost inserts a new post. Content is stored as given; callers
// drop blank paragraphs first (see model.BlogPostFields.Normalize).
func (s *Store) CreateBlogPost(ctx context.Context, f model.BlogPostFields) error {
	content, err := encodeList(f.Content)
	if err != nil {
		return err
	}
	q := `INSERT INTO blog_posts (slug, title, category, category_color, date, read_time, author, image_url, excerpt, content, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, s.db.Rebind(q),
		f.Slug, f.Title, f.Category, f.CategoryColor, f.Date, f.ReadTime, f.Author, f.ImageURL, f.Excerpt, content, s.timestamp()); err != nil {
		return fmt.Errorf("create blog post %q: %w", f.Slug, err)
	}
	return nil
}

// UpdateBlogPost overwrites every writable column of the row with id.
func (s *Store) UpdateBlogPost(ctx context.Context, id model.ID, f model.BlogPostFields) error {
	content, err := encodeList(f.Content)
	if err != nil {
		return err
	}
	q := `UPDATE blog_posts SET slug = ?, title = ?, category = ?, category_color = ?, date = ?, read_time = ?, author = ?, image_url = ?, excerpt = ?, content = ?
WHERE id = ?`
	if _, err := s.db.ExecContext(ctx, s.db.Rebind(q),
		f.Slug, f.Title, f.Category, f.CategoryColor, f.Date, f.ReadTime, f.Author, f.ImageURL, f.Excerpt, content, int64(id)); err != nil {
		return fmt.Errorf("update blog post %d: %w", id, err)
	}
	return nil
}

// DeleteBlogPost removes a post by id. Deleting a missing id is not an error.
func (s *Store) DeleteBlogPost(ctx context.Context, id model.ID) error {
	if _, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM blog_posts WHERE id = ?`), int64(id)); err != nil {
		return fmt.Errorf("delete blog post %d: %w", id, err)
	}
	return nil
}
