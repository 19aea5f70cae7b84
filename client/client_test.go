package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wallverse "github.com/boopul22/wallpaer-site-blog"
	"github.com/boopul22/wallpaer-site-blog/client"
	"github.com/boopul22/wallpaer-site-blog/model"
)

const (
	password = "letmein"
	token    = "tok-123"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	store, err := wallverse.NewStore(wallverse.DriverSQLite, filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	a := wallverse.New(wallverse.SiteConfig{
		AdminPassword:    password,
		AdminTokenSecret: token,
		LogLevel:         "error",
	}, wallverse.WithStore(store))
	require.NoError(t, a.Setup())

	ts := httptest.NewServer(a.Echo)
	t.Cleanup(ts.Close)
	return ts
}

func loggedIn(t *testing.T, ts *httptest.Server) *client.Client {
	t.Helper()
	c := client.New(ts.URL, nil, client.WithHTTPClient(ts.Client()))
	require.NoError(t, c.Login(context.Background(), password))
	return c
}

func TestLoginScenario(t *testing.T) {
	ts := newServer(t)
	ctx := context.Background()
	c := client.New(ts.URL, client.NewSession(client.NewMemoryStore()))

	assert.False(t, c.IsLoggedIn())

	err := c.Login(ctx, "wrong")
	require.Error(t, err)
	assert.True(t, client.IsUnauthorized(err))
	assert.Contains(t, err.Error(), "Invalid password")
	assert.False(t, c.IsLoggedIn())

	require.NoError(t, c.Login(ctx, password))
	assert.True(t, c.IsLoggedIn())
	assert.Equal(t, token, c.Session().Token())

	require.NoError(t, c.Logout())
	assert.False(t, c.IsLoggedIn())
}

func TestAdminCallWithoutLogin(t *testing.T) {
	ts := newServer(t)
	c := client.New(ts.URL, nil)

	err := c.CreateWallpaper(context.Background(), model.WallpaperFields{
		Slug: "x", Title: "X", Category: "Dark", ImageURL: "https://example.com/x.jpg",
	})
	require.Error(t, err)
	assert.True(t, client.IsUnauthorized(err))

	var e *client.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "Failed to create wallpaper", e.Message)
	assert.Equal(t, "Unauthorized", e.Reason)

	ws, err := c.Wallpapers(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, ws)
}

func TestUnauthorizedDoesNotLogOut(t *testing.T) {
	ts := newServer(t)

	// A token left over from an earlier server configuration.
	mem := client.NewMemoryStore()
	require.NoError(t, mem.Save(client.TokenKey, "stale"))
	c := client.New(ts.URL, client.NewSession(mem))
	require.True(t, c.IsLoggedIn())

	_, err := c.AdminWallpapers(context.Background(), "")
	assert.True(t, client.IsUnauthorized(err))
	assert.True(t, c.IsLoggedIn())
}

func TestNeonScenario(t *testing.T) {
	ts := newServer(t)
	ctx := context.Background()
	c := loggedIn(t, ts)

	require.NoError(t, c.CreateWallpaper(ctx, model.WallpaperFields{
		Slug:     "neon-1",
		Title:    "Neon",
		Category: "Abstract",
		ImageURL: "https://example.com/neon.jpg",
		Colors:   model.StringList{"#00ffcc", "#ff00aa"},
	}))

	w, err := c.WallpaperBySlug(ctx, "neon-1")
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.Equal(t, []string{"#00ffcc", "#ff00aa"}, w.Colors)

	f := w.FieldsOf()
	f.Colors = model.StringList(model.ParseColors("#000000, #ffffff"))
	require.NoError(t, c.UpdateWallpaper(ctx, w.ID, f))

	got, err := c.AdminWallpaper(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"#000000", "#ffffff"}, got.Colors)

	require.NoError(t, c.DeleteWallpaper(ctx, w.ID))

	w, err = c.WallpaperBySlug(ctx, "neon-1")
	require.NoError(t, err)
	assert.Nil(t, w)

	_, err = c.AdminWallpaper(ctx, got.ID)
	assert.True(t, client.IsNotFound(err))
}

func TestValidationSurfaces(t *testing.T) {
	ts := newServer(t)
	c := loggedIn(t, ts)

	err := c.CreateWallpaper(context.Background(), model.WallpaperFields{Slug: "x"})
	require.Error(t, err)
	assert.True(t, client.IsValidation(err))
	assert.Contains(t, err.Error(), model.MsgMissingFields)
}

func TestBlogParagraphScenario(t *testing.T) {
	ts := newServer(t)
	ctx := context.Background()
	c := loggedIn(t, ts)

	require.NoError(t, c.CreateBlogPost(ctx, model.BlogPostFields{
		Slug:     "hello",
		Title:    "Hello",
		Category: "News",
		ImageURL: "https://example.com/h.jpg",
		Content:  []string{"", "Hello", "  ", "World"},
	}))

	p, err := c.BlogPostBySlug(ctx, "hello")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, []string{"Hello", "World"}, p.Content)

	posts, err := c.AdminBlogPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)

	f := p.FieldsOf()
	f.Title = "Hello, again"
	require.NoError(t, c.UpdateBlogPost(ctx, p.ID, f))
	got, err := c.AdminBlogPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello, again", got.Title)

	require.NoError(t, c.DeleteBlogPost(ctx, p.ID))
	p, err = c.BlogPostBySlug(ctx, "hello")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestSlugAndCategoryAreEscaped(t *testing.T) {
	var gotPath, gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()
	c := client.New(ts.URL, nil)
	ctx := context.Background()

	_, err := c.Wallpapers(ctx, "Black & White")
	require.NoError(t, err)
	assert.Equal(t, "category=Black+%26+White", gotQuery)

	_, err = c.Wallpapers(ctx, model.AllCategories)
	require.NoError(t, err)
	assert.Equal(t, "", gotQuery)

	_, _ = c.WallpaperBySlug(ctx, "a b/c")
	assert.Equal(t, "/api/wallpapers/a%20b%2Fc", gotPath)
}

func TestServerErrorIsNotNil(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Internal server error"}`))
	}))
	defer ts.Close()
	c := client.New(ts.URL, nil)

	w, err := c.WallpaperBySlug(context.Background(), "neon-1")
	assert.Nil(t, w)
	var e *client.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, http.StatusInternalServerError, e.Status)
	assert.Equal(t, "Failed to fetch wallpaper: Internal server error", e.Error())
}

func TestWallpaperDetail(t *testing.T) {
	ts := newServer(t)
	ctx := context.Background()
	c := loggedIn(t, ts)

	for _, s := range []string{"n1", "n2", "n3", "n4", "n5", "n6"} {
		require.NoError(t, c.CreateWallpaper(ctx, model.WallpaperFields{
			Slug: s, Title: s, Category: "Nature", ImageURL: "https://example.com/" + s,
		}))
	}
	require.NoError(t, c.CreateWallpaper(ctx, model.WallpaperFields{
		Slug: "city", Title: "city", Category: "City", ImageURL: "https://example.com/city",
	}))

	view, err := c.WallpaperDetail(ctx, "n3")
	require.NoError(t, err)
	require.NotNil(t, view.Wallpaper)
	assert.Equal(t, "n3", view.Wallpaper.Slug)
	require.Len(t, view.Related, 4)
	for _, r := range view.Related {
		assert.Equal(t, "Nature", r.Category)
		assert.NotEqual(t, "n3", r.Slug)
	}

	view, err = c.WallpaperDetail(ctx, "city")
	require.NoError(t, err)
	assert.Empty(t, view.Related)

	view, err = c.WallpaperDetail(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, view.Wallpaper)
}

func TestBlogPostDetail(t *testing.T) {
	ts := newServer(t)
	ctx := context.Background()
	c := loggedIn(t, ts)

	for _, s := range []string{"w1", "w2", "w3"} {
		require.NoError(t, c.CreateWallpaper(ctx, model.WallpaperFields{
			Slug: s, Title: s, Category: "Dark", ImageURL: "https://example.com/" + s,
		}))
	}
	require.NoError(t, c.CreateBlogPost(ctx, model.BlogPostFields{
		Slug: "post", Title: "Post", Category: "News", ImageURL: "https://example.com/p",
	}))

	view, err := c.BlogPostDetail(ctx, "post")
	require.NoError(t, err)
	require.NotNil(t, view.Post)
	assert.Equal(t, "post", view.Post.Slug)
	assert.Len(t, view.Wallpapers, 2)

	view, err = c.BlogPostDetail(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, view.Post)
}

func TestFileStorePersistsAcrossSessions(t *testing.T) {
	ts := newServer(t)
	path := filepath.Join(t.TempDir(), "session.json")

	c := client.New(ts.URL, client.NewSession(client.NewFileStore(path)))
	require.NoError(t, c.Login(context.Background(), password))

	again := client.New(ts.URL, client.NewSession(client.NewFileStore(path)))
	assert.True(t, again.IsLoggedIn())
	_, err := again.AdminWallpapers(context.Background(), "")
	require.NoError(t, err)

	require.NoError(t, again.Logout())
	assert.False(t, client.NewSession(client.NewFileStore(path)).IsLoggedIn())
}

func TestGeneration(t *testing.T) {
	var g client.Generation
	var shown string

	first := g.Next()
	second := g.Next()

	assert.False(t, first.Current())
	assert.True(t, second.Current())

	assert.False(t, client.Deliver(first, "old", func(s string) { shown = s }))
	assert.True(t, client.Deliver(second, "new", func(s string) { shown = s }))
	assert.Equal(t, "new", shown)

	g.Invalidate()
	assert.False(t, second.Current())
	assert.False(t, client.Ticket{}.Current())
}

func TestGenerationConcurrent(t *testing.T) {
	var g client.Generation
	var wg sync.WaitGroup
	tickets := make([]client.Ticket, 50)
	for i := range tickets {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			tickets[i] = g.Next()
		}()
	}
	wg.Wait()

	current := 0
	for _, tk := range tickets {
		if tk.Current() {
			current++
		}
	}
	assert.Equal(t, 1, current)
}
