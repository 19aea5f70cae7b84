package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/boopul22/wallpaer-site-blog/model"
)

// AdminWallpapers lists wallpapers for editing.
func (c *Client) AdminWallpapers(ctx context.Context, category string) ([]model.Wallpaper, error) {
	var out []model.Wallpaper
	err := c.do(ctx, call{
		op:     "fetch wallpapers",
		method: http.MethodGet,
		path:   "/api/admin/wallpapers",
		query:  categoryQuery(category),
		admin:  true,
	}, &out)
	return out, err
}

// AdminWallpaper loads one wallpaper by id. A missing id is an error
// that satisfies IsNotFound.
func (c *Client) AdminWallpaper(ctx context.Context, id model.ID) (*model.Wallpaper, error) {
	var out model.Wallpaper
	err := c.do(ctx, call{
		op:     "fetch wallpaper",
		method: http.MethodGet,
		path:   "/api/admin/wallpapers/" + url.PathEscape(id.String()),
		admin:  true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateWallpaper(ctx context.Context, f model.WallpaperFields) error {
	return c.do(ctx, call{
		op:     "create wallpaper",
		method: http.MethodPost,
		path:   "/api/admin/wallpapers",
		body:   model.CreateWallpaperRequest{WallpaperFields: f},
		admin:  true,
	}, nil)
}

// UpdateWallpaper replaces every field of wallpaper id.
func (c *Client) UpdateWallpaper(ctx context.Context, id model.ID, f model.WallpaperFields) error {
	return c.do(ctx, call{
		op:     "update wallpaper",
		method: http.MethodPut,
		path:   "/api/admin/wallpapers",
		body:   model.UpdateWallpaperRequest{ID: id, WallpaperFields: f},
		admin:  true,
	}, nil)
}

func (c *Client) DeleteWallpaper(ctx context.Context, id model.ID) error {
	return c.do(ctx, call{
		op:     "delete wallpaper",
		method: http.MethodDelete,
		path:   "/api/admin/wallpapers/" + url.PathEscape(id.String()),
		admin:  true,
	}, nil)
}

// AdminBlogPosts lists blog posts for editing.
func (c *Client) AdminBlogPosts(ctx context.Context) ([]model.BlogPost, error) {
	var out []model.BlogPost
	err := c.do(ctx, call{
		op:     "fetch blog posts",
		method: http.MethodGet,
		path:   "/api/admin/blog-posts",
		admin:  true,
	}, &out)
	return out, err
}

func (c *Client) AdminBlogPost(ctx context.Context, id model.ID) (*model.BlogPost, error) {
	var out model.BlogPost
	err := c.do(ctx, call{
		op:     "fetch blog post",
		method: http.MethodGet,
		path:   "/api/admin/blog-posts/" + url.PathEscape(id.String()),
		admin:  true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateBlogPost(ctx context.Context, f model.BlogPostFields) error {
	return c.do(ctx, call{
		op:     "create blog post",
		method: http.MethodPost,
		path:   "/api/admin/blog-posts",
		body:   model.CreateBlogPostRequest{BlogPostFields: f},
		admin:  true,
	}, nil)
}

func (c *Client) UpdateBlogPost(ctx context.Context, id model.ID, f model.BlogPostFields) error {
	return c.do(ctx, call{
		op:     "update blog post",
		method: http.MethodPut,
		path:   "/api/admin/blog-posts",
		body:   model.UpdateBlogPostRequest{ID: id, BlogPostFields: f},
		admin:  true,
	}, nil)
}

func (c *Client) DeleteBlogPost(ctx context.Context, id model.ID) error {
	return c.do(ctx, call{
		op:     "delete blog post",
		method: http.MethodDelete,
		path:   "/api/admin/blog-posts/" + url.PathEscape(id.String()),
		admin:  true,
	}, nil)
}
