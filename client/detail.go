package client

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/boopul22/wallpaer-site-blog/model"
)

const (
	relatedWallpapers  = 4
	featuredWallpapers = 2
)

// WallpaperView is what a wallpaper detail page shows.
type WallpaperView struct {
	Wallpaper *model.Wallpaper
	Related   []model.Wallpaper
}

// BlogPostView is what a blog post page shows.
type BlogPostView struct {
	Post       *model.BlogPost
	Wallpapers []model.Wallpaper
}

// WallpaperDetail loads a wallpaper and up to four others from its
// category. A missing slug yields a view with a nil Wallpaper.
func (c *Client) WallpaperDetail(ctx context.Context, slug string) (*WallpaperView, error) {
	w, err := c.WallpaperBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	view := &WallpaperView{Related: []model.Wallpaper{}}
	if w == nil {
		return view, nil
	}
	view.Wallpaper = w

	same, err := c.Wallpapers(ctx, w.Category)
	if err != nil {
		return nil, err
	}
	for _, o := range same {
		if o.ID == w.ID {
			continue
		}
		view.Related = append(view.Related, o)
		if len(view.Related) == relatedWallpapers {
			break
		}
	}
	return view, nil
}

// BlogPostDetail loads a post and the two newest wallpapers concurrently.
// Both requests complete before it returns.
func (c *Client) BlogPostDetail(ctx context.Context, slug string) (*BlogPostView, error) {
	var (
		post  *model.BlogPost
		walls []model.Wallpaper
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		post, err = c.BlogPostBySlug(gctx, slug)
		return err
	})
	g.Go(func() error {
		var err error
		walls, err = c.Wallpapers(gctx, "")
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(walls) > featuredWallpapers {
		walls = walls[:featuredWallpapers]
	}
	if walls == nil {
		walls = []model.Wallpaper{}
	}
	return &BlogPostView{Post: post, Wallpapers: walls}, nil
}
