package wallverse

import (
	"encoding/xml"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	Priority   string `xml:"priority"`
	ChangeFreq string `xml:"changefreq"`
}

// buildSitemap lists the home page, the blog index, and every wallpaper and
// blog post page. Entries keep the newest-first order of the stamps.
func buildSitemap(base string, wallpapers, posts []Stamp) sitemapURLSet {
	urls := make([]sitemapURL, 0, 2+len(wallpapers)+len(posts))
	urls = append(urls,
		sitemapURL{Loc: base + "/", Priority: "1.0", ChangeFreq: "daily"},
		sitemapURL{Loc: base + "/blog", Priority: "0.8", ChangeFreq: "daily"},
	)
	for _, w := range wallpapers {
		urls = append(urls, sitemapURL{
			Loc:        base + "/wallpaper/" + url.PathEscape(w.Slug),
			LastMod:    w.Date(),
			Priority:   "0.7",
			ChangeFreq: "weekly",
		})
	}
	for _, p := range posts {
		urls = append(urls, sitemapURL{
			Loc:        base + "/blog/" + url.PathEscape(p.Slug),
			LastMod:    p.Date(),
			Priority:   "0.6",
			ChangeFreq: "monthly",
		})
	}
	return sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
}

func (a *App) renderSitemap(c echo.Context, wallpapers, posts []Stamp) error {
	sitemap := buildSitemap(a.Config.URL, wallpapers, posts)
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
