package httpserver

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc      string `xml:"loc"`
	LastMod  string `xml:"lastmod"`
	Priority string `xml:"priority"`
}

// handleSitemap renders sitemap.xml from the SEO settings. Cornerstone
// pages get priority 1.0, everything else 0.5. The "home" slug maps to the
// site root.
func (s *Server) handleSitemap(c echo.Context) error {
	settings, err := s.app.ListSeo(c.Request().Context())
	if err != nil {
		return err
	}

	urlset := sitemapURLSet{
		Xmlns: sitemapNamespace,
		URLs:  make([]sitemapURL, 0, len(settings)),
	}

	base := strings.TrimSuffix(s.config.PublicBaseURL, "/")
	for _, seo := range settings {
		loc := base + "/" + seo.PageSlug
		if seo.PageSlug == "home" {
			loc = base + "/"
		}

		priority := "0.5"
		if seo.IsCornerstone {
			priority = "1.0"
		}

		urlset.URLs = append(urlset.URLs, sitemapURL{
			Loc:      loc,
			LastMod:  seo.UpdatedAt.Format("2006-01-02"),
			Priority: priority,
		})
	}

	body, err := xml.MarshalIndent(urlset, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal sitemap: %w", err)
	}

	if err := c.Blob(http.StatusOK, "application/xml", append([]byte(xml.Header), body...)); err != nil {
		return fmt.Errorf("failed to write sitemap response: %w", err)
	}
	return nil
}
