package catalog

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// Entry 抓取到的剧集条目
type Entry struct {
	Title    string
	Slug     string
	ImageURL string
	Link     string
}

type Scraper interface {
	Fetch(ctx context.Context) ([]Entry, error)
}

type scraperImpl struct {
	client    *resty.Client
	sourceURL string
}

func NewScraper(sourceURL string, timeout time.Duration) Scraper {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", "Dramaboard/1.0")

	return &scraperImpl{
		client:    client,
		sourceURL: sourceURL,
	}
}

// Fetch 抓取目录页并解析出剧集列表。slug 取链接最后一段，
// 标题由 slug 的连字符还原为空格。解析不到任何条目不算错误。
func (s *scraperImpl) Fetch(ctx context.Context) ([]Entry, error) {
	resp, err := s.client.R().SetContext(ctx).Get(s.sourceURL)
	if err != nil {
		return nil, errors.Wrap(err, "fetch drama catalog")
	}
	if resp.StatusCode() != 200 {
		return nil, errors.Errorf("catalog source returned status %d", resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, errors.Wrap(err, "parse drama catalog")
	}

	var entries []Entry
	seen := make(map[string]struct{})

	doc.Find(".ThumbnailLink").Each(func(_ int, sel *goquery.Selection) {
		link, _ := sel.Find("a").Attr("href")
		slug := lastPathSegment(link)
		if slug == "" {
			return
		}
		if _, dup := seen[slug]; dup {
			return
		}
		seen[slug] = struct{}{}

		imageURL, _ := sel.Find(".Thumbnail img").Attr("src")

		entries = append(entries, Entry{
			Title:    strings.ReplaceAll(slug, "-", " "),
			Slug:     slug,
			ImageURL: imageURL,
			Link:     link,
		})
	})

	return entries, nil
}

func lastPathSegment(link string) string {
	trimmed := strings.TrimRight(link, "/")
	if trimmed == "" {
		return ""
	}
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		return trimmed[idx+1:]
	}
	return trimmed
}
