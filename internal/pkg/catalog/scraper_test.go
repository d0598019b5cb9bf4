package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const catalogPage = `
<html><body>
<div class="ThumbnailLink">
  <a href="/en/play/crash-landing-on-you"></a>
  <div class="Thumbnail"><img src="https://cdn.example.com/cloy.jpg"/></div>
</div>
<div class="ThumbnailLink">
  <a href="/en/play/goblin/"></a>
  <div class="Thumbnail"><img src="https://cdn.example.com/goblin.jpg"/></div>
</div>
<div class="ThumbnailLink">
  <a href="/en/play/goblin"></a>
  <div class="Thumbnail"><img src="https://cdn.example.com/goblin-dup.jpg"/></div>
</div>
<div class="ThumbnailLink">
  <a href=""></a>
</div>
</body></html>`

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(catalogPage))
	}))
	defer srv.Close()

	scraper := NewScraper(srv.URL, 5*time.Second)
	entries, err := scraper.Fetch(context.Background())

	assert.NoError(t, err)
	assert.Len(t, entries, 2)

	assert.Equal(t, "crash-landing-on-you", entries[0].Slug)
	assert.Equal(t, "crash landing on you", entries[0].Title)
	assert.Equal(t, "https://cdn.example.com/cloy.jpg", entries[0].ImageURL)
	assert.Equal(t, "/en/play/crash-landing-on-you", entries[0].Link)

	// 末尾斜杠与重复条目都被归一去重
	assert.Equal(t, "goblin", entries[1].Slug)
}

func TestFetch_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	scraper := NewScraper(srv.URL, 5*time.Second)
	_, err := scraper.Fetch(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestFetch_EmptyPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>nothing here</body></html>"))
	}))
	defer srv.Close()

	scraper := NewScraper(srv.URL, 5*time.Second)
	entries, err := scraper.Fetch(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLastPathSegment(t *testing.T) {
	assert.Equal(t, "goblin", lastPathSegment("/en/play/goblin"))
	assert.Equal(t, "goblin", lastPathSegment("/en/play/goblin/"))
	assert.Equal(t, "goblin", lastPathSegment("goblin"))
	assert.Equal(t, "", lastPathSegment(""))
	assert.Equal(t, "", lastPathSegment("///"))
}
