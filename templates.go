package main

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"html/template"
	"net/http"
	"sync"
	"time"
)

type Templates struct {
	Home  *pageCache
	Admin *template.Template
}

// pageCache serves the last output of Render from memory. Requests never
// execute the template.
type pageCache struct {
	tmpl *template.Template

	mu       sync.RWMutex
	body     []byte
	etag     string
	rendered time.Time
}

func newPageCache(tmpl *template.Template) *pageCache {
	return &pageCache{tmpl: tmpl}
}

func (c *pageCache) Render(data Page) error {
	var out bytes.Buffer
	if err := c.tmpl.Execute(&out, data); err != nil {
		return err
	}

	sum := sha256.Sum256(out.Bytes())

	c.mu.Lock()
	c.body = out.Bytes()
	c.etag = fmt.Sprintf(`"%x"`, sum[:8])
	c.rendered = time.Now().UTC().Truncate(time.Second)
	c.mu.Unlock()
	return nil
}

func (c *pageCache) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c.mu.RLock()
	body, etag, rendered := c.body, c.etag, c.rendered
	c.mu.RUnlock()

	if body == nil {
		writeInternalServerErr(w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("ETag", etag)
	http.ServeContent(w, r, "", rendered, bytes.NewReader(body))
}
