// Package egress implements the in-container MITM proxy addon (spec §4.8,
// C8): URL/body scrubbing, domain whitelist enforcement, and structured
// audit logging, wired onto github.com/elazarl/goproxy request handlers.
package egress

import (
	"bytes"
	"io"
	"mime"
	"net"
	"net/http"
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"github.com/elazarl/goproxy"

	"github.com/vibedom/vibedom/internal/patterns"
	"github.com/vibedom/vibedom/internal/scrub"
	"github.com/vibedom/vibedom/internal/whitelist"
)

// scrubbableContentTypes are the MIME types spec §4.8.1 step 2 allows body
// scrubbing for; everything else (binary payloads, images, etc.) passes
// through untouched.
var scrubbableContentTypes = []string{
	"text/",
	"application/json",
	"application/x-www-form-urlencoded",
	"application/xml",
	"application/javascript",
}

// Addon holds the state one proxy process needs to enforce spec §4.8.1's
// request lifecycle. lib is never swapped after construction (spec §4.8.3:
// "the pattern library is not reloaded by SIGHUP"); list is swapped whole
// on reload, so it's held as a pointer behind whitelist.Set's own mutex.
type Addon struct {
	list  *whitelist.Set
	lib   *patterns.Library
	audit *AuditLog

	requestsHandled int64
}

func New(list *whitelist.Set, lib *patterns.Library, audit *AuditLog) *Addon {
	return &Addon{list: list, lib: lib, audit: audit}
}

// Register wires the addon onto a goproxy server: MITM every CONNECT so
// HTTPS requests are visible to OnRequest, and run handle on every request.
func (a *Addon) Register(proxy *goproxy.ProxyHttpServer) {
	proxy.OnRequest().HandleConnect(goproxy.AlwaysMitm)
	proxy.OnRequest().DoFunc(func(r *http.Request, ctx *goproxy.ProxyCtx) (*http.Request, *http.Response) {
		return a.handle(r)
	})
}

// handle implements spec §4.8.1's ordering guarantee verbatim: URL scrub ->
// body scrub -> whitelist decision -> audit log -> response synthesis.
func (a *Addon) handle(r *http.Request) (*http.Request, *http.Response) {
	atomic.AddInt64(&a.requestsHandled, 1)

	var findings []scrub.Finding

	urlFindings := a.scrubURL(r)
	findings = append(findings, urlFindings...)

	bodyFindings := a.scrubBody(r)
	findings = append(findings, bodyFindings...)

	host := requestHost(r)
	allowed := a.list.Allowed(host)

	a.audit.Append(AuditEntry{
		Timestamp: isoNow(),
		Method:    r.Method,
		URL:       r.URL.String(),
		Host:      host,
		Allowed:   allowed,
		Scrubbed:  findingsToScrubbed(findings),
	})

	if !allowed {
		resp := goproxy.NewResponse(r, goproxy.ContentTypeText, http.StatusForbidden,
			"vibedom: host not in whitelist: "+host+"\n")
		return r, resp
	}
	return r, nil
}

// requestHost extracts the host spec §4.8.1 step 4 wants, preferring the
// Host header (present on both plain HTTP and MITM'd CONNECT requests)
// over the connect target, and stripping any port suffix.
func requestHost(r *http.Request) string {
	host := r.Host
	if host == "" && r.URL != nil {
		host = r.URL.Host
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		return strings.ToLower(h)
	}
	return strings.ToLower(host)
}

// scrubURL implements spec §4.8.1 step 1: scrub every query parameter value
// before anything else touches the request, so a blocked request never
// leaks its params into the audit log in plaintext.
func (a *Addon) scrubURL(r *http.Request) []scrub.Finding {
	if r.URL == nil || len(r.URL.RawQuery) == 0 {
		return nil
	}
	q := r.URL.Query()
	var all []scrub.Finding
	changed := false
	for key, values := range q {
		for i, v := range values {
			out, findings := scrub.Scrub(v, a.lib)
			if len(findings) > 0 {
				values[i] = out
				changed = true
				all = append(all, findings...)
			}
		}
		q[key] = values
	}
	if changed {
		r.URL.RawQuery = q.Encode()
	}
	return all
}

// scrubBody implements spec §4.8.1 step 2: only scrub bodies whose
// Content-Type is one of the allow-listed text-ish MIME types, and only if
// the body decodes as valid UTF-8; anything else passes through untouched.
func (a *Addon) scrubBody(r *http.Request) []scrub.Finding {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	if !isScrubbableContentType(r.Header.Get("Content-Type")) {
		return nil
	}
	body, err := io.ReadAll(r.Body)
	r.Body.Close()
	if err != nil {
		r.Body = io.NopCloser(bytes.NewReader(nil))
		return nil
	}
	if !utf8.Valid(body) {
		r.Body = io.NopCloser(bytes.NewReader(body))
		r.ContentLength = int64(len(body))
		return nil
	}
	out, findings := scrub.Scrub(string(body), a.lib)
	r.Body = io.NopCloser(strings.NewReader(out))
	r.ContentLength = int64(len(out))
	return findings
}

func isScrubbableContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = contentType
	}
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	for _, prefix := range scrubbableContentTypes {
		if strings.HasPrefix(mediaType, prefix) {
			return true
		}
	}
	return false
}

