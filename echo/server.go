// Package echo serves the corpus over HTTP. The server works from an
// immutable Corpus snapshot built at startup; it never writes.
package echo

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/docshelf"
	sitemaps "github.com/fwojciec/docshelf/etree"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// shutdownTimeout bounds how long in-flight requests may run after the
// server is asked to stop.
const shutdownTimeout = 10 * time.Second

// Server serves a corpus snapshot over HTTP.
type Server struct {
	Addr      string
	Corpus    *docshelf.Corpus
	Renderers docshelf.RendererRegistry
	Search    docshelf.SearchService
	Logger    *slog.Logger

	// RateLimit and RateBurst configure per-IP request limiting.
	// A zero RateLimit disables limiting.
	RateLimit rate.Limit
	RateBurst int

	e       *echo.Echo
	pages   *template.Template
	limiter *rateLimiter
}

// New creates a Server and registers its routes.
func New(s *Server) *Server {
	if s.Logger == nil {
		s.Logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.errorHandler(e)

	e.Use(s.requestLogger())
	if s.RateLimit > 0 {
		burst := s.RateBurst
		if burst <= 0 {
			burst = int(s.RateLimit)
		}
		s.limiter = newRateLimiter(s.RateLimit, burst)
		e.Use(s.limiter.middleware())
	}

	e.GET("/healthz", s.handleHealth)
	e.GET("/sitemap.xml", s.handleSitemap)

	e.GET("/", s.handleIndex)
	e.GET("/:collection", s.handleCollection)
	e.GET("/:collection/*", s.handleDocument)

	api := e.Group("/api")
	api.GET("/collections", s.handleAPICollections)
	api.GET("/collections/:collection", s.handleAPICollection)
	api.GET("/collections/:collection/documents", s.handleAPIDocuments)
	api.GET("/collections/:collection/documents/*", s.handleAPIDocument)
	api.GET("/collections/:collection/search", s.handleAPISearch)

	s.e = e
	s.pages = template.Must(template.New("pages").Parse(pageTemplates))
	return s
}

// ServeHTTP implements http.Handler, mainly for tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.e.ServeHTTP(w, r)
}

// Start runs the server until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	if s.limiter != nil {
		loopCtx, stop := context.WithCancel(ctx)
		defer stop()
		go s.limiter.cleanupLoop(loopCtx)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.e.Start(s.Addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.Logger.Info("shutting down", "addr", s.Addr)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.e.Shutdown(shutdownCtx)
}

// requestLogger bridges echo request logging to slog.
func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/healthz"
		},
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				s.Logger.Error("request failed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency", v.Latency,
					"err", v.Error,
				)
				return nil
			}
			s.Logger.Info("request completed",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			)
			return nil
		},
	})
}

// errorHandler maps application error codes onto HTTP statuses.
func (s *Server) errorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) {
			httpErr = echo.NewHTTPError(statusFromCode(docshelf.ErrorCode(err)), docshelf.ErrorMessage(err))
		}
		e.DefaultHTTPErrorHandler(httpErr, c)
	}
}

// statusFromCode maps a docshelf error code to an HTTP status.
func statusFromCode(code string) int {
	switch code {
	case docshelf.EINVALID:
		return http.StatusBadRequest
	case docshelf.ENOTFOUND:
		return http.StatusNotFound
	case docshelf.ECONFLICT:
		return http.StatusConflict
	case docshelf.ENOTIMPLEMENTED:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":    "ok",
		"documents": s.Corpus.Len(),
	})
}

// handleSitemap serves one sitemap covering every collection that has a
// base URL configured.
func (s *Server) handleSitemap(c echo.Context) error {
	writer := sitemaps.NewSitemapWriter()

	var entries []sitemaps.Entry
	for _, collection := range s.Corpus.Collections() {
		if collection.BaseURL == "" {
			continue
		}
		collectionEntries, err := sitemaps.CollectionEntries(collection, s.Corpus.Documents(collection.ID), "")
		if err != nil {
			continue
		}
		entries = append(entries, collectionEntries...)
	}

	out, err := writer.Write(entries)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/xml", out)
}

func (s *Server) handleIndex(c echo.Context) error {
	type row struct {
		Name      string
		Title     string
		Documents int
	}
	data := struct{ Collections []row }{}
	for _, collection := range s.Corpus.Collections() {
		data.Collections = append(data.Collections, row{
			Name:      collection.Name,
			Title:     collection.DisplayTitle(),
			Documents: len(s.Corpus.Documents(collection.ID)),
		})
	}
	return s.renderPage(c, "index", data)
}

func (s *Server) handleCollection(c echo.Context) error {
	collection, err := s.Corpus.CollectionByName(c.Param("collection"))
	if err != nil {
		return err
	}

	type row struct {
		Slug      string
		Title     string
		WordCount int
		Minutes   int
	}
	data := struct {
		Name        string
		Title       string
		Description string
		Documents   []row
	}{
		Name:        collection.Name,
		Title:       collection.DisplayTitle(),
		Description: collection.Description,
	}
	for _, doc := range s.Corpus.Documents(collection.ID) {
		data.Documents = append(data.Documents, row{
			Slug:      doc.Slug,
			Title:     doc.Title,
			WordCount: doc.WordCount,
			Minutes:   docshelf.ReadingTime(doc.WordCount),
		})
	}
	return s.renderPage(c, "collection", data)
}

func (s *Server) handleDocument(c echo.Context) error {
	collection, doc, err := s.lookup(c)
	if err != nil {
		return err
	}

	renderer := s.Renderers.Get(docshelf.FormatHTML)
	if renderer == nil {
		return docshelf.Errorf(docshelf.ENOTIMPLEMENTED, "no HTML renderer registered")
	}

	page, err := renderer.RenderDocument(doc, docshelf.RenderOptions{
		CollectionTitle: collection.DisplayTitle(),
	})
	if err != nil {
		return err
	}
	return c.HTML(http.StatusOK, page)
}

// lookup resolves the collection and document named by the request path.
func (s *Server) lookup(c echo.Context) (*docshelf.Collection, *docshelf.Document, error) {
	collection, err := s.Corpus.CollectionByName(c.Param("collection"))
	if err != nil {
		return nil, nil, err
	}
	doc, err := s.Corpus.DocumentBySlug(collection.ID, c.Param("*"))
	if err != nil {
		return nil, nil, err
	}
	return collection, doc, nil
}

// renderPage renders one of the built-in HTML page templates.
func (s *Server) renderPage(c echo.Context, name string, data any) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return s.pages.ExecuteTemplate(c.Response(), name, data)
}

const pageTemplates = `
{{define "head"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.}}</title>
<style>
body { max-width: 48rem; margin: 2rem auto; padding: 0 1rem; font-family: system-ui, sans-serif; line-height: 1.6; }
a { color: #0969da; text-decoration: none; }
li { margin: 0.25rem 0; }
.meta { color: #57606a; font-size: 0.9em; }
</style>
</head>
<body>{{end}}

{{define "index"}}{{template "head" "docshelf"}}
<h1>docshelf</h1>
<ul>
{{range .Collections}}<li><a href="/{{.Name}}">{{.Title}}</a> <span class="meta">{{.Documents}} documents</span></li>
{{end}}</ul>
</body>
</html>{{end}}

{{define "collection"}}{{template "head" .Title}}
<h1>{{.Title}}</h1>
{{if .Description}}<p>{{.Description}}</p>{{end}}
<ul>
{{range .Documents}}<li><a href="/{{$.Name}}/{{.Slug}}">{{.Title}}</a> <span class="meta">{{.WordCount}} words · {{.Minutes}} min</span></li>
{{end}}</ul>
<p><a href="/">← all collections</a></p>
</body>
</html>{{end}}
`
