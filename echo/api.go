package echo

import (
	"net/http"
	"strconv"

	"github.com/fwojciec/docshelf"
	"github.com/labstack/echo/v4"
)

// defaultSearchLimit caps search responses unless the client asks for less.
const defaultSearchLimit = 20

// collectionPayload is the JSON shape of a collection.
type collectionPayload struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	BaseURL     string `json:"baseUrl,omitempty"`
	Documents   int    `json:"documents"`
}

// documentPayload is the JSON shape of a document listing entry.
type documentPayload struct {
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Position  int    `json:"position"`
	WordCount int    `json:"wordCount"`
}

func (s *Server) handleAPICollections(c echo.Context) error {
	payload := []collectionPayload{}
	for _, collection := range s.Corpus.Collections() {
		payload = append(payload, s.collectionPayload(collection))
	}
	return c.JSON(http.StatusOK, payload)
}

func (s *Server) handleAPICollection(c echo.Context) error {
	collection, err := s.Corpus.CollectionByName(c.Param("collection"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s.collectionPayload(collection))
}

func (s *Server) handleAPIDocuments(c echo.Context) error {
	collection, err := s.Corpus.CollectionByName(c.Param("collection"))
	if err != nil {
		return err
	}

	payload := []documentPayload{}
	for _, doc := range s.Corpus.Documents(collection.ID) {
		payload = append(payload, documentPayload{
			Slug:      doc.Slug,
			Title:     doc.Title,
			Position:  doc.Position,
			WordCount: doc.WordCount,
		})
	}
	return c.JSON(http.StatusOK, payload)
}

// handleAPIDocument returns one document rendered as JSON, sections included.
func (s *Server) handleAPIDocument(c echo.Context) error {
	_, doc, err := s.lookup(c)
	if err != nil {
		return err
	}

	renderer := s.Renderers.Get(docshelf.FormatJSON)
	if renderer == nil {
		return docshelf.Errorf(docshelf.ENOTIMPLEMENTED, "no JSON renderer registered")
	}

	out, err := renderer.RenderDocument(doc, docshelf.RenderOptions{})
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(out))
}

func (s *Server) handleAPISearch(c echo.Context) error {
	collection, err := s.Corpus.CollectionByName(c.Param("collection"))
	if err != nil {
		return err
	}

	query := c.QueryParam("q")
	limit := defaultSearchLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return docshelf.Errorf(docshelf.EINVALID, "invalid limit %q", raw)
		}
		if parsed < limit {
			limit = parsed
		}
	}

	results, err := s.Search.Search(c.Request().Context(), collection.ID, query, limit)
	if err != nil {
		return err
	}
	if results == nil {
		results = []*docshelf.SearchResult{}
	}
	return c.JSON(http.StatusOK, results)
}

func (s *Server) collectionPayload(collection *docshelf.Collection) collectionPayload {
	return collectionPayload{
		Name:        collection.Name,
		Title:       collection.DisplayTitle(),
		Description: collection.Description,
		BaseURL:     collection.BaseURL,
		Documents:   len(s.Corpus.Documents(collection.ID)),
	}
}
