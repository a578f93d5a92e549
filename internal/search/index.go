// Package search provides full-text search over cats using Bleve.
package search

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/whiskerworks/catnip/internal/cat"
)

// Index wraps a Bleve in-memory index for searching cats.
type Index struct {
	index bleve.Index
}

// catDocument is the structure stored in the Bleve index.
type catDocument struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	MasterID string `json:"master_id"`
}

// NewIndex creates a new in-memory Bleve index.
func NewIndex() (*Index, error) {
	indexMapping := buildIndexMapping()
	idx, err := bleve.NewMemOnly(indexMapping)
	if err != nil {
		return nil, err
	}

	return &Index{index: idx}, nil
}

// buildIndexMapping creates the Bleve index mapping for cat documents.
func buildIndexMapping() mapping.IndexMapping {
	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Analyzer = "standard"

	// Keyword fields are stored but not analyzed, for exact matching.
	keywordFieldMapping := bleve.NewKeywordFieldMapping()

	catMapping := bleve.NewDocumentMapping()
	catMapping.AddFieldMappingsAt("id", keywordFieldMapping)
	catMapping.AddFieldMappingsAt("name", textFieldMapping)
	catMapping.AddFieldMappingsAt("color", keywordFieldMapping)
	catMapping.AddFieldMappingsAt("master_id", keywordFieldMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultMapping = catMapping
	indexMapping.DefaultAnalyzer = "standard"
	indexMapping.IndexDynamic = false
	indexMapping.StoreDynamic = false

	return indexMapping
}

// Close closes the index.
func (idx *Index) Close() error {
	return idx.index.Close()
}

// IndexCat adds or updates a cat in the search index.
func (idx *Index) IndexCat(c *cat.Cat) error {
	doc := catDocument{
		ID:       c.ID,
		Name:     c.Name,
		Color:    c.Color,
		MasterID: c.MasterID,
	}
	return idx.index.Index(c.ID, doc)
}

// DeleteCat removes a cat from the search index.
func (idx *Index) DeleteCat(id string) error {
	return idx.index.Delete(id)
}

// DefaultSearchLimit is the default maximum number of search results.
const DefaultSearchLimit = 1000

// Search executes a search query and returns matching cat IDs.
// The limit parameter controls the maximum number of results (0 uses
// DefaultSearchLimit).
//
// Query string syntax is supported, so "whiskers", "name:whis*" and
// "color:ginger" all work.
func (idx *Index) Search(queryStr string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	query := bleve.NewQueryStringQuery(queryStr)

	searchRequest := bleve.NewSearchRequest(query)
	searchRequest.Size = limit
	searchRequest.Fields = []string{"id"}

	result, err := idx.index.Search(searchRequest)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(result.Hits))
	for _, hit := range result.Hits {
		ids = append(ids, hit.ID)
	}

	return ids, nil
}

// IndexCats indexes multiple cats in a batch for efficiency.
func (idx *Index) IndexCats(cats []*cat.Cat) error {
	batch := idx.index.NewBatch()
	for _, c := range cats {
		doc := catDocument{
			ID:       c.ID,
			Name:     c.Name,
			Color:    c.Color,
			MasterID: c.MasterID,
		}
		if err := batch.Index(c.ID, doc); err != nil {
			return err
		}
	}
	return idx.index.Batch(batch)
}
