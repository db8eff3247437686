// Package rag implements the optional retrieval path over scraped documents:
// chunking, persistence, and an in-memory vector index.
package rag

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const (
	defaultChunkSize    = 500
	defaultChunkOverlap = 50
)

// Chunk is one indexable slice of a document.
type Chunk struct {
	DocURL string `json:"doc_url"`
	Title  string `json:"title"`
	Index  int    `json:"index"`
	Text   string `json:"text"`
}

// Chunker splits document text into overlapping chunks, keeping heading
// sections together when the source is markdown-shaped.
type Chunker struct {
	parser  goldmark.Markdown
	size    int
	overlap int
}

// NewChunker creates a Chunker. Non-positive size or overlap take the
// defaults of 500 and 50 characters.
func NewChunker(size, overlap int) *Chunker {
	if size <= 0 {
		size = defaultChunkSize
	}
	if overlap <= 0 || overlap >= size {
		overlap = defaultChunkOverlap
	}
	return &Chunker{parser: goldmark.New(), size: size, overlap: overlap}
}

// Split chunks content for one document.
func (c *Chunker) Split(docURL, title, content string) []Chunk {
	var chunks []Chunk
	for _, section := range c.sections(content) {
		for _, window := range c.windows(section) {
			chunks = append(chunks, Chunk{
				DocURL: docURL,
				Title:  title,
				Index:  len(chunks),
				Text:   window,
			})
		}
	}
	return chunks
}

// sections splits content at heading boundaries using the markdown AST. Text
// with no headings comes back as a single section.
func (c *Chunker) sections(content string) []string {
	source := []byte(content)
	doc := c.parser.Parser().Parse(text.NewReader(source))

	var starts []int
	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := node.(*ast.Heading); ok {
			if lines := h.Lines(); lines.Len() > 0 {
				starts = append(starts, lines.At(0).Start)
			}
		}
		return ast.WalkContinue, nil
	})

	if len(starts) == 0 || starts[0] != 0 {
		starts = append([]int{0}, starts...)
	}

	var out []string
	for i, start := range starts {
		end := len(source)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		if end > start {
			out = append(out, string(source[start:end]))
		}
	}
	return out
}

// windows slices a section into size-bounded chunks with a fixed overlap,
// preferring to break at whitespace.
func (c *Chunker) windows(section string) []string {
	if len(section) <= c.size {
		return []string{section}
	}

	var out []string
	step := c.size - c.overlap
	for start := 0; start < len(section); start += step {
		end := start + c.size
		if end >= len(section) {
			out = append(out, section[start:])
			break
		}
		cut := end
		for cut > start+step && section[cut-1] != ' ' && section[cut-1] != '\n' {
			cut--
		}
		if cut == start+step {
			cut = end
		}
		out = append(out, section[start:cut])
		step = cut - start - c.overlap
		if step <= 0 {
			step = 1
		}
	}
	return out
}
