package rag

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/nyaya-ai/legal-engine/internal/scrape"
)

// Store persists scraped documents and their chunks in SQLite or Postgres.
type Store struct {
	db     *sql.DB
	driver string
}

// OpenStore opens the document store. driver is "sqlite3" or "postgres".
func OpenStore(driver, dsn string) (*Store, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", driver, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s store: %w", driver, err)
	}
	return &Store{db: db, driver: driver}, nil
}

// Migrate creates the schema if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			url        TEXT PRIMARY KEY,
			title      TEXT NOT NULL,
			content    TEXT NOT NULL,
			metadata   TEXT NOT NULL,
			qa_pairs   TEXT NOT NULL,
			scraped_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS chunks (
			doc_url TEXT NOT NULL,
			idx     INTEGER NOT NULL,
			title   TEXT NOT NULL,
			body    TEXT NOT NULL,
			PRIMARY KEY (doc_url, idx)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// SaveDocument upserts a document and replaces its chunks.
func (s *Store) SaveDocument(ctx context.Context, doc scrape.Document, chunks []Chunk) error {
	metadata, err := json.Marshal(doc.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}
	qaPairs, err := json.Marshal(doc.QAPairs)
	if err != nil {
		return fmt.Errorf("marshal qa pairs: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, s.rebind(
		`DELETE FROM documents WHERE url = ?`), doc.URL); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if _, err := tx.ExecContext(ctx, s.rebind(
		`INSERT INTO documents (url, title, content, metadata, qa_pairs, scraped_at)
		 VALUES (?, ?, ?, ?, ?, ?)`),
		doc.URL, doc.Title, doc.Content, string(metadata), string(qaPairs), doc.ScrapedAt); err != nil {
		return fmt.Errorf("insert document: %w", err)
	}

	if _, err := tx.ExecContext(ctx, s.rebind(
		`DELETE FROM chunks WHERE doc_url = ?`), doc.URL); err != nil {
		return fmt.Errorf("delete chunks: %w", err)
	}
	for _, c := range chunks {
		if _, err := tx.ExecContext(ctx, s.rebind(
			`INSERT INTO chunks (doc_url, idx, title, body) VALUES (?, ?, ?, ?)`),
			c.DocURL, c.Index, c.Title, c.Text); err != nil {
			return fmt.Errorf("insert chunk %d: %w", c.Index, err)
		}
	}
	return tx.Commit()
}

// CountDocuments returns the number of stored documents.
func (s *Store) CountDocuments(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return n, nil
}

// LoadChunks returns every stored chunk in document order.
func (s *Store) LoadChunks(ctx context.Context) ([]Chunk, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT doc_url, idx, title, body FROM chunks ORDER BY doc_url, idx`)
	if err != nil {
		return nil, fmt.Errorf("load chunks: %w", err)
	}
	defer rows.Close()

	var chunks []Chunk
	for rows.Next() {
		var c Chunk
		if err := rows.Scan(&c.DocURL, &c.Index, &c.Title, &c.Text); err != nil {
			return nil, fmt.Errorf("scan chunk: %w", err)
		}
		chunks = append(chunks, c)
	}
	return chunks, rows.Err()
}

// LoadDocuments returns every stored document.
func (s *Store) LoadDocuments(ctx context.Context) ([]scrape.Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT url, title, content, metadata, qa_pairs, scraped_at FROM documents ORDER BY url`)
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}
	defer rows.Close()

	var docs []scrape.Document
	for rows.Next() {
		var (
			doc       scrape.Document
			metadata  string
			qaPairs   string
			scrapedAt time.Time
		)
		if err := rows.Scan(&doc.URL, &doc.Title, &doc.Content, &metadata, &qaPairs, &scrapedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		if err := json.Unmarshal([]byte(metadata), &doc.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal metadata for %s: %w", doc.URL, err)
		}
		if err := json.Unmarshal([]byte(qaPairs), &doc.QAPairs); err != nil {
			return nil, fmt.Errorf("unmarshal qa pairs for %s: %w", doc.URL, err)
		}
		doc.ScrapedAt = scrapedAt
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// rebind rewrites ? placeholders to $N for Postgres.
func (s *Store) rebind(query string) string {
	if s.driver != "postgres" {
		return query
	}
	var out []byte
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			out = append(out, fmt.Sprintf("$%d", n)...)
			continue
		}
		out = append(out, query[i])
	}
	return string(out)
}
