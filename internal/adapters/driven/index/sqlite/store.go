// Package sqlite persists the vector index as a single SQLite database
// file owned exclusively by the Store.
//
// A build writes a fresh database to a temp file and renames it over
// the prior index, so a concurrent reader never observes partial state.
// Loading degrades to "absent" on any corruption so the application can
// recover by prompting for re-ingestion.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/lexaudit-cli/internal/core/domain"
	"github.com/custodia-labs/lexaudit-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lexaudit-cli/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.IndexStore = (*Store)(nil)

const (
	indexFileName = "index.db"
	tempFileName  = "index.db.tmp"

	// schemaVersion guards against loading databases written by an
	// incompatible release.
	schemaVersion = 1

	// embedBatchSize bounds how many chunks are sent to the embedding
	// service per request.
	embedBatchSize = 64
)

const schema = `
CREATE TABLE meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE chunks (
	ordinal   INTEGER PRIMARY KEY,
	id        TEXT NOT NULL,
	source    TEXT NOT NULL,
	page      INTEGER NOT NULL,
	content   TEXT NOT NULL,
	embedding BLOB NOT NULL
);
`

// Store builds, persists and reloads the vector index.
type Store struct {
	persistDir string
	embedder   driven.EmbeddingService
}

// NewStore creates an index store rooted at persistDir.
// If persistDir is empty, defaults to ~/.lexaudit/index.
func NewStore(persistDir string, embedder driven.EmbeddingService) (*Store, error) {
	if persistDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		persistDir = filepath.Join(home, ".lexaudit", "index")
	}

	if err := os.MkdirAll(persistDir, 0700); err != nil {
		return nil, fmt.Errorf("creating persist directory: %w", err)
	}

	return &Store{persistDir: persistDir, embedder: embedder}, nil
}

// Path returns the persisted index file path.
func (s *Store) Path() string {
	return filepath.Join(s.persistDir, indexFileName)
}

// Build embeds the chunks, persists a fresh index, and atomically
// replaces any prior one.
func (s *Store) Build(ctx context.Context, chunks []domain.Chunk) (driven.Index, error) {
	if len(chunks) == 0 {
		return nil, domain.ErrEmptyCorpus
	}

	vectors, err := s.embedAll(ctx, chunks)
	if err != nil {
		return nil, err
	}

	dims := len(vectors[0])
	tmpPath := filepath.Join(s.persistDir, tempFileName)
	if err := s.writeDatabase(ctx, tmpPath, chunks, vectors, dims); err != nil {
		os.Remove(tmpPath)
		return nil, err
	}

	// Atomic replace: a concurrent reader sees either the old index
	// or the new one, never a partial write.
	if err := os.Rename(tmpPath, s.Path()); err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("replacing persisted index: %w", err)
	}

	logger.Info("Persisted index with %d chunks (%d dimensions) to %s", len(chunks), dims, s.Path())

	return &memoryIndex{
		chunks:  chunks,
		vectors: vectors,
		dims:    dims,
		model:   s.embedder.ModelName(),
	}, nil
}

// Load reloads the persisted index. Absent, unreadable or
// schema-mismatched data returns (nil, nil) so the caller can prompt
// for re-ingestion; corruption is logged, never fatal.
func (s *Store) Load(_ context.Context) (driven.Index, error) {
	path := s.Path()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	idx, err := s.readDatabase(path)
	if err != nil {
		logger.Warn("Discarding persisted index at %s: %v", path, err)
		return nil, nil
	}
	return idx, nil
}

// embedAll embeds chunk texts in batches. Adapters that cannot know
// their dimension before the first call report 0; the first returned
// vector fixes the expected size in that case.
func (s *Store) embedAll(ctx context.Context, chunks []domain.Chunk) ([][]float32, error) {
	dims := s.embedder.Dimensions()
	vectors := make([][]float32, 0, len(chunks))

	for start := 0; start < len(chunks); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		texts := make([]string, 0, end-start)
		for _, c := range chunks[start:end] {
			texts = append(texts, c.Text)
		}

		batch, err := s.embedder.EmbedBatch(ctx, texts)
		if err != nil {
			return nil, fmt.Errorf("embed chunks %d-%d: %w", start, end-1, err)
		}
		if len(batch) != len(texts) {
			return nil, fmt.Errorf("%w: got %d embeddings for %d chunks", domain.ErrEmbeddingService, len(batch), len(texts))
		}
		for _, vec := range batch {
			if len(vec) == 0 {
				return nil, fmt.Errorf("%w: empty embedding returned", domain.ErrEmbeddingService)
			}
			if dims == 0 {
				dims = len(vec)
			}
			if len(vec) != dims {
				return nil, fmt.Errorf("%w: embedding has %d dimensions, expected %d", domain.ErrDimensionMismatch, len(vec), dims)
			}
		}
		vectors = append(vectors, batch...)
	}

	return vectors, nil
}

// writeDatabase creates a fresh database at path with the full corpus.
func (s *Store) writeDatabase(ctx context.Context, path string, chunks []domain.Chunk, vectors [][]float32, dims int) error {
	os.Remove(path) // stale temp from an interrupted build

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("creating index database: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	meta := map[string]string{
		"schema_version": strconv.Itoa(schemaVersion),
		"dimension":      strconv.Itoa(dims),
		"model":          s.embedder.ModelName(),
	}
	for key, value := range meta {
		if _, err := tx.ExecContext(ctx, "INSERT INTO meta (key, value) VALUES (?, ?)", key, value); err != nil {
			return fmt.Errorf("writing meta %s: %w", key, err)
		}
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO chunks (ordinal, id, source, page, content, embedding)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for i, chunk := range chunks {
		blob := float32SliceToBytes(vectors[i])
		if _, err := stmt.ExecContext(ctx, chunk.Ordinal, chunk.ID, chunk.Source, chunk.Page, chunk.Text, blob); err != nil {
			return fmt.Errorf("saving chunk %s: %w", chunk.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// readDatabase loads and validates a persisted index.
func (s *Store) readDatabase(path string) (*memoryIndex, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrIndexCorrupt, err)
	}
	defer db.Close()

	meta, err := readMeta(db)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrIndexCorrupt, err)
	}

	if v := meta["schema_version"]; v != strconv.Itoa(schemaVersion) {
		return nil, fmt.Errorf("%w: schema version %q, expected %d", domain.ErrIndexCorrupt, v, schemaVersion)
	}
	dims, err := strconv.Atoi(meta["dimension"])
	if err != nil || dims <= 0 {
		return nil, fmt.Errorf("%w: invalid dimension %q", domain.ErrIndexCorrupt, meta["dimension"])
	}
	model := meta["model"]
	if s.embedder != nil && model != s.embedder.ModelName() {
		return nil, fmt.Errorf("%w: built with model %q, configured model is %q",
			domain.ErrIndexCorrupt, model, s.embedder.ModelName())
	}

	rows, err := db.Query(`
		SELECT ordinal, id, source, page, content, embedding
		FROM chunks ORDER BY ordinal
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrIndexCorrupt, err)
	}
	defer rows.Close()

	var chunks []domain.Chunk
	var vectors [][]float32
	for rows.Next() {
		var chunk domain.Chunk
		var blob []byte
		if err := rows.Scan(&chunk.Ordinal, &chunk.ID, &chunk.Source, &chunk.Page, &chunk.Text, &blob); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrIndexCorrupt, err)
		}
		if len(blob) != dims*4 {
			return nil, fmt.Errorf("%w: chunk %s embedding is %d bytes, expected %d",
				domain.ErrIndexCorrupt, chunk.ID, len(blob), dims*4)
		}
		chunks = append(chunks, chunk)
		vectors = append(vectors, bytesToFloat32Slice(blob))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrIndexCorrupt, err)
	}

	logger.Debug("Loaded index: %d chunks, %d dimensions, model %s", len(chunks), dims, model)

	return &memoryIndex{chunks: chunks, vectors: vectors, dims: dims, model: model}, nil
}

func readMeta(db *sql.DB) (map[string]string, error) {
	rows, err := db.Query("SELECT key, value FROM meta")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	meta := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		meta[key] = value
	}
	return meta, rows.Err()
}

// float32SliceToBytes converts a []float32 to little-endian bytes.
func float32SliceToBytes(floats []float32) []byte {
	buf := make([]byte, len(floats)*4)
	for i, f := range floats {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// bytesToFloat32Slice converts a byte slice back to []float32.
func bytesToFloat32Slice(data []byte) []float32 {
	floats := make([]float32, len(data)/4)
	for i := range floats {
		floats[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return floats
}

// memoryIndex is the in-memory search structure over a loaded corpus.
// Brute-force cosine similarity; the corpus sizes this tool reviews do
// not justify an approximate-nearest-neighbour build.
type memoryIndex struct {
	chunks  []domain.Chunk
	vectors [][]float32
	dims    int
	model   string
}

var _ driven.Index = (*memoryIndex)(nil)

func (m *memoryIndex) Len() int          { return len(m.chunks) }
func (m *memoryIndex) Dimensions() int   { return m.dims }
func (m *memoryIndex) ModelName() string { return m.model }

// Chunks returns up to n chunks in insertion order.
func (m *memoryIndex) Chunks(n int) []domain.Chunk {
	if n <= 0 || n > len(m.chunks) {
		n = len(m.chunks)
	}
	out := make([]domain.Chunk, n)
	copy(out, m.chunks[:n])
	return out
}

// Search returns the k most similar chunks, most similar first.
// Ties are broken by insertion order for determinism.
func (m *memoryIndex) Search(query []float32, k int) ([]driven.Hit, error) {
	if len(query) != m.dims {
		return nil, fmt.Errorf("%w: query has %d dimensions, index was built with %d",
			domain.ErrDimensionMismatch, len(query), m.dims)
	}
	if k <= 0 {
		return nil, nil
	}

	hits := make([]driven.Hit, len(m.chunks))
	for i := range m.chunks {
		hits[i] = driven.Hit{
			Chunk: m.chunks[i],
			Score: cosineSimilarity(query, m.vectors[i]),
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].Chunk.Ordinal < hits[j].Chunk.Ordinal
	})

	if k > len(hits) {
		k = len(hits)
	}
	return hits[:k], nil
}

// cosineSimilarity computes the cosine similarity between two vectors.
// Returns 0 for zero-magnitude vectors.
func cosineSimilarity(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
