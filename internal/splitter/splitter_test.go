package splitter

import (
	"strings"
	"testing"

	"github.com/custodia-labs/lexaudit-cli/internal/core/domain"
)

func TestNew(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		s := New()
		if s.chunkSize != DefaultChunkSize {
			t.Errorf("expected chunkSize %d, got %d", DefaultChunkSize, s.chunkSize)
		}
		if s.overlap != DefaultChunkOverlap {
			t.Errorf("expected overlap %d, got %d", DefaultChunkOverlap, s.overlap)
		}
	})

	t.Run("custom chunk size", func(t *testing.T) {
		s := New(WithChunkSize(500))
		if s.chunkSize != 500 {
			t.Errorf("expected chunkSize 500, got %d", s.chunkSize)
		}
	})

	t.Run("overlap exceeds chunk size", func(t *testing.T) {
		s := New(WithChunkSize(100), WithChunkOverlap(150))
		if s.overlap >= s.chunkSize {
			t.Error("overlap should be reduced when it exceeds chunk size")
		}
	})

	t.Run("zero values ignored", func(t *testing.T) {
		s := New(WithChunkSize(0), WithChunkOverlap(-1))
		if s.chunkSize != DefaultChunkSize {
			t.Errorf("expected default chunkSize, got %d", s.chunkSize)
		}
		if s.overlap != DefaultChunkOverlap {
			t.Errorf("expected default overlap, got %d", s.overlap)
		}
	})
}

func TestSplit_ShortSegment(t *testing.T) {
	s := New(WithChunkSize(100), WithChunkOverlap(20))
	chunks := s.Split([]domain.Segment{{Text: "short text", Source: "a.txt"}})

	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Text != "short text" {
		t.Errorf("unexpected chunk text: %q", chunks[0].Text)
	}
	if chunks[0].Source != "a.txt" {
		t.Errorf("expected source a.txt, got %q", chunks[0].Source)
	}
}

func TestSplit_EmptySegment(t *testing.T) {
	s := New()
	chunks := s.Split([]domain.Segment{{Text: "", Source: "a.txt"}})
	if len(chunks) != 0 {
		t.Errorf("expected no chunks for empty segment, got %d", len(chunks))
	}
}

func TestSplit_MaxLengthInvariant(t *testing.T) {
	configs := []struct {
		size, overlap int
	}{
		{100, 20},
		{50, 10},
		{1000, 200},
		{80, 0},
	}

	text := strings.Repeat("The party of the first part shall indemnify the party of the second part.\n\n", 40)

	for _, cfg := range configs {
		s := New(WithChunkSize(cfg.size), WithChunkOverlap(cfg.overlap))
		chunks := s.Split([]domain.Segment{{Text: text, Source: "contract.txt"}})
		if len(chunks) == 0 {
			t.Fatalf("size=%d: expected chunks", cfg.size)
		}
		for i, c := range chunks {
			if got := len([]rune(c.Text)); got > cfg.size {
				t.Errorf("size=%d: chunk %d has length %d", cfg.size, i, got)
			}
		}
	}
}

func TestSplit_OverlapInvariant(t *testing.T) {
	const size, overlap = 100, 30
	s := New(WithChunkSize(size), WithChunkOverlap(overlap))

	text := strings.Repeat("All notices under this agreement must be given in writing. ", 30)
	chunks := s.Split([]domain.Segment{{Text: text, Source: "notices.txt"}})
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	// Trailing overlap runes of each chunk equal the next chunk's prefix.
	for i := 0; i < len(chunks)-1; i++ {
		prev := []rune(chunks[i].Text)
		next := []rune(chunks[i+1].Text)
		tail := string(prev[len(prev)-overlap:])
		head := string(next[:overlap])
		if tail != head {
			t.Errorf("chunks %d/%d: overlap mismatch\n tail: %q\n head: %q", i, i+1, tail, head)
		}
	}
}

func TestSplit_PrefersParagraphBoundary(t *testing.T) {
	s := New(WithChunkSize(60), WithChunkOverlap(10))

	text := "First paragraph with some words here.\n\nSecond paragraph follows with more words after the break."
	chunks := s.Split([]domain.Segment{{Text: text, Source: "p.txt"}})
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	if !strings.HasSuffix(chunks[0].Text, "\n\n") {
		t.Errorf("expected first chunk to end at paragraph break, got %q", chunks[0].Text)
	}
}

func TestSplit_HardSplitWithoutSeparators(t *testing.T) {
	s := New(WithChunkSize(40), WithChunkOverlap(10))

	text := strings.Repeat("x", 100)
	chunks := s.Split([]domain.Segment{{Text: text, Source: "x.txt"}})
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	if len([]rune(chunks[0].Text)) != 40 {
		t.Errorf("expected full-size hard split, got %d", len([]rune(chunks[0].Text)))
	}
}

func TestSplit_MetadataAndOrdinals(t *testing.T) {
	s := New(WithChunkSize(50), WithChunkOverlap(10))

	segments := []domain.Segment{
		{Text: strings.Repeat("a ", 60), Source: "scan.pdf", Page: 1},
		{Text: strings.Repeat("b ", 60), Source: "scan.pdf", Page: 2},
	}

	chunks := s.Split(segments)
	if len(chunks) < 4 {
		t.Fatalf("expected chunks from both segments, got %d", len(chunks))
	}

	seenPage2 := false
	for i, c := range chunks {
		if c.Ordinal != i {
			t.Errorf("chunk %d: ordinal %d", i, c.Ordinal)
		}
		if c.ID == "" {
			t.Errorf("chunk %d: empty ID", i)
		}
		if c.Source != "scan.pdf" {
			t.Errorf("chunk %d: source %q", i, c.Source)
		}
		if c.Page == 2 {
			seenPage2 = true
		}
	}
	if !seenPage2 {
		t.Error("expected page metadata to carry into chunks")
	}
}

func TestSplit_Deterministic(t *testing.T) {
	s := New(WithChunkSize(70), WithChunkOverlap(15))
	text := strings.Repeat("Clause text separated by spaces and\nnewlines here. ", 20)

	first := s.Split([]domain.Segment{{Text: text, Source: "c.txt"}})
	second := s.Split([]domain.Segment{{Text: text, Source: "c.txt"}})

	if len(first) != len(second) {
		t.Fatalf("chunk counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Text != second[i].Text {
			t.Errorf("chunk %d differs between runs", i)
		}
	}
}
