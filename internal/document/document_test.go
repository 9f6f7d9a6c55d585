package document

import (
	"strings"
	"testing"

	assert2 "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `swagger: "2.0"
info:
  title: Sistem Akuntansi API
  description: API untuk aplikasi akuntansi
  version: 1.0.0
basePath: /api/v1
paths:
  /health:
    get:
      summary: Health check
  /journal-entries/summary:
    get:
      summary: Ringkasan jurnal
  /api/payments/analytics:
    get:
      summary: Analitik pembayaran
  /sales:
    post:
      summary: Buat penjualan
`

func TestParse(t *testing.T) {
	assert := assert2.New(t)

	t.Run("happy-path", func(t *testing.T) {
		doc, err := Parse([]byte(sampleDoc))
		assert.NoError(err)
		assert.Equal(4, doc.PathCount())
	})

	t.Run("invalid-yaml", func(t *testing.T) {
		_, err := Parse([]byte("paths:\n\t/a: {}\n"))
		assert.Error(err)
	})

	t.Run("not-a-mapping", func(t *testing.T) {
		_, err := Parse([]byte("- just\n- a\n- list\n"))
		assert.ErrorIs(err, ErrNotMapping)
	})

	t.Run("empty-content", func(t *testing.T) {
		_, err := Parse([]byte(""))
		assert.ErrorIs(err, ErrNotMapping)
	})
}

func TestRemovePath(t *testing.T) {
	assert := assert2.New(t)

	t.Run("present", func(t *testing.T) {
		doc, err := Parse([]byte(sampleDoc))
		require.NoError(t, err)

		assert.True(doc.RemovePath("/journal-entries/summary"))
		assert.Equal(3, doc.PathCount())
		assert.Equal([]string{"/health", "/api/payments/analytics", "/sales"}, doc.Paths())
	})

	t.Run("absent", func(t *testing.T) {
		doc, err := Parse([]byte(sampleDoc))
		require.NoError(t, err)

		assert.False(doc.RemovePath("/does/not/exist"))
		assert.Equal(4, doc.PathCount())
	})

	t.Run("exact-match-only", func(t *testing.T) {
		doc, err := Parse([]byte(sampleDoc))
		require.NoError(t, err)

		// no prefix matching
		assert.False(doc.RemovePath("/journal-entries"))
		assert.Equal(4, doc.PathCount())
	})

	t.Run("no-paths-section", func(t *testing.T) {
		doc, err := Parse([]byte("info:\n  title: t\n"))
		require.NoError(t, err)

		assert.False(doc.HasPaths())
		assert.Zero(doc.PathCount())
		assert.False(doc.RemovePath("/health"))
	})
}

func TestAppendDescription(t *testing.T) {
	assert := assert2.New(t)

	note := "\n\nNOTE: cleaned on 2025-09-14."

	t.Run("appends-to-existing", func(t *testing.T) {
		doc, err := Parse([]byte(sampleDoc))
		require.NoError(t, err)

		doc.AppendDescription(note)
		desc := doc.Description()
		assert.True(strings.HasPrefix(desc, "API untuk aplikasi akuntansi"))
		assert.True(strings.HasSuffix(desc, note))
	})

	t.Run("creates-missing-description", func(t *testing.T) {
		doc, err := Parse([]byte("info:\n  title: t\npaths: {}\n"))
		require.NoError(t, err)

		doc.AppendDescription(note)
		assert.Equal(note, doc.Description())
	})

	t.Run("creates-missing-info", func(t *testing.T) {
		doc, err := Parse([]byte("paths: {}\n"))
		require.NoError(t, err)

		doc.AppendDescription(note)
		assert.Equal(note, doc.Description())
	})

	t.Run("accumulates-on-repeat", func(t *testing.T) {
		doc, err := Parse([]byte(sampleDoc))
		require.NoError(t, err)

		doc.AppendDescription(note)
		doc.AppendDescription(note)
		assert.Equal(2, strings.Count(doc.Description(), "NOTE: cleaned"))
	})
}

func TestBytes(t *testing.T) {
	assert := assert2.New(t)

	t.Run("key-order-preserved", func(t *testing.T) {
		doc, err := Parse([]byte(sampleDoc))
		require.NoError(t, err)

		out, err := doc.Bytes()
		assert.NoError(err)

		s := string(out)
		// top-level keys keep their original, non-alphabetical order
		assert.Less(strings.Index(s, "swagger:"), strings.Index(s, "info:"))
		assert.Less(strings.Index(s, "info:"), strings.Index(s, "basePath:"))
		assert.Less(strings.Index(s, "basePath:"), strings.Index(s, "paths:"))
		// path order also survives
		assert.Less(strings.Index(s, "/health:"), strings.Index(s, "/journal-entries/summary:"))
	})

	t.Run("unicode-preserved", func(t *testing.T) {
		doc, err := Parse([]byte("info:\n  title: Laporan Keuangan — Ikhtisar\n"))
		require.NoError(t, err)

		out, err := doc.Bytes()
		assert.NoError(err)
		assert.Contains(string(out), "Laporan Keuangan — Ikhtisar")
	})

	t.Run("round-trip-after-edits", func(t *testing.T) {
		doc, err := Parse([]byte(sampleDoc))
		require.NoError(t, err)

		doc.RemovePath("/sales")
		doc.AppendDescription("\n\nNOTE: edited.")

		out, err := doc.Bytes()
		assert.NoError(err)

		reparsed, err := Parse(out)
		assert.NoError(err)
		assert.Equal([]string{"/health", "/journal-entries/summary", "/api/payments/analytics"}, reparsed.Paths())
		assert.True(strings.HasSuffix(reparsed.Description(), "NOTE: edited."))
	})
}
