package pdf

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/grouphome_ledger/internal/adapters/render/rendertest"
	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer(time.UTC)

	out, err := r.Render(context.Background(), rendertest.SampleSummary())

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "output is a PDF document")
	assert.True(t, bytes.Contains(out, []byte("%%EOF")))
	assert.Equal(t, "application/pdf", r.ContentType())
	assert.Equal(t, "pdf", r.Extension())
}

func TestRenderer_EmptyPeriod(t *testing.T) {
	out, err := NewRenderer(nil).Render(context.Background(), domain.FinanceSummary{
		Resident: domain.Resident{ID: 1, FirstName: "Zoë", LastName: "Ñúñez"},
		Period:   domain.ReportingPeriod{Year: 2025, Month: time.February},
	})

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestRenderer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRenderer(time.UTC).Render(ctx, rendertest.SampleSummary())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFitCell_MeasuresTranslatedText(t *testing.T) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 10)
	tr := doc.UnicodeTranslatorFromDescriptor("")
	const width = 40.0

	reason := tr(strings.Repeat("Épicerie café ", 10))
	got := fitCell(doc, reason, width)

	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, doc.GetStringWidth(got), width-2)
	assert.True(t, strings.HasPrefix(reason, strings.TrimSuffix(got, "...")))

	short := tr("Café")
	assert.Equal(t, short, fitCell(doc, short, width))
	assert.Len(t, short, 4, "translated text is one byte per character")
}
