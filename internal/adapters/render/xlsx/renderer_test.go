package xlsx

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/SscSPs/grouphome_ledger/internal/adapters/render/rendertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer(time.UTC)

	out, err := r.Render(context.Background(), rendertest.SampleSummary())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	get := func(cell string) string {
		v, err := f.GetCellValue(sheetName, cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Resident Cash Statement", get("A1"))
	assert.Equal(t, "Ada Moss", get("B2"))
	assert.Equal(t, "June 2025", get("B3"))
	assert.Equal(t, "$380.00", get("B4"))
	assert.Equal(t, "Date", get("A8"))
	assert.Equal(t, "Groceries", get("B9"))
	assert.Equal(t, "-12000", get("D9"))
	assert.Equal(t, "-$120.00", get("E9"))
	assert.Equal(t, "System", get("C10"))
	assert.Equal(t, "Net for period", get("C11"))
	assert.Equal(t, "38000", get("D11"))

	assert.Equal(t, "xlsx", r.Extension())
	assert.Contains(t, r.ContentType(), "spreadsheetml")
}
