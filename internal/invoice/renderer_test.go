package invoice

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"stocktrack/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInvoice() *service.InvoiceData {
	return &service.InvoiceData{
		OrderID:         7,
		InvoiceNumber:   "INV-202608-007",
		CustomerName:    "Harbor Builders",
		CustomerAddress: "2 Quay Street",
		OrderDate:       time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		Lines: []service.InvoiceLine{
			{ItemName: "Beam", Quantity: 2, UnitPrice: decimal.RequireFromString("10.00"), LineTotal: decimal.RequireFromString("20.00")},
			{ItemName: "Bracket", Quantity: 3, UnitPrice: decimal.RequireFromString("5.00"), LineTotal: decimal.RequireFromString("15.00")},
		},
		TotalAmount: decimal.RequireFromString("35.00"),
	}
}

func TestRenderLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleInvoice()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "INVOICE INV-202608-007\n"))
	assert.Contains(t, out, "Bill To:  Harbor Builders")
	assert.Contains(t, out, "2 Quay Street")
	assert.Contains(t, out, "Date:     2026-08-31")

	// Column header precedes the lines, footer closes the document.
	headerIdx := strings.Index(out, "Item")
	beamIdx := strings.Index(out, "Beam")
	totalIdx := strings.Index(out, "Total Amount: 35.00")
	require.GreaterOrEqual(t, headerIdx, 0)
	require.Greater(t, beamIdx, headerIdx)
	require.Greater(t, totalIdx, beamIdx)

	assert.Contains(t, out, "20.00")
	assert.Contains(t, out, "15.00")
}

func TestRenderOmitsBlankAddress(t *testing.T) {
	data := sampleInvoice()
	data.CustomerAddress = ""

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, data))
	assert.NotContains(t, buf.String(), "Quay Street")
}

func TestRenderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice.txt")
	require.NoError(t, RenderFile(path, sampleInvoice()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "INVOICE INV-202608-007")
}
