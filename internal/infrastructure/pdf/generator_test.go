package pdf

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/billfold/backend/internal/domain/invoicing"
	"github.com/billfold/backend/internal/domain/profile"
	"github.com/billfold/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderableInvoice(t *testing.T) *invoicing.Invoice {
	t.Helper()
	issue := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	inv, err := invoicing.NewInvoice("INV-0042", valueobject.USD, issue, issue.AddDate(0, 0, 14), decimal.NewFromInt(10))
	require.NoError(t, err)

	_, err = inv.AddItem("Widget", 2, decimal.RequireFromString("10.00"))
	require.NoError(t, err)
	_, err = inv.AddItem("Service", 1, decimal.RequireFromString("50.00"))
	require.NoError(t, err)

	business, err := profile.NewBusinessProfile("Acme Studio")
	require.NoError(t, err)
	business.Address = "1 Main St"
	business.Email = "billing@acme.test"
	inv.SnapshotBusiness(business)

	client, err := profile.NewClient("Globex Corp")
	require.NoError(t, err)
	inv.SnapshotClient(client)

	return inv
}

// pngLogo encodes a solid-color PNG of the given dimensions
func pngLogo(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 30, G: 90, B: 160, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestGenerator_Generate(t *testing.T) {
	t.Run("writes a non-empty PDF file", func(t *testing.T) {
		dir := t.TempDir()
		gen := NewGenerator(dir, nil)

		path, err := gen.Generate(newRenderableInvoice(t), invoicing.TemplateClassic)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "Invoice_INV-0042.pdf"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotEmpty(t, data)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	})

	t.Run("every template renders", func(t *testing.T) {
		gen := NewGenerator(t.TempDir(), nil)
		for _, tpl := range []invoicing.Template{
			invoicing.TemplateClassic,
			invoicing.TemplateModern,
			invoicing.TemplateMinimal,
		} {
			path, err := gen.Generate(newRenderableInvoice(t), tpl)
			require.NoError(t, err, "template %s", tpl)
			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Greater(t, info.Size(), int64(0))
		}
	})

	t.Run("empty invoice still produces a valid file", func(t *testing.T) {
		gen := NewGenerator(t.TempDir(), nil)
		issue := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		inv, err := invoicing.NewInvoice("INV-0001", valueobject.USD, issue, issue, decimal.Zero)
		require.NoError(t, err)

		path, err := gen.Generate(inv, invoicing.TemplateClassic)
		require.NoError(t, err)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	})

	t.Run("logo renders for landscape and portrait images", func(t *testing.T) {
		gen := NewGenerator(t.TempDir(), nil)
		for name, logo := range map[string][]byte{
			"landscape": pngLogo(t, 160, 80),
			"portrait":  pngLogo(t, 40, 120),
			"square":    pngLogo(t, 64, 64),
		} {
			inv := newRenderableInvoice(t)
			inv.Business.Logo = logo
			_, err := gen.Generate(inv, invoicing.TemplateClassic)
			assert.NoError(t, err, "%s logo", name)
		}
	})

	t.Run("malformed logo bytes omit the logo without failing", func(t *testing.T) {
		gen := NewGenerator(t.TempDir(), nil)
		inv := newRenderableInvoice(t)
		inv.Business.Logo = []byte("not an image at all")

		path, err := gen.Generate(inv, invoicing.TemplateClassic)
		require.NoError(t, err)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	})

	t.Run("overwrites a pre-existing file", func(t *testing.T) {
		dir := t.TempDir()
		gen := NewGenerator(dir, nil)
		inv := newRenderableInvoice(t)

		stale := filepath.Join(dir, FileName(inv.Number))
		require.NoError(t, os.WriteFile(stale, []byte("stale content"), 0o644))

		path, err := gen.Generate(inv, invoicing.TemplateClassic)
		require.NoError(t, err)
		assert.Equal(t, stale, path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	})

	t.Run("period renders when both ends are set", func(t *testing.T) {
		gen := NewGenerator(t.TempDir(), nil)
		inv := newRenderableInvoice(t)
		start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
		inv.SetPeriod(&start, &end)

		_, err := gen.Generate(inv, invoicing.TemplateClassic)
		assert.NoError(t, err)
	})

	t.Run("creates the output directory on demand", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "out")
		gen := NewGenerator(dir, nil)

		path, err := gen.Generate(newRenderableInvoice(t), invoicing.TemplateClassic)
		require.NoError(t, err)
		assert.Equal(t, dir, filepath.Dir(path))
	})
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Invoice_INV-0007.pdf", FileName("INV-0007"))
	assert.Equal(t, "Invoice_DRAFT_March_2026.pdf", FileName("DRAFT March 2026"))
}
