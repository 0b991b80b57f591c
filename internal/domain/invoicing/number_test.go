package invoicing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextNumber(t *testing.T) {
	t.Run("takes max suffix among matching numbers", func(t *testing.T) {
		next := NextNumber([]string{"INV-0001", "INV-0003", "XX-9"})
		assert.Equal(t, "INV-0004", next)
	})

	t.Run("starts at one with no existing numbers", func(t *testing.T) {
		assert.Equal(t, "INV-0001", NextNumber(nil))
	})

	t.Run("ignores hand-typed numbering schemes", func(t *testing.T) {
		next := NextNumber([]string{"DRAFT", "2026/07", "INV-12-X"})
		assert.Equal(t, "INV-0001", next)
	})

	t.Run("grows past four digits without truncating", func(t *testing.T) {
		next := NextNumber([]string{"INV-12345"})
		assert.Equal(t, "INV-12346", next)
	})

	t.Run("gaps in the sequence are not refilled", func(t *testing.T) {
		next := NextNumber([]string{"INV-0001", "INV-0005"})
		assert.Equal(t, "INV-0006", next)
	})
}
