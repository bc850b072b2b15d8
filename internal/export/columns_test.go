package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	keys := func(columns []Column) []string {
		out := make([]string, 0, len(columns))
		for _, c := range columns {
			out = append(out, c.Key)
		}
		return out
	}

	t.Run("empty selection means everything", func(t *testing.T) {
		got := Normalize(nil, ProductColumns)
		assert.Equal(t, keys(ProductColumns), keys(got))
	})

	t.Run("selection order never wins over default order", func(t *testing.T) {
		got := Normalize([]string{"stock", "sku", "name"}, ProductColumns)
		assert.Equal(t, []string{"sku", "name", "stock"}, keys(got))
	})

	t.Run("unknown keys are dropped", func(t *testing.T) {
		got := Normalize([]string{"name", "bogus"}, ProductColumns)
		assert.Equal(t, []string{"name"}, keys(got))
	})

	t.Run("only unknown keys falls back to defaults", func(t *testing.T) {
		got := Normalize([]string{"bogus"}, ProductColumns)
		assert.Equal(t, keys(ProductColumns), keys(got))
	})

	t.Run("deselect everything then reselect restores the layout", func(t *testing.T) {
		original := keys(Normalize(nil, CustomerColumns))

		all := make([]string, len(original))
		copy(all, original)
		// Reselect in reverse, as a user clicking checkboxes bottom-up would.
		for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
			all[i], all[j] = all[j], all[i]
		}

		assert.Equal(t, original, keys(Normalize(all, CustomerColumns)))
	})
}
