package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	issued := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	got, err := Number(DefaultNumberTemplate, issued, 42)
	assert.NoError(t, err)
	assert.Equal(t, "INV-20260115-000042", got)

	got, err = Number("ZT/{YY}{MM}/{SEQ}", issued, 7)
	assert.NoError(t, err)
	assert.Equal(t, "ZT/2601/7", got)
}

func TestNumberErrors(t *testing.T) {
	issued := time.Now()

	_, err := Number("", issued, 1)
	assert.Error(t, err)

	_, err = Number("INV-{SEQ}", issued, 0)
	assert.Error(t, err)

	_, err = Number("INV-{WAT}", issued, 1)
	assert.Error(t, err)

	_, err = Number("INV-{SEQ", issued, 1)
	assert.Error(t, err)
}
