package csv

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	w := &Writer{}
	err := w.WriteTable(&buf, []string{"sku", "name"}, [][]string{
		{"CAF-500", "Café 500g"},
		{"AZU-1000", `Azúcar "refinada", 1kg`},
	})
	require.NoError(t, err)
	assert.Equal(t, "sku,name\nCAF-500,Café 500g\nAZU-1000,\"Azúcar \"\"refinada\"\", 1kg\"\n", buf.String())
}

func TestWriteTable_BOM(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter().WriteTable(&buf, []string{"a"}, nil))
	assert.Equal(t, "\ufeffa\n", buf.String())
}
