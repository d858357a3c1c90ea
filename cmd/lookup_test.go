package cmd

import (
	"bytes"
	"testing"

	"currency-registry/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithAmount(t *testing.T) {
	eur := reconcile.Record{Code: "EUR", Numeric: 978, MinorUnit: 2, Category: reconcile.CategoryActive}
	xau := reconcile.Record{Code: "XAU", Numeric: 959, MinorUnit: reconcile.NoValue, Category: reconcile.CategoryActive}

	t.Run("No amount", func(t *testing.T) {
		got, err := withAmount(eur, "")
		require.NoError(t, err)
		assert.Equal(t, eur, got)
	})

	t.Run("Rounded to minor unit", func(t *testing.T) {
		got, err := withAmount(eur, "12.345")
		require.NoError(t, err)
		res := got.(AmountResult)
		assert.Equal(t, "12.345", res.Amount)
		assert.Equal(t, "12.34", res.Rounded)
		require.NotNil(t, res.MinorUnits)
		assert.Equal(t, int64(1234), *res.MinorUnits)
	})

	t.Run("No minor unit", func(t *testing.T) {
		got, err := withAmount(xau, "1.23456")
		require.NoError(t, err)
		res := got.(AmountResult)
		assert.Equal(t, "1.23456", res.Rounded)
		assert.Nil(t, res.MinorUnits)
	})

	t.Run("Invalid amount", func(t *testing.T) {
		_, err := withAmount(eur, "twelve")
		assert.Error(t, err)
	})
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, map[string]int{"records": 3}))
	assert.Equal(t, "{\n  \"records\": 3\n}\n", buf.String())
}

func TestCommandsRegistered(t *testing.T) {
	var names []string
	for _, c := range RootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"build", "serve", "lookup", "check"} {
		assert.Contains(t, names, want)
	}
}
