package emit

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRoundTrip(t *testing.T) {
	reg := testRegistry()

	data, err := EncodeJSON(reg)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"category": "funds"`)
	assert.Contains(t, string(data), `"040": "ATS"`)

	doc, err := DecodeJSON(bytes.NewReader(data))
	require.NoError(t, err)

	if diff := cmp.Diff(NewDocument(reg), doc); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"EUR", "CHE", "CHF", "XAU", "ATS"}, func() []string {
		var codes []string
		for _, rec := range doc.Records {
			codes = append(codes, rec.Code)
		}
		return codes
	}())
}

func TestDecodeJSON_Invalid(t *testing.T) {
	_, err := DecodeJSON(bytes.NewReader([]byte("{")))
	assert.Error(t, err)
}
