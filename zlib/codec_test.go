package zlib_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/msdocs/zlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := map[string]string{
		"empty":      "",
		"plain text": "CreateFile opens or creates a file.",
		"markdown":   "## Description\n\n**CreateFile** opens a file.\n\n<table border=\"1\"><tr><td>x</td></tr></table>",
		"unicode":    "héllo wörld ポインター",
		"repetitive": strings.Repeat("The quick brown fox. ", 1000),
	}

	codec := zlib.Codec{}
	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			compressed, err := codec.Compress([]byte(input))
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			assert.Equal(t, input, string(decompressed))
		})
	}
}

func TestCodec_CompressesRepetitiveContent(t *testing.T) {
	t.Parallel()

	input := []byte(strings.Repeat("All work and no play. ", 1000))
	codec := zlib.Codec{}

	compressed, err := codec.Compress(input)
	require.NoError(t, err)
	assert.Less(t, len(compressed), len(input))
}

func TestCodec_DecompressRejectsGarbage(t *testing.T) {
	t.Parallel()

	codec := zlib.Codec{}

	_, err := codec.Decompress([]byte("not zlib data"))
	assert.Error(t, err)
}
