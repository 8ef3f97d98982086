package b64_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clairefro/flc-wix/pkg/b64"
)

func TestEncode_UTF8(t *testing.T) {
	assert.Equal(t, "aGVsbG8=", b64.Encode("hello"))
	// "東京" en UTF-8 son 6 bytes
	assert.Equal(t, "5p2x5Lqs", b64.Encode("東京"))
	assert.Equal(t, "", b64.Encode(""))
}

func TestDecode_RevierteEncode(t *testing.T) {
	in := "1-2-3 Shibuya, Tokyo, 150-0002, Japan"
	out, err := b64.Decode(b64.Encode(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecode_EntradaInvalida(t *testing.T) {
	_, err := b64.Decode("no es base64!!")
	assert.Error(t, err)
}

func TestDecode_NoUTF8(t *testing.T) {
	// 0xff 0xfe no es una secuencia UTF-8 válida
	_, err := b64.Decode("//4=")
	assert.ErrorIs(t, err, b64.ErrNotUTF8)
}
