package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParams_Set(t *testing.T) {
	t.Run("preserves insertion order", func(t *testing.T) {
		p := NewParams()
		p.Set("q", "example.org")
		p.Set("confidence", 65.0)
		p.Set("limit", 100)

		assert.Equal(t, "q=example.org&confidence=65&limit=100", p.Encode())
	})

	t.Run("skips empty zero and unset values", func(t *testing.T) {
		p := NewParams()
		p.Set("a", "")
		p.Set("b", 0)
		p.Set("c", 0.0)
		p.Set("d", false)
		p.Set("e", nil)
		p.Set("f", "kept")

		assert.Equal(t, 1, p.Len())
		assert.Equal(t, "f=kept", p.Encode())
	})

	t.Run("true encodes as true", func(t *testing.T) {
		p := NewParams()
		p.Set("nolog", true)
		assert.Equal(t, "nolog=true", p.Encode())
	})

	t.Run("fractional confidence keeps precision", func(t *testing.T) {
		p := NewParams()
		p.Set("confidence", 82.5)
		assert.Equal(t, "confidence=82.5", p.Encode())
	})

	t.Run("values are percent-encoded", func(t *testing.T) {
		p := NewParams()
		p.Set("q", "scanner ssh")
		p.Set("tags", "botnet,c&c")

		assert.Equal(t, "q=scanner+ssh&tags=botnet%2Cc%26c", p.Encode())
	})
}

func TestParams_SetLeading(t *testing.T) {
	t.Run("inserts at the front", func(t *testing.T) {
		p := NewParams()
		p.Set("q", "example.org")
		p.SetLeading("token", "secret")

		assert.Equal(t, "token=secret&q=example.org", p.Encode())
	})

	t.Run("moves an existing key to the front", func(t *testing.T) {
		p := NewParams()
		p.Set("q", "example.org")
		p.Set("token", "per-call")
		p.SetLeading("token", "configured")

		assert.Equal(t, "token=configured&q=example.org", p.Encode())
	})

	t.Run("keeps the existing value when given an empty one", func(t *testing.T) {
		p := NewParams()
		p.Set("token", "per-call")
		p.Set("q", "example.org")
		p.SetLeading("token", "")

		assert.Equal(t, "token=per-call&q=example.org", p.Encode())
	})
}

func TestParams_Get(t *testing.T) {
	p := NewParams()
	p.Set("q", "example.org")

	assert.Equal(t, "example.org", p.Get("q"))
	assert.Empty(t, p.Get("missing"))
}
