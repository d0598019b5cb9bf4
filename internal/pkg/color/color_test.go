package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHueFor(t *testing.T) {
	tests := []struct {
		identifier string
		want       int
	}{
		{"", 0},
		{"a", 97},
		{"abc", 234},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HueFor(tt.identifier), "identifier %q", tt.identifier)
	}
}

func TestHSLFor(t *testing.T) {
	assert.Equal(t, "hsl(234, 70%, 60%)", HSLFor("abc"))
	assert.Equal(t, "hsl(0, 70%, 60%)", HSLFor(""))
}

func TestHSLFor_Deterministic(t *testing.T) {
	first := HSLFor("crash-landing-on-you")
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, HSLFor("crash-landing-on-you"))
	}
}

func TestHueFor_AlwaysInRange(t *testing.T) {
	// 长字符串会让 32 位哈希溢出翻负，色相仍须落在 [0, 360)
	identifiers := []string{
		"the-glory", "reply-1988", "my-mister",
		"extraordinary-attorney-woo-with-a-very-long-suffix-to-force-overflow",
	}
	for _, id := range identifiers {
		hue := HueFor(id)
		assert.GreaterOrEqual(t, hue, 0)
		assert.Less(t, hue, 360)
	}
}
