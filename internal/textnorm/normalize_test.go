package textnorm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_LowercasesAndCollapsesWhitespace(t *testing.T) {
	got := Normalize("  Senior\tGo   Developer \n ")
	assert.Equal(t, "senior go developer", got)
}

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   \t\n  "))
}

func TestNormalizeWithLimit_Truncates(t *testing.T) {
	long := strings.Repeat("abc ", 400)
	got := NormalizeWithLimit(long, 10)
	assert.Equal(t, 10, len([]rune(got)))
	assert.Equal(t, "abc abc ab", got)
}

func TestNormalizeWithLimit_DefaultsOnNonPositiveLimit(t *testing.T) {
	long := strings.Repeat("x", 2000)
	got := NormalizeWithLimit(long, 0)
	assert.Equal(t, DefaultMaxLength, len([]rune(got)))
}

func TestFingerprint_StableAcrossFormattingVariants(t *testing.T) {
	a := FingerprintRaw("Python   Developer")
	b := FingerprintRaw("\npython developer\t")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64) // sha256 hex
}

func TestFingerprint_DistinctTexts(t *testing.T) {
	a := FingerprintRaw("python developer")
	b := FingerprintRaw("java developer")
	assert.NotEqual(t, a, b)
}
