package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTypeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "no qualifier",
			input:    "string | number",
			expected: "string | number",
		},
		{
			name:     "qualified generic array",
			input:    `import("rootDir/src/types/example").IList<any>[]`,
			expected: "IList<any>[]",
		},
		{
			name:     "qualifier nested in generic arguments",
			input:    `React.MutableRefObject<{ [elementId: string]: import("rootDir/src/types/validate").ValidateRule<any>[]; }>`,
			expected: "React.MutableRefObject<{ [elementId: string]: ValidateRule<any>[]; }>",
		},
		{
			name:     "several qualifiers",
			input:    `Map<import("/a").Key, import("/b/c").Value>`,
			expected: "Map<Key, Value>",
		},
		{
			name:     "single quoted import is left alone",
			input:    `import('/a').Key`,
			expected: `import('/a').Key`,
		},
		{
			name:     "import without member access is left alone",
			input:    `typeof import("/a")`,
			expected: `typeof import("/a")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeTypeText(tt.input))
		})
	}
}

func TestNormalizeTypeTextIsIdempotent(t *testing.T) {
	input := `Array<import("/x/y").Item | import("/x/z").Other>`
	once := NormalizeTypeText(input)

	assert.Equal(t, "Array<Item | Other>", once)
	assert.Equal(t, once, NormalizeTypeText(once))
	assert.NotContains(t, once, "import(")
}
