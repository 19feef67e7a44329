package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lowercases and strips punctuation",
			text: "Hello, World! It's fine.",
			want: []string{"hello", "world", "it's", "fine"},
		},
		{
			name: "empty transcript",
			text: "",
			want: []string{},
		},
		{
			name: "whitespace only",
			text: "   \n\t ",
			want: []string{},
		},
		{
			name: "pure punctuation tokens dropped",
			text: "well... -- yes!",
			want: []string{"well", "yes"},
		},
		{
			name: "numbers kept",
			text: "I am 42 years old",
			want: []string{"i", "am", "42", "years", "old"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Words(tt.text))
		})
	}
}

func TestSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty yields zero sentences", "", 0},
		{"single sentence", "I went to the store.", 1},
		{"mixed terminators", "Really? Yes! It was fine.", 3},
		{"no terminator still one sentence", "just a fragment", 1},
		{"trailing punctuation runs", "One... Two.", 2},
		{"whitespace between terminators discarded", "One.   . Two.", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, Sentences(tt.text), tt.want)
		})
	}
}

func TestCountConjunctions(t *testing.T) {
	cfg := DefaultConfig()

	words := Words("I stayed home because it rained, and I read while waiting.")
	// "while" matches; "waiting" must not (whole-token match only).
	assert.Equal(t, 3, countConjunctions(words, cfg.Conjunctions))

	none := Words("The cat sat on the mat.")
	assert.Equal(t, 0, countConjunctions(none, cfg.Conjunctions))
}

func TestUniqueCount(t *testing.T) {
	words := Words("the cat and the dog")
	assert.Equal(t, 4, uniqueCount(words))
	assert.Equal(t, 0, uniqueCount(nil))
}
