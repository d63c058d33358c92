package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrdinal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{in: "Q1", want: 1, ok: true},
		{in: "q6", want: 6, ok: true},
		{in: " Q4 ", want: 4, ok: true},
		{in: "3", want: 3, ok: true},
		{in: "Q12", want: 12, ok: true},
		{in: "Q", ok: false},
		{in: "", ok: false},
		{in: "Q4x", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseOrdinal(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChoice(t *testing.T) {
	t.Parallel()

	c, err := ParseChoice(" a ")
	require.NoError(t, err)
	assert.Equal(t, ChoiceA, c)

	c, err = ParseChoice("B")
	require.NoError(t, err)
	assert.Equal(t, ChoiceB, c)

	_, err = ParseChoice("maybe")
	assert.Error(t, err)
}

func TestQuestions(t *testing.T) {
	t.Parallel()

	qs := Questions()
	require.Len(t, qs, QuestionCount)
	for i, q := range qs {
		assert.Equal(t, i+1, q.Ordinal)
		assert.NotEmpty(t, q.Text)
		assert.NotEmpty(t, q.OptionA)
		assert.NotEmpty(t, q.OptionB)

		n, ok := ParseOrdinal(q.ID())
		assert.True(t, ok)
		assert.Equal(t, q.Ordinal, n)
	}

	qs[0].Text = "changed"
	assert.NotEqual(t, "changed", Questions()[0].Text)
}
