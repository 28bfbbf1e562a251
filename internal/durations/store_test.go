package durations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []int
	}{
		{"defaults", "5, 15, 30", []int{5, 15, 30}},
		{"drops invalid tokens", "5, 15, x, -3, 30", []int{5, 15, 30}},
		{"no spaces", "1,2,3", []int{1, 2, 3}},
		{"keeps duplicates", "10, 10", []int{10, 10}},
		{"keeps order", "30, 5", []int{30, 5}},
		{"zero dropped", "0, 7", []int{7}},
		{"float dropped", "2.5, 4", []int{4}},
		{"one day kept", "1440", []int{1440}},
		{"over one day dropped", "1441, 25", []int{25}},
		{"overflowing minutes dropped", "200000000, 99999999999999999999, 5", []int{5}},
		{"empty", "", nil},
		{"only garbage", "abc", nil},
		{"only separators", " , ,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Parse(tt.input))
		})
	}
}

func TestApplyRejectsOnlyOversized(t *testing.T) {
	s := NewStore()
	assert.False(t, s.Apply("200000000"))
	assert.Equal(t, []int{5, 15, 30}, s.Options())
}

func TestNewStoreDefaults(t *testing.T) {
	s := NewStore()
	assert.Equal(t, []int{5, 15, 30}, s.Options())
	assert.Equal(t, "5, 15, 30", s.Text())
	assert.Equal(t, 3, s.Len())
}

func TestApplyValid(t *testing.T) {
	s := NewStore()
	require.True(t, s.Apply("25, x, 50"))
	assert.Equal(t, []int{25, 50}, s.Options())
	assert.Equal(t, "25, 50", s.Text())
}

func TestApplyRejectedKeepsPrevious(t *testing.T) {
	for _, input := range []string{"", "abc", "-1, 0"} {
		t.Run(input, func(t *testing.T) {
			s := NewStore()
			s.SetText(input)
			assert.False(t, s.Apply(input))
			assert.Equal(t, []int{5, 15, 30}, s.Options())
		})
	}
}

func TestSetEmptyIgnored(t *testing.T) {
	s := NewStore()
	s.Set(nil)
	assert.Equal(t, []int{5, 15, 30}, s.Options())
}

func TestOptionsIsCopy(t *testing.T) {
	s := NewStore()
	opts := s.Options()
	opts[0] = 99
	v, ok := s.At(0)
	require.True(t, ok)
	assert.Equal(t, 5, v)
}

func TestAtOutOfRange(t *testing.T) {
	s := NewStore()
	_, ok := s.At(3)
	assert.False(t, ok)
	_, ok = s.At(-1)
	assert.False(t, ok)
}
