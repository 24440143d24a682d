package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"Int", 6252001, 6252001},
		{"Int64", int64(2635167), 2635167},
		{"Float", 3.9, 3},
		{"String", "1269750", 1269750},
		{"Padded String", " 42 ", 42},
		{"Bytes", []byte("3017382"), 3017382},
		{"Garbage", "abc", 0},
		{"Nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToInt(tt.in))
		})
	}
}

func TestToString(t *testing.T) {
	assert.Equal(t, "India", ToString("India"))
	assert.Equal(t, "IN", ToString([]byte("IN")))
	assert.Equal(t, "Hindi, English", ToString([]string{"Hindi", "English"}))
	assert.Equal(t, "3287590", ToString(3287590))
	assert.Equal(t, "", ToString([]string{}))
}
