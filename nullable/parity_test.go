package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestIsEven(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		n       *int
		want    bool
		printed string
	}{
		{"even", lo.ToPtr(2), true, "parity check "},
		{"odd", lo.ToPtr(3), false, "parity check "},
		{"negative odd", lo.ToPtr(-7), false, "parity check "},
		{"zero", lo.ToPtr(0), true, "parity check "},
		{"nil", nil, true, "no integer to process "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			assert.Equal(t, tt.want, IsEven(&buf, tt.n))
			assert.Equal(t, tt.printed, buf.String())
		})
	}
}

func TestIsEvenDoesNotModify(t *testing.T) {
	t.Parallel()

	n := 4
	IsEven(io.Discard, &n)
	assert.Equal(t, 4, n)
}

func TestDemoParity(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	demoParity(&buf)
	assert.Equal(t,
		"parity check true\nparity check false\nno integer to process true\n",
		buf.String())
}
