package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoDelegation(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	built := demoDelegation(&buf)
	assert.Equal(t,
		"B constructor : 1\nB constructor : 2\nB constructor : 3\nB constructor : 4\nB constructor : 5\n",
		buf.String())

	require.Len(t, built, 5)
	for i, v := range built {
		assert.Equal(t, i+1, v.Val())
	}
}

func TestNewDMatchesNewB(t *testing.T) {
	t.Parallel()

	var fromB, fromD bytes.Buffer
	b := NewB(&fromB, 7)
	d := NewD(&fromD, 7)

	assert.Equal(t, fromB.String(), fromD.String())
	require.NotNil(t, d.B)
	assert.Equal(t, *b, *d.B)
	assert.Equal(t, 7, d.Value, "field promoted from B")
}

func TestDSatisfiesValuer(t *testing.T) {
	t.Parallel()

	var v Valuer = NewD(io.Discard, 9)
	assert.Equal(t, 9, v.Val())
}
