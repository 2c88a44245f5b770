package iocli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStdio(t *testing.T) {
	io := NewStdio()
	assert.NotNil(t, io)
}

func TestStdio_Write(t *testing.T) {
	s := &Stdio{}
	n, err := s.Write([]byte("hello\n"))
	assert.NoError(t, err)
	assert.Equal(t, 6, n)
}
