package sound

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBellBackend_EveryPlayRingsOnce(t *testing.T) {
	out := &bytes.Buffer{}
	backend := NewBellBackend(out)

	handle, err := backend.Load(context.Background(), []string{"beep.mp3"})
	require.NoError(t, err)

	require.NoError(t, handle.Play())
	require.NoError(t, handle.Play())

	assert.Equal(t, "\a\a", out.String())
	assert.NoError(t, backend.Wait(context.Background()))
	assert.NoError(t, backend.Close())
}
