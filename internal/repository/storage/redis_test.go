package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Connects to a running server", func(t *testing.T) {
		// Given: a running redis server
		server := miniredis.RunT(t)

		// When: connecting to it
		client, err := New(context.Background(), server.Addr(), "", 0)

		// Then: the connection is usable
		require.NoError(t, err)
		t.Cleanup(func() { _ = client.Close() })

		require.NoError(t, client.Set(context.Background(), "key", "value", 0).Err())
		server.CheckGet(t, "key", "value")
	})

	t.Run("Fails when the server is down", func(t *testing.T) {
		// Given: a server that has been stopped
		server := miniredis.RunT(t)
		addr := server.Addr()
		server.Close()

		// When: connecting to it
		client, err := New(context.Background(), addr, "", 0)

		// Then: an error is returned
		require.Error(t, err)
		require.Nil(t, client)
	})
}
