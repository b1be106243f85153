package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil inventory service returns error", func(t *testing.T) {
		ports := &Ports{}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingInventoryService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{
			Inventory: &mockInventoryService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil inventory service returns error", func(t *testing.T) {
		ports := &Ports{}
		assert.ErrorIs(t, ports.Validate(), ErrMissingInventoryService)
	})

	t.Run("inventory set is valid", func(t *testing.T) {
		ports := &Ports{Inventory: &mockInventoryService{}}
		assert.NoError(t, ports.Validate())
	})
}
