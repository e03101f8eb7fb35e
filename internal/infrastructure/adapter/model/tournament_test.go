package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsCodec(t *testing.T) {
	t.Run("Round trip preserves order", func(t *testing.T) {
		options := []string{"Team B", "Team A", "Draw"}

		encoded, err := EncodeOptions(options)
		require.NoError(t, err)

		decoded, err := DecodeOptions(encoded)
		require.NoError(t, err)
		assert.Equal(t, options, decoded)
	})

	t.Run("Labels with quotes and unicode survive", func(t *testing.T) {
		options := []string{`He said "yes"`, "café ☕"}

		encoded, err := EncodeOptions(options)
		require.NoError(t, err)

		decoded, err := DecodeOptions(encoded)
		require.NoError(t, err)
		assert.Equal(t, options, decoded)
	})

	t.Run("Corrupt stored value fails to decode", func(t *testing.T) {
		decoded, err := DecodeOptions("{not json")

		assert.Error(t, err)
		assert.Nil(t, decoded)
	})
}
