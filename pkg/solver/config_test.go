package solver

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigFromJson(t *testing.T) {
	t.Run("All fields", func(t *testing.T) {
		// Arrange
		file := path.Join(t.TempDir(), "config.json")
		document := `{"chunkSize": 6, "seed": 42, "maxPaths": 100000, "maxRounds": 500}`
		assert.Nil(t, os.WriteFile(file, []byte(document), 0644))

		// Act
		config, err := ConfigFromJson(file)

		// Assert
		assert.Nil(t, err)
		assert.Equal(t, Config{ChunkSize: 6, Seed: 42, MaxPaths: 100000, MaxRounds: 500}, config)
	})

	t.Run("Missing fields default to zero", func(t *testing.T) {
		// Arrange
		file := path.Join(t.TempDir(), "config.json")
		assert.Nil(t, os.WriteFile(file, []byte(`{"seed": 7}`), 0644))

		// Act
		config, err := ConfigFromJson(file)

		// Assert
		assert.Nil(t, err)
		assert.Equal(t, Config{Seed: 7}, config)
	})

	t.Run("Missing file", func(t *testing.T) {
		// Act
		_, err := ConfigFromJson(path.Join(t.TempDir(), "absent.json"))

		// Assert
		assert.NotNil(t, err)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		// Arrange
		file := path.Join(t.TempDir(), "config.json")
		assert.Nil(t, os.WriteFile(file, []byte("{"), 0644))

		// Act
		_, err := ConfigFromJson(file)

		// Assert
		assert.NotNil(t, err)
	})
}
