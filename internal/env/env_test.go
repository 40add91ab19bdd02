package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOSReaderGetenv(t *testing.T) { //nolint:paralleltest // modifies environment variables
	const key = "SKILLCAT_TEST_ENV_VARIABLE"
	t.Setenv(key, "test_value_123")

	reader := &OSReader{}

	tests := []struct {
		name string
		key  string
		want string
	}{
		{name: "existing variable", key: key, want: "test_value_123"},
		{name: "missing variable", key: "SKILLCAT_TEST_NONEXISTENT_12345", want: ""},
		{name: "empty key", key: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reader.Getenv(tt.key))
		})
	}
}

func TestMapReader(t *testing.T) {
	t.Parallel()
	r := MapReader{"SKILLCAT_SOURCE": "builtin:"}
	assert.Equal(t, "builtin:", r.Getenv("SKILLCAT_SOURCE"))
	assert.Empty(t, r.Getenv("SKILLCAT_LOG_LEVEL"))

	var nilMap MapReader
	assert.Empty(t, nilMap.Getenv("anything"))
}

func TestReaderImplementations(t *testing.T) {
	t.Parallel()
	var _ Reader = &OSReader{}
	var _ Reader = MapReader{}
}
