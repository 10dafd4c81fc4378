package logging

import (
	"bytes"

	"github.com/rs/zerolog"
)

// TestLogger returns a logger writing JSON into the returned buffer, for
// asserting on log output in tests.
func TestLogger() (*zerolog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	return &logger, &buf
}
