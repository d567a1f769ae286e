package testutil

import (
	"io"

	"github.com/scic-labs/taskboard-server/internal/logger"
)

func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, 0)
}
