package observability

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		level     logrus.Level
		wantDebug bool
	}{
		{name: "quiet", verbose: false, level: logrus.InfoLevel},
		{name: "verbose", verbose: true, level: logrus.DebugLevel, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, tt.verbose)

			assert.Equal(t, tt.level, logger.GetLevel())

			logger.Debug("debug line")
			logger.WithField("template", "simple").Info("info line")

			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("debug line")))
			assert.Contains(t, buf.String(), "info line")
			assert.Contains(t, buf.String(), "template=simple")
		})
	}
}
