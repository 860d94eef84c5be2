package logger_test

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/raykavin/kchart/logger"
	logruslogger "github.com/raykavin/kchart/logger/logrus"
	zerologger "github.com/raykavin/kchart/logger/zerolog"
)

func TestZerologAdapter_ImplementsLogger(t *testing.T) {
	l := zerolog.Nop()
	var log logger.Logger = zerologger.NewAdapter(&l)

	log = log.WithField("component", "chart").WithError(errors.New("boom"))
	log.Infof("painted %d frames", 3)
	log.Debug("noop")
}

func TestZerologAdapter_Console(t *testing.T) {
	log, err := zerologger.NewConsole("debug", "2006-01-02 15:04:05", false, true)
	require.NoError(t, err)

	log.SetLevel(logger.WarnLevel)
	log.Warnf("range moved to [%d, %d)", 5, 25)
}

func TestZerologAdapter_ConsoleBadLevel(t *testing.T) {
	_, err := zerologger.NewConsole("loud", "2006-01-02 15:04:05", false, false)
	require.Error(t, err)
}

func TestLogrusAdapter_Levels(t *testing.T) {
	log := logruslogger.New(logger.InfoLevel)
	require.Equal(t, logger.InfoLevel, log.GetLevel())

	log.SetLevel(logger.ErrorLevel)
	require.Equal(t, logger.ErrorLevel, log.GetLevel())

	sub := log.WithFields(map[string]any{"pane": "volume"})
	sub.Warnf("dropped %d ticks", 2)
}
