package logger

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type LoggerTestSuite struct {
	suite.Suite
	originalLogger *zap.Logger
	observedLogs   *observer.ObservedLogs
}

func (suite *LoggerTestSuite) SetupSuite() {
	suite.originalLogger = zap.L()
}

func (suite *LoggerTestSuite) TearDownSuite() {
	zap.ReplaceGlobals(suite.originalLogger)
}

func (suite *LoggerTestSuite) SetupTest() {
	core, logs := observer.New(zap.DebugLevel)
	zap.ReplaceGlobals(zap.New(core))
	suite.observedLogs = logs
}

func (suite *LoggerTestSuite) TearDownTest() {
	suite.observedLogs.TakeAll()
}

func (suite *LoggerTestSuite) TestGetLogLevelFromString() {
	testCases := []struct {
		name     string
		input    string
		expected zapcore.Level
	}{
		{"debug lowercase", "debug", zapcore.DebugLevel},
		{"info lowercase", "info", zapcore.InfoLevel},
		{"warn lowercase", "warn", zapcore.WarnLevel},
		{"error lowercase", "error", zapcore.ErrorLevel},
		{"debug uppercase", "DEBUG", zapcore.DebugLevel},
		{"warn mixed case", "Warn", zapcore.WarnLevel},
		{"debug short", "dbg", zapcore.DebugLevel},
		{"error short", "err", zapcore.ErrorLevel},
		{"warning full", "warning", zapcore.WarnLevel},
		{"with whitespace", "  info  ", zapcore.InfoLevel},
		{"empty string", "", zapcore.InfoLevel},
		{"unknown level", "verbose", zapcore.InfoLevel},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.Equal(tc.expected, getLogLevelFromString(tc.input))
		})
	}
}

func (suite *LoggerTestSuite) TestStructuredLogging() {
	LogInfo("session restored", zap.String("email", "ana@example.com"))

	logs := suite.observedLogs.TakeAll()
	suite.Require().Len(logs, 1)
	suite.Equal("session restored", logs[0].Message)
	suite.Equal(zapcore.InfoLevel, logs[0].Level)
	suite.Equal("ana@example.com", logs[0].ContextMap()["email"])
}

func (suite *LoggerTestSuite) TestLevels() {
	LogDebug("d")
	LogInfo("i")
	LogWarn("w")
	LogError("e")

	logs := suite.observedLogs.TakeAll()
	suite.Require().Len(logs, 4)
	suite.Equal(zapcore.DebugLevel, logs[0].Level)
	suite.Equal(zapcore.InfoLevel, logs[1].Level)
	suite.Equal(zapcore.WarnLevel, logs[2].Level)
	suite.Equal(zapcore.ErrorLevel, logs[3].Level)
}

func (suite *LoggerTestSuite) TestFormattedLogging() {
	LogWarnf("clearing stored session after %d failures", 3)
	LogInfof("plain message")

	logs := suite.observedLogs.TakeAll()
	suite.Require().Len(logs, 2)
	suite.Equal("clearing stored session after 3 failures", logs[0].Message)
	suite.Equal("plain message", logs[1].Message)
}

func (suite *LoggerTestSuite) TestInitDoesNotPanic() {
	suite.NotPanics(func() {
		Init(&Config{Level: "debug", Env: "test", ServiceName: "servinow-client"})
	})
	suite.NotNil(zap.L())
}

func TestLoggerTestSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}
