package config

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}

// NewRandomForTest creates a Random config for testing purposes
func NewRandomForTest(seed int) *Random {
	return &Random{seed: seed}
}
