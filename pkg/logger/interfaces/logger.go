package interfaces

// BasicLogger совместим с методами печати стандартного log.Logger.
type BasicLogger interface {
	Print(v ...interface{})
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

// LevelLogger пишет сообщения с уровнем.
type LevelLogger interface {
	Info(args ...interface{})
	Error(args ...interface{})
	Debug(args ...interface{})
	Warn(args ...interface{})
}

// FormattedLevelLogger пишет форматированные сообщения с уровнем.
type FormattedLevelLogger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// ContextLogger возвращает дочерний логгер с дополнительными полями.
type ContextLogger interface {
	WithFields(fields map[string]interface{}) Logger
}

// SimpleLogger уровни без контекста. Его принимает pkg/options.
type SimpleLogger interface {
	BasicLogger
	LevelLogger
	FormattedLevelLogger
}

// Logger полный набор возможностей.
type Logger interface {
	SimpleLogger
	ContextLogger
}
