package logger

// Resty forwards resty's internal log lines to the package logger
type Resty struct{}

// Errorf ...
func (Resty) Errorf(format string, v ...interface{}) {
	Errorf(nil, format, v...)
}

// Warnf ...
func (Resty) Warnf(format string, v ...interface{}) {
	Warnf(format, v...)
}

// Debugf ...
func (Resty) Debugf(format string, v ...interface{}) {
	Debugf(format, v...)
}
