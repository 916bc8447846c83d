package logging

import (
	"io/ioutil"
	"log"
	"os"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelNone
)

var (
	debug   *log.Logger
	info    *log.Logger
	warning *log.Logger
	errlog  *log.Logger
)

func init() {
	flags := log.Ldate | log.Ltime | log.LUTC
	debug = log.New(ioutil.Discard, "D ", flags)
	info = log.New(ioutil.Discard, "I ", flags)
	warning = log.New(ioutil.Discard, "W ", flags)
	errlog = log.New(ioutil.Discard, "E ", flags)

	SetLevel(LevelWarning)
}

func SetLevel(l Level) {
	for _, x := range []struct {
		logger *log.Logger
		min    Level
	}{
		{debug, LevelDebug},
		{info, LevelInfo},
		{warning, LevelWarning},
		{errlog, LevelError},
	} {
		if l <= x.min {
			x.logger.SetOutput(os.Stderr)
		} else {
			x.logger.SetOutput(ioutil.Discard)
		}
	}
}

func Debug(msg string, v ...interface{}) {
	debug.Printf(msg, v...)
}

func Info(msg string, v ...interface{}) {
	info.Printf(msg, v...)
}

func Warning(msg string, v ...interface{}) {
	warning.Printf(msg, v...)
}

func Error(msg string, v ...interface{}) {
	errlog.Printf(msg, v...)
}
