package log

import (
	"io/ioutil"

	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
)

// AddTracer mirrors trace, debug and warn entries into JSON files next to path.
func AddTracer(logger *log.Logger, path string) {
	pathMap := lfshook.PathMap{
		log.TraceLevel: path + ".trace",
		log.DebugLevel: path + ".trace",
		log.WarnLevel:  path + ".warn",
		log.ErrorLevel: path + ".warn",
	}
	hook := lfshook.NewHook(
		pathMap,
		&log.JSONFormatter{
			TimestampFormat: "Jan _2 2006 15:04:05.000000",
		},
	)
	logger.Hooks.Add(hook)
}

// EnableTrace opens the base logger down to trace level for the trace files while
// the console keeps printing only entries at or above console.
func EnableTrace(path string, console log.Level) {
	b := Base()
	writers := lfshook.WriterMap{}
	for _, lvl := range log.AllLevels {
		if lvl <= console {
			writers[lvl] = b.Out
		}
	}
	b.Hooks.Add(lfshook.NewHook(writers, b.Formatter))
	AddTracer(b, path)
	b.SetOutput(ioutil.Discard)
	b.SetLevel(log.TraceLevel)
}
