// Package log writes diagnostics to a file per day under the logs directory.
// Nothing is written unless logs.write is set.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ledpal/ledpal/constant"
	"github.com/ledpal/ledpal/filesystem"
	"github.com/ledpal/ledpal/key"
	"github.com/ledpal/ledpal/where"
	"github.com/samber/lo"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	dayLayout = "2006-01-02"
	extension = ".log"
)

var (
	enabled bool
	logger  = silent()
	entry   = logrus.NewEntry(logger)
)

func silent() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// Setup opens today's log file and prunes day files past logs.keep.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		logger = silent()
		entry = logrus.NewEntry(logger)
		return nil
	}

	dir := where.Logs()
	path := filepath.Join(dir, time.Now().Format(dayLayout)+extension)

	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	l := logrus.New()
	l.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		l.SetFormatter(&logrus.JSONFormatter{PrettyPrint: true})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	logger = l
	entry = l.WithField("version", constant.Version)

	if keep := viper.GetInt(key.LogsKeep); keep > 0 {
		if err := prune(dir, time.Now().AddDate(0, 0, -keep)); err != nil {
			entry.Warnf("pruning logs: %s", err)
		}
	}

	return nil
}

// prune removes day files dated before cutoff. Files not named after a day are left alone.
func prune(dir string, cutoff time.Time) error {
	files, err := filesystem.API().ReadDir(dir)
	if err != nil {
		return err
	}

	stale := lo.Filter(files, func(f os.FileInfo, _ int) bool {
		day, err := time.Parse(dayLayout, strings.TrimSuffix(f.Name(), extension))
		return err == nil && !f.IsDir() && filepath.Ext(f.Name()) == extension && day.Before(cutoff)
	})

	for _, f := range stale {
		if err := filesystem.API().Remove(filepath.Join(dir, f.Name())); err != nil {
			return err
		}
	}

	return nil
}

func Enabled() bool {
	return enabled
}

// Level is the effective severity threshold.
func Level() logrus.Level {
	return logger.GetLevel()
}

// WithFields returns an entry carrying structured context, e.g. the palette key a mutation targets.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return entry.WithFields(fields)
}

func Error(args ...any)                 { entry.Error(args...) }
func Errorf(format string, args ...any) { entry.Errorf(format, args...) }
func Warn(args ...any)                  { entry.Warn(args...) }
func Warnf(format string, args ...any)  { entry.Warnf(format, args...) }
func Info(args ...any)                  { entry.Info(args...) }
func Infof(format string, args ...any)  { entry.Infof(format, args...) }
func Debug(args ...any)                 { entry.Debug(args...) }
func Debugf(format string, args ...any) { entry.Debugf(format, args...) }
