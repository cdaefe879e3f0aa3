// Package notice reports fatal conditions to the person running the program.
package notice

import (
	"errors"
	"log/slog"

	"github.com/ncruces/zenity"
)

// Notifier shows a blocking notice and returns once it is dismissed.
type Notifier interface {
	Alert(title, message string) error
}

// Dialog shows a native error dialog.
type Dialog struct{}

func (Dialog) Alert(title, message string) error {
	err := zenity.Error(message, zenity.Title(title), zenity.ErrorIcon)
	if errors.Is(err, zenity.ErrCanceled) {
		return nil
	}
	return err
}

// Log writes the notice to a logger, for runs without a desktop.
type Log struct {
	Logger *slog.Logger
}

func (l Log) Alert(title, message string) error {
	lg := l.Logger
	if lg == nil {
		lg = slog.Default()
	}
	lg.Error(message, "notice", title)
	return nil
}

// Fallback tries each notifier in turn until one succeeds.
type Fallback []Notifier

func (f Fallback) Alert(title, message string) error {
	var errs []error
	for _, n := range f {
		err := n.Alert(title, message)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
