package notify

import "spaceflow/pkg/logger"

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Notifier is the user-facing notification sink. The rendering side (toasts)
// lives outside this module; the core only emits messages.
type Notifier interface {
	Notify(message string, severity Severity)
}

// Navigator asks the presentation layer to switch to the given page. Used for
// auth-required redirects.
type Navigator interface {
	Navigate(page string)
}

// LogNotifier routes notifications into the structured log.
type LogNotifier struct {
	logger logger.Logger
}

func NewLogNotifier(logger logger.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(message string, severity Severity) {
	fields := map[string]interface{}{"severity": string(severity)}
	switch severity {
	case SeverityError:
		n.logger.Error(message, fields)
	case SeverityWarning:
		n.logger.Warn(message, fields)
	default:
		n.logger.Info(message, fields)
	}
}

func (n *LogNotifier) Navigate(page string) {
	n.logger.Debug("Sayfa yönlendirmesi istendi", map[string]interface{}{"page": page})
}
