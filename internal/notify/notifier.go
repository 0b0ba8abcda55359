package notify

import "log"

// Notifier abstracts the delivery channel (email/SMS/console).
type Notifier interface {
	Notify(subject, message string) error
}

// ConsoleNotifier logs notifications; the MVP channel.
type ConsoleNotifier struct{}

func NewConsole() *ConsoleNotifier {
	return &ConsoleNotifier{}
}

func (c *ConsoleNotifier) Notify(subject, message string) error {
	log.Printf("[notify] %s :: %s", subject, message)
	return nil
}
