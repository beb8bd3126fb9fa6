package testutil

import (
	"context"
	"sync"

	"logistics/internal/core/domain/model/kernel"
)

// Notification is a message captured by RecordingNotifier.
type Notification struct {
	DriverID kernel.UUID
	Message  string
}

// RecordingNotifier is a NotificationSender that keeps every message it is
// asked to send. Err, when set, is returned from every call after recording.
type RecordingNotifier struct {
	mu   sync.Mutex
	Sent []Notification
	Err  error
}

func NewRecordingNotifier() *RecordingNotifier {
	return &RecordingNotifier{Sent: []Notification{}}
}

func (n *RecordingNotifier) NotifyDriver(_ context.Context, driverID kernel.UUID, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Sent = append(n.Sent, Notification{DriverID: driverID, Message: message})
	return n.Err
}

// For returns the messages sent to one driver.
func (n *RecordingNotifier) For(driverID kernel.UUID) []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, 0)
	for _, s := range n.Sent {
		if s.DriverID.IsEqual(driverID) {
			out = append(out, s.Message)
		}
	}
	return out
}
