package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-sol-vault/internal/logger"
	"github.com/MKhiriev/go-sol-vault/internal/utils"
	"github.com/MKhiriev/go-sol-vault/models"
)

const defaultNotificationBuffer = 64

// channelNotifier logs every notification and queues it for the UI. When
// the queue is full the oldest notification is dropped.
type channelNotifier struct {
	ch  chan models.Notification
	mu  sync.Mutex
	ids *utils.UUIDGenerator
	now func() time.Time

	logger *logger.Logger
}

func NewNotifier(buffer int, logger *logger.Logger) Notifier {
	if buffer <= 0 {
		buffer = defaultNotificationBuffer
	}
	return &channelNotifier{
		ch:     make(chan models.Notification, buffer),
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
		logger: logger,
	}
}

func (n *channelNotifier) Notify(level models.NotificationLevel, message string) models.Notification {
	notification := models.Notification{
		ID:        n.ids.Generate(),
		Level:     level,
		Message:   message,
		CreatedAt: n.now(),
	}

	n.logger.Info().
		Str("notification_id", notification.ID).
		Str("level", string(level)).
		Msg(message)

	n.mu.Lock()
	defer n.mu.Unlock()
	for {
		select {
		case n.ch <- notification:
			return notification
		default:
		}
		select {
		case <-n.ch:
		default:
		}
	}
}

func (n *channelNotifier) Notifications() <-chan models.Notification {
	return n.ch
}
