package worker

import (
	"go.uber.org/zap"

	"github.com/careerhub/portal-service/internal/messaging"
	"github.com/careerhub/portal-service/internal/service"
)

// StartNotificationWorker registers notification handlers and returns a stop function that
// releases the broker publisher.
func StartNotificationWorker(notificationService *service.NotificationService, publisher messaging.Publisher, logger *zap.Logger) func() {
	if logger == nil {
		logger = zap.NewNop()
	}
	if notificationService != nil {
		notificationService.RegisterHandlers()
	}
	return func() {
		if publisher == nil {
			return
		}
		if err := publisher.Close(); err != nil {
			logger.Warn("close notification publisher", zap.Error(err))
		}
	}
}
