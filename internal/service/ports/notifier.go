package ports

import (
	"context"

	"github.com/nikfrants/biketransfer/internal/domain"
)

// ApplicationNotifier is a side-effecting sink: the controller calls it
// on submission but does not manage delivery.
type ApplicationNotifier interface {
	NotifyApplicationCreated(ctx context.Context, profile *domain.ClientProfile, app *domain.Application)
}
