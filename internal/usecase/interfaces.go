package usecase

import (
	"context"

	"github.com/xavierca1/leadcapture/internal/entity"
	"github.com/xavierca1/leadcapture/internal/infra/integration/whatsapp"
)

type MessageSender interface {
	SendText(ctx context.Context, to, body string, creds whatsapp.Credentials) error
}

type LeadNotifier interface {
	NotifyNewLead(to string, lead *entity.Lead) error
}

type VerifyTokenLookup interface {
	ExistsByVerifyToken(ctx context.Context, token string) (bool, error)
}
