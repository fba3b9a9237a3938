package usecase

import (
	"github.com/xavierca1/leadcapture/internal/entity"
	"github.com/xavierca1/leadcapture/internal/infra/integration/whatsapp"
)

// ResolveCredentials overlays a tenant's WhatsApp settings on the process
// defaults, field by field.
func ResolveCredentials(tenant entity.WhatsAppCredentials, defaults whatsapp.Credentials) whatsapp.Credentials {
	creds := defaults
	if tenant.AccessToken != "" {
		creds.AccessToken = tenant.AccessToken
	}
	if tenant.PhoneNumberID != "" {
		creds.PhoneNumberID = tenant.PhoneNumberID
	}
	return creds
}
