package usecase

type SignupInput struct {
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type WhatsAppSettingsInput struct {
	AccessToken   string
	PhoneNumberID string
	VerifyToken   string
}

// InboundMessage is the part of a provider webhook event that matters here.
type InboundMessage struct {
	Phone         string
	Name          string
	Text          string
	PhoneNumberID string
}

type ReplyStatus string

const (
	ReplySent    ReplyStatus = "sent"
	ReplySkipped ReplyStatus = "skipped"
	ReplyFailed  ReplyStatus = "failed"
)

type CaptureLeadOutput struct {
	TenantID      string
	DefaultTenant bool
	LeadID        int64
	LeadStored    bool
	Reply         string
	ReplyStatus   ReplyStatus
}
