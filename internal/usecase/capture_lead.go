package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/xavierca1/leadcapture/internal/entity"
	"github.com/xavierca1/leadcapture/internal/infra/integration/whatsapp"
)

// CaptureLeadUseCase stores an inbound message as a lead and answers it.
// Every side effect is best effort: failures are logged, never returned,
// because the provider retries anything that is not acknowledged.
type CaptureLeadUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
	UserRepo entity.UserRepositoryInterface
	Sender   MessageSender
	Notifier LeadNotifier
	Texts    ReplyTexts
	Defaults whatsapp.Credentials
	Logger   *zap.Logger
}

func NewCaptureLeadUseCase(
	leadRepo entity.LeadRepositoryInterface,
	userRepo entity.UserRepositoryInterface,
	sender MessageSender,
	notifier LeadNotifier,
	texts ReplyTexts,
	defaults whatsapp.Credentials,
	logger *zap.Logger,
) *CaptureLeadUseCase {
	return &CaptureLeadUseCase{
		LeadRepo: leadRepo,
		UserRepo: userRepo,
		Sender:   sender,
		Notifier: notifier,
		Texts:    texts,
		Defaults: defaults,
		Logger:   logger,
	}
}

func (uc *CaptureLeadUseCase) Execute(ctx context.Context, in InboundMessage) CaptureLeadOutput {
	owner, creds := uc.resolveTenant(ctx, in.PhoneNumberID)

	out := CaptureLeadOutput{
		TenantID:      entity.DefaultTenantID,
		DefaultTenant: owner == nil,
	}
	if owner != nil {
		out.TenantID = owner.ID
	}

	log := uc.Logger.With(
		zap.String("tenant_id", out.TenantID),
		zap.String("phone", in.Phone),
	)

	lead := entity.NewLead(out.TenantID, in.Phone, in.Name, in.Text)
	if err := uc.LeadRepo.Insert(ctx, lead); err != nil {
		log.Error("failed to store lead", zap.Error(err))
	} else {
		out.LeadStored = true
		out.LeadID = lead.ID
		log.Info("lead stored", zap.Int64("lead_id", lead.ID))
	}

	out.Reply = BuildAutoReply(in.Name, in.Text, uc.Texts)
	out.ReplyStatus = uc.sendReply(ctx, log, in.Phone, out.Reply, creds)

	if out.LeadStored {
		uc.notifyOwner(ctx, log, owner, lead)
	}

	return out
}

// resolveTenant finds the user that registered the receiving phone number id.
// Unknown ids and lookup failures fall back to the default tenant with the
// process-wide credentials.
func (uc *CaptureLeadUseCase) resolveTenant(ctx context.Context, phoneNumberID string) (*entity.User, whatsapp.Credentials) {
	if phoneNumberID == "" {
		return nil, uc.Defaults
	}

	user, err := uc.UserRepo.FindByPhoneNumberID(ctx, phoneNumberID)
	if err != nil {
		if !errors.Is(err, entity.ErrUserNotFound) {
			uc.Logger.Warn("tenant lookup failed, using default tenant",
				zap.String("phone_number_id", phoneNumberID),
				zap.Error(err),
			)
		}
		return nil, uc.Defaults
	}

	return user, ResolveCredentials(user.WhatsAppCredentials, uc.Defaults)
}

func (uc *CaptureLeadUseCase) sendReply(ctx context.Context, log *zap.Logger, to, reply string, creds whatsapp.Credentials) ReplyStatus {
	if to == "" {
		log.Warn("inbound message without sender, reply skipped")
		return ReplySkipped
	}

	err := uc.Sender.SendText(ctx, to, reply, creds)
	switch {
	case errors.Is(err, whatsapp.ErrNotConfigured):
		return ReplySkipped
	case err != nil:
		log.Error("failed to send auto-reply", zap.Error(err))
		return ReplyFailed
	default:
		return ReplySent
	}
}

func (uc *CaptureLeadUseCase) notifyOwner(ctx context.Context, log *zap.Logger, owner *entity.User, lead *entity.Lead) {
	if uc.Notifier == nil {
		return
	}

	if owner == nil {
		u, err := uc.UserRepo.FindByID(ctx, entity.DefaultTenantID)
		if err != nil {
			log.Warn("default tenant not found, lead notification skipped", zap.Error(err))
			return
		}
		owner = u
	}

	if err := uc.Notifier.NotifyNewLead(owner.Email, lead); err != nil {
		log.Warn("lead notification failed", zap.String("to", owner.Email), zap.Error(err))
	}
}
