package usecase

import (
	"context"
	"crypto/subtle"

	"go.uber.org/zap"
)

const subscribeMode = "subscribe"

// WebhookVerifier answers the provider's subscription handshake. The global
// token always works; tenants may also register their own.
type WebhookVerifier struct {
	VerifyToken string
	Tokens      VerifyTokenLookup
	Logger      *zap.Logger
}

func NewWebhookVerifier(verifyToken string, tokens VerifyTokenLookup, logger *zap.Logger) *WebhookVerifier {
	return &WebhookVerifier{VerifyToken: verifyToken, Tokens: tokens, Logger: logger}
}

func (v *WebhookVerifier) Verify(ctx context.Context, mode, token string) bool {
	if mode != subscribeMode || token == "" {
		return false
	}

	if v.VerifyToken != "" && subtle.ConstantTimeCompare([]byte(token), []byte(v.VerifyToken)) == 1 {
		return true
	}

	if v.Tokens == nil {
		return false
	}

	ok, err := v.Tokens.ExistsByVerifyToken(ctx, token)
	if err != nil {
		v.Logger.Warn("verify token lookup failed", zap.Error(err))
		return false
	}
	return ok
}
