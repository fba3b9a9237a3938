package usecase

import (
	"strings"

	"github.com/xavierca1/leadcapture/internal/config"
)

const menuHint = "Reply 1 for prices, 2 for Address."

type ReplyTexts struct {
	AutoReply string
	Price     string
	Address   string
}

func ReplyTextsFromConfig(cfg *config.Config) ReplyTexts {
	return ReplyTexts{
		AutoReply: cfg.AutoReplyMessage,
		Price:     cfg.PriceText,
		Address:   cfg.AddressText,
	}
}

// BuildAutoReply picks the answer for an incoming message. Only the exact
// menu options "1" and "2" are special; everything else gets the greeting.
func BuildAutoReply(name, incoming string, texts ReplyTexts) string {
	incoming = strings.TrimSpace(incoming)

	if isDigits(incoming) {
		switch incoming {
		case "1":
			return orDefault(texts.Price, config.DefaultPriceText)
		case "2":
			return orDefault(texts.Address, config.DefaultAddressText)
		}
	}

	if name == "" {
		name = "there"
	}
	return "Hi " + name + "! " + orDefault(texts.AutoReply, config.DefaultAutoReplyMessage) + "\n" + menuHint
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
