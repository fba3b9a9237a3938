package handlers

// webhookEvent mirrors the parts of the WhatsApp Cloud API notification
// payload that are read. Every level is optional.
type webhookEvent struct {
	Object string `json:"object"`
	Entry  []struct {
		ID      string `json:"id"`
		Changes []struct {
			Field string       `json:"field"`
			Value webhookValue `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

type webhookValue struct {
	MessagingProduct string `json:"messaging_product"`
	Metadata         struct {
		DisplayPhoneNumber string `json:"display_phone_number"`
		PhoneNumberID      string `json:"phone_number_id"`
	} `json:"metadata"`
	Contacts []struct {
		WaID    string `json:"wa_id"`
		Profile struct {
			Name string `json:"name"`
		} `json:"profile"`
	} `json:"contacts"`
	Messages []webhookMessage `json:"messages"`
}

type webhookMessage struct {
	ID        string `json:"id"`
	From      string `json:"from"`
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"`
	Text      struct {
		Body string `json:"body"`
	} `json:"text"`
}

// firstValue returns entry[0].changes[0].value.
func (e *webhookEvent) firstValue() (*webhookValue, bool) {
	if len(e.Entry) == 0 || len(e.Entry[0].Changes) == 0 {
		return nil, false
	}
	return &e.Entry[0].Changes[0].Value, true
}

func (v *webhookValue) senderName() string {
	if len(v.Contacts) == 0 {
		return ""
	}
	return v.Contacts[0].Profile.Name
}
