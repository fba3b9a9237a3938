package whatsapp

// Credentials select the sending account on the Cloud API.
type Credentials struct {
	AccessToken   string
	PhoneNumberID string
}

func (c Credentials) Complete() bool {
	return c.AccessToken != "" && c.PhoneNumberID != ""
}

type textBody struct {
	Body string `json:"body"`
}

type sendTextRequest struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             textBody `json:"text"`
}

type SendMessageResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
	Contacts []struct {
		Input string `json:"input"`
		WaID  string `json:"wa_id"`
	} `json:"contacts"`
	Error *ErrorResponse `json:"error"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Type    string `json:"type"`
}
