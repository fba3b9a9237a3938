package mail

type LeadEmailData struct {
	Name      string
	Phone     string
	Message   string
	Timestamp string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
