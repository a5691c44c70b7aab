package models

// Client is one payer of a convention.
type Client struct {
	ID            string `yaml:"id"`
	ReceiptNumber string `yaml:"receipt_number,omitempty"`
}

// Convention is a creditor billing arrangement and its clients.
type Convention struct {
	ID          string   `yaml:"id"`
	RecordCount int      `yaml:"record_count"`
	Clients     []Client `yaml:"clients"`
}

// ClientIDs returns the client ids of the convention, in order.
func (c Convention) ClientIDs() []string {
	ids := make([]string, len(c.Clients))
	for i, cl := range c.Clients {
		ids[i] = cl.ID
	}
	return ids
}

// Occurrences counts how many clients of the convention carry id.
func (c Convention) Occurrences(id string) int {
	n := 0
	for _, cl := range c.Clients {
		if cl.ID == id {
			n++
		}
	}
	return n
}

// GenerationContext is the business input of one debt-base generation.
// Dates are YYYY-MM-DD, amounts decimal strings with up to two decimals,
// period MMYY.
type GenerationContext struct {
	Dialect          Dialect      `yaml:"dialect"`
	Conventions      []Convention `yaml:"conventions"`
	FirstDueDate     string       `yaml:"first_due_date"`
	FirstAmount      string       `yaml:"first_amount"`
	SecondDueDate    string       `yaml:"second_due_date,omitempty"`
	SecondAmount     string       `yaml:"second_amount,omitempty"`
	ThirdDueDate     string       `yaml:"third_due_date,omitempty"`
	ThirdAmount      string       `yaml:"third_amount,omitempty"`
	TicketMessage    string       `yaml:"ticket_message"`
	SecondaryMessage string       `yaml:"secondary_message,omitempty"`
	ScreenMessage    string       `yaml:"screen_message,omitempty"`
	ReceiptMode      ReceiptMode  `yaml:"receipt_mode"`
	ClientIDMode     ClientIDMode `yaml:"client_id_mode"`
	Period           string       `yaml:"period"`
	ConceptID        string       `yaml:"concept_id"`
}

// DetailCount returns the number of detail lines the context produces.
func (g GenerationContext) DetailCount() int {
	n := 0
	for _, c := range g.Conventions {
		n += len(c.Clients)
	}
	return n
}
