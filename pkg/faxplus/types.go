package faxplus

// Direction is the transmission direction of a fax record.
type Direction string

const (
	DirectionOutbound Direction = "outbound"
	DirectionInbound  Direction = "inbound"
)

// Category classifies a submitted fax.
type Category string

const (
	CategoryGeneral Category = "general"
)

// UploadedFile is the handle returned by a file upload,
// referenced by a subsequent outbox submission.
type UploadedFile struct {
	ID string `json:"id"`
}

// OutboxFax describes a single fax to submit.
type OutboxFax struct {
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	Comment   string    `json:"comment,omitempty"`
	FileID    string    `json:"file_id"`
	Direction Direction `json:"direction"`
	Category  Category  `json:"category"`
}

// OutboxPayload is the request body for a fax submission.
type OutboxPayload struct {
	Fax OutboxFax `json:"fax"`
}

// Fax is the response of a fax submission.
type Fax struct {
	ID string `json:"id"`
}

// FaxRecord is a fax as reported by the service.
// Status values are defined by the service, not by this client.
type FaxRecord struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Completed bool      `json:"completed"`
	Cost      float64   `json:"cost"`
	PageCount int       `json:"pagecount"`
	CreatedAt string    `json:"created_at"`
	Direction Direction `json:"direction"`
	To        string    `json:"to,omitempty"`
}

// FaxList is the response of a history listing.
type FaxList struct {
	Records []*FaxRecord `json:"records"`
}
