package nylas

// EmailParticipant is a name/address pair appearing in message and
// thread participant lists.
type EmailParticipant struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Account describes the mailbox account an access token belongs to,
// as returned by GET /account.
type Account struct {
	ID               string `json:"id"`
	AccountID        string `json:"account_id"`
	Object           string `json:"object"`
	Name             string `json:"name"`
	EmailAddress     string `json:"email_address"`
	Provider         string `json:"provider"`
	OrganizationUnit string `json:"organization_unit"`
	SyncState        string `json:"sync_state"`
	LinkedAt         int64  `json:"linked_at"`
}

// ManagementAccount is the application-scoped view of an account,
// listed under the management endpoint /a/<client_id>/accounts.
type ManagementAccount struct {
	ID           string `json:"id"`
	AccountID    string `json:"account_id"`
	EmailAddress string `json:"email"`
	Provider     string `json:"provider"`
	BillingState string `json:"billing_state"`
	SyncState    string `json:"sync_state"`
	Trial        bool   `json:"trial"`
}

// Thread is a conversation: an ordered set of messages sharing a
// subject.
type Thread struct {
	ID                      string             `json:"id"`
	AccountID               string             `json:"account_id"`
	Object                  string             `json:"object"`
	Subject                 string             `json:"subject"`
	Snippet                 string             `json:"snippet"`
	Participants            []EmailParticipant `json:"participants"`
	MessageIDs              []string           `json:"message_ids"`
	DraftIDs                []string           `json:"draft_ids"`
	Unread                  bool               `json:"unread"`
	Starred                 bool               `json:"starred"`
	HasAttachments          bool               `json:"has_attachments"`
	FirstMessageTimestamp   int64              `json:"first_message_timestamp"`
	LastMessageTimestamp    int64              `json:"last_message_timestamp"`
	LastMessageReceivedTime int64              `json:"last_message_received_timestamp"`

	// Messages is populated only for expanded-view queries.
	Messages []Message `json:"messages,omitempty"`
}

// Message is a single email message.
type Message struct {
	ID        string             `json:"id"`
	AccountID string             `json:"account_id"`
	Object    string             `json:"object"`
	ThreadID  string             `json:"thread_id"`
	Subject   string             `json:"subject"`
	From      []EmailParticipant `json:"from"`
	To        []EmailParticipant `json:"to"`
	CC        []EmailParticipant `json:"cc"`
	BCC       []EmailParticipant `json:"bcc"`
	ReplyTo   []EmailParticipant `json:"reply_to"`
	Date      int64              `json:"date"`
	Snippet   string             `json:"snippet"`
	Body      string             `json:"body"`
	Unread    bool               `json:"unread"`
	Starred   bool               `json:"starred"`
	FileIDs   []string           `json:"file_ids"`
}

// Draft is an unsent message. Version increments on every server-side
// update and must be echoed back when sending.
type Draft struct {
	Message
	ReplyToMessageID string `json:"reply_to_message_id"`
	Version          int    `json:"version"`
}

// File is an attachment's metadata. Its content is fetched separately
// through a download request.
type File struct {
	ID          string   `json:"id"`
	AccountID   string   `json:"account_id"`
	Object      string   `json:"object"`
	Filename    string   `json:"filename"`
	ContentType string   `json:"content_type"`
	Size        int      `json:"size"`
	MessageIDs  []string `json:"message_ids"`
}

// Folder is a mailbox folder (providers with hierarchical mailboxes).
type Folder struct {
	ID          string `json:"id"`
	AccountID   string `json:"account_id"`
	Object      string `json:"object"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

// Label is a mailbox label (providers with flat tagging, e.g. Gmail).
type Label struct {
	ID          string `json:"id"`
	AccountID   string `json:"account_id"`
	Object      string `json:"object"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

// Contact is an address-book entry.
type Contact struct {
	ID           string         `json:"id"`
	AccountID    string         `json:"account_id"`
	Object       string         `json:"object"`
	GivenName    string         `json:"given_name"`
	MiddleName   string         `json:"middle_name"`
	Surname      string         `json:"surname"`
	Birthday     string         `json:"birthday"`
	CompanyName  string         `json:"company_name"`
	JobTitle     string         `json:"job_title"`
	Emails       []ContactEmail `json:"emails"`
	PhoneNumbers []ContactPhone `json:"phone_numbers"`
}

// ContactEmail is one email address of a contact.
type ContactEmail struct {
	Type  string `json:"type"`
	Email string `json:"email"`
}

// ContactPhone is one phone number of a contact.
type ContactPhone struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

// Calendar is a collection of events.
type Calendar struct {
	ID          string `json:"id"`
	AccountID   string `json:"account_id"`
	Object      string `json:"object"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ReadOnly    bool   `json:"read_only"`
	IsPrimary   bool   `json:"is_primary"`
}

// Event is a calendar event.
type Event struct {
	ID           string             `json:"id"`
	AccountID    string             `json:"account_id"`
	Object       string             `json:"object"`
	CalendarID   string             `json:"calendar_id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Location     string             `json:"location"`
	Busy         bool               `json:"busy"`
	ReadOnly     bool               `json:"read_only"`
	Status       string             `json:"status"`
	When         EventWhen          `json:"when"`
	Participants []EventParticipant `json:"participants"`
}

// EventWhen covers the API's time/timespan/date/datespan variants;
// unused fields are zero.
type EventWhen struct {
	Object    string `json:"object"`
	Time      int64  `json:"time,omitempty"`
	StartTime int64  `json:"start_time,omitempty"`
	EndTime   int64  `json:"end_time,omitempty"`
	Date      string `json:"date,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// EventParticipant is an attendee of an event.
type EventParticipant struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Status  string `json:"status"`
	Comment string `json:"comment"`
}
