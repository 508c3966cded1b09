package nylas

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-message/mail"
)

// MIMEMessage is the decoded form of a raw RFC 822 download, as
// returned by MessageCollection.Raw.
type MIMEMessage struct {
	Subject string
	From    []EmailParticipant
	To      []EmailParticipant
	Date    time.Time

	// Text and HTML hold the first inline part of each type.
	Text string
	HTML string

	Attachments []MIMEAttachment
}

// MIMEAttachment is one attachment part of a raw message.
type MIMEAttachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ParseRawMessage decodes the raw bytes of a message/rfc822 download
// into its envelope, inline bodies, and attachments.
func ParseRawMessage(raw []byte) (*MIMEMessage, error) {
	reader, err := mail.CreateReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing raw message: %w", err)
	}

	msg := &MIMEMessage{}

	header := reader.Header
	if subject, err := header.Subject(); err == nil {
		msg.Subject = subject
	}
	if date, err := header.Date(); err == nil {
		msg.Date = date
	}
	msg.From = participantList(header, "From")
	msg.To = participantList(header, "To")

	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading message part: %w", err)
		}

		switch h := part.Header.(type) {
		case *mail.InlineHeader:
			contentType, _, _ := h.ContentType()
			body, err := io.ReadAll(part.Body)
			if err != nil {
				return nil, fmt.Errorf("reading inline part: %w", err)
			}
			switch contentType {
			case "text/plain":
				if msg.Text == "" {
					msg.Text = string(body)
				}
			case "text/html":
				if msg.HTML == "" {
					msg.HTML = string(body)
				}
			}

		case *mail.AttachmentHeader:
			filename, _ := h.Filename()
			contentType, _, _ := h.ContentType()
			data, err := io.ReadAll(part.Body)
			if err != nil {
				return nil, fmt.Errorf("reading attachment %q: %w", filename, err)
			}
			msg.Attachments = append(msg.Attachments, MIMEAttachment{
				Filename:    filename,
				ContentType: contentType,
				Data:        data,
			})
		}
	}

	return msg, nil
}

// participantList reads an address header into participant values.
// Malformed lists yield nil rather than an error: raw downloads often
// carry headers from providers with loose formatting.
func participantList(header mail.Header, key string) []EmailParticipant {
	addresses, err := header.AddressList(key)
	if err != nil || len(addresses) == 0 {
		return nil
	}
	participants := make([]EmailParticipant, 0, len(addresses))
	for _, addr := range addresses {
		participants = append(participants, EmailParticipant{
			Name:  addr.Name,
			Email: addr.Address,
		})
	}
	return participants
}
