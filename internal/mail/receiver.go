package mail

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"procurement/internal/apperr"
	"procurement/internal/config"

	"github.com/emersion/go-imap"
	imapclient "github.com/emersion/go-imap/client"
	gomessage "github.com/emersion/go-message/mail"
	"go.uber.org/zap"
)

// Message is one decoded inbound email.
type Message struct {
	Sender    string // raw From header, may contain a display name
	Subject   string
	Body      string
	MessageID string
	Received  time.Time
}

// Receiver retrieves unseen messages from an authenticated IMAP mailbox.
type Receiver struct {
	cfg    config.IMAPConfig
	logger *zap.Logger
}

func NewReceiver(cfg config.IMAPConfig, logger *zap.Logger) *Receiver {
	return &Receiver{cfg: cfg, logger: logger}
}

// FetchUnseen lists unseen messages in the configured mailbox, fetches
// and decodes each one. Fetching marks messages as seen on the server,
// which is the only dedup the pipeline has.
func (r *Receiver) FetchUnseen(ctx context.Context) ([]Message, error) {
	addr := fmt.Sprintf("%s:%d", r.cfg.Host, r.cfg.Port)
	c, err := imapclient.DialTLS(addr, nil)
	if err != nil {
		return nil, apperr.NewTransportError("failed to connect to IMAP server %s: %v", addr, err)
	}
	defer c.Logout()

	if err := c.Login(r.cfg.Username, r.cfg.Password); err != nil {
		return nil, apperr.NewTransportError("IMAP login failed: %v", err)
	}

	if _, err := c.Select(r.cfg.Mailbox, false); err != nil {
		return nil, apperr.NewTransportError("failed to select mailbox %s: %v", r.cfg.Mailbox, err)
	}

	criteria := imap.NewSearchCriteria()
	criteria.WithoutFlags = []string{imap.SeenFlag}
	seqNums, err := c.Search(criteria)
	if err != nil {
		return nil, apperr.NewTransportError("IMAP search failed: %v", err)
	}
	if len(seqNums) == 0 {
		return nil, nil
	}

	seqset := new(imap.SeqSet)
	seqset.AddNum(seqNums...)

	section := &imap.BodySectionName{}
	items := []imap.FetchItem{section.FetchItem()}

	messages := make(chan *imap.Message, len(seqNums))
	done := make(chan error, 1)
	go func() {
		done <- c.Fetch(seqset, items, messages)
	}()

	var result []Message
	for msg := range messages {
		body := msg.GetBody(section)
		if body == nil {
			continue
		}
		decoded, err := decodeMessage(body)
		if err != nil {
			r.logger.Warn("failed to decode inbound message", zap.Error(err))
			continue
		}
		result = append(result, *decoded)
	}

	if err := <-done; err != nil {
		return nil, apperr.NewTransportError("IMAP fetch failed: %v", err)
	}
	return result, nil
}

// decodeMessage parses one RFC822 message, preferring the text/plain
// part of multipart bodies.
func decodeMessage(r io.Reader) (*Message, error) {
	mr, err := gomessage.CreateReader(r)
	if err != nil {
		return nil, fmt.Errorf("create mail reader: %w", err)
	}

	header := mr.Header
	subject, _ := header.Subject()
	received, err := header.Date()
	if err != nil {
		received = time.Now()
	}

	msg := &Message{
		Sender:    header.Get("From"),
		Subject:   subject,
		MessageID: strings.Trim(header.Get("Message-Id"), "<>"),
		Received:  received,
	}

	var fallback string
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}
		if h, ok := part.Header.(*gomessage.InlineHeader); ok {
			contentType, _, _ := h.ContentType()
			data, err := io.ReadAll(part.Body)
			if err != nil {
				continue
			}
			if contentType == "text/plain" {
				msg.Body = string(data)
				break
			}
			if fallback == "" {
				fallback = string(data)
			}
		}
	}
	if msg.Body == "" {
		msg.Body = fallback
	}
	return msg, nil
}
