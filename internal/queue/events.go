package queue

import (
	"log"
	"time"

	"github.com/google/uuid"
)

// TopicSends is the queue carrying delivered-message events from the
// API process to the archive worker.
const TopicSends = "outreach_sends"

// SendEvent describes one delivered message (initial or follow-up).
type SendEvent struct {
	EventID    string    `json:"event_id"`
	CampaignID string    `json:"campaign_id"`
	Username   string    `json:"username"`
	Kind       string    `json:"type"` // "initial" or "follow_up"
	PitchStyle string    `json:"pitch_style,omitempty"`
	Content    string    `json:"content"`
	SentAt     time.Time `json:"sent_at"`
}

// NewSendEvent stamps a fresh event ID.
func NewSendEvent(campaignID, username, kind, pitchStyle, content string, sentAt time.Time) SendEvent {
	return SendEvent{
		EventID:    uuid.NewString(),
		CampaignID: campaignID,
		Username:   username,
		Kind:       kind,
		PitchStyle: pitchStyle,
		Content:    content,
		SentAt:     sentAt,
	}
}

// Archiver persists send events. Satisfied by the Postgres archive
// repository.
type Archiver interface {
	ArchiveSendEvent(ev SendEvent) error
}

// StartArchiveSubscriber wires the in-process fallback pipeline: send
// events go straight to the archive, or to the log when no archive is
// configured.
func StartArchiveSubscriber(q Queue, archive Archiver) {
	go func() {
		err := q.Subscribe(TopicSends, func(payload any) error {
			ev, ok := payload.(SendEvent)
			if !ok {
				log.Println("⚠️ invalid payload type, expected SendEvent")
				return nil // no retry
			}

			if archive == nil {
				log.Printf("📩 send event %s: @%s (%s)\n", ev.EventID, ev.Username, ev.Kind)
				return nil
			}

			if err := archive.ArchiveSendEvent(ev); err != nil {
				log.Println("⚠️ failed to archive send event:", err)
				return err // triggers retry in queue
			}
			return nil
		})

		if err != nil {
			log.Println("⚠️ failed to start subscriber for", TopicSends, ":", err)
		}
	}()
}
