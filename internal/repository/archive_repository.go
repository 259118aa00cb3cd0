package repository

import (
	"database/sql"
	"time"

	"github.com/influenceos/influenceos-backend/internal/queue"
)

// ArchivedMessage is one row of the sent_messages archive.
type ArchivedMessage struct {
	EventID    string    `db:"event_id" json:"event_id"`
	CampaignID string    `db:"campaign_id" json:"campaign_id"`
	Username   string    `db:"username" json:"username"`
	Kind       string    `db:"kind" json:"type"`
	PitchStyle string    `db:"pitch_style" json:"pitch_style,omitempty"`
	Content    string    `db:"content" json:"content"`
	SentAt     time.Time `db:"sent_at" json:"sent_at"`
	ArchivedAt time.Time `db:"archived_at" json:"archived_at"`
}

type ArchiveRepositoryInterface interface {
	ArchiveSendEvent(ev queue.SendEvent) error
	ListByCampaign(campaignID string) ([]ArchivedMessage, error)
	CountByCampaign(campaignID string) (map[string]int, error)
}

// ArchiveRepository persists delivered-message events. The in-memory
// registry remains the source of truth for campaign state; the archive
// is an append-only audit trail.
type ArchiveRepository struct {
	DB *sql.DB
}

// ArchiveSendEvent is idempotent on event_id so requeued events don't
// duplicate rows.
func (r *ArchiveRepository) ArchiveSendEvent(ev queue.SendEvent) error {
	query := `
        INSERT INTO sent_messages (event_id, campaign_id, username, kind, pitch_style, content, sent_at, archived_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
        ON CONFLICT (event_id) DO NOTHING
    `
	_, err := r.DB.Exec(query, ev.EventID, ev.CampaignID, ev.Username, ev.Kind, ev.PitchStyle, ev.Content, ev.SentAt)
	return err
}

func (r *ArchiveRepository) ListByCampaign(campaignID string) ([]ArchivedMessage, error) {
	query := `
        SELECT event_id, campaign_id, username, kind, pitch_style, content, sent_at, archived_at
        FROM sent_messages
        WHERE campaign_id=$1
        ORDER BY sent_at
    `
	rows, err := r.DB.Query(query, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []ArchivedMessage{}
	for rows.Next() {
		var m ArchivedMessage
		if err := rows.Scan(&m.EventID, &m.CampaignID, &m.Username, &m.Kind, &m.PitchStyle, &m.Content, &m.SentAt, &m.ArchivedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// CountByCampaign returns message counts keyed by kind.
func (r *ArchiveRepository) CountByCampaign(campaignID string) (map[string]int, error) {
	query := `SELECT kind, COUNT(*) FROM sent_messages WHERE campaign_id=$1 GROUP BY kind`
	rows, err := r.DB.Query(query, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{"initial": 0, "follow_up": 0}
	for rows.Next() {
		var kind string
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, err
		}
		counts[kind] = count
	}
	return counts, rows.Err()
}

var _ ArchiveRepositoryInterface = (*ArchiveRepository)(nil)
var _ queue.Archiver = (*ArchiveRepository)(nil)
