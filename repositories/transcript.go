//go:generate go run go.uber.org/mock/mockgen -source=transcript.go -destination=../mocks/mock_transcript_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"time"

	"support-chat/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type ITranscriptRepository interface {
	StoreMessage(message domain.Message) error
	GetMessages(sessionID domain.SessionID, cursor *string) ([]domain.Message, *string, error)
}

// TranscriptRepository keeps processed messages in a BadgerDB, one key per message.
type TranscriptRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages *int
}

func NewTranscriptRepository(db *badger.DB, log *slog.Logger, limitMessages *int) TranscriptRepository {
	return TranscriptRepository{db: db, log: log, limitMessages: limitMessages}
}

// OpenInMemory opens a BadgerDB that lives as long as the process.
func OpenInMemory() (*badger.DB, error) {
	return badger.Open(badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR))
}

type transcriptRecord struct {
	ID         string `cbor:"id"`
	SessionID  string `cbor:"session_id"`
	SenderID   string `cbor:"sender_id"`
	SenderType string `cbor:"sender_type"`
	Content    string `cbor:"content"`
	Type       string `cbor:"type"`
	At         int64  `cbor:"at"`
}

func transcriptPrefix(sessionID domain.SessionID) string {
	return fmt.Sprintf("msg:%s:", sessionID)
}

// StoreMessage records a message under "msg:{session_id}:{timestamp_padded}:{uuid}".
// The 19-digit zero padding keeps keys in chronological order and the UUID
// separates two messages written at the same nanosecond.
func (t TranscriptRepository) StoreMessage(message domain.Message) error {
	key := fmt.Sprintf("%s%019d:%s",
		transcriptPrefix(message.SessionID),
		message.CreatedAt.UnixNano(),
		message.ID,
	)
	bytes, err := marshal(fromMessage(message))
	if err != nil {
		return err
	}
	return t.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// GetMessages reads a session from the oldest message onwards, starting right after cursor.
// The returned cursor is nil once the session has been read to the end.
func (t TranscriptRepository) GetMessages(sessionID domain.SessionID, cursor *string) ([]domain.Message, *string, error) {
	var byteMessages [][]byte
	var lastKey string
	var hasMore bool
	err := t.db.View(func(txn *badger.Txn) error {
		prefixStr := transcriptPrefix(sessionID)
		prefix := []byte(prefixStr)
		prefixLen := len(prefixStr)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		seekKey := prefix
		if cursor != nil {
			seekKey = append([]byte(prefixStr), []byte(*cursor)...)
		}
		it.Seek(seekKey)

		// The cursor points at the last message already returned
		if cursor != nil && it.ValidForPrefix(prefix) && string(it.Item().Key()) == string(seekKey) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if t.limitMessages != nil && len(byteMessages) == *t.limitMessages {
				t.log.Debug(fmt.Sprintf("Maximum of %d message reached", *t.limitMessages))
				hasMore = true
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[prefixLen:])
			err := item.Value(func(value []byte) error {
				byteMessages = append(byteMessages, value)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	messages := make([]domain.Message, 0, len(byteMessages))
	for _, b := range byteMessages {
		var record transcriptRecord
		if err = unmarshal(b, &record); err != nil {
			return nil, nil, err
		}
		message, err := toMessage(record)
		if err != nil {
			return nil, nil, err
		}
		messages = append(messages, message)
	}
	if !hasMore {
		return messages, nil, nil
	}
	return messages, &lastKey, nil
}

func fromMessage(message domain.Message) transcriptRecord {
	return transcriptRecord{
		ID:         message.ID.String(),
		SessionID:  message.SessionID.String(),
		SenderID:   message.SenderID.String(),
		SenderType: string(message.SenderType),
		Content:    message.Content,
		Type:       string(message.Type),
		At:         message.CreatedAt.UnixNano(),
	}
}

func toMessage(record transcriptRecord) (domain.Message, error) {
	id, err := uuid.Parse(record.ID)
	if err != nil {
		return domain.Message{}, err
	}
	sessionID, err := uuid.Parse(record.SessionID)
	if err != nil {
		return domain.Message{}, err
	}
	return domain.Message{
		ID:         id,
		SessionID:  sessionID,
		SenderID:   domain.SenderID(record.SenderID),
		SenderType: domain.ParticipantType(record.SenderType),
		Content:    record.Content,
		CreatedAt:  time.Unix(0, record.At).UTC(),
		Type:       domain.MessageType(record.Type),
	}, nil
}
