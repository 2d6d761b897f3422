package internal

import (
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const DefaultInspectPrefix = "msg:"

type InspectRow struct {
	Key       string `json:"key"`
	Timestamp string `json:"timestamp"`
	SessionID string `json:"session_id"`
	EntityID  string `json:"entity_id"`
	Detail    string `json:"detail"`
}

type RowMapper func(key string, val []byte) InspectRow

// Inspect lists the raw entries stored under prefix, in key order.
func Inspect(db *badger.DB, prefix string, mapper RowMapper) ([]InspectRow, error) {
	if prefix == "" {
		prefix = DefaultInspectPrefix
	}
	if mapper == nil {
		mapper = DefaultMapper
	}
	rows := []InspectRow{}
	err := db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				rows = append(rows, mapper(string(item.Key()), val))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return rows, err
}

// DefaultMapper reads keys shaped as "msg:{session}:{unixnano}:{id}".
func DefaultMapper(key string, val []byte) InspectRow {
	parts := strings.Split(key, ":")
	row := InspectRow{
		Key:       key,
		Timestamp: "--:--:--",
		SessionID: "--------",
		EntityID:  "--------",
		Detail:    "Size: " + strconv.Itoa(len(val)) + " bytes",
	}

	if len(parts) >= 4 {
		row.SessionID = parts[1]
		if tsNano, err := strconv.ParseInt(parts[2], 10, 64); err == nil {
			row.Timestamp = time.Unix(0, tsNano).UTC().Format("15:04:05.000")
		}
		row.EntityID = parts[3]
		if len(row.EntityID) > 8 {
			row.EntityID = row.EntityID[:8]
		}
	}
	return row
}
