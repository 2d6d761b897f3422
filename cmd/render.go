package main

import (
	"io"

	"support-chat/domain"
	"support-chat/internal"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

func newTable(out io.Writer, headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func renderHistory(out io.Writer, messages []domain.Message) {
	table := newTable(out, []string{"Timestamp", "Sender Type", "Sender", "Type", "Content"})
	for _, message := range messages {
		table.Append([]string{
			message.CreatedAt.Format("15:04:05.000"),
			string(message.SenderType),
			message.SenderID.String(),
			string(message.Type),
			message.Content,
		})
	}
	table.Render()
}

func renderTranscriptKeys(out io.Writer, db *badger.DB) error {
	rows, err := internal.Inspect(db, internal.DefaultInspectPrefix, nil)
	if err != nil {
		return err
	}
	table := newTable(out, []string{"Key", "Timestamp", "Session", "Entity ID", "Detail"})
	for _, row := range rows {
		table.Append([]string{row.Key, row.Timestamp, row.SessionID, row.EntityID, row.Detail})
	}
	table.Render()
	return nil
}
