package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"rollcall/internal/models"
)

func sampleRows() []models.Attendee {
	at := time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC)
	return []models.Attendee{
		models.NewAttendee("Feuerlöschtraining", "Jane Doe", "Acme GmbH", models.ConsentYes, at),
		models.NewAttendee("Feuerlöschtraining", "John Roe", "Example AG", models.ConsentNo, at),
	}
}

func expectedRecords(rows []models.Attendee) [][]string {
	records := [][]string{models.AttendeeColumns}
	for _, a := range rows {
		records = append(records, a.Row())
	}
	return records
}

func TestCSVRoundTrip(t *testing.T) {
	rows := sampleRows()

	data, err := CSV(rows)
	require.NoError(t, err)

	got, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, expectedRecords(rows), got)
}

func TestCSVEmptyRosterKeepsHeader(t *testing.T) {
	data, err := CSV(nil)
	require.NoError(t, err)

	got, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{models.AttendeeColumns}, got)
}

func TestXLSXRoundTrip(t *testing.T) {
	rows := sampleRows()

	data, err := XLSX(rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{SheetName}, f.GetSheetList())
	got, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Equal(t, expectedRecords(rows), got)
}
