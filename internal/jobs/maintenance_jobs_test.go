package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

// recordingEmail captures reminder sends so the test can inspect the
// formatted end date.
type recordingEmail struct {
	endDates []string
}

func (e *recordingEmail) SendOrderCreatedNotification(ctx context.Context, to, tenantName, houseTitle string) error {
	return nil
}
func (e *recordingEmail) SendOrderConfirmedNotification(ctx context.Context, to, houseTitle string) error {
	return nil
}
func (e *recordingEmail) SendTerminationRequestedNotification(ctx context.Context, to, requesterName, houseTitle, reason string) error {
	return nil
}
func (e *recordingEmail) SendTerminationResolvedNotification(ctx context.Context, to, houseTitle string, approved bool, feedback string) error {
	return nil
}
func (e *recordingEmail) SendLeaseEndingReminder(ctx context.Context, to, houseTitle, endDate string) error {
	e.endDates = append(e.endDates, endDate)
	return nil
}

func TestSendLeaseEndReminders_FormatsCalendarDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	// DATE columns come back from the driver as time.Time; the email must
	// carry the plain calendar date, not an RFC3339 timestamp.
	endDate := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "end_date", "email", "title"}).
		AddRow(int64(7), endDate, "tina@test.com", "Sunny Flat")
	mock.ExpectQuery(`SELECT o.id, o.end_date, u.email, h.title`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(rows)

	email := &recordingEmail{}
	jr := NewJobRunner(db, nil, email, nil)
	jr.SendLeaseEndReminders()

	assert.Equal(t, []string{"2026-09-08"}, email.endDates)
	assert.NoError(t, mock.ExpectationsWereMet())
}
