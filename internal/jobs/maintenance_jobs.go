package jobs

import (
	"context"
	"time"

	"homelet-backend/internal/logger"
)

// PurgeExpiredTokens deletes auth token records whose expiry has passed.
// The JWTs themselves stop validating at expiry; this just keeps the
// revocation table from growing without bound.
func (jr *JobRunner) PurgeExpiredTokens() {
	jr.runWithRecovery("PurgeExpiredTokens", func() {
		count, err := jr.store.AuthTokens.DeleteExpired(context.Background())
		if err != nil {
			logger.Error("Failed to purge expired tokens", "error", err)
			return
		}
		logger.Info("Purged expired tokens", "count", count)
	})
}

// ExpireAnnouncements deactivates announcements past their expiry time.
func (jr *JobRunner) ExpireAnnouncements() {
	jr.runWithRecovery("ExpireAnnouncements", func() {
		count, err := jr.store.Announcements.DeactivateExpired(context.Background(), time.Now().UTC())
		if err != nil {
			logger.Error("Failed to expire announcements", "error", err)
			return
		}
		if count > 0 {
			logger.Info("Deactivated expired announcements", "count", count)
		}
	})
}

// SendLeaseEndReminders emails tenants whose active lease ends within the
// next seven days. Send failures are logged per tenant and do not stop
// the sweep.
func (jr *JobRunner) SendLeaseEndReminders() {
	jr.runWithRecovery("SendLeaseEndReminders", func() {
		ctx := context.Background()

		query := `
			SELECT o.id, o.end_date, u.email, h.title
			FROM rental_orders o
			JOIN users u ON u.id = o.tenant_id
			JOIN houses h ON h.id = o.house_id
			WHERE o.status = 'ACTIVE'
			  AND o.end_date BETWEEN $1 AND $2
			  AND u.email <> ''
		`

		today := time.Now().UTC().Format("2006-01-02")
		horizon := time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")

		rows, err := jr.db.QueryContext(ctx, query, today, horizon)
		if err != nil {
			logger.Error("Failed to query ending leases", "error", err)
			return
		}
		defer rows.Close()

		sent := 0
		for rows.Next() {
			var (
				orderID    int64
				endDate    time.Time
				email      string
				houseTitle string
			)
			if err := rows.Scan(&orderID, &endDate, &email, &houseTitle); err != nil {
				logger.Error("Failed to scan ending lease", "error", err)
				continue
			}
			if err := jr.email.SendLeaseEndingReminder(ctx, email, houseTitle, endDate.Format("2006-01-02")); err != nil {
				logger.Error("Failed to send lease end reminder", "order_id", orderID, "error", err)
				continue
			}
			sent++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating ending leases", "error", err)
			return
		}

		logger.Info("Sent lease end reminders", "count", sent)
	})
}
