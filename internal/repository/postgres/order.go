package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/repository"
)

type orderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

const orderColumns = `id, house_id, tenant_id, landlord_id, start_date, end_date,
	monthly_rent_cents, deposit_cents, total_rent_cents, status, contract_url,
	cancelled_at, confirmed_at,
	termination_status, termination_requester_id, termination_resolver_id,
	termination_reason, termination_feedback,
	termination_requested_at, termination_resolved_at,
	created_at, updated_at`

func scanOrder(row interface{ Scan(...any) error }) (*domain.RentalOrder, error) {
	o := &domain.RentalOrder{}
	var startDate, endDate time.Time
	var contractURL, reason, feedback sql.NullString
	err := row.Scan(
		&o.ID, &o.HouseID, &o.TenantID, &o.LandlordID, &startDate, &endDate,
		&o.MonthlyRentCents, &o.DepositCents, &o.TotalRentCents, &o.Status, &contractURL,
		&o.CancelledAt, &o.ConfirmedAt,
		&o.TerminationStatus, &o.TerminationRequesterID, &o.TerminationResolverID,
		&reason, &feedback,
		&o.TerminationRequestedAt, &o.TerminationResolvedAt,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.StartDate = startDate.Format("2006-01-02")
	o.EndDate = endDate.Format("2006-01-02")
	o.ContractURL = contractURL.String
	o.TerminationReason = reason.String
	o.TerminationFeedback = feedback.String
	return o, nil
}

// Create inserts a new PENDING order. The overlap check and the insert run
// in one transaction that holds an advisory lock on the house id, so two
// concurrent creates for the same house serialize and the second sees the
// first's row.
func (r *orderRepository) Create(ctx context.Context, o *domain.RentalOrder) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, o.HouseID); err != nil {
		return err
	}

	var overlapping bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM rental_orders
			WHERE house_id = $1 AND status = ANY($2)
			  AND start_date <= $4 AND end_date >= $3
		)`,
		o.HouseID, pq.Array(statusStrings(domain.CreationBlockingStatuses)), o.StartDate, o.EndDate,
	).Scan(&overlapping)
	if err != nil {
		return err
	}
	if overlapping {
		return repository.ErrBookingConflict
	}

	now := time.Now().UTC()
	err = tx.QueryRowContext(ctx,
		`INSERT INTO rental_orders
			(house_id, tenant_id, landlord_id, start_date, end_date,
			 monthly_rent_cents, deposit_cents, total_rent_cents, status,
			 termination_status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		 RETURNING id, created_at, updated_at`,
		o.HouseID, o.TenantID, o.LandlordID, o.StartDate, o.EndDate,
		o.MonthlyRentCents, o.DepositCents, o.TotalRentCents, o.Status, o.TerminationStatus, now,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*domain.RentalOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM rental_orders WHERE id = $1`
	return scanOrder(r.db.QueryRowContext(ctx, query, id))
}

func (r *orderRepository) HasOverlapping(ctx context.Context, houseID int64, startDate, endDate string, statuses []domain.OrderStatus) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM rental_orders
			WHERE house_id = $1 AND status = ANY($2)
			  AND start_date <= $4 AND end_date >= $3
		)`,
		houseID, pq.Array(statusStrings(statuses)), startDate, endDate,
	).Scan(&exists)
	return exists, err
}

// TransitionStatus is a compare-and-set: the update applies only when the
// row still holds the expected status, which makes "must currently be X"
// atomic under concurrent requests.
func (r *orderRepository) TransitionStatus(ctx context.Context, orderID int64, from, to domain.OrderStatus) (bool, error) {
	set := `status = $1, updated_at = $2`
	switch to {
	case domain.OrderStatusCancelled:
		set += `, cancelled_at = $2`
	case domain.OrderStatusConfirmed:
		set += `, confirmed_at = $2`
	}
	query := fmt.Sprintf(`UPDATE rental_orders SET %s WHERE id = $3 AND status = $4`, set)
	res, err := r.db.ExecContext(ctx, query, to, time.Now().UTC(), orderID, from)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *orderRepository) SetContractURL(ctx context.Context, orderID int64, url string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE rental_orders SET contract_url = $1, updated_at = $2 WHERE id = $3`,
		url, time.Now().UTC(), orderID)
	return err
}

func (r *orderRepository) RequestTermination(ctx context.Context, orderID, requesterID int64, reason string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE rental_orders SET
			termination_status = 'REQUESTED',
			termination_requester_id = $2,
			termination_reason = $3,
			termination_requested_at = $4,
			termination_resolver_id = NULL,
			termination_feedback = NULL,
			termination_resolved_at = NULL,
			updated_at = $4
		 WHERE id = $1
		   AND termination_status <> 'REQUESTED'
		   AND status NOT IN ('CANCELLED', 'TERMINATED')`,
		orderID, requesterID, reason, time.Now().UTC())
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *orderRepository) ResolveTermination(ctx context.Context, orderID, resolverID int64, approve bool, feedback string) (bool, error) {
	outcome := domain.TerminationRejected
	statusSet := ``
	if approve {
		outcome = domain.TerminationApproved
		// Approval forces the primary status in the same statement so the
		// two fields can never diverge.
		statusSet = `status = 'TERMINATED',`
	}
	query := fmt.Sprintf(`UPDATE rental_orders SET
			%s
			termination_status = $2,
			termination_resolver_id = $3,
			termination_feedback = $4,
			termination_resolved_at = $5,
			updated_at = $5
		 WHERE id = $1 AND termination_status = 'REQUESTED'`, statusSet)
	res, err := r.db.ExecContext(ctx, query, orderID, outcome, resolverID, feedback, time.Now().UTC())
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *orderRepository) ListByTenant(ctx context.Context, tenantID int64, page, pageSize int32) ([]domain.RentalOrder, int64, error) {
	return r.list(ctx, `tenant_id = $1`, []any{tenantID}, page, pageSize)
}

func (r *orderRepository) ListByLandlord(ctx context.Context, landlordID int64, page, pageSize int32) ([]domain.RentalOrder, int64, error) {
	return r.list(ctx, `landlord_id = $1`, []any{landlordID}, page, pageSize)
}

func (r *orderRepository) ListAll(ctx context.Context, page, pageSize int32) ([]domain.RentalOrder, int64, error) {
	return r.list(ctx, `TRUE`, nil, page, pageSize)
}

func (r *orderRepository) list(ctx context.Context, where string, args []any, page, pageSize int32) ([]domain.RentalOrder, int64, error) {
	var count int64
	countQuery := `SELECT count(*) FROM rental_orders WHERE ` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := fmt.Sprintf(`SELECT %s FROM rental_orders WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		orderColumns, where, len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var orders []domain.RentalOrder
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, *o)
	}
	return orders, count, rows.Err()
}

func (r *orderRepository) CountByStatus(ctx context.Context, status domain.OrderStatus) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM rental_orders WHERE status = $1`, status).Scan(&count)
	return count, err
}

func (r *orderRepository) CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM rental_orders WHERE created_at >= $1 AND created_at < $2`,
		start, end).Scan(&count)
	return count, err
}

func statusStrings(statuses []domain.OrderStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
