package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/peacekuria/smartmove/internal/domain"
)

const uniqueViolation = "23505"

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, reference, created_at, route_from, route_to, move_date, amount_cents, status, payment_method, svc_packing, svc_storage, svc_insurance, user_name, user_email, user_role`

func (r *PGBookingRepository) List(ctx context.Context) ([]domain.BookingRecord, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (r *PGBookingRepository) ListByEmail(ctx context.Context, email string) ([]domain.BookingRecord, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE user_email=$1 ORDER BY created_at`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (r *PGBookingRepository) GetByReference(ctx context.Context, reference string) (*domain.BookingRecord, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE reference=$1`, reference)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *PGBookingRepository) ExistsForDate(ctx context.Context, moveDate string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM bookings WHERE move_date=$1::date)`, moveDate).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.BookingRecord) error {
	var userName, userEmail, userRole *string
	if booking.User != nil {
		role := string(booking.User.Role)
		userName, userEmail, userRole = &booking.User.Name, &booking.User.Email, &role
	}

	err := r.db.QueryRow(ctx, `INSERT INTO bookings (reference, created_at, route_from, route_to, move_date, amount_cents, status, payment_method, svc_packing, svc_storage, svc_insurance, user_name, user_email, user_role)
		VALUES ($1, $2, $3, $4, $5::date, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`,
		booking.Reference, booking.CreatedAt, booking.Route.From, booking.Route.To, booking.MoveDate,
		booking.AmountCents, booking.Status, booking.PaymentMethod,
		booking.Services.Packing, booking.Services.Storage, booking.Services.Insurance,
		userName, userEmail, userRole).
		Scan(&booking.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		// The unique index on move_date is the authoritative guard for the
		// one-booking-per-date invariant.
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrDateUnavailable
		}
		return err
	}
	return nil
}

func (r *PGBookingRepository) Remove(ctx context.Context, reference string) error {
	current, err := r.GetByReference(ctx, reference)
	if err != nil {
		return err
	}
	if !current.Terminal() {
		return domain.ErrNotTerminal
	}

	cmd, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE reference=$1 AND status=$2`, reference, domain.BookingStatusCompleted)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanBookings(rows pgx.Rows) ([]domain.BookingRecord, error) {
	bookings := make([]domain.BookingRecord, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func scanBooking(row pgx.Row) (*domain.BookingRecord, error) {
	var (
		b        domain.BookingRecord
		moveDate time.Time
		name     *string
		email    *string
		role     *string
	)
	if err := row.Scan(&b.ID, &b.Reference, &b.CreatedAt, &b.Route.From, &b.Route.To, &moveDate,
		&b.AmountCents, &b.Status, &b.PaymentMethod,
		&b.Services.Packing, &b.Services.Storage, &b.Services.Insurance,
		&name, &email, &role); err != nil {
		return nil, err
	}
	b.MoveDate = moveDate.Format(domain.DateLayout)
	if email != nil {
		snapshot := &domain.UserSnapshot{Email: *email}
		if name != nil {
			snapshot.Name = *name
		}
		if role != nil {
			snapshot.Role = domain.Role(*role)
		}
		b.User = snapshot
	}
	return &b, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
