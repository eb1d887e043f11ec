package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetOrderSessionsQueryHandler retrieves a canteen's checkout sessions from
// the database, grouped by session key with the assigned courier joined in.
//
// Sessions advance through the kitchen in lockstep, so the least advanced
// member order represents the batch — ranked by lifecycle stage, not by the
// status spelling. A session counts as finished only when every order
// reached delivered or picked.
type GetOrderSessionsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderSessionsQueryHandler creates a handler for session queries.
// Requires a GORM database connection for query execution.
func NewGetOrderSessionsQueryHandler(db *gorm.DB) GetOrderSessionsQueryHandler {
	return GetOrderSessionsQueryHandler{db: db}
}

// Handle executes the query to retrieve the canteen's sessions, most recent
// first.
func (h GetOrderSessionsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSessionsQuery,
) ([]GetOrderSessionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sessions := make([]GetOrderSessionsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.session_ts,
			COUNT(*) AS item_count,
			SUM(o.total_amount) AS total_amount,
			CASE
				WHEN BOOL_AND(o.status IN ('delivered', 'picked')) THEN 'finished'
				ELSE CASE MIN(CASE o.status
						WHEN 'pending' THEN 1
						WHEN 'placed' THEN 2
						WHEN 'cooking' THEN 3
						WHEN 'ready' THEN 4
						WHEN 'out_for_delivery' THEN 5
						WHEN 'delivered' THEN 6
						WHEN 'picked' THEN 7
					END)
					WHEN 1 THEN 'pending'
					WHEN 2 THEN 'placed'
					WHEN 3 THEN 'cooking'
					WHEN 4 THEN 'ready'
					WHEN 5 THEN 'out_for_delivery'
					WHEN 6 THEN 'delivered'
					WHEN 7 THEN 'picked'
				END
			END AS status,
			MAX(c.name) AS courier_name,
			MAX(c.rating) AS courier_rating
		FROM orders o
		LEFT JOIN assignments a ON a.order_id = o.id
		LEFT JOIN couriers c ON c.id = a.courier_id
		WHERE o.canteen_id = ?
		GROUP BY o.session_ts
		ORDER BY o.session_ts DESC
	`, query.CanteenID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var session GetOrderSessionsQueryResponse
		var courierName sql.NullString
		var courierRating sql.NullFloat64

		err = rows.Scan(
			&session.SessionTs,
			&session.ItemCount,
			&session.TotalAmount,
			&session.Status,
			&courierName,
			&courierRating,
		)
		if err != nil {
			return nil, err
		}

		if courierName.Valid {
			name := courierName.String
			session.CourierName = &name
		}
		if courierRating.Valid {
			rating := courierRating.Float64
			session.CourierRating = &rating
		}

		sessions = append(sessions, session)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}
