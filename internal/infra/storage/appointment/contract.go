package appointment

import (
	"github.com/andrewscodinglab/salon-booking-service/pkg/dbmetrics"
)

// Reuse the shared executor interfaces so the repository runs both on the
// pool and inside context-carried transactions.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
