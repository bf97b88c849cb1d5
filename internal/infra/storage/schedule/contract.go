package schedule

import (
	"github.com/andrewscodinglab/salon-booking-service/pkg/dbmetrics"
)

// Shared executor interfaces, same as the appointment repository.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
