package room

import (
	"github.com/avlok/LMS-LodgeService/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interfaces for database access.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
