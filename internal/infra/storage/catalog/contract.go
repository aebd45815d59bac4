package catalog

import "github.com/m04kA/SalonBookingService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
