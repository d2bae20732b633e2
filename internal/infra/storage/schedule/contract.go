package schedule

import "github.com/mhmdxx5/CarWashBackend/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
