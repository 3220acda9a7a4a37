package ldb

import "github.com/cashnode/cashd/infrastructure/logger"

var log = logger.RegisterSubSystem("LVDB")
