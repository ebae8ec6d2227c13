package signal

import (
	"github.com/shaicoin/shaicoin/infrastructure/logger"
)

var log = logger.RegisterSubSystem("SHDN")
