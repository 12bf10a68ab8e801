package bohmap

import (
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("bohmap")
