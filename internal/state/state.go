package state

import (
	"github.com/sidereusnuntius/fedoraconnector/internal/config"
	"github.com/sidereusnuntius/fedoraconnector/internal/db"
)

type State struct {
	DB     db.DB
	Config config.Configuration
}
