package modules

import (
	"github.com/louisbranch/crypto-seal/internal/services/web/modules/api"
	"github.com/louisbranch/crypto-seal/internal/services/web/modules/home"
	"github.com/louisbranch/crypto-seal/internal/services/web/modules/records"
	"github.com/louisbranch/crypto-seal/internal/services/web/modules/sealbar"
)

// DefaultModules returns the modules served by the web service.
func DefaultModules() []Module {
	return []Module{
		home.New(),
		sealbar.New(),
		records.New(),
		api.New(),
	}
}
