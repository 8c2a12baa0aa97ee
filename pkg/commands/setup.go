package commands

import (
	"github.com/douanani/rihladz-admin/pkg/cache"
	"github.com/douanani/rihladz-admin/pkg/config"
	"github.com/douanani/rihladz-admin/pkg/gateway"
	"github.com/douanani/rihladz-admin/pkg/screen"
)

// screenNames are the valid arguments for commands that take a screen.
var screenNames = []string{"agencies", "tourists", "messages", "reports", "categories"}

// loadScreens wires the full screen set from the user's configuration.
func loadScreens(offline bool) (*screen.Screens, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	client := gateway.NewClient(gateway.Config{
		BaseURL: cfg.BaseURL,
		Token:   cfg.Token,
	})

	return screen.New(screen.Options{
		Client:  client,
		Snaps:   cache.Open(cfg.CacheDir),
		Offline: offline,
	}), nil
}
