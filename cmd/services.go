package cmd

import (
	"fmt"

	"aocctl/internal/app"
)

// loadServices bootstraps the application for the one-shot commands.
func loadServices() (*app.Application, error) {
	application, err := app.NewApplication(app.NewConfig(true, debug, configPath))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return application, nil
}
