/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/valpere/perelay/internal/config"
	"github.com/valpere/perelay/internal/relay"
	"github.com/valpere/perelay/internal/translator"
)

// buildService constructs the translation provider named in the config.
func buildService(name string, cfg translator.ServiceConfig) (translator.TranslationService, error) {
	switch name {
	case "gtx":
		return translator.NewGTXService(cfg.BaseURL, cfg.Timeout), nil
	case "google":
		return translator.NewGoogleService(cfg.Credentials, cfg.ProjectID), nil
	case "mymemory":
		return translator.NewMyMemoryService(cfg.BaseURL, cfg.Email, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", name)
	}
}

// loadRelay reads the config and returns the provider with a relay around it.
func loadRelay() (*config.Config, translator.TranslationService, *relay.Relay, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, nil, nil, err
	}

	svc, err := buildService(cfg.Provider.Name, cfg.ServiceConfig())
	if err != nil {
		return nil, nil, nil, err
	}

	return cfg, svc, relay.New(svc, cfg.Provider.Timeout), nil
}
