// Package config reads the endpoint profile registry (an ini file listing the
// report backends a user can talk to) and the web server configuration.
package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/fin-tools/report-atlas/pkg/models/domain"
)

type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetEndpoint(ctx context.Context, profile string) (domain.Endpoint, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetEndpoint(_ context.Context, profile string) (domain.Endpoint, error) {
	section := cr.cfg.Section(profile)
	if section == nil {
		return domain.Endpoint{}, fmt.Errorf("profile %s not found", profile)
	}

	baseURL := section.Key("base_url").String()
	if baseURL == "" {
		return domain.Endpoint{}, fmt.Errorf("profile %s has no base_url", profile)
	}

	return domain.Endpoint{
		BaseURL: baseURL,
		Token:   section.Key("token").String(),
	}, nil
}
