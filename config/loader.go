package config

import (
	"context"
	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/toolbox"
	"github.com/viant/vpath/shared"
	"gopkg.in/yaml.v3"
)

//NewConfigFromURL loads JSON or YAML config
func NewConfigFromURL(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to download config: %v", URL)
	}
	cfg := &Config{}
	if err = loadTarget(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to load config: %v", URL)
	}
	cfg.URL = URL
	cfg.Init()
	shared.Log("loaded config: %v", URL)
	return cfg, cfg.Validate()
}

//LoadDocument loads JSON or YAML document as generic value
func LoadDocument(ctx context.Context, URL string) (interface{}, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to download document: %v", URL)
	}
	var document interface{}
	if err = yaml.Unmarshal(data, &document); err != nil {
		return nil, errors.Wrapf(err, "failed to decode document: %v", URL)
	}
	return document, nil
}

func loadTarget(data []byte, target interface{}) error {
	aMap := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &aMap); err != nil {
		return err
	}
	return toolbox.DefaultConverter.AssignConverted(target, aMap)
}
