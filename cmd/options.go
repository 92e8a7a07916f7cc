package cmd

import (
	"github.com/pkg/errors"
)

//Options represents CLI options
type Options struct {
	ConfigURL  string   `short:"c" long:"cfg" description:"config URL"`
	ContextURL string   `short:"x" long:"context" description:"context document URL (JSON or YAML)"`
	Paths      []string `short:"p" long:"path" description:"dotted path to resolve, repeatable"`
	Positional bool     `short:"m" long:"positional" description:"evaluate with caller owned slots"`
	Stats      bool     `short:"s" long:"stats" description:"print accessor invocations per path"`
	Agent      bool     `short:"a" long:"agent" description:"start gops diagnostics agent"`
	Version    bool     `short:"v" long:"version" description:"Version"`
}

//Validate checks if options are valid
func (o *Options) Validate() error {
	if o.ContextURL == "" {
		return errors.New("context URL was empty")
	}
	if len(o.Paths) == 0 {
		return errors.New("paths were empty")
	}
	return nil
}
