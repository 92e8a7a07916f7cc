package cmd

import (
	"context"
	"fmt"
	"github.com/google/gops/agent"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/viant/vpath/chain"
	"github.com/viant/vpath/config"
	"github.com/viant/vpath/metric"
	"github.com/viant/vpath/node"
	"github.com/viant/vpath/registry"
	"gopkg.in/yaml.v3"
	"io"
	"log"
	"os"
)

//Result represents resolved paths
type Result struct {
	Values   map[string]interface{} `yaml:"values"`
	Accesses map[string]int         `yaml:"accesses,omitempty"`
}

func RunApp(version string, args []string) error {
	options := &Options{}
	_, err := flags.ParseArgs(options, args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return nil
		}
		return err
	}
	if options.Version {
		log.Printf("vpath: Version: %v\n", version)
		return nil
	}
	if err = options.Validate(); err != nil {
		return err
	}
	if options.Agent {
		if err = agent.Listen(agent.Options{}); err != nil {
			return errors.Wrap(err, "failed to start diagnostics agent")
		}
		defer agent.Close()
	}
	result, err := Resolve(context.Background(), options)
	if err != nil {
		return err
	}
	return result.Write(os.Stdout)
}

//Resolve loads context document and resolves option paths
func Resolve(ctx context.Context, options *Options) (*Result, error) {
	cfg := config.New()
	if options.ConfigURL != "" {
		var err error
		if cfg, err = config.NewConfigFromURL(ctx, options.ConfigURL); err != nil {
			return nil, err
		}
	}
	if options.Positional {
		cfg.Positional = true
	}
	document, err := config.LoadDocument(ctx, options.ContextURL)
	if err != nil {
		return nil, err
	}
	accesses := metric.NewAccesses()
	paths := registry.New(registry.WithConfig(cfg), registry.WithAccesses(accesses))
	nodes, err := paths.RegisterAll(options.Paths...)
	if err != nil {
		return nil, err
	}
	invoker, err := paths.Build()
	if err != nil {
		return nil, err
	}
	resolve, err := evaluate(invoker, document, cfg.Positional)
	if err != nil {
		return nil, err
	}
	result := &Result{Values: map[string]interface{}{}}
	for i, aNode := range nodes {
		if result.Values[options.Paths[i]], err = resolve(aNode); err != nil {
			return nil, err
		}
	}
	if options.Stats {
		result.Accesses = map[string]int{}
		for _, path := range accesses.Paths() {
			result.Accesses[path] = accesses.Count(path)
		}
	}
	return result, nil
}

//evaluate runs one pass over the chain and returns per node value reader for that pass
func evaluate(invoker chain.Invoker, document interface{}, positional bool) (func(aNode *node.Node) (interface{}, error), error) {
	if !positional {
		if _, err := invoker.Value(document); err != nil {
			return nil, err
		}
		return func(aNode *node.Node) (interface{}, error) {
			return aNode.Value(document)
		}, nil
	}
	slots := invoker.Slots()
	if _, err := invoker.ValueAt(document, slots); err != nil {
		return nil, err
	}
	return func(aNode *node.Node) (interface{}, error) {
		return aNode.ValueAt(document, slots)
	}, nil
}

//Write writes result as YAML
func (r *Result) Write(writer io.Writer) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(writer, string(data))
	return err
}
