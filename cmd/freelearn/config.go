package main

import (
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// YAML returns a kong.Resolver that reads flag values from a YAML document.
//
// Keys may use the flag name ("smtp-port"), its snake_case form
// ("smtp_port"), or nest on dots.
func YAML(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && err != io.EOF {
		return nil, err
	}

	var f kong.ResolverFunc = func(context *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		if raw, ok := values[flag.Name]; ok {
			return raw, nil
		}
		if raw, ok := values[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
			return raw, nil
		}

		var raw any = values
		for _, part := range strings.Split(flag.Name, ".") {
			m, ok := raw.(map[string]any)
			if !ok {
				return nil, nil
			}
			if raw, ok = m[part]; !ok {
				return nil, nil
			}
		}
		return raw, nil
	}
	return f, nil
}
