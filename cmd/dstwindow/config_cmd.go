// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

type ConfigFlags struct {
	ConfigFileFlags
}

type Config struct {
	out io.Writer
}

func marshalYAML(indent string, v any) string {
	p, _ := yaml.Marshal(v)
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	indented := make([]string, len(lines))
	for i, line := range lines {
		indented[i] = indent + line
	}
	return strings.Join(indented, "\n")
}

func (c *Config) Display(ctx context.Context, flags any, args []string) error {
	fv := flags.(*ConfigFlags)
	system, err := loadSystem(ctx, &fv.ConfigFileFlags, args)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Configuration:\n%v\n", marshalYAML("  ", system.Config))
	fmt.Fprintf(c.out, "Time Zone: %v\n", system.TZ)
	fmt.Fprintf(c.out, "Zones:\n")
	for _, zone := range system.Zones {
		fmt.Fprintf(c.out, "  %v\n", zone)
	}
	fmt.Fprintf(c.out, "Window: %v\n", system.Window)
	fmt.Fprintf(c.out, "Notify At: %v\n", system.NotifyAt)
	return nil
}
