/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"
	"gopkg.in/yaml.v3"

	"github.com/voedger/ifcschema/pkg/expschema"
	"github.com/voedger/ifcschema/pkg/schemacache"
)

type cliParams struct {
	ConfigFile string
}

func initGlobalFlags(cmd *cobra.Command, params *cliParams) {
	cmd.SilenceErrors = true
	cmd.Flags().StringVar(&params.ConfigFile, "config", "", "YAML file with dialect tables (simpleTypes, constraintKeywords, supertypeOperators) overlaying the defaults")
}

// readConfig reads yaml dialect tables, omitted tables keep defaults
func readConfig(configFile string) (expschema.Config, error) {
	cfg := expschema.DefaultConfig()
	if configFile == "" {
		return cfg, nil
	}
	content, err := os.ReadFile(configFile)
	if err != nil {
		return cfg, err
	}
	var fileCfg expschema.Config
	if err := yaml.Unmarshal(content, &fileCfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", configFile, err)
	}
	if len(fileCfg.SimpleTypes) > 0 {
		cfg.SimpleTypes = fileCfg.SimpleTypes
	}
	if len(fileCfg.ConstraintKeywords) > 0 {
		cfg.ConstraintKeywords = fileCfg.ConstraintKeywords
	}
	if len(fileCfg.SupertypeOperators) > 0 {
		cfg.SupertypeOperators = fileCfg.SupertypeOperators
	}
	logger.Verbose("dialect tables read from", configFile)
	return cfg, nil
}

// loader reads schema files, same content is parsed once per command
type loader struct {
	cache *schemacache.Cache
}

func newLoader(params cliParams) (*loader, error) {
	cfg, err := readConfig(params.ConfigFile)
	if err != nil {
		return nil, err
	}
	cache, err := schemacache.NewWithConfig(cacheSize, cfg)
	if err != nil {
		return nil, err
	}
	return &loader{cache: cache}, nil
}

// load returns the schema read from path. Schema is nil only if the file can not
// be read, otherwise error joins problems of damaged declarations.
func (l *loader) load(path string) (*expschema.Schema, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return l.cache.Parse(path, string(content))
}
