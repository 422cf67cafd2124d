// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Genconfig writes .env.example and loctool.yaml.example from the configuration
defaults, so the templates never drift from the code.
*/
package main

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"

	config "codeberg.org/loctool/loctool/configs"
	"codeberg.org/loctool/loctool/core/audit"
)

const (
	envOutputFile  = ".env.example"
	yamlOutputFile = "loctool.yaml.example"
	filePerm       = 0o644

	envFileHeader = `# loctool configuration (via environment variables)
#
# Copy this file to .env and customize the values below.
#
# Refer to https://codeberg.org/loctool/loctool for more information.
#
# This file was auto-generated using go run ./cmd/genconfig.

`
	yamlFileHeader = `# loctool configuration (via configuration file)
#
# Copy this file to loctool.yaml and customize the values below.
#
# Refer to https://codeberg.org/loctool/loctool for more information.
#
# This file was auto-generated using go run ./cmd/genconfig.
`
)

// essentialEnvVars are written uncommented: every deployment sets them.
var essentialEnvVars = map[string]bool{
	"LOCTOOL_LOCALES_ROOT": true,
	"LOCTOOL_SHEET_PATH":   true,
}

// essentialYAMLKeys are kept uncommented in the YAML template.
var essentialYAMLKeys = map[string]bool{
	"root": true,
	"path": true,
}

func main() {
	audit.SetDefaultLogger()
	generateEnvFile()
	generateYAMLFile()
}

// generateEnvFile generates the .env.example file.
func generateEnvFile() {
	cfg := &config.Config{}
	cfg.SetDefaults()

	var sb strings.Builder
	sb.WriteString(envFileHeader)

	val := reflect.ValueOf(*cfg)
	typ := val.Type()

	// Iterate over the top-level struct fields.
	for i := 0; i < typ.NumField(); i++ {
		structField := typ.Field(i)
		structValue := val.Field(i)

		if structValue.Kind() != reflect.Struct || structField.Name == "Build" {
			continue
		}

		fmt.Fprintf(&sb, "## %s\n", structField.Name)

		// Iterate over the fields of the nested struct.
		innerTyp := structValue.Type()
		for j := 0; j < innerTyp.NumField(); j++ {
			field := innerTyp.Field(j)
			value := structValue.Field(j)

			tag, ok := field.Tag.Lookup("env")
			if !ok {
				continue
			}

			envVarName := strings.Split(tag, ",")[0]

			switch {
			case essentialEnvVars[envVarName]:
				fmt.Fprintf(&sb, "%s=\"%v\"\n", envVarName, value.Interface())
			case value.Kind() == reflect.Slice:
				// Slices read back as comma-separated values.
				fmt.Fprintf(&sb, "# %s=%s\n", envVarName, sliceValue(value))
			case value.Kind() == reflect.String && value.Len() == 0:
				// Omit the value to prompt user input.
				fmt.Fprintf(&sb, "# %s=\n", envVarName)
			default:
				fmt.Fprintf(&sb, "# %s=%v\n", envVarName, value.Interface())
			}
		}

		sb.WriteString("\n")
	}

	if err := os.WriteFile(envOutputFile, []byte(sb.String()), filePerm); err != nil {
		log.Fatal().Err(err).Str("path", envOutputFile).Msg("Failed to write .env.example file")
	}

	log.Info().Str("path", envOutputFile).Msg("Successfully generated .env.example")
}

// sliceValue renders a string slice the way the env reader parses it.
func sliceValue(value reflect.Value) string {
	parts := make([]string, 0, value.Len())
	for i := 0; i < value.Len(); i++ {
		parts = append(parts, fmt.Sprintf("%v", value.Index(i).Interface()))
	}

	return strings.Join(parts, ",")
}

// generateYAMLFile generates the loctool.yaml.example file.
func generateYAMLFile() {
	cfg := &config.Config{}
	cfg.SetDefaults()

	var yamlContent strings.Builder
	// Marshal the config to YAML.
	if err := yaml.NewEncoder(&yamlContent, yaml.Indent(2)).Encode(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal config to YAML")
	}

	var sb strings.Builder
	sb.WriteString(yamlFileHeader)

	// Process the marshaled YAML line-by-line to create a clean template.
	for _, line := range strings.Split(yamlContent.String(), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		// Top-level keys (e.g., "locales:") are treated as section headers.
		if !strings.HasPrefix(line, " ") {
			fmt.Fprintf(&sb, "\n%s\n", line)
			continue
		}

		// Keep the essential fields uncommented.
		key, _, _ := strings.Cut(trimmed, ":")
		if essentialYAMLKeys[key] {
			sb.WriteString(line + "\n")
			continue
		}

		// By default, comment out the line.
		indentSize := len(line) - len(strings.TrimLeft(line, " "))
		fmt.Fprintf(&sb, "%s# %s\n", strings.Repeat(" ", indentSize), trimmed)
	}

	if err := os.WriteFile(yamlOutputFile, []byte(sb.String()), filePerm); err != nil {
		log.Fatal().Err(err).Str("path", yamlOutputFile).Msg("Failed to write config file")
	}

	log.Info().Str("path", yamlOutputFile).Msg("Successfully generated loctool.yaml.example")
}
