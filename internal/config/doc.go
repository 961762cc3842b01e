// Package config loads and validates the user-edited settings.json file.
//
// On first run the CLI writes a template with default Google API scopes and
// the user fills in portal credentials before running again.
package config
