// Package locales embeds the UI translations of the web client.
package locales

import "embed"

// FS holds one YAML file per language, nested under the language code.
//
//go:embed *.yaml
var FS embed.FS
