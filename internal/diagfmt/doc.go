// Package diagfmt renders diagnostics, tokenization failures and token
// streams for terminals (Pretty, Describe, FormatTokensPretty) and for
// machines (JSON, FormatTokensJSON).
package diagfmt
