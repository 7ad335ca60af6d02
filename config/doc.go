// Package config loads decoder.Options from a YAML file on disk, mapping
// the fields of spec section 6's configuration table directly onto
// functional decoder.Options. There is no user/project split here (unlike
// wingthing's Manager, which merges a user-level and project-level
// settings.json): a decoding run has exactly one graph and one tuning
// profile, so a single file is loaded and turned into a slice of
// decoder.Option values ready to hand to decoder.NewDecoder.
package config
