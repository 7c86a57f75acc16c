// Package config provides configuration management for the usdcheck tools.
//
// Configuration is optional: every key has a default that reproduces the
// built-in rule set exactly. A usdcheck.yaml in the working directory or in
// $XDG_CONFIG_HOME/usdcheck is picked up automatically, --config selects a
// specific file, and USDCHECK_* environment variables override both.
//
//	version: 1
//	classifier:
//	  scene_sublayer_threshold: 2
//	  scene_name_markers: [root]
//	scene:
//	  asset_layer_markers: [AssetImport]
//	resolver:
//	  search_paths: [~/studio/assets]
//	engine:
//	  max_file_size: 67108864
//
// Loaded configurations are validated with go-playground/validator struct
// tags; see [Validate].
package config
