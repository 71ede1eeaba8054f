// SPDX-License-Identifier: MPL-2.0

// Package config loads projscan settings with Viper, using CUE as the file
// format.
//
// The file is looked up at $XDG_CONFIG_HOME/projscan/config.cue (the
// platform equivalent on macOS and Windows) and then at projscan.cue in the
// base directory. Its contents are validated against the embedded
// config_schema.cue before being merged over the defaults, and PROJSCAN_*
// environment variables override both.
package config
