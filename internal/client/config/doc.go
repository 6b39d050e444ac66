// Package config loads runtime configuration for the LearnHub CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. LEARNHUB_* environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-i int      online status check interval (seconds)
//	-w int      server call timeout (seconds)
//	-d string   local SQLite database path
//	-k string   theme cache kind: sqlite | file | memory
//	-f string   theme cache file for -k file
//	-t string   fallback theme: dark | light
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "remote_timeout": "5s",
//	  "database_path": "~/.learnhub/learnhub.db",
//	  "cache_kind": "sqlite",
//	  "cache_file": "~/.learnhub/preferences.toml",
//	  "fallback_theme": "dark"
//	}
package config
