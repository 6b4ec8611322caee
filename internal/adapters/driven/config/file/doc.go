// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//   - SessionStore: session persistence over the shared config file
//   - Watcher: fsnotify-based change notification for cross-process reloads
package file
