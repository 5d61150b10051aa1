// Package console decides whether the process owns an interactive console
// and lets a background watcher give it up.
package console
