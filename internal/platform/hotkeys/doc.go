// Package hotkeys registers system-wide hotkeys with golang.design/x/hotkey.
//
// On Linux this needs cgo and an X11 session. On macOS the program must run
// its work through hotkey's mainthread.Init.
package hotkeys
