//go:build linux

package platform

import (
	"sync"

	"github.com/godbus/dbus/v5"
)

var (
	lastMu sync.Mutex
	lastID uint32
)

// Notify sends a desktop notification over org.freedesktop.Notifications.
// Each call replaces the previous notification of this process.
func Notify(title, body string, opts Options) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return err
	}
	defer conn.Close()

	lastMu.Lock()
	defer lastMu.Unlock()

	hints := map[string]dbus.Variant{
		"category": dbus.MakeVariant("transfer.complete"),
	}
	obj := conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		opts.appName(), lastID, opts.IconPath, title, body, []string{}, hints, int32(5000))
	if call.Err != nil {
		return call.Err
	}
	var id uint32
	if err := call.Store(&id); err == nil {
		lastID = id
	}
	return nil
}
