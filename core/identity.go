package core

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"sync"
)

// ProcessIdentity holds the read-once identity fields attached to every
// entry routed to identity-aware destinations.
type ProcessIdentity struct {
	App  string // executable name without extension
	Host string // host name
	User string // user name
}

var (
	identityOnce sync.Once
	identity     ProcessIdentity
)

// Identity returns the process identity, resolved on first use and cached
// for the process lifetime. Fields that cannot be resolved stay empty.
func Identity() ProcessIdentity {
	identityOnce.Do(func() {
		if exe, err := os.Executable(); err == nil {
			base := filepath.Base(exe)
			identity.App = strings.TrimSuffix(base, filepath.Ext(base))
		}
		if host, err := os.Hostname(); err == nil {
			identity.Host = host
		}
		if u, err := user.Current(); err == nil {
			identity.User = u.Username
		}
	})
	return identity
}
