package cache

import (
	"crypto/tls"
	"sync"
)

var (
	cryptoProviderOnce sync.Once
	cryptoProviderTLS  *tls.Config
)

// installCryptographicProvider installs the process-wide TLS configuration
// and returns it. NewEngine calls it on every construction but does not
// attach the result to the Store clients it is given; those carry their
// own TLS settings. It mirrors the original adapter's
// install_cryptographic_provider() call made once at engine construction
// (original_source/nautilus_core/infrastructure/src/redis/cache.rs); Go has
// no equivalent global crypto-provider registry, so the idiomatic analogue
// is a single shared *tls.Config with the curve preferences and minimum
// version pinned once for the process.
//
// Safe to call from multiple goroutines and multiple Engine instances: the
// install runs exactly once per process.
func installCryptographicProvider() *tls.Config {
	cryptoProviderOnce.Do(func() {
		cryptoProviderTLS = &tls.Config{
			MinVersion: tls.VersionTLS12,
			CurvePreferences: []tls.CurveID{
				tls.X25519,
				tls.CurveP256,
			},
		}
	})
	return cryptoProviderTLS
}
