// Package config defines the UnitStream application configuration and its
// file loading.
//
// Configuration is a single Config struct covering platform identity, the
// NATS connection, the HTTP gateway, and the measurement normalizer. Files
// may be JSON or YAML; the loader picks the codec from the file extension
// and merges the file over Default() so partial configs stay valid.
//
//	cfg, err := config.Load("unitstream.yaml")
//	if err != nil {
//	    return err
//	}
//
// Duration-typed fields accept Go duration strings ("2s", "500ms") in both
// formats. SafeConfig wraps a Config for concurrent read and atomic
// validated update, which the service uses for runtime reloads.
package config
