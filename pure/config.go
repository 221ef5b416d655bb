package pure

import (
	"fmt"

	"github.com/on-the-ground/underbar_go/shared/log"
	"go.uber.org/zap"
)

// Backend selects the store behind a Memo.
type Backend int

const (
	// BackendMap never evicts. It is the default.
	BackendMap Backend = iota
	// BackendRotating keeps between MaxEntries and 2*MaxEntries recent results.
	BackendRotating
	// BackendRistretto keeps at most MaxEntries results, chosen by ristretto.
	// Its cache runs goroutines until Memo.Close is called.
	BackendRistretto
)

const (
	defaultNumShards  = 16
	defaultMaxEntries = 1024
)

// Config tunes Once and Memo. The zero value is valid.
type Config struct {
	Backend    Backend
	MaxEntries uint32 // bounded backends only; default 1024
	NumShards  int    // BackendMap only; default 16
	Logger     *zap.Logger
}

func NewConfig(backend Backend, maxEntries uint32, logger *zap.Logger) Config {
	return normalizeConfig([]Config{{Backend: backend, MaxEntries: maxEntries, Logger: logger}})
}

// normalizeConfig accepts zero or one Config and fills in defaults.
// Panics if more than one is passed.
func normalizeConfig(cfgs []Config) Config {
	var cfg Config
	switch len(cfgs) {
	case 0:
	case 1:
		cfg = cfgs[0]
	default:
		panic("normalizeConfig: only one or zero configs allowed")
	}
	if cfg.NumShards <= 0 {
		cfg.NumShards = defaultNumShards
	}
	if cfg.MaxEntries == 0 {
		cfg.MaxEntries = defaultMaxEntries
	}
	cfg.Logger = log.OrNop(cfg.Logger)
	return cfg
}

func newStore[O any](cfg Config) Store[O] {
	switch cfg.Backend {
	case BackendMap:
		return NewMapStore[O](cfg.NumShards)
	case BackendRotating:
		return NewRotatingStore[O](cfg.MaxEntries)
	case BackendRistretto:
		store, err := NewRistrettoStore[O](int64(cfg.MaxEntries))
		if err != nil {
			panic(err)
		}
		return store
	default:
		panic(fmt.Sprintf("unknown memo backend: %d", cfg.Backend))
	}
}
