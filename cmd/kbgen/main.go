// kbgen/cmd/kbgen/main.go

package main

import (
	"context"
	"os"

	"rgehrsitz/kbgen/pkg/logging"
	"rgehrsitz/kbgen/pkg/output"
	"rgehrsitz/kbgen/pkg/store"
)

// Dependencies represents the external dependencies of the application
type Dependencies struct {
	Writer       *output.Writer
	StoreFactory StoreFactory
}

// StoreFactory is an interface for creating a store
type StoreFactory interface {
	NewStore(ctx context.Context, addr, password string, db int) (store.Store, error)
}

func main() {
	deps := &Dependencies{
		Writer:       output.OSWriter(),
		StoreFactory: &RealStoreFactory{},
	}

	if err := newRootCmd(deps).ExecuteContext(context.Background()); err != nil {
		logging.LogError(logging.Logger, err)
		os.Exit(1)
	}
}

// RealStoreFactory implements StoreFactory
type RealStoreFactory struct{}

func (f *RealStoreFactory) NewStore(ctx context.Context, addr, password string, db int) (store.Store, error) {
	return store.NewRedisStore(ctx, addr, password, db)
}
