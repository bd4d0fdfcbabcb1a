package genbridge

import (
	"testing"

	"github.com/shillcollin/genbridge/core"
)

type stubFactory struct{}

func (stubFactory) New(config ProviderConfig) (core.Provider, error) { return nil, nil }
func (stubFactory) DefaultConfig() ProviderConfig                    { return ProviderConfig{} }

func TestRegisterAndLookupProvider(t *testing.T) {
	clearRegistry()
	t.Cleanup(clearRegistry)

	RegisterProvider("stub", stubFactory{})

	if !IsProviderRegistered("stub") {
		t.Fatal("provider not registered")
	}
	if _, ok := GetProviderFactory("stub"); !ok {
		t.Fatal("factory lookup failed")
	}
	if _, ok := GetProviderFactory("missing"); ok {
		t.Fatal("lookup of unregistered provider succeeded")
	}

	names := RegisteredProviders()
	if len(names) != 1 || names[0] != "stub" {
		t.Fatalf("names = %v", names)
	}
}

func TestRegisterProviderDuplicatePanics(t *testing.T) {
	clearRegistry()
	t.Cleanup(clearRegistry)

	RegisterProvider("stub", stubFactory{})
	defer func() {
		if recover() == nil {
			t.Fatal("duplicate registration did not panic")
		}
	}()
	RegisterProvider("stub", stubFactory{})
}
