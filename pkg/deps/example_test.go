package deps_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/cargo-brief/pkg/deps"
)

func ExampleDependency_DevOnly() {
	edges := []deps.Dependency{
		{Name: "serde", Kinds: []deps.DepKind{deps.DepNormal}},
		{Name: "proptest", Kinds: []deps.DepKind{deps.DepDev}},
		{Name: "log", Kinds: []deps.DepKind{deps.DepNormal, deps.DepDev}},
	}

	for _, e := range edges {
		fmt.Println(e.Name, e.DevOnly())
	}
	// Output:
	// serde false
	// proptest true
	// log false
}

func ExampleProviderFunc() {
	snap := &deps.Snapshot{
		Packages: map[string]*deps.Package{
			"app 0.1.0": {ID: "app 0.1.0", Name: "app", Version: "0.1.0"},
		},
		Edges:            map[string][]deps.Dependency{"app 0.1.0": nil},
		WorkspaceMembers: []string{"app 0.1.0"},
		Root:             "app 0.1.0",
	}

	var p deps.Provider = deps.ProviderFunc(func(context.Context, string) (*deps.Snapshot, error) {
		return snap, nil
	})

	got, _ := p.Resolve(context.Background(), "./Cargo.toml")
	root, _ := got.Package(got.Root)
	fmt.Println(root.Name, root.Version)
	// Output:
	// app 0.1.0
}
