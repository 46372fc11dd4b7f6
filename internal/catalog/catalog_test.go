package catalog

import (
	"errors"
	"testing"
)

func TestRegisterResourceValidation(t *testing.T) {
	c := New()

	if err := c.RegisterResource("Veldspar", 2690, 0.15); err != nil {
		t.Fatalf("Valid registration failed: %v", err)
	}
	if err := c.RegisterResource("Bad", -1, 0.15); !errors.Is(err, ErrInvalidResource) {
		t.Errorf("Expected InvalidResourceError for negative price, got %v", err)
	}
	if err := c.RegisterResource("Bad", 1, -0.5); !errors.Is(err, ErrInvalidResource) {
		t.Errorf("Expected InvalidResourceError for negative volume, got %v", err)
	}
	if err := c.RegisterResource("", 1, 1); !errors.Is(err, ErrInvalidResource) {
		t.Errorf("Expected InvalidResourceError for empty name, got %v", err)
	}
	if err := c.RegisterResource(AggregatePriceName, 1, 1); !errors.Is(err, ErrInvalidResource) {
		t.Errorf("Expected InvalidResourceError for reserved name, got %v", err)
	}
	if err := c.RegisterResource("Free", 0, 0); err != nil {
		t.Errorf("Zero price and volume must be accepted, got %v", err)
	}
}

func TestRegisterResourceOverwrites(t *testing.T) {
	c := New()
	c.RegisterResource("Veldspar", 2690, 0.15)
	c.RegisterResource("Scordite", 2989, 0.19)

	// Last write wins, position is kept.
	if err := c.RegisterResource("Veldspar", 3000, 0.2); err != nil {
		t.Fatalf("Re-registration failed: %v", err)
	}

	snap := c.Snapshot()
	resources := snap.Resources()
	if len(resources) != 2 {
		t.Fatalf("Expected 2 resources, got %d", len(resources))
	}
	if resources[0].Name != "Veldspar" || resources[1].Name != "Scordite" {
		t.Errorf("Insertion order lost: got %s, %s", resources[0].Name, resources[1].Name)
	}
	if resources[0].UnitPrice != 3000 || resources[0].UnitVolume != 0.2 {
		t.Errorf("Overwrite not applied: got price %v volume %v", resources[0].UnitPrice, resources[0].UnitVolume)
	}
}

func TestRegisterYieldValidation(t *testing.T) {
	c := New()
	c.RegisterResource("Veldspar", 2690, 0.15)

	if err := c.RegisterYield("Veldspar", "Tritanium", 4150); err != nil {
		t.Fatalf("Valid yield failed: %v", err)
	}
	if err := c.RegisterYield("Nope", "Tritanium", 1); !errors.Is(err, ErrUnknownResource) {
		t.Errorf("Expected UnknownResourceError, got %v", err)
	}
	if err := c.RegisterYield("Veldspar", "Tritanium", -1); !errors.Is(err, ErrInvalidYield) {
		t.Errorf("Expected InvalidYieldError for negative yield, got %v", err)
	}
	if err := c.RegisterYield("Veldspar", "", 1); !errors.Is(err, ErrInvalidYield) {
		t.Errorf("Expected InvalidYieldError for empty output, got %v", err)
	}
}

func TestRegisterYieldOverwrites(t *testing.T) {
	c := New()
	c.RegisterResource("Veldspar", 2690, 0.15)
	c.RegisterYield("Veldspar", "Tritanium", 4150)
	c.RegisterYield("Veldspar", "Tritanium", 4000)

	yields := c.Snapshot().Yields("Tritanium")
	if len(yields) != 1 {
		t.Fatalf("Expected 1 yield edge, got %d", len(yields))
	}
	if yields[0].PerUnit != 4000 {
		t.Errorf("Expected last-written yield 4000, got %v", yields[0].PerUnit)
	}
}

func TestSetRequirementValidation(t *testing.T) {
	c := New()

	if err := c.SetRequirement("Tritanium", 1000); err != nil {
		t.Fatalf("Valid requirement failed: %v", err)
	}
	if err := c.SetRequirement("Tritanium", -1); !errors.Is(err, ErrInvalidRequirement) {
		t.Errorf("Expected InvalidRequirementError for negative quantity, got %v", err)
	}
	if err := c.SetRequirement("", 10); !errors.Is(err, ErrInvalidRequirement) {
		t.Errorf("Expected InvalidRequirementError for empty output, got %v", err)
	}
	if err := c.SetRequirement("Pyerite", 0); err != nil {
		t.Errorf("Zero quantity must be accepted, got %v", err)
	}
}

func TestYieldsFollowResourceOrder(t *testing.T) {
	c := New()
	c.RegisterResource("Scordite", 2989, 0.19)
	c.RegisterResource("Veldspar", 2690, 0.15)
	// Register in the opposite order of the resources.
	c.RegisterYield("Veldspar", "Tritanium", 4150)
	c.RegisterYield("Scordite", "Tritanium", 2306)

	yields := c.Snapshot().Yields("Tritanium")
	if len(yields) != 2 {
		t.Fatalf("Expected 2 yield edges, got %d", len(yields))
	}
	if yields[0].Resource != "Scordite" || yields[1].Resource != "Veldspar" {
		t.Errorf("Yields not in catalog order: got %s, %s", yields[0].Resource, yields[1].Resource)
	}
}

func TestSnapshotIsFrozen(t *testing.T) {
	c := New()
	c.RegisterResource("Veldspar", 2690, 0.15)
	c.RegisterYield("Veldspar", "Tritanium", 4150)
	c.SetRequirement("Tritanium", 1000)

	snap := c.Snapshot()

	// Mutate the catalog after the snapshot was taken.
	c.RegisterResource("Veldspar", 9999, 9)
	c.RegisterResource("Scordite", 2989, 0.19)
	c.RegisterYield("Veldspar", "Tritanium", 1)
	c.SetRequirement("Tritanium", 5)
	c.SetRequirement("Pyerite", 7)

	if got := len(snap.Resources()); got != 1 {
		t.Errorf("Snapshot gained resources: %d", got)
	}
	r, ok := snap.Resource("Veldspar")
	if !ok || r.UnitPrice != 2690 {
		t.Errorf("Snapshot resource changed: %+v", r)
	}
	if y := snap.Yields("Tritanium"); len(y) != 1 || y[0].PerUnit != 4150 {
		t.Errorf("Snapshot yields changed: %+v", y)
	}
	reqs := snap.Requirements()
	if len(reqs) != 1 || reqs[0].MinQuantity != 1000 {
		t.Errorf("Snapshot requirements changed: %+v", reqs)
	}
}

func TestYieldsForUnknownOutputIsEmpty(t *testing.T) {
	c := New()
	c.RegisterResource("Veldspar", 2690, 0.15)

	if y := c.Snapshot().Yields("Morphite"); len(y) != 0 {
		t.Errorf("Expected no yields, got %+v", y)
	}
}
