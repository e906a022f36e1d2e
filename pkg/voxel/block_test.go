package voxel

import "testing"

func TestBlockTypeTableRegisterAndGet(t *testing.T) {
	table := NewBlockTypeTable()
	if table.Len() != 1 {
		t.Fatalf("fresh table should only contain air, got len %d", table.Len())
	}
	stone := table.Register(BlockType{Name: "stone", Solid: true})
	if stone == Air {
		t.Fatalf("Register returned the air id")
	}
	if got := table.Get(stone).Name; got != "stone" {
		t.Fatalf("Get(%d).Name = %q, want stone", stone, got)
	}
	if !table.IsSolid(stone) || table.IsSolid(Air) {
		t.Fatalf("IsSolid disagrees with the air/non-air split")
	}
}

func TestCanMineRequiresMatchingCategoryAndTier(t *testing.T) {
	ore := BlockType{MiningCategory: MiningPickaxe, MiningTier: 2}
	if ore.CanMine(MiningAxe, 5) {
		t.Fatalf("wrong tool category should never be able to mine")
	}
	if ore.CanMine(MiningPickaxe, 1) {
		t.Fatalf("a lower-tier pickaxe should not be able to mine a tier-2 block")
	}
	if !ore.CanMine(MiningPickaxe, 2) {
		t.Fatalf("an exact-tier pickaxe should be able to mine")
	}

	dirt := BlockType{MiningCategory: MiningNone}
	if !dirt.CanMine(MiningAxe, 0) {
		t.Fatalf("MiningNone should be mineable by anything")
	}
}
