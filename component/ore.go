package component

// OreKind is the resource held by a deposit
type OreKind uint8

const (
	OreGold OreKind = iota
	OreStone
)

func (k OreKind) String() string {
	switch k {
	case OreGold:
		return "gold"
	case OreStone:
		return "stone"
	default:
		return "unknown"
	}
}

// OreComponent marks a mineable deposit, the usual target of an activate order
type OreComponent struct {
	Kind   OreKind
	Amount int
}
