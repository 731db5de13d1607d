package typesystem

// Kind exists so every Type implementation shares a "type of a type"
// marker. This core has no higher-kinded type constructors to
// distinguish from proper types (spec §3 treats every type as a value's
// kind directly), so Star is the only inhabitant.
type Kind interface {
	String() string
}

// KStar is the kind of a proper, inhabitable type (Int, Tuple, AnyType).
type KStar struct{}

func (k KStar) String() string { return "*" }

var Star Kind = KStar{}
