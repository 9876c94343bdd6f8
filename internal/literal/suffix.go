package literal

// The suffix sets are closed: adding or removing an entry is a breaking
// change for handler modules, exactly like renaming a Kind.

// nativeIntSuffixes are the integer suffixes the host language accepts
// today. They always pass through untouched: a custom handler must never
// shadow a native numeric type.
var nativeIntSuffixes = map[string]bool{
	"i8": true, "i16": true, "i32": true, "i64": true, "i128": true, "isize": true,
	"u8": true, "u16": true, "u32": true, "u64": true, "u128": true, "usize": true,
}

// reservedIntSuffixes are not accepted by the host today but plausibly will
// be; using them is always an error, never a handler call.
var reservedIntSuffixes = map[string]bool{
	"i256": true, "u256": true,
}

var nativeFloatSuffixes = map[string]bool{
	"f32": true, "f64": true,
}

var reservedFloatSuffixes = map[string]bool{
	"f16": true, "f128": true,
}

// NativeSuffix reports whether the suffix is host-reserved for the kind and
// must pass through untouched. Only numeric kinds have native suffixes.
func NativeSuffix(k Kind, suffix string) bool {
	switch k {
	case Int:
		// Digits alone take float suffixes too: 1f32 is a native float.
		return nativeIntSuffixes[suffix] || nativeFloatSuffixes[suffix]
	case Float:
		return nativeFloatSuffixes[suffix]
	default:
		return false
	}
}

// ReservedSuffix reports whether the suffix is forward-reserved for the kind
// and must always produce a diagnostic.
func ReservedSuffix(k Kind, suffix string) bool {
	switch k {
	case Int:
		return reservedIntSuffixes[suffix] || reservedFloatSuffixes[suffix]
	case Float:
		return reservedFloatSuffixes[suffix]
	default:
		return false
	}
}
