// Package introspect derives parameter metadata from Go "parameter structs":
// struct types whose exported fields stand for the formal parameters of an
// invocable method. It plays both provider roles consumed by
// argument.Import: structural metadata (from the field types) and
// documentation annotations (from the `invoke` struct tag).
//
// Field rules:
//   - Only exported fields are considered; `json:"-"` fields are skipped.
//   - The parameter name is the first segment of the `json` tag, else the
//     field name. Positions follow field order among the kept fields.
//   - Pointer fields are optional. So are fields carrying a default.
//   - Slices and arrays (other than []byte) document their element type as
//     "T[]". Slices of untyped or nested sequence elements are reported as
//     structural arrays and accept any element.
//   - Struct fields and non-empty interface fields declare a class named by
//     argument.ClassOf.
//
// Supported `invoke` tag tokens (comma separated, unknown tokens ignored):
//
//	type=int[]                 documented type (overrides the derived one)
//	desc=Text                  description (alias: description=)
//	default=literal            default value; marks the parameter optional
//	optional                   marks the parameter optional
//	rule=name[:arg[:arg...]]   validation rule; repeatable, kept in order
//
// Literal arguments and defaults are read as int, float, bool or null when
// they parse as such and as strings otherwise. Defaults of string fields are
// always strings.
//
// Example:
//
//	type SearchArgs struct {
//	    Query string  `json:"query" invoke:"desc=Search text,rule=minLength:1"`
//	    Limit int     `json:"limit" invoke:"default=10,rule=min:1,rule=max:100"`
//	    Tags  []string `json:"tags"`
//	    Owner *User   `json:"owner"`
//	}
//	params, docs, err := introspect.Struct("search", SearchArgs{})
package introspect
