package vhdl

import "strings"

// reservedWords are the VHDL-2008 reserved words.
//
//nolint:gochecknoglobals // Read-only lookup table.
var reservedWords = map[string]bool{
	"abs": true, "access": true, "after": true, "alias": true, "all": true,
	"and": true, "architecture": true, "array": true, "assert": true, "assume": true,
	"assume_guarantee": true, "attribute": true, "begin": true, "block": true, "body": true,
	"buffer": true, "bus": true, "case": true, "component": true, "configuration": true,
	"constant": true, "context": true, "cover": true, "default": true, "disconnect": true,
	"downto": true, "else": true, "elsif": true, "end": true, "entity": true,
	"exit": true, "fairness": true, "file": true, "for": true, "force": true,
	"function": true, "generate": true, "generic": true, "group": true, "guarded": true,
	"if": true, "impure": true, "in": true, "inertial": true, "inout": true,
	"is": true, "label": true, "library": true, "linkage": true, "literal": true,
	"loop": true, "map": true, "mod": true, "nand": true, "new": true,
	"next": true, "nor": true, "not": true, "null": true, "of": true,
	"on": true, "open": true, "or": true, "others": true, "out": true,
	"package": true, "parameter": true, "port": true, "postponed": true, "procedure": true,
	"process": true, "property": true, "protected": true, "pure": true, "range": true,
	"record": true, "register": true, "reject": true, "release": true, "rem": true,
	"report": true, "restrict": true, "restrict_guarantee": true, "return": true, "rol": true,
	"ror": true, "select": true, "sequence": true, "severity": true, "shared": true,
	"signal": true, "sla": true, "sll": true, "sra": true, "srl": true,
	"strong": true, "subtype": true, "then": true, "to": true, "transport": true,
	"type": true, "unaffected": true, "units": true, "until": true, "use": true,
	"variable": true, "vmode": true, "vprop": true, "vunit": true, "wait": true,
	"when": true, "while": true, "with": true, "xnor": true, "xor": true,
}

// IsReserved reports whether word is a VHDL reserved word, ignoring case.
func IsReserved(word string) bool {
	return reservedWords[strings.ToLower(word)]
}
