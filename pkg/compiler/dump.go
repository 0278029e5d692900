package compiler

import "github.com/sanity-io/litter"

var dumpOptions = litter.Options{
	StripPackageNames: true,
	HidePrivateFields: true,
}

// Dump returns a Go-syntax structural listing of n, field by field. Unlike
// String it shows the concrete node types, so it is the form to reach for
// when two trees render the same but compare unequal.
func Dump(n Node) string {
	return dumpOptions.Sdump(n)
}
