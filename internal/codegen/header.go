package codegen

import (
	"bytes"

	"github.com/consensys/bavard"
)

// writeGeneratedHeader stamps the "Code generated... DO NOT EDIT"
// banner this repo's generated files (field/addchain_gen.go) carry,
// using bavard the same way gnark-crypto's own generator does for its
// per-curve generated sources (e.g. ecc/bw6-761/fr/plookup/table.go:
// "// Code generated by consensys/gnark-crypto DO NOT EDIT").
func writeGeneratedHeader(buf *bytes.Buffer, packageName, regenerateCmd string) error {
	bv := bavard.Bavard{}
	return bv.GenerateFromString(buf, []string{generatedHeaderTemplate}, map[string]interface{}{
		"PackageName":   packageName,
		"RegenerateCmd": regenerateCmd,
		"GeneratedBy":   "internal/codegen using github.com/mmcloughlin/addchain",
	})
}

const generatedHeaderTemplate = `// Code generated by {{.GeneratedBy}}.
// DO NOT EDIT.
//
// Regenerate with: {{.RegenerateCmd}}

package {{.PackageName}}
`
