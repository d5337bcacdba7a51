package emit

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/apidocs/internal/routes"
)

// RoutesJS renders the route tree as the router's ComponentCreator module.
func RoutesJS(tree *routes.Tree) []byte {
	var b strings.Builder
	b.WriteString("import React from 'react';\n")
	b.WriteString("import ComponentCreator from '@docusaurus/ComponentCreator';\n\n")
	b.WriteString("export default [\n")
	for _, n := range tree.Routes() {
		writeRouteJS(&b, n, 1)
	}
	b.WriteString("];\n")
	return []byte(b.String())
}

func writeRouteJS(b *strings.Builder, n *routes.Node, depth int) {
	pad := strings.Repeat("  ", depth)
	in := pad + "  "
	fmt.Fprintf(b, "%s{\n", pad)
	fmt.Fprintf(b, "%spath: %s,\n", in, jsString(n.Path))
	if n.Fingerprint == "" || n.Path == routes.NotFoundPath {
		fmt.Fprintf(b, "%scomponent: ComponentCreator(%s),\n", in, jsString(n.Path))
	} else {
		fmt.Fprintf(b, "%scomponent: ComponentCreator(%s, %s),\n", in, jsString(n.Path), jsString(n.Fingerprint))
	}
	if n.Exact {
		fmt.Fprintf(b, "%sexact: true,\n", in)
	}
	if n.Sidebar != "" {
		fmt.Fprintf(b, "%ssidebar: %s,\n", in, jsString(n.Sidebar))
	}
	if len(n.Children) > 0 {
		fmt.Fprintf(b, "%sroutes: [\n", in)
		for _, c := range n.Children {
			writeRouteJS(b, c, depth+2)
		}
		fmt.Fprintf(b, "%s],\n", in)
	}
	fmt.Fprintf(b, "%s},\n", pad)
}

var jsEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`, "\u2028", `\u2028`, "\u2029", `\u2029`)

// jsString quotes s as a single-quoted JavaScript string literal.
func jsString(s string) string {
	return "'" + jsEscaper.Replace(s) + "'"
}
