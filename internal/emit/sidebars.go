package emit

import (
	"bytes"
	"encoding/json"
	"fmt"

	"git.home.luguber.info/inful/apidocs/internal/sidebar"
)

// SidebarJSON renders the { "apisidebar": [...] } table of one version.
func SidebarJSON(sb *sidebar.Sidebar) ([]byte, error) {
	return marshalJSON(sb)
}

// SidebarTS renders the sidebar as the TypeScript module the site imports.
func SidebarTS(sb *sidebar.Sidebar) ([]byte, error) {
	data, err := marshalJSON(sb)
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	b.WriteString("import type { SidebarsConfig } from \"@docusaurus/plugin-content-docs\";\n\n")
	b.WriteString("const sidebar: SidebarsConfig = ")
	b.Write(bytes.TrimRight(data, "\n"))
	b.WriteString(";\n\nexport default sidebar.apisidebar;\n")
	return b.Bytes(), nil
}

// SidebarsJSON renders the site-level sidebars file: the API sidebar mounted
// under one generated-index category named after sidebarName.
func SidebarsJSON(sidebarName string, wrapper *sidebar.Category) ([]byte, error) {
	if sidebarName == "" {
		return nil, fmt.Errorf("sidebar name is empty")
	}
	items := []sidebar.Item{}
	if wrapper != nil {
		items = append(items, wrapper)
	}
	return marshalJSON(map[string][]sidebar.Item{sidebarName: items})
}

// marshalJSON indents with two spaces, keeps "<" and "&" literal and ends
// with a newline.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
