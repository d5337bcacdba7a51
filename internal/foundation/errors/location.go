package errors

// Context keys that locate a failure in the user's input. The CLI prints
// these (in this order) next to the message.
const (
	KeyVersion   = "version"
	KeyMethod    = "method"
	KeyPath      = "path"
	KeyOperation = "operation"
	KeyField     = "field"
	KeyFile      = "file"
)

var locationKeys = []string{KeyVersion, KeyMethod, KeyPath, KeyOperation, KeyField, KeyFile}

// InVersion names the documentation version being built. Empty labels are skipped.
func (b *ErrorBuilder) InVersion(label string) *ErrorBuilder {
	if label == "" {
		return b
	}
	return b.WithContext(KeyVersion, label)
}

// AtOperation names an OpenAPI operation by method and path template.
func (b *ErrorBuilder) AtOperation(method, path string) *ErrorBuilder {
	return b.WithContext(KeyMethod, method).WithContext(KeyPath, path)
}

// InFile names the input file.
func (b *ErrorBuilder) InFile(path string) *ErrorBuilder {
	return b.WithContext(KeyFile, path)
}

// OnField names the configuration field, as a dotted YAML path.
func (b *ErrorBuilder) OnField(field string) *ErrorBuilder {
	return b.WithContext(KeyField, field)
}

// Location returns the locating context values present on err, in print order.
func Location(err error) map[string]string {
	classified, ok := AsClassified(err)
	if !ok {
		return nil
	}
	out := make(map[string]string)
	for _, k := range locationKeys {
		if v, ok := classified.Context().GetString(k); ok {
			out[k] = v
		}
	}
	return out
}
