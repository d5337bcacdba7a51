// Package errors provides the classified error type used across apidocs.
//
// Every failure that reaches the CLI is a ClassifiedError carrying a category
// (config, validation, spec, build, filesystem, internal), a severity and
// structured context such as the offending operation or version. The
// CLIErrorAdapter maps categories to process exit codes.
//
// Example usage:
//
//	err := errors.SpecError("operation is missing operationId").
//		InVersion("next").
//		AtOperation("post", "/classify").
//		Build()
package errors
