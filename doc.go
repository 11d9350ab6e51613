package eventmodel

// Package eventmodel defines the document types used to describe
// scientific experiment data streams and generates portable JSON Schema
// files from them.
//
// - Document declarations are explicit tagged-variant descriptions
//   (Decl/Field/Shape) authored through the builder DSL (New/Field).
// - Generate builds a declarative model from a declaration and renders
//   it to an ordered, alphabetically sorted JSON Schema document.
// - Hand-authored schema fragments express constraints the declaration
//   model cannot, and are deep-merged over the generated schema.
//
// Design policy:
// - Keep only public APIs in the root package; the jsonschema package
//   holds the ordered document representation and its passes.
// - Place the document declarations under documents/ and the CLI under
//   cmd/schemagen.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	doc, err := eventmodel.Generate(documents.RunStart)
//	b, err := doc.Render()
//
//	path, err := eventmodel.WriteSchema(documents.RunStart, outDir)
