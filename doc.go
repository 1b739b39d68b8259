/*
Package snapshot publishes the public snapshot of a project document.

A project document is a JSON object describing a project. Some of its top-level
attributes are private to the editor: "references" holds reference material and
"historyManager" holds undo/redo state. The snapshot is the same document with
those attributes removed, written where the static site can serve it.

# Guarantees

  - Every other attribute is kept as parsed: key order, nesting, number text.
  - Nothing is written unless the document loads and parses completely.
  - The file adapter replaces the output atomically, so an interrupted export
    leaves the previous snapshot in place.
  - A key scheduled for removal that is absent fails the export, unless
    WithAllowMissing is set.

# Usage

The zero-configuration entry point reads ../projects/final_project/project.json
and writes ../static/static-project.json:

	if err := snapshot.ExportSnapshot(ctx); err != nil {
		log.Fatal(err)
	}

Any ports.DocumentLoader and ports.SnapshotSaver can be combined:

	exp := snapshot.New(
		file.New("project.json"),
		file.New("public/project.json"),
		snapshot.WithMirror(redis.New("localhost:6379", "", 0)),
		snapshot.WithIndent("  "),
	)
	report, err := exp.Export(ctx)
*/
package snapshot
