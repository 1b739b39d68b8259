/*
Package ports defines the driven ports (interfaces) for the snapshot exporter.

These interfaces decouple the export logic from concrete storage, so the same
exporter can read a project from disk and publish its snapshot to a file, to
memory or to Redis.

# Key Interfaces

  - DocumentLoader: reads a raw document (the project file, or a published snapshot).
  - SnapshotSaver: replaces the contents of a location without partial writes.
  - SnapshotStore: a location that supports both.
*/
package ports
