/*
Package domain contains the core types shared by the snapshot exporter and its adapters.

It is kept free of I/O. Adapters translate their own failures into the sentinel
errors declared here so callers can use errors.Is regardless of where a snapshot
is stored.

# Key Entities

  - Report: the outcome of one export (removed keys, sizes, locations).
  - DefaultStripKeys: the top-level keys that never reach the public snapshot.
  - ErrNotFound, ErrParse, ErrKeyAbsent, ErrWrite, ErrStale: the error taxonomy.
*/
package domain
