package domain

import "errors"

// ErrNotFound is returned when a document or snapshot location does not exist.
var ErrNotFound = errors.New("document not found")

// ErrParse is returned when the project document is not valid JSON or its top level is not an object.
var ErrParse = errors.New("invalid project document")

// ErrKeyAbsent is returned when a key scheduled for removal is missing from the document.
var ErrKeyAbsent = errors.New("key absent from project document")

// ErrWrite is returned when the snapshot destination cannot be written.
var ErrWrite = errors.New("cannot write snapshot")

// ErrStale is returned by the check command when the published snapshot differs from a fresh render.
var ErrStale = errors.New("snapshot is out of date")
