package models

// OpKind identifies the type of a planned filesystem operation
type OpKind string

const (
	// OpEnsureDir creates a destination parent directory (idempotent)
	OpEnsureDir OpKind = "ensure_dir"
	// OpMove renames a file within the target root
	OpMove OpKind = "move"
	// OpCopy duplicates an existing file to a new path
	OpCopy OpKind = "copy"
	// OpDelete removes a file from the target root
	OpDelete OpKind = "delete"
)

// Operation is one abstract action in a reconciliation plan.
// All paths are relative to the target root and use forward slashes.
//
//	ensure_dir: To is the directory to create ("" means the root, a no-op)
//	move, copy: From is the existing file, To the demanded path
//	delete:     From is the file to remove
type Operation struct {
	Kind OpKind `json:"kind"`
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// EnsureDir builds an ensure-directory operation
func EnsureDir(dir string) Operation {
	return Operation{Kind: OpEnsureDir, To: dir}
}

// Move builds a move operation
func Move(from, to string) Operation {
	return Operation{Kind: OpMove, From: from, To: to}
}

// Copy builds a copy operation
func Copy(from, to string) Operation {
	return Operation{Kind: OpCopy, From: from, To: to}
}

// Delete builds a delete operation
func Delete(path string) Operation {
	return Operation{Kind: OpDelete, From: path}
}
