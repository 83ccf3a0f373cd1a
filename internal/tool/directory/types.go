package directory

// FileAttr describes one non-directory entry of a listing.
type FileAttr struct {
	Name                 string `json:"name"`
	BytesSize            string `json:"bytes_size"`
	HumanReadableSize    string `json:"human_readable_size"`
	LastModified         string `json:"last_modified"`
	BinaryComparisonOnly bool   `json:"binary_comparison_only"`
}

// ListDirResponse contains the result of a ListDir operation.
// Dirs and Files are sorted by name and never share a name.
type ListDirResponse struct {
	CurrentDir string     `json:"current_dir"`
	Dirs       []string   `json:"dirs"`
	Files      []FileAttr `json:"files"`
}
