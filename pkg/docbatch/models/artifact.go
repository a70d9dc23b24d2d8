package models

// Artifact represents one generated output file.
type Artifact struct {
	// Key is the grouping key (NOMBRE_OC) the file is named after.
	Key string `json:"key"`
	// Path is the written file path.
	Path string `json:"path"`
	// Kind is the template family used.
	Kind TemplateKind `json:"kind"`
	// Row is the sheet row that produced the file.
	Row int `json:"row"`
}

// FolderTree represents the scaffolding created for one order.
type FolderTree struct {
	// Root is the OC_<OC>_<NOMBRE> directory.
	Root string `json:"root"`
	// Subfolders are the created child directories.
	Subfolders []string `json:"subfolders"`
}
