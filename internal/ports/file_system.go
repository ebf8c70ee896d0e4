package ports

type AccessMode int

const (
	ReadWrite = iota
	ReadWriteExecute
	ReadAllWriteOwner
)

type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, content []byte, accessMode AccessMode) error
	// ReplaceFile atomically swaps the content of an existing file, keeping its
	// permissions. On error the original file is unchanged.
	ReplaceFile(path string, content []byte) error
	EnsureDirExists(path string) error
	FileExists(path string) (bool, error)
}
