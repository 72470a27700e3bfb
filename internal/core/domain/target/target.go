/*
Package target defines where a resolved alias leads: either a local directory
or a directory on a remote host reached over ssh.
*/
package target

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/gogo/internal/core/domain/paths"
)

const (
	// RemotePrefix marks an alias value as a remote target.
	RemotePrefix = "ssh://"
	// DefaultRemoteShell is evaluated by the remote shell, never locally.
	DefaultRemoteShell = "${SHELL}"
)

// Target is either a LocalPath or a RemoteTarget.
type Target interface {
	isTarget()
}

// LocalPath is a directory on this machine.
type LocalPath struct {
	Path string
}

// RemoteTarget is a directory on a remote host, opened with Shell.
type RemoteTarget struct {
	Server    string
	Shell     string
	Directory string // Empty means the remote login directory.
}

func (LocalPath) isTarget()    {}
func (RemoteTarget) isTarget() {}

// Classify interprets a raw alias value. Values starting with "ssh://" become a
// RemoteTarget of the form "ssh://server[:shell] directory"; everything else is
// a LocalPath with a leading "~" expanded to home.
func Classify(value, home string) Target {
	if !strings.HasPrefix(value, RemotePrefix) {
		return LocalPath{Path: paths.ExpandHome(value, home)}
	}

	address := strings.TrimPrefix(value, RemotePrefix)
	addressPart, directory, _ := strings.Cut(address, " ")

	server, shell, hasShell := strings.Cut(addressPart, ":")
	if !hasShell || shell == "" {
		shell = DefaultRemoteShell
	}

	return RemoteTarget{
		Server:    server,
		Shell:     shell,
		Directory: strings.TrimSpace(directory),
	}
}

// Join appends remainder to the target's directory. An empty remainder returns t unchanged.
// Remote directories are joined with POSIX semantics regardless of the local OS.
func Join(t Target, remainder string) Target {
	if remainder == "" {
		return t
	}
	switch v := t.(type) {
	case LocalPath:
		return LocalPath{Path: filepath.Join(v.Path, remainder)}
	case RemoteTarget:
		if v.Directory == "" {
			v.Directory = remainder
		} else {
			v.Directory = path.Join(v.Directory, remainder)
		}
		return v
	}
	return t
}
