package aliasresolution

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/AntonioJCosta/gogo/internal/adapters/configparser"
	"github.com/AntonioJCosta/gogo/internal/core/domain/alias"
	"github.com/AntonioJCosta/gogo/internal/core/domain/failure"
	"github.com/AntonioJCosta/gogo/internal/core/domain/paths"
	"github.com/AntonioJCosta/gogo/internal/core/domain/target"
	"github.com/AntonioJCosta/gogo/internal/core/testutil"
	"github.com/AntonioJCosta/gogo/internal/repositories/configstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHome = "/home/tester"

func newMockedService(lines []string) *service {
	store := &testutil.MockConfigStore{
		LoadOrInitializeFunc: func() ([]string, error) { return lines, nil },
		PathsValue:           paths.Default(testHome),
	}
	return NewService(store, configparser.NewParser(), nil).(*service)
}

func TestNewService(t *testing.T) {
	assert.Panics(t, func() { _ = NewService(nil, configparser.NewParser(), nil) })
	assert.Panics(t, func() { _ = NewService(&testutil.MockConfigStore{}, nil, nil) })
	assert.NotNil(t, NewService(&testutil.MockConfigStore{}, configparser.NewParser(), nil))
}

func TestService_Split(t *testing.T) {
	svc := newMockedService(nil)

	tests := []struct {
		name          string
		token         string
		set           alias.Set
		wantValue     string
		wantRemainder string
		wantNotFound  bool
	}{
		{
			name:      "exact match",
			token:     "proj",
			set:       alias.Set{"proj": "/srv/proj"},
			wantValue: "/srv/proj",
		},
		{
			name:          "alias with sub path",
			token:         "a/b/c",
			set:           alias.Set{"a": "/x"},
			wantValue:     "/x",
			wantRemainder: "b/c",
		},
		{
			name:      "alias containing a slash matches exactly",
			token:     "a/b",
			set:       alias.Set{"a": "/x", "a/b": "/y"},
			wantValue: "/y",
		},
		{
			name:          "trailing slash leaves empty remainder",
			token:         "a/",
			set:           alias.Set{"a": "/x"},
			wantValue:     "/x",
			wantRemainder: "",
		},
		{
			name:         "missing alias",
			token:        "missing",
			set:          alias.Set{},
			wantNotFound: true,
		},
		{
			name:         "missing head of sub path",
			token:        "nope/child",
			set:          alias.Set{"a": "/x"},
			wantNotFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, remainder, err := svc.Split(tt.token, tt.set)
			if tt.wantNotFound {
				var notFound *failure.AliasNotFoundError
				require.True(t, errors.As(err, &notFound), "expected AliasNotFoundError, got %v", err)
				assert.Equal(t, tt.token, notFound.Token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantValue, value)
			assert.Equal(t, tt.wantRemainder, remainder)
		})
	}
}

func TestService_Resolve(t *testing.T) {
	lines := []string{
		"# bookmarks",
		"default = ~/work",
		"a = /x",
		"docs = ~/My Documents",
		"box = ssh://deploy@host:zsh /var/www",
		"bare = ssh://host",
	}
	svc := newMockedService(lines)

	tests := []struct {
		name  string
		token string
		want  target.Target
	}{
		{name: "local path", token: "a", want: target.LocalPath{Path: "/x"}},
		{name: "local path with remainder", token: "a/b/c", want: target.LocalPath{Path: "/x/b/c"}},
		{name: "home expansion", token: "docs", want: target.LocalPath{Path: testHome + "/My Documents"}},
		{
			name:  "remote target",
			token: "box",
			want:  target.RemoteTarget{Server: "deploy@host", Shell: "zsh", Directory: "/var/www"},
		},
		{
			name:  "remote target with remainder",
			token: "box/html",
			want:  target.RemoteTarget{Server: "deploy@host", Shell: "zsh", Directory: "/var/www/html"},
		},
		{
			name:  "remote target without directory",
			token: "bare",
			want:  target.RemoteTarget{Server: "host", Shell: target.DefaultRemoteShell},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Resolve(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("missing alias", func(t *testing.T) {
		_, err := svc.Resolve("missing")
		var notFound *failure.AliasNotFoundError
		assert.True(t, errors.As(err, &notFound))
	})
}

func TestService_ResolveDefault(t *testing.T) {
	t.Run("default alias configured", func(t *testing.T) {
		got, err := newMockedService([]string{"default = ~/work"}).ResolveDefault()
		require.NoError(t, err)
		assert.Equal(t, target.LocalPath{Path: testHome + "/work"}, got)
	})

	t.Run("falls back to home directory", func(t *testing.T) {
		got, err := newMockedService([]string{"a = /x"}).ResolveDefault()
		require.NoError(t, err)
		assert.Equal(t, target.LocalPath{Path: testHome}, got)
	})

	t.Run("remote default", func(t *testing.T) {
		got, err := newMockedService([]string{"default = ssh://host /srv"}).ResolveDefault()
		require.NoError(t, err)
		assert.Equal(t, target.RemoteTarget{Server: "host", Shell: target.DefaultRemoteShell, Directory: "/srv"}, got)
	})
}

func TestService_Load(t *testing.T) {
	t.Run("directory error is propagated", func(t *testing.T) {
		dirErr := &failure.FileSystemError{Op: "create directory", Path: "/x", Err: os.ErrPermission}
		store := &testutil.MockConfigStore{EnsureConfigDirFunc: func() error { return dirErr }}
		_, err := NewService(store, configparser.NewParser(), nil).Load()

		var fsErr *failure.FileSystemError
		require.True(t, errors.As(err, &fsErr))
		assert.ErrorIs(t, err, os.ErrPermission)
	})

	t.Run("parse error is propagated", func(t *testing.T) {
		_, err := newMockedService([]string{"ok = /ok", "broken_line_without_equals"}).Load()

		var parseErr *failure.ConfigParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, 1, parseErr.Line)
	})
}

func TestService_FreshInstallResolvesHome(t *testing.T) {
	home := t.TempDir()
	p := paths.Default(home)
	store := configstore.NewFileConfigStore(p, configstore.DefaultTemplate(p, "tester", ""), nil)
	svc := NewService(store, configparser.NewParser(), nil)

	got, err := svc.ResolveDefault()
	require.NoError(t, err)
	assert.Equal(t, target.LocalPath{Path: home}, got)

	info, err := os.Stat(p.Dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	_, err = os.Stat(p.File)
	require.NoError(t, err)

	self, err := svc.Resolve("gogo")
	require.NoError(t, err)
	assert.Equal(t, target.LocalPath{Path: filepath.Join(home, ".config", "gogo")}, self)
}
