package configstore

import (
	"fmt"
	"os"
	"os/user"

	"github.com/AntonioJCosta/gogo/internal/core/domain/paths"
	"github.com/AntonioJCosta/gogo/internal/core/domain/target"
)

// DefaultTemplate returns the lines of a freshly created config file. username
// and shell fill the example ssh alias; an empty shell leaves the remote default.
func DefaultTemplate(p paths.Paths, username, shell string) []string {
	sshAddress := fmt.Sprintf("%s@127.0.0.1", username)
	if shell != "" {
		sshAddress += ":" + shell
	}

	return []string{
		"# This is an example 'gogo' config file",
		"# Each line starting with '#' character is considered a comment.",
		"# Each entry should be in the following format:",
		"# dir_alias = /dir/path/",
		"# Example:",
		"",
		fmt.Sprintf("default = %s", p.Home),
		"",
		"# 'default' is a special alias which is used when no alias is given to gogo.",
		"# If you don't specify it in a configuration file, it'll point to your home dir.",
		"",
		"# You can also connect to directory on ssh server but syntax is slightly different:",
		fmt.Sprintf("# dir_alias = %sserver_name:chosen_shell /dir/path/", target.RemotePrefix),
		"",
		fmt.Sprintf("# You can omit shell if you wish but in this case gogo will use %s variable.", target.DefaultRemoteShell),
		fmt.Sprintf("# dir_alias = %ssecond_server /dir/path/", target.RemotePrefix),
		"",
		fmt.Sprintf("sshloc = %s%s %s", target.RemotePrefix, sshAddress, p.Home),
		"- = -",
		"gogo = ~/.config/gogo",
	}
}

// CurrentUsername returns the login name of the invoking user, or "user" when unknown.
func CurrentUsername() string {
	if usr, err := user.Current(); err == nil && usr.Username != "" {
		return usr.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "user"
}
