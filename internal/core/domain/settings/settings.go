/*
Package settings defines gogo's optional user preferences.
*/
package settings

// Color modes for stderr messages.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

/*
Settings holds preferences read from the optional settings file. Zero values
mean "use the default"; call WithDefaults before use.
*/
type Settings struct {
	SSHCommand string `yaml:"ssh_command"`
	Editor     string `yaml:"editor"`
	LogLevel   string `yaml:"log_level"`
	Color      string `yaml:"color"`
}

// Default returns the settings used when no settings file exists.
func Default() Settings {
	return Settings{
		SSHCommand: "ssh",
		LogLevel:   "warn",
		Color:      ColorAuto,
	}
}

// WithDefaults fills every empty field from Default.
func (s Settings) WithDefaults() Settings {
	d := Default()
	if s.SSHCommand == "" {
		s.SSHCommand = d.SSHCommand
	}
	if s.LogLevel == "" {
		s.LogLevel = d.LogLevel
	}
	if s.Color == "" {
		s.Color = d.Color
	}
	return s
}
