package cli

// HelpMessage is printed by -h/--help and, on stderr, for unexpected arguments.
const HelpMessage = `gogo - bookmark your favorite directories

usage:
  gogo [OPTIONS]|[DIR_ALIAS]

options:
  -a alias      : add current directory as alias to the configuration
  -l, --ls      : list aliases
  -e, --edit    : open configuration file in $EDITOR
  -h, --help    : show this message
  -v, --version : print version number and exit

examples:
  gogo alias
  gogo alias/child/directory

See ~/.config/gogo/gogo.conf for configuration details.`
