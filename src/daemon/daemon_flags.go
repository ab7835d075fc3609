package daemon

import (
	"flag"
	"io"
)

// Flags are the command line arguments of the artistinfo daemon.
type Flags struct {
	// ConfigFile is the path to a JSON configuration file. Empty when not set.
	ConfigFile string

	// DotEnvFile is the path to a file with environment variables.
	DotEnvFile string

	// Debug turns on debug logging regardless of the configuration.
	Debug bool

	// ShowVersion means that only the version should be printed.
	ShowVersion bool
}

// ParseFlags parses the command line arguments args. Usage information and
// parsing errors are written to output. flag.ErrHelp is returned when the
// help was requested.
func ParseFlags(name string, args []string, output io.Writer) (Flags, error) {
	var flags Flags

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&flags.ConfigFile, "config", "", "Path to a JSON configuration file.")
	fs.StringVar(&flags.DotEnvFile, "env-file", ".env",
		"File with ARTISTINFO_* environment variables. It is fine for it not to exist.")
	fs.BoolVar(&flags.Debug, "D", false, "Debug mode. Logs at debug level.")
	fs.BoolVar(&flags.ShowVersion, "version", false, "Show version and build information.")

	if err := fs.Parse(args); err != nil {
		return Flags{}, err
	}

	return flags, nil
}
