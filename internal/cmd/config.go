package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"jiractl/internal/config"
)

// ConfigCmd groups the configuration commands
type ConfigCmd struct {
	Example ConfigExampleCmd `cmd:"example" help:"Show the configuration lookup order and an example file" default:"1"`
}

// ConfigExampleCmd displays where the configuration is read from and an example
type ConfigExampleCmd struct {
	Format string `help:"Format of the example: json, toml or yaml" enum:"json,toml,yaml" default:"json"`
}

// Run executes the example command
func (c *ConfigExampleCmd) Run(cli *CLI) error {
	return writeConfigExample(cli.stdout(), c.Format)
}

func writeConfigExample(w io.Writer, format string) error {
	fmt.Fprintln(w, "Configuration files, looked up from the working directory to the root:")
	for _, name := range config.FileNames {
		fmt.Fprintf(w, "  %s\n", name)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "JIRACTL_PASSWORD and JIRACTL_TOKEN override the password and token keys.")
	fmt.Fprintln(w)

	example := config.GetConfigExample()

	var (
		data     []byte
		err      error
		fileName string
	)
	switch format {
	case "toml":
		fileName = ".jirarc.toml"
		data, err = toml.Marshal(example)
	case "yaml":
		fileName = ".jirarc.yaml"
		data, err = yaml.Marshal(example)
	default:
		fileName = ".jirarc"
		data, err = json.MarshalIndent(example, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("failed to marshal example: %w", err)
	}

	fmt.Fprintf(w, "Example %s:\n\n", fileName)
	fmt.Fprint(w, string(data))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Only host is required. apiVersion, protocol and copyToClipboard default to 2, https and true.")
	return nil
}
