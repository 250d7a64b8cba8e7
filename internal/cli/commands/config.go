package commands

import (
	"fmt"

	"github.com/piper-lan/piper-site/internal/cli/config"
	"github.com/piper-lan/piper-site/internal/cli/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewConfigCommand creates the config command.
func NewConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after defaults, piper-site.yaml, PIPER_ environment
variables and flags have been applied. The session secret is redacted.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)
			return printConfig(cc.Renderer, cc.Cfg.Redacted())
		},
	}
}

func printConfig(r *output.Renderer, cfg config.Config) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(cfg)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	source := config.GetConfigFileUsed()
	if source == "" {
		source = "defaults"
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatHeader(1, "Configuration"))
		r.Println("")
		r.Println(output.FormatKeyValue("Source", source))
		r.Println("")
		r.Println(output.FormatCodeBlock("yaml", string(data)))
		return nil
	}

	r.Header(1, "Configuration")
	r.Muted("source: " + source)
	r.Println(string(data))
	return nil
}
