package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/gamepanel/internal/config"
	"github.com/bnema/gamepanel/internal/logger"
	"github.com/bnema/gamepanel/internal/ui"
	"github.com/bnema/gamepanel/sys"
	"github.com/spf13/cobra"
)

// loadLibrary is replaced in tests.
var loadLibrary = sys.Load

var probeNoLoad bool

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Locate and load LogitechLcd without registering an applet",
	Long: `Show every registry location searched for LogitechLcd.dll, then load the
library and resolve its exports. No applet is registered, so nothing appears
on the device.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		opts := config.Get().LoadOptions()
		r := opts.Resolver

		fmt.Fprintln(out, ui.FormatHeader("Library discovery"))
		fmt.Fprintln(out, ui.FormatKeyValue("arch", r.Arch.String()))
		fmt.Fprintln(out, ui.FormatKeyValue("clsid", r.CLSID))
		if opts.Path != "" {
			fmt.Fprintln(out, ui.FormatKeyValue("path", opts.Path+" (registry skipped)"))
		}
		fmt.Fprintln(out)

		for _, p := range sys.Probes(r.Arch, r.CLSID) {
			value, err := r.Store.ReadDefault(p.Root, p.Path)
			value = strings.TrimSpace(value)
			switch {
			case err != nil:
				fmt.Fprintln(out, ui.FormatResult(false, p.String(), err.Error()))
			case value == "":
				fmt.Fprintln(out, ui.FormatResult(false, p.String(), "empty value"))
			default:
				fmt.Fprintln(out, ui.FormatResult(true, p.String(), value))
			}
		}

		if loc, err := r.Resolve(); err == nil {
			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.FormatKeyValue("library", loc.Path))
			fmt.Fprintln(out, ui.FormatKeyValue("directory", loc.Dir))
		}

		if probeNoLoad {
			return nil
		}

		opts.Logger = logger.Logger
		h, err := loadLibrary(opts)
		if err != nil {
			fmt.Fprintln(out, ui.FormatResult(false, "load", err.Error()))
			return err
		}
		defer h.Close()

		fmt.Fprintln(out)
		ep := h.EntryPoints()
		missing := make(map[string]bool)
		for _, name := range ep.Missing() {
			missing[name] = true
		}
		for _, name := range sys.Symbols {
			fmt.Fprintln(out, ui.FormatResult(!missing[name], name, ""))
		}
		fmt.Fprintln(out, ui.SuccessStyle.Render(fmt.Sprintf("%d entry points resolved", len(sys.Symbols)-len(missing))))
		return nil
	},
}

func init() {
	probeCmd.Flags().BoolVar(&probeNoLoad, "no-load", false, "only query the registry")
	rootCmd.AddCommand(probeCmd)
}
