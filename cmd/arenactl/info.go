package main

import (
	"github.com/joshuapare/arenakit/arena"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Report the allocator's virtual-memory parameters",
		Long: `The info command reports the parameters the allocator operates with on
this system: the OS page size, the allocation alignment, and the default
reservation capacity.

Example:
  arenactl info
  arenactl info --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo()
		},
	}
	return cmd
}

type allocatorInfo struct {
	PageSize    int `json:"page_size"`
	Alignment   int `json:"alignment"`
	MaxCapacity int `json:"max_capacity"`
}

func runInfo() error {
	// A one-page reservation is the cheapest way to observe the cached page
	// size the allocator will actually use.
	var a arena.Arena
	if err := a.Reserve(1 << 12); err != nil {
		return err
	}
	defer a.Release()

	info := allocatorInfo{
		PageSize:    a.PageSize(),
		Alignment:   arena.Alignment,
		MaxCapacity: arena.MaxCapacity,
	}

	if jsonOut {
		return printJSON(info)
	}

	p := message.NewPrinter(language.English)
	p.Printf("Allocator parameters:\n")
	p.Printf("  Page size:        %d bytes\n", info.PageSize)
	p.Printf("  Alignment:        %d bytes\n", info.Alignment)
	p.Printf("  Default capacity: %d bytes\n", info.MaxCapacity)
	return nil
}
